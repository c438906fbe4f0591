// Package group partitions a sequence of records into an ordered mapping
// keyed by a derived property.
//
// The grouping is pure and single-pass: every input record appears in exactly
// one group, records within a group keep their relative input order, and the
// result's keys come out sorted ascending under [Compare]. Keys compare
// numerically when both sides are numeric and by canonical string form
// otherwise; keys with equal canonical forms merge into one group.
//
// A [Rule] names the key derivation: [Field] reads a named field from each
// record, [Derive] runs an arbitrary key function. A Derive error aborts the
// call with no partial result.
//
// The package holds no state and never mutates its input, so concurrent calls
// need no coordination.
package group
