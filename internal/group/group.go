package group

import (
	"fmt"
	"sort"
)

// Record is one input item to be grouped: a loose mapping from field name to
// value. No schema is assumed beyond the existence of a derivable key.
type Record = map[string]any

// Rule derives a group key from a record. Construct with Field or Derive.
// The zero Rule is invalid and is rejected by By.
type Rule struct {
	field  string
	derive func(Record) (any, error)
}

// Field returns a Rule that reads the named field from each record.
// Records lacking the field derive the nil key and form their own group.
func Field(name string) Rule {
	return Rule{field: name}
}

// Derive returns a Rule backed by a key function. The function is invoked
// once per record; an error aborts the whole grouping with no partial result.
func Derive(fn func(Record) (any, error)) Rule {
	return Rule{derive: fn}
}

// resolve collapses the rule variants into a single uniform derive function.
func (r Rule) resolve() (func(Record) (any, error), error) {
	switch {
	case r.derive != nil:
		return r.derive, nil
	case r.field != "":
		name := r.field
		return func(rec Record) (any, error) {
			return rec[name], nil
		}, nil
	default:
		return nil, ErrNoRule
	}
}

// Result is an ordered mapping from key to the records sharing that key.
// Keys are held in ascending order under Compare; records within a group keep
// their relative order from the input sequence.
type Result struct {
	keys    []any
	groups  [][]Record
	byCanon map[string]int
}

// By partitions records into groups keyed by rule.
//
// Every input record lands in exactly one group, groups are stable, and the
// result's keys are sorted ascending under Compare. Key equality is
// representation-based: two keys whose canonical string forms are equal merge
// into one group. The input slice is never mutated.
func By(records []Record, rule Rule) (*Result, error) {
	derive, err := rule.resolve()
	if err != nil {
		return nil, err
	}

	res := &Result{byCanon: make(map[string]int)}
	for i, rec := range records {
		key, err := derive(rec)
		if err != nil {
			return nil, fmt.Errorf("derive key for record %d: %w", i, err)
		}
		ck := canonical(key)
		idx, ok := res.byCanon[ck]
		if !ok {
			idx = len(res.keys)
			res.byCanon[ck] = idx
			res.keys = append(res.keys, key)
			res.groups = append(res.groups, nil)
		}
		res.groups[idx] = append(res.groups[idx], rec)
	}

	res.sortKeys()
	return res, nil
}

// sortKeys reorders keys and groups into ascending key order and rebuilds the
// canonical index. The accumulation order up to this point is scratch state.
func (r *Result) sortKeys() {
	order := make([]int, len(r.keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return Compare(r.keys[order[a]], r.keys[order[b]]) < 0
	})

	keys := make([]any, len(r.keys))
	groups := make([][]Record, len(r.groups))
	for to, from := range order {
		keys[to] = r.keys[from]
		groups[to] = r.groups[from]
		r.byCanon[canonical(keys[to])] = to
	}
	r.keys = keys
	r.groups = groups
}

// Len returns the number of distinct groups.
func (r *Result) Len() int {
	return len(r.keys)
}

// Keys returns the group keys in ascending order. The slice is a copy.
func (r *Result) Keys() []any {
	out := make([]any, len(r.keys))
	copy(out, r.keys)
	return out
}

// Group returns the records for the given key, or nil if the key is absent.
// Lookup uses the same representation-based equality as By.
func (r *Result) Group(key any) []Record {
	idx, ok := r.byCanon[canonical(key)]
	if !ok {
		return nil
	}
	return r.groups[idx]
}

// Each calls fn for every group in ascending key order.
func (r *Result) Each(fn func(key any, records []Record)) {
	for i, k := range r.keys {
		fn(k, r.groups[i])
	}
}

// Flatten returns all records concatenated in output order: groups in
// ascending key order, records within each group in input order. Regrouping
// the flattened slice by the same rule reproduces an equivalent Result.
func (r *Result) Flatten() []Record {
	var out []Record
	for _, g := range r.groups {
		out = append(out, g...)
	}
	return out
}
