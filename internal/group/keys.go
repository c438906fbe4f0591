package group

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRule is returned by By when given the zero Rule.
var ErrNoRule = errors.New("group: no key rule given")

// canonical returns the string form a key is identified by. Records whose
// keys share a canonical form are merged into one group, so a field holding
// int(3) and one holding "3" land together. The nil key (missing field)
// canonicalizes to "<nil>".
func canonical(key any) string {
	return fmt.Sprint(key)
}

// Compare orders two keys. When both keys are numeric (any integer or float
// kind) they compare numerically; otherwise they compare lexicographically by
// canonical string form. Returns -1, 0, or +1.
func Compare(a, b any) int {
	if an, aok := numeric(a); aok {
		if bn, bok := numeric(b); bok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(canonical(a), canonical(b))
}

// numeric reports the float64 value of a key of any numeric kind.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
