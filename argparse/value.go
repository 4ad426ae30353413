package argparse

import (
	"math"
	"strings"
)

// value is the typed store owned by each Argument. The set of implementations
// is closed: scalar[T] for single values and list[T] for collected ones.
type value interface {
	isValue()
}

type scalar[T int | float64 | bool | string] struct{ v T }

type list[T int | float64 | string] struct{ items []T }

func (*scalar[T]) isValue() {}
func (*list[T]) isValue()   {}

// newValue allocates the store for typ, seeded from def. ok is false when def
// cannot represent typ.
func newValue(typ ArgType, def any) (value, bool) {
	switch typ {
	case Int:
		if def == nil {
			return &scalar[int]{}, true
		}
		n, ok := toInt32(def)
		return &scalar[int]{v: n}, ok
	case Double:
		if def == nil {
			return &scalar[float64]{}, true
		}
		f, ok := toFloat(def)
		return &scalar[float64]{v: f}, ok
	case String:
		if def == nil {
			return &scalar[string]{}, true
		}
		s, ok := def.(string)
		return &scalar[string]{v: strings.Clone(s)}, ok
	case Bool:
		if def == nil {
			return &scalar[bool]{}, true
		}
		b, ok := def.(bool)
		return &scalar[bool]{v: b}, ok
	case IntList:
		if def == nil {
			return &list[int]{}, true
		}
		src, ok := def.([]int)
		if !ok {
			return nil, false
		}
		for _, n := range src {
			if n < math.MinInt32 || n > math.MaxInt32 {
				return nil, false
			}
		}
		return &list[int]{items: append([]int(nil), src...)}, true
	case DoubleList:
		if def == nil {
			return &list[float64]{}, true
		}
		src, ok := def.([]float64)
		return &list[float64]{items: append([]float64(nil), src...)}, ok
	case StringList:
		if def == nil {
			return &list[string]{}, true
		}
		src, ok := def.([]string)
		items := make([]string, len(src))
		for i, s := range src {
			items[i] = strings.Clone(s)
		}
		return &list[string]{items: items}, ok
	}
	return nil, false
}

// toInt32 accepts any Go integer kind whose value fits in 32 bits.
func toInt32(v any) (int, bool) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		if uint64(x) > math.MaxInt32 {
			return 0, false
		}
		n = int64(x)
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		if x > math.MaxInt32 {
			return 0, false
		}
		n = int64(x)
	default:
		return 0, false
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}
	if n, ok := toInt32(v); ok {
		return float64(n), true
	}
	return 0, false
}

// listLen returns the element count of a list store, or -1 for scalars.
func listLen(v value) int {
	switch l := v.(type) {
	case *list[int]:
		return len(l.items)
	case *list[float64]:
		return len(l.items)
	case *list[string]:
		return len(l.items)
	}
	return -1
}
