package nbt

import (
	"fmt"
	"math"
	"sort"
)

// ToAny converts v into plain Go values suitable for JSON or CBOR output.
func ToAny(v Value) any {
	switch v := v.(type) {
	case Byte:
		return int8(v)
	case Short:
		return int16(v)
	case Int:
		return int32(v)
	case Long:
		return int64(v)
	case Float:
		return float32(v)
	case Double:
		return float64(v)
	case ByteArray:
		return []int8(v)
	case String:
		return string(v)
	case *List:
		if v == nil {
			return []any{}
		}
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = ToAny(item)
		}
		return out
	case Compound:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = ToAny(item)
		}
		return out
	case IntArray:
		return []int32(v)
	case LongArray:
		return []int64(v)
	default:
		return nil
	}
}

// FromAny converts decoded TOML or JSON values into tags. Integers become
// Int when they fit in 32 bits and Long otherwise; floats become Double;
// bools become Byte 0 or 1.
func FromAny(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		return x, nil
	case bool:
		if x {
			return Byte(1), nil
		}
		return Byte(0), nil
	case int8:
		return Byte(x), nil
	case int16:
		return Short(x), nil
	case int32:
		return Int(x), nil
	case int:
		return fromInt64(int64(x)), nil
	case int64:
		return fromInt64(x), nil
	case float32:
		return Float(x), nil
	case float64:
		return Double(x), nil
	case string:
		return String(x), nil
	case []int8:
		return ByteArray(x), nil
	case []int32:
		return IntArray(x), nil
	case []int64:
		return LongArray(x), nil
	case []any:
		return listFromAny(x)
	case []map[string]any:
		items := make([]any, len(x))
		for i, m := range x {
			items[i] = m
		}
		return listFromAny(items)
	case map[string]any:
		out := make(Compound, len(x))
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = v
		}
		return out, nil
	case nil:
		return nil, ErrNilValue
	default:
		return nil, fmt.Errorf("nbt: cannot convert %T", x)
	}
}

func fromInt64(v int64) Value {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return Int(v)
	}
	return Long(v)
}

func listFromAny(items []any) (*List, error) {
	l := &List{Elem: TagEnd, Items: make([]Value, 0, len(items))}
	for i, raw := range items {
		v, err := FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		l.Items = append(l.Items, v)
	}
	if len(l.Items) == 0 {
		return l, nil
	}
	l.Elem = l.Items[0].Tag()
	// Mixed Int/Long from an integer list widens to Long.
	if l.Elem == TagInt || l.Elem == TagLong {
		wide := false
		for _, v := range l.Items {
			if v.Tag() == TagLong {
				wide = true
				break
			}
		}
		if wide {
			for i, v := range l.Items {
				if n, ok := v.(Int); ok {
					l.Items[i] = Long(n)
				}
			}
			l.Elem = TagLong
		}
	}
	for i, v := range l.Items {
		if v.Tag() != l.Elem {
			return nil, fmt.Errorf("%w: index %d is %s, list holds %s", ErrListElemMismatch, i, v.Tag(), l.Elem)
		}
	}
	return l, nil
}
