package ir

import (
	"fmt"
	"maps"
	"slices"
)

// ToAny converts a node to nil, bool, float64, string, []any or
// map[string]any. Key order is lost.
func ToAny(y *Node) any {
	switch y.Type {
	case BoolType:
		return y.Bool
	case NumberType:
		return y.Float64
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToAny(y.Values[i])
		}
		return res
	default:
		return nil
	}
}

// FromAny is the inverse of ToAny. Map keys are sorted since Go maps
// have no order.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case float64:
		return FromFloat(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case int:
		return FromFloat(float64(x)), nil
	case int8:
		return FromFloat(float64(x)), nil
	case int16:
		return FromFloat(float64(x)), nil
	case int32:
		return FromFloat(float64(x)), nil
	case int64:
		return FromFloat(float64(x)), nil
	case uint:
		return FromFloat(float64(x)), nil
	case uint8:
		return FromFloat(float64(x)), nil
	case uint16:
		return FromFloat(float64(x)), nil
	case uint32:
		return FromFloat(float64(x)), nil
	case uint64:
		return FromFloat(float64(x)), nil
	case []string:
		res := NewArray()
		for _, s := range x {
			res.Append(FromString(s))
		}
		return res, nil
	case []any:
		res := NewArray()
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Append(n)
		}
		return res, nil
	case map[string]any:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res.Set(k, n)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}
