package osd

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ToPlain converts a tree into plain Go values (map[string]any, []any,
// bool, int, float64, string) suitable for yaml or json marshaling.
// UUIDs become their canonical string form.
func ToPlain(o OSD) any {
	switch v := o.(type) {
	case nil, Undefined:
		return nil
	case Boolean:
		return v.Value
	case Integer:
		return int(v.Value)
	case Real:
		return v.Value
	case String:
		return v.Value
	case UUID:
		return v.Value.String()
	case *Map:
		out := make(map[string]any, v.Len())
		for _, k := range v.Keys() {
			out[k] = ToPlain(v.Get(k))
		}
		return out
	case *Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = ToPlain(v.At(i))
		}
		return out
	default:
		return o.AsString()
	}
}

// FromPlain builds a tree from plain Go values as produced by yaml or json
// unmarshaling. Strings that parse as UUIDs become UUID nodes.
func FromPlain(v any) (OSD, error) {
	switch x := v.(type) {
	case nil:
		return Undefined{}, nil
	case bool:
		return FromBoolean(x), nil
	case int:
		if x > math.MaxInt32 || x < math.MinInt32 {
			return FromReal(float64(x)), nil
		}
		return FromInteger(x), nil
	case int64:
		return FromPlain(int(x))
	case uint64:
		return FromReal(float64(x)), nil
	case float32:
		return FromReal(float64(x)), nil
	case float64:
		return FromReal(x), nil
	case string:
		if len(x) == 36 {
			if id, err := uuid.Parse(x); err == nil {
				return FromUUID(id), nil
			}
		}
		return FromString(x), nil
	case uuid.UUID:
		return FromUUID(x), nil
	case map[string]any:
		m := NewMap()
		for k, e := range x {
			node, err := FromPlain(e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			m.Set(k, node)
		}
		return m, nil
	case []any:
		a := NewArray()
		for i, e := range x {
			node, err := FromPlain(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			a.Append(node)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
