// Package osd implements the structured-data tree used for the
// capability/HTTP representation of world objects.
//
// Only the in-memory tree and its typed accessors live here. Text and
// binary serializations of the tree are handled by callers (see ToPlain).
package osd

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/google/uuid"

	vmath "github.com/Faultbox/midgard-sl/pkg/math"
)

// Type identifies the kind of an OSD value.
type Type int

// OSD value types.
const (
	TypeUnknown Type = iota
	TypeBoolean
	TypeInteger
	TypeReal
	TypeString
	TypeUUID
	TypeMap
	TypeArray
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeReal:
		return "real"
	case TypeString:
		return "string"
	case TypeUUID:
		return "uuid"
	case TypeMap:
		return "map"
	case TypeArray:
		return "array"
	default:
		return "unknown"
	}
}

// OSD is a node of the structured-data tree.
// The typed getters convert where a sensible conversion exists and return
// the zero value otherwise.
type OSD interface {
	Type() Type
	AsBoolean() bool
	AsInteger() int
	AsReal() float64
	AsString() string
	AsUUID() uuid.UUID
	AsVector3() vmath.Vec3
	AsQuaternion() vmath.Quat
	AsColor4() vmath.Color4
}

// scalar provides the zero-value conversions for non-array nodes.
type scalar struct{}

func (scalar) AsVector3() vmath.Vec3 { return vmath.Vec3{} }
func (scalar) AsQuaternion() vmath.Quat { return vmath.Quat{} }
func (scalar) AsColor4() vmath.Color4 { return vmath.Color4{} }

// Undefined is the value returned for missing map keys and array slots.
type Undefined struct{ scalar }

func (Undefined) Type() Type { return TypeUnknown }
func (Undefined) AsBoolean() bool { return false }
func (Undefined) AsInteger() int { return 0 }
func (Undefined) AsReal() float64 { return 0 }
func (Undefined) AsString() string { return "" }
func (Undefined) AsUUID() uuid.UUID { return uuid.Nil }

// Boolean is a boolean value.
type Boolean struct {
	scalar
	Value bool
}

func (b Boolean) Type() Type { return TypeBoolean }
func (b Boolean) AsBoolean() bool { return b.Value }
func (b Boolean) AsInteger() int {
	if b.Value {
		return 1
	}
	return 0
}
func (b Boolean) AsReal() float64 { return float64(b.AsInteger()) }
func (b Boolean) AsString() string { return strconv.FormatBool(b.Value) }
func (b Boolean) AsUUID() uuid.UUID { return uuid.Nil }

// Integer is a 32-bit signed integer value.
type Integer struct {
	scalar
	Value int32
}

func (i Integer) Type() Type { return TypeInteger }
func (i Integer) AsBoolean() bool { return i.Value != 0 }
func (i Integer) AsInteger() int { return int(i.Value) }
func (i Integer) AsReal() float64 { return float64(i.Value) }
func (i Integer) AsString() string { return strconv.Itoa(int(i.Value)) }
func (i Integer) AsUUID() uuid.UUID { return uuid.Nil }

// Real is a 64-bit floating point value.
type Real struct {
	scalar
	Value float64
}

func (r Real) Type() Type { return TypeReal }
func (r Real) AsBoolean() bool { return r.Value != 0 && !math.IsNaN(r.Value) }
func (r Real) AsInteger() int {
	switch {
	case math.IsNaN(r.Value):
		return 0
	case r.Value > math.MaxInt32:
		return math.MaxInt32
	case r.Value < math.MinInt32:
		return math.MinInt32
	}
	return int(math.Round(r.Value))
}
func (r Real) AsReal() float64 { return r.Value }
func (r Real) AsString() string { return strconv.FormatFloat(r.Value, 'g', -1, 64) }
func (r Real) AsUUID() uuid.UUID { return uuid.Nil }

// String is a string value.
type String struct {
	scalar
	Value string
}

func (s String) Type() Type { return TypeString }
func (s String) AsBoolean() bool {
	switch s.Value {
	case "", "0", "false", "f":
		return false
	}
	return true
}
func (s String) AsInteger() int {
	n, err := strconv.ParseFloat(s.Value, 64)
	if err != nil {
		return 0
	}
	return Real{Value: n}.AsInteger()
}
func (s String) AsReal() float64 {
	n, _ := strconv.ParseFloat(s.Value, 64)
	return n
}
func (s String) AsString() string { return s.Value }
func (s String) AsUUID() uuid.UUID {
	id, err := uuid.Parse(s.Value)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// UUID is a 16-byte identifier value.
type UUID struct {
	scalar
	Value uuid.UUID
}

func (u UUID) Type() Type { return TypeUUID }
func (u UUID) AsBoolean() bool { return u.Value != uuid.Nil }
func (u UUID) AsInteger() int { return 0 }
func (u UUID) AsReal() float64 { return 0 }
func (u UUID) AsString() string { return u.Value.String() }
func (u UUID) AsUUID() uuid.UUID { return u.Value }

// FromBoolean wraps a bool.
func FromBoolean(v bool) OSD { return Boolean{Value: v} }

// FromInteger wraps an int. Values are truncated to 32 bits.
func FromInteger(v int) OSD { return Integer{Value: int32(v)} }

// FromReal wraps a float64.
func FromReal(v float64) OSD { return Real{Value: v} }

// FromString wraps a string.
func FromString(v string) OSD { return String{Value: v} }

// FromUUID wraps a UUID.
func FromUUID(v uuid.UUID) OSD { return UUID{Value: v} }

// FromVector3 encodes a vector as an array of three reals.
func FromVector3(v vmath.Vec3) OSD {
	return NewArray(FromReal(float64(v.X)), FromReal(float64(v.Y)), FromReal(float64(v.Z)))
}

// FromQuaternion encodes a quaternion as an array of four reals.
func FromQuaternion(q vmath.Quat) OSD {
	return NewArray(FromReal(float64(q.X)), FromReal(float64(q.Y)), FromReal(float64(q.Z)), FromReal(float64(q.W)))
}

// FromColor4 encodes a color as an array of four reals.
func FromColor4(c vmath.Color4) OSD {
	return NewArray(FromReal(float64(c.R)), FromReal(float64(c.G)), FromReal(float64(c.B)), FromReal(float64(c.A)))
}

// Map is a string-keyed collection of nodes.
type Map struct {
	scalar
	values map[string]OSD
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{values: make(map[string]OSD)}
}

func (m *Map) Type() Type { return TypeMap }
func (m *Map) AsBoolean() bool { return m.Len() > 0 }
func (m *Map) AsInteger() int { return 0 }
func (m *Map) AsReal() float64 { return 0 }
func (m *Map) AsString() string { return "" }
func (m *Map) AsUUID() uuid.UUID { return uuid.Nil }

// Set stores v under key. A nil v stores Undefined.
func (m *Map) Set(key string, v OSD) {
	if v == nil {
		v = Undefined{}
	}
	m.values[key] = v
}

// Get returns the node stored under key, or Undefined.
func (m *Map) Get(key string) OSD {
	if v, ok := m.values[key]; ok {
		return v
	}
	return Undefined{}
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.values)
}

// Keys returns the keys in sorted order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Array is an ordered list of nodes.
type Array struct {
	values []OSD
}

// NewArray returns an array holding values.
func NewArray(values ...OSD) *Array {
	return &Array{values: values}
}

func (a *Array) Type() Type { return TypeArray }
func (a *Array) AsBoolean() bool { return a.Len() > 0 }
func (a *Array) AsInteger() int { return 0 }
func (a *Array) AsReal() float64 { return 0 }
func (a *Array) AsString() string { return "" }
func (a *Array) AsUUID() uuid.UUID { return uuid.Nil }

func (a *Array) real(i int) float32 {
	return float32(a.At(i).AsReal())
}

// AsVector3 reads the first three elements as X, Y, Z.
func (a *Array) AsVector3() vmath.Vec3 {
	return vmath.Vec3{X: a.real(0), Y: a.real(1), Z: a.real(2)}
}

// AsQuaternion reads the first four elements as X, Y, Z, W.
// A three element array is treated as a normalized quaternion with W derived.
func (a *Array) AsQuaternion() vmath.Quat {
	q := vmath.Quat{X: a.real(0), Y: a.real(1), Z: a.real(2), W: a.real(3)}
	if a.Len() == 3 {
		t := 1 - (q.X*q.X + q.Y*q.Y + q.Z*q.Z)
		if t > 0 {
			q.W = float32(math.Sqrt(float64(t)))
		}
	}
	return q
}

// AsColor4 reads the first four elements as R, G, B, A.
// Alpha defaults to 1 when only three elements are present.
func (a *Array) AsColor4() vmath.Color4 {
	c := vmath.Color4{R: a.real(0), G: a.real(1), B: a.real(2), A: 1}
	if a.Len() >= 4 {
		c.A = a.real(3)
	}
	return c
}

// Append adds values to the end of the array.
func (a *Array) Append(values ...OSD) {
	a.values = append(a.values, values...)
}

// At returns element i, or Undefined when out of range.
func (a *Array) At(i int) OSD {
	if a == nil || i < 0 || i >= len(a.values) {
		return Undefined{}
	}
	return a.values[i]
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// Describe returns a short description of o, useful in error messages.
func Describe(o OSD) string {
	switch v := o.(type) {
	case *Map:
		return fmt.Sprintf("map[%d]", v.Len())
	case *Array:
		return fmt.Sprintf("array[%d]", v.Len())
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%s(%s)", o.Type(), o.AsString())
	}
}
