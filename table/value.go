package table

import (
	"math"
	"strconv"

	"github.com/hus3h/dnt/format"
)

// Value is a tagged union over the three DNT cell types: text, int32 and
// float32. Exactly one variant is active per instance. The zero Value has no
// active variant and fails table validation.
//
// Value is comparable, so tables can be compared for exact equality after a
// decode/encode round trip (float bits included, since the format introduces
// no precision loss).
type Value struct {
	kind format.DataType
	text string
	bits uint32
}

// TextValue returns a text Value.
func TextValue(s string) Value {
	return Value{kind: format.TypeText, text: s}
}

// Int32Value returns an int32 Value.
func Int32Value(v int32) Value {
	return Value{kind: format.TypeInt32, bits: uint32(v)}
}

// Float32Value returns a float32 Value.
func Float32Value(v float32) Value {
	return Value{kind: format.TypeFloat32, bits: math.Float32bits(v)}
}

// Type returns the semantic type of the active variant, or 0 for the zero Value.
func (v Value) Type() format.DataType {
	return v.kind
}

// Text returns the text variant. The second result is false when the active
// variant is not text.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == format.TypeText
}

// Int32 returns the int32 variant. The second result is false when the active
// variant is not int32.
func (v Value) Int32() (int32, bool) {
	return int32(v.bits), v.kind == format.TypeInt32
}

// Float32 returns the float32 variant. The second result is false when the
// active variant is not float32.
func (v Value) Float32() (float32, bool) {
	return math.Float32frombits(v.bits), v.kind == format.TypeFloat32
}

// String formats the active variant for display. It is not part of the wire
// format.
func (v Value) String() string {
	switch v.kind {
	case format.TypeText:
		return v.text
	case format.TypeInt32:
		return strconv.FormatInt(int64(int32(v.bits)), 10)
	case format.TypeFloat32:
		return strconv.FormatFloat(float64(math.Float32frombits(v.bits)), 'g', -1, 32)
	default:
		return "<invalid>"
	}
}
