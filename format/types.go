// Package format defines the semantic value types of the DNT table format
// and the mapping from raw wire tags to those types.
package format

import (
	"fmt"

	"github.com/hus3h/dnt/errs"
)

// DataType is the resolved semantic type of a column.
type DataType uint8

const (
	TypeText    DataType = 0x1 // TypeText represents single-byte character text.
	TypeInt32   DataType = 0x2 // TypeInt32 represents a 32-bit signed integer.
	TypeFloat32 DataType = 0x3 // TypeFloat32 represents a 32-bit IEEE-754 float.
)

// Raw tag values as they appear on the wire. The mapping is many-to-one:
// tags 2 and 3 are both int32 columns, tags 4 and 5 are both float32 columns.
// The raw tag must be preserved alongside the resolved type so a re-encode
// reproduces the original byte.
const (
	TagText    uint8 = 1
	TagInt32A  uint8 = 2
	TagInt32B  uint8 = 3
	TagFloat32 uint8 = 4
	TagDouble  uint8 = 5
)

// DataTypeFromTag resolves a raw 8-bit wire tag to its semantic type.
//
// Returns errs.ErrUnknownTypeTag for any tag outside 1-5; an unknown tag is
// an unrecoverable format violation and must never be coerced to a default.
func DataTypeFromTag(tag uint8) (DataType, error) {
	switch tag {
	case TagText:
		return TypeText, nil
	case TagInt32A, TagInt32B:
		return TypeInt32, nil
	case TagFloat32, TagDouble:
		return TypeFloat32, nil
	default:
		return 0, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownTypeTag, tag)
	}
}

func (t DataType) String() string {
	switch t {
	case TypeText:
		return "Text"
	case TypeInt32:
		return "Int32"
	case TypeFloat32:
		return "Float32"
	default:
		return "Unknown"
	}
}
