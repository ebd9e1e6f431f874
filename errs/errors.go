// Package errs defines the sentinel errors returned by the dnt codec.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is regardless of the context added at the failure site:
//
//	table, err := dnt.ReadFile("skill_table.dnt")
//	if errors.Is(err, errs.ErrUnknownTypeTag) {
//	    // corrupt or unsupported file
//	}
package errs

import "errors"

// Format errors reported by the decoder.
var (
	// ErrUnknownTypeTag indicates a column type byte that does not map to any
	// known semantic type. Valid tags are 1 (text), 2-3 (int32) and 4-5 (float32).
	ErrUnknownTypeTag = errors.New("unknown column type tag")

	// ErrInvalidPreambleSize indicates a preamble byte slice of the wrong length.
	ErrInvalidPreambleSize = errors.New("invalid preamble size")

	// ErrBadSentinel indicates the trailing THEND marker is missing or malformed.
	// Only reported when sentinel validation is enabled on the decoder.
	ErrBadSentinel = errors.New("bad closing sentinel")
)

// Contract violations reported by the encoder before any byte is written.
var (
	// ErrEmptyHeader indicates a table without the leading id column.
	ErrEmptyHeader = errors.New("table header is empty")

	// ErrRowShapeMismatch indicates a row whose value count differs from the
	// column count.
	ErrRowShapeMismatch = errors.New("row value count does not match column count")

	// ErrValueTypeMismatch indicates a value whose variant differs from its
	// column's semantic type.
	ErrValueTypeMismatch = errors.New("value type does not match column type")
)

// Wire limit errors reported by the encoder.
var (
	// ErrColumnCountExceeded indicates more than 65535 wire columns.
	ErrColumnCountExceeded = errors.New("column count exceeds uint16 range")

	// ErrRowCountExceeded indicates more than 4294967295 rows.
	ErrRowCountExceeded = errors.New("row count exceeds uint32 range")

	// ErrTextTooLong indicates a column name or text value longer than the
	// uint16 length prefix can describe.
	ErrTextTooLong = errors.New("text exceeds uint16 length range")
)
