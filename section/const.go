package section

import (
	"math"

	"github.com/hus3h/dnt/format"
)

const (
	// ReservedPrefixSize is the size of the fixed prefix at the start of every
	// file. The prefix is not interpreted: skipped on read, zero-filled on write.
	ReservedPrefixSize = 4

	// PreambleSize is the size of the counts preamble that follows the
	// reserved prefix: a uint16 wire-column count and a uint32 row count.
	PreambleSize = 6

	// PreambleOffset is the absolute byte offset of the preamble.
	PreambleOffset = ReservedPrefixSize

	// Sentinel is the closing marker written after the last row.
	Sentinel = "THEND"

	// SentinelSize is the serialized sentinel size: a uint8 length prefix
	// followed by the marker bytes.
	SentinelSize = 1 + len(Sentinel)

	// EmptyTableSize is the encoded size of a table with no wire columns and
	// no rows: prefix + preamble + sentinel.
	EmptyTableSize = ReservedPrefixSize + PreambleSize + SentinelSize

	// MaxWireColumns is the maximum number of serialized columns, bounded by
	// the uint16 count field.
	MaxWireColumns = math.MaxUint16

	// MaxRows is the maximum number of rows, bounded by the uint32 count field.
	MaxRows = math.MaxUint32

	// MaxTextLength is the maximum length of a column name or text value,
	// bounded by the uint16 string length prefix.
	MaxTextLength = math.MaxUint16
)

// The implicit leading column present in every table. It is synthesized at
// header index 0 on decode and skipped on encode; it never appears in the
// serialized header section.
const (
	IDColumnName = "id"
	IDColumnTag  = format.TagInt32B
)
