// Package section defines the fixed-layout wire structures of the DNT format:
// the reserved prefix, the counts preamble and the closing sentinel.
//
// Variable-length sections (column entries and row data) are handled by the
// table package; this package only covers the parts with a fixed size.
package section

import (
	"github.com/hus3h/dnt/endian"
	"github.com/hus3h/dnt/errs"
)

// Preamble is the 6-byte counts section at byte offset 4 of every file.
//
// WireColumns counts only the serialized columns: the true column count is
// WireColumns + 1 because the implicit id column is never on the wire.
type Preamble struct {
	// WireColumns is the number of columns in the serialized header section.
	WireColumns uint16
	// Rows is the number of rows in the body section.
	Rows uint32
}

// Parse parses the preamble from a byte slice.
// It returns an error if the data is not exactly PreambleSize bytes.
func (p *Preamble) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != PreambleSize {
		return errs.ErrInvalidPreambleSize
	}

	p.WireColumns = engine.Uint16(data[0:2])
	p.Rows = engine.Uint32(data[2:6])

	return nil
}

// AppendTo appends the serialized preamble to dst and returns the extended slice.
func (p *Preamble) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint16(dst, p.WireColumns)
	dst = engine.AppendUint32(dst, p.Rows)

	return dst
}

// Bytes serializes the preamble into a new byte slice.
func (p *Preamble) Bytes(engine endian.EndianEngine) []byte {
	return p.AppendTo(make([]byte, 0, PreambleSize), engine)
}
