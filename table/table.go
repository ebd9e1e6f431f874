// Package table implements the DNT table model and its binary codec.
//
// A Table is an ordered header of typed columns and an ordered body of rows.
// Every table carries an implicit leading id column (int32, raw tag 3) at
// header index 0; it is synthesized by the Decoder and skipped by the
// Encoder, and never appears in a serialized header section.
//
// The Decoder consumes a seekable byte stream and produces a Table; the
// Encoder serializes a Table back into the exact layout the Decoder expects.
// Neither is safe for concurrent use, but a decoded Table is plain value data
// and may be shared read-only across goroutines.
package table

import (
	"fmt"

	"github.com/hus3h/dnt/errs"
	"github.com/hus3h/dnt/format"
	"github.com/hus3h/dnt/section"
)

// Column describes one table column: its name, its resolved semantic type and
// the raw wire tag it was read with.
//
// RawTag is preserved verbatim because the tag mapping is many-to-one (tags 2
// and 3 are both int32); re-encoding writes RawTag, not a canonicalized tag,
// so a round trip reproduces the original bytes.
type Column struct {
	Name   string
	Type   format.DataType
	RawTag uint8
}

// NewColumn creates a Column from a name and a raw wire tag, resolving the
// tag to its semantic type. Returns errs.ErrUnknownTypeTag for tags outside 1-5.
func NewColumn(name string, rawTag uint8) (Column, error) {
	dataType, err := format.DataTypeFromTag(rawTag)
	if err != nil {
		return Column{}, err
	}

	return Column{Name: name, Type: dataType, RawTag: rawTag}, nil
}

// IDColumn returns the implicit leading column every table starts with.
func IDColumn() Column {
	return Column{
		Name:   section.IDColumnName,
		Type:   format.TypeInt32,
		RawTag: section.IDColumnTag,
	}
}

// Row is an ordered sequence of values, one per header column.
type Row []Value

// Table is a fully materialized DNT table: header columns and body rows.
//
// Invariant: every row has exactly len(Header) values, and the value at
// position i has the semantic type of Header[i]. The invariant is enforced at
// the codec boundary (AppendRow and Encoder), not on direct field mutation.
type Table struct {
	Header []Column
	Body   []Row
}

// New creates an empty Table seeded with the implicit id column.
func New() *Table {
	return &Table{Header: []Column{IDColumn()}}
}

// NumColumns returns the header length, including the implicit id column.
func (t *Table) NumColumns() int {
	return len(t.Header)
}

// NumRows returns the body length.
func (t *Table) NumRows() int {
	return len(t.Body)
}

// AddColumn appends a column resolved from name and rawTag to the header.
func (t *Table) AddColumn(name string, rawTag uint8) error {
	column, err := NewColumn(name, rawTag)
	if err != nil {
		return err
	}
	t.Header = append(t.Header, column)

	return nil
}

// AppendRow validates row against the header and appends it to the body.
// Returns errs.ErrRowShapeMismatch or errs.ErrValueTypeMismatch on a shape
// violation; the table is unchanged on error.
func (t *Table) AppendRow(row Row) error {
	if err := t.checkRow(len(t.Body), row); err != nil {
		return err
	}
	t.Body = append(t.Body, row)

	return nil
}

// Validate checks the full shape invariant: a non-empty header, a resolvable
// raw tag on every column, and per-row value counts and variants matching the
// header. The Encoder calls it before writing any byte.
func (t *Table) Validate() error {
	if len(t.Header) == 0 {
		return errs.ErrEmptyHeader
	}

	for i, column := range t.Header {
		dataType, err := format.DataTypeFromTag(column.RawTag)
		if err != nil {
			return fmt.Errorf("column %d (%q): %w", i, column.Name, err)
		}
		if dataType != column.Type {
			return fmt.Errorf("%w: column %d (%q) declares %s but raw tag %d means %s",
				errs.ErrValueTypeMismatch, i, column.Name, column.Type, column.RawTag, dataType)
		}
	}

	for i, row := range t.Body {
		if err := t.checkRow(i, row); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) checkRow(index int, row Row) error {
	if len(row) != len(t.Header) {
		return fmt.Errorf("%w: row %d has %d values, header has %d columns",
			errs.ErrRowShapeMismatch, index, len(row), len(t.Header))
	}

	for i, value := range row {
		if value.Type() != t.Header[i].Type {
			return fmt.Errorf("%w: row %d column %d (%q) expects %s, value is %s",
				errs.ErrValueTypeMismatch, index, i, t.Header[i].Name, t.Header[i].Type, value.Type())
		}
	}

	return nil
}
