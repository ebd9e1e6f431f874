package table

import (
	"errors"
	"fmt"
	"io"

	"github.com/hus3h/dnt/endian"
	"github.com/hus3h/dnt/errs"
	"github.com/hus3h/dnt/format"
	ienc "github.com/hus3h/dnt/internal/encoding"
	"github.com/hus3h/dnt/internal/options"
	"github.com/hus3h/dnt/internal/pool"
	"github.com/hus3h/dnt/section"
)

// Encoder serializes a table into the exact byte layout the Decoder consumes.
//
// The whole file image is assembled in a pooled buffer and written to the
// underlying writer in one call, so a failing table leaves the writer
// untouched: shape violations are reported before any byte goes out.
//
// The encoder borrows the table for the duration of Encode and does not
// retain or mutate it.
//
// Note: the Encoder is NOT thread-safe. Each encoder instance should be used
// by a single goroutine at a time.
type Encoder struct {
	w      io.Writer
	engine endian.EndianEngine
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithEncoderByteOrder overrides the byte order used to encode multi-byte
// fields. Files written with anything but the default little-endian order are
// not valid DNT files; this exists for producing diagnostic fixtures.
func WithEncoderByteOrder(engine endian.EndianEngine) EncoderOption {
	return options.New(func(e *Encoder) error {
		if engine == nil {
			return errors.New("byte order engine must not be nil")
		}
		e.engine = engine

		return nil
	})
}

// NewEncoder creates an Encoder writing to w.
//
// Parameters:
//   - w: Destination for the serialized table
//   - opts: Optional configuration (byte order)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: Configuration error if an invalid option is provided
func NewEncoder(w io.Writer, opts ...EncoderOption) (*Encoder, error) {
	encoder := &Encoder{
		w:      w,
		engine: endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(encoder, opts...); err != nil {
		return nil, err
	}

	return encoder, nil
}

// Encode validates tbl and writes its serialized form.
//
// Layout: a 4-byte zero-filled prefix, the counts preamble, each wire column
// (name plus raw type tag, skipping the implicit id column at header index 0),
// every row in header column order (id value included), and the THEND
// sentinel.
//
// The table must satisfy the shape invariant (see Table.Validate) and fit the
// wire limits: at most 65535 wire columns, 4294967295 rows and 65535
// characters per string.
func (e *Encoder) Encode(tbl *Table) error {
	if err := tbl.Validate(); err != nil {
		return err
	}
	if len(tbl.Header)-1 > section.MaxWireColumns {
		return fmt.Errorf("%w: %d wire columns", errs.ErrColumnCountExceeded, len(tbl.Header)-1)
	}
	if uint64(len(tbl.Body)) > section.MaxRows {
		return fmt.Errorf("%w: %d rows", errs.ErrRowCountExceeded, len(tbl.Body))
	}

	buf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(buf)

	b, err := e.appendTable(buf.B, tbl)
	if err != nil {
		return err
	}
	buf.B = b

	if _, err := e.w.Write(buf.B); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

func (e *Encoder) appendTable(b []byte, tbl *Table) ([]byte, error) {
	// Reserved prefix: always zero-filled, never reproduced from the source file.
	b = append(b, 0, 0, 0, 0)

	preamble := section.Preamble{
		WireColumns: uint16(len(tbl.Header) - 1),
		Rows:        uint32(len(tbl.Body)),
	}
	b = preamble.AppendTo(b, e.engine)

	var err error
	for _, column := range tbl.Header[1:] {
		b, err = ienc.AppendString(b, column.Name, e.engine)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", column.Name, err)
		}
		b = append(b, column.RawTag)
	}

	for i, row := range tbl.Body {
		for j, value := range row {
			b, err = e.appendValue(b, value)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", i, tbl.Header[j].Name, err)
			}
		}
	}

	b = append(b, byte(len(section.Sentinel)))
	b = append(b, section.Sentinel...)

	return b, nil
}

func (e *Encoder) appendValue(b []byte, value Value) ([]byte, error) {
	switch value.kind {
	case format.TypeText:
		return ienc.AppendString(b, value.text, e.engine)
	case format.TypeInt32, format.TypeFloat32:
		return e.engine.AppendUint32(b, value.bits), nil
	default:
		return nil, fmt.Errorf("%w: value has no active variant", errs.ErrValueTypeMismatch)
	}
}
