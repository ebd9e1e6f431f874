package table

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hus3h/dnt/endian"
	"github.com/hus3h/dnt/errs"
	"github.com/hus3h/dnt/format"
	ienc "github.com/hus3h/dnt/internal/encoding"
	"github.com/hus3h/dnt/internal/options"
	"github.com/hus3h/dnt/section"
)

// Decoder reads a serialized table from a seekable byte stream.
//
// The decoder owns the stream cursor for the duration of Decode: it seeks
// past the reserved prefix itself, so the stream does not need to be
// pre-positioned. Any short read or unresolved type tag fails the whole
// decode; a partially built table is never returned.
//
// Note: the Decoder is NOT thread-safe. Each decoder instance should be used
// by a single goroutine at a time.
type Decoder struct {
	r                io.ReadSeeker
	engine           endian.EndianEngine
	validateSentinel bool
	scratch          [4]byte
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithSentinelValidation makes Decode verify the trailing THEND marker after
// the last row and fail with errs.ErrBadSentinel when it is missing or
// malformed.
//
// Validation is off by default: game clients do not check the sentinel on
// read, and some third-party writers are known to omit it.
func WithSentinelValidation() DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.validateSentinel = true
	})
}

// WithDecoderByteOrder overrides the byte order used to decode multi-byte
// fields. DNT files are little-endian; this exists for inspecting
// byte-swapped dumps and is not needed for well-formed files.
func WithDecoderByteOrder(engine endian.EndianEngine) DecoderOption {
	return options.New(func(d *Decoder) error {
		if engine == nil {
			return errors.New("byte order engine must not be nil")
		}
		d.engine = engine

		return nil
	})
}

// NewDecoder creates a Decoder reading from r.
//
// Parameters:
//   - r: Seekable stream positioned anywhere; Decode seeks to the table start itself
//   - opts: Optional configuration (sentinel validation, byte order)
//
// Returns:
//   - *Decoder: New decoder instance ready for a single Decode call
//   - error: Configuration error if an invalid option is provided
func NewDecoder(r io.ReadSeeker, opts ...DecoderOption) (*Decoder, error) {
	decoder := &Decoder{
		r:      r,
		engine: endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(decoder, opts...); err != nil {
		return nil, err
	}

	return decoder, nil
}

// Decode reads the entire table and returns it.
//
// The header is reconstructed with the implicit id column at index 0, then
// each of the declared wire columns; the body is decoded row by row in
// header column order.
func (d *Decoder) Decode() (*Table, error) {
	if _, err := d.r.Seek(section.PreambleOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to table start: %w", err)
	}

	preamble, err := d.readPreamble()
	if err != nil {
		return nil, err
	}

	tbl := &Table{
		Header: make([]Column, 0, int(preamble.WireColumns)+1),
	}
	tbl.Header = append(tbl.Header, IDColumn())

	for i := 0; i < int(preamble.WireColumns); i++ {
		column, err := d.readColumn()
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		tbl.Header = append(tbl.Header, column)
	}

	if preamble.Rows > 0 {
		tbl.Body = make([]Row, 0, preamble.Rows)
	}
	for i := 0; i < int(preamble.Rows); i++ {
		row := make(Row, 0, len(tbl.Header))
		for _, column := range tbl.Header {
			value, err := d.readValue(column)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", i, column.Name, err)
			}
			row = append(row, value)
		}
		tbl.Body = append(tbl.Body, row)
	}

	if d.validateSentinel {
		if err := d.readSentinel(); err != nil {
			return nil, err
		}
	}

	return tbl, nil
}

func (d *Decoder) readPreamble() (section.Preamble, error) {
	var preamble section.Preamble

	buf := make([]byte, section.PreambleSize)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return preamble, fmt.Errorf("read preamble: %w", err)
	}
	if err := preamble.Parse(buf, d.engine); err != nil {
		return preamble, err
	}

	return preamble, nil
}

func (d *Decoder) readColumn() (Column, error) {
	name, err := ienc.ReadString(d.r, d.engine)
	if err != nil {
		return Column{}, fmt.Errorf("read name: %w", err)
	}

	tag, err := d.readByte()
	if err != nil {
		return Column{}, fmt.Errorf("read type tag: %w", err)
	}

	return NewColumn(name, tag)
}

func (d *Decoder) readValue(column Column) (Value, error) {
	switch column.Type {
	case format.TypeText:
		text, err := ienc.ReadString(d.r, d.engine)
		if err != nil {
			return Value{}, err
		}

		return TextValue(text), nil
	case format.TypeInt32:
		bits, err := d.readUint32()
		if err != nil {
			return Value{}, err
		}

		return Int32Value(int32(bits)), nil
	case format.TypeFloat32:
		bits, err := d.readUint32()
		if err != nil {
			return Value{}, err
		}

		return Value{kind: format.TypeFloat32, bits: bits}, nil
	default:
		return Value{}, fmt.Errorf("%w: semantic type %d", errs.ErrUnknownTypeTag, column.Type)
	}
}

func (d *Decoder) readSentinel() error {
	length, err := d.readByte()
	if err != nil {
		return fmt.Errorf("%w: read length: %v", errs.ErrBadSentinel, err)
	}
	if int(length) != len(section.Sentinel) {
		return fmt.Errorf("%w: length %d, want %d", errs.ErrBadSentinel, length, len(section.Sentinel))
	}

	marker := make([]byte, length)
	if _, err := io.ReadFull(d.r, marker); err != nil {
		return fmt.Errorf("%w: read marker: %v", errs.ErrBadSentinel, err)
	}
	if !bytes.Equal(marker, []byte(section.Sentinel)) {
		return fmt.Errorf("%w: got %q", errs.ErrBadSentinel, marker)
	}

	return nil
}

func (d *Decoder) readByte() (byte, error) {
	if _, err := io.ReadFull(d.r, d.scratch[:1]); err != nil {
		return 0, err
	}

	return d.scratch[0], nil
}

func (d *Decoder) readUint32() (uint32, error) {
	if _, err := io.ReadFull(d.r, d.scratch[:4]); err != nil {
		return 0, err
	}

	return d.engine.Uint32(d.scratch[:4]), nil
}
