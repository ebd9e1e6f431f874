package table

import (
	"bytes"
	"io"
	"testing"

	"github.com/hus3h/dnt/errs"
	"github.com/hus3h/dnt/format"
	"github.com/stretchr/testify/require"
)

// buildFile assembles a little-endian DNT byte image from parts.
func buildFile(parts ...[]byte) []byte {
	var buf bytes.Buffer
	for _, part := range parts {
		buf.Write(part)
	}

	return buf.Bytes()
}

var (
	zeroPrefix = []byte{0, 0, 0, 0}
	sentinel   = []byte{0x05, 'T', 'H', 'E', 'N', 'D'}
)

func decode(t *testing.T, data []byte, opts ...DecoderOption) (*Table, error) {
	t.Helper()
	decoder, err := NewDecoder(bytes.NewReader(data), opts...)
	require.NoError(t, err)

	return decoder.Decode()
}

func TestDecoder_SingleRowIDOnly(t *testing.T) {
	// One implicit column, one row with id value 65.
	data := buildFile(
		zeroPrefix,
		[]byte{0x00, 0x00},             // wire column count = 0 (1 total column)
		[]byte{0x01, 0x00, 0x00, 0x00}, // row count = 1
		[]byte{0x41, 0x00, 0x00, 0x00}, // id = 65
	)

	tbl, err := decode(t, data)
	require.NoError(t, err)
	require.Equal(t, []Column{IDColumn()}, tbl.Header)
	require.Equal(t, []Row{{Int32Value(65)}}, tbl.Body)
}

func TestDecoder_EmptyTable(t *testing.T) {
	data := buildFile(zeroPrefix, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, sentinel)

	tbl, err := decode(t, data)
	require.NoError(t, err)
	require.Equal(t, New(), tbl)
}

func TestDecoder_AllValueTypes(t *testing.T) {
	data := buildFile(
		zeroPrefix,
		[]byte{0x03, 0x00},             // 3 wire columns
		[]byte{0x02, 0x00, 0x00, 0x00}, // 2 rows
		[]byte{0x04, 0x00, 'N', 'a', 'm', 'e', 0x01},      // Name: text
		[]byte{0x02, 0x00, 'H', 'P', 0x02},                // HP: int32 (tag 2 variant)
		[]byte{0x05, 0x00, 'S', 'c', 'a', 'l', 'e', 0x04}, // Scale: float32
		// row 0
		[]byte{0x01, 0x00, 0x00, 0x00},    // id = 1
		[]byte{0x03, 0x00, 'o', 'r', 'c'}, // Name = "orc"
		[]byte{0x64, 0x00, 0x00, 0x00},    // HP = 100
		[]byte{0x00, 0x00, 0xa0, 0x3f},    // Scale = 1.25
		// row 1
		[]byte{0x02, 0x00, 0x00, 0x00}, // id = 2
		[]byte{0x00, 0x00},             // Name = ""
		[]byte{0xff, 0xff, 0xff, 0xff}, // HP = -1
		[]byte{0x00, 0x00, 0x80, 0xbf}, // Scale = -1.0
		sentinel,
	)

	tbl, err := decode(t, data)
	require.NoError(t, err)

	require.Equal(t, []Column{
		IDColumn(),
		{Name: "Name", Type: format.TypeText, RawTag: 1},
		{Name: "HP", Type: format.TypeInt32, RawTag: 2},
		{Name: "Scale", Type: format.TypeFloat32, RawTag: 4},
	}, tbl.Header)

	require.Equal(t, []Row{
		{Int32Value(1), TextValue("orc"), Int32Value(100), Float32Value(1.25)},
		{Int32Value(2), TextValue(""), Int32Value(-1), Float32Value(-1.0)},
	}, tbl.Body)
}

func TestDecoder_PreservesRawTagVariants(t *testing.T) {
	data := buildFile(
		zeroPrefix,
		[]byte{0x02, 0x00},
		[]byte{0x00, 0x00, 0x00, 0x00},
		[]byte{0x01, 0x00, 'a', 0x02}, // tag 2, int32
		[]byte{0x01, 0x00, 'b', 0x03}, // tag 3, int32
	)

	tbl, err := decode(t, data)
	require.NoError(t, err)
	require.Equal(t, uint8(2), tbl.Header[1].RawTag)
	require.Equal(t, uint8(3), tbl.Header[2].RawTag)
	require.Equal(t, format.TypeInt32, tbl.Header[1].Type)
	require.Equal(t, format.TypeInt32, tbl.Header[2].Type)
}

func TestDecoder_UnknownTypeTag(t *testing.T) {
	for _, tag := range []byte{0x00, 0x06} {
		data := buildFile(
			zeroPrefix,
			[]byte{0x01, 0x00},
			[]byte{0x00, 0x00, 0x00, 0x00},
			[]byte{0x01, 0x00, 'x', tag},
		)

		tbl, err := decode(t, data)
		require.ErrorIs(t, err, errs.ErrUnknownTypeTag)
		require.Nil(t, tbl)
	}
}

func TestDecoder_ShortReads(t *testing.T) {
	full := buildFile(
		zeroPrefix,
		[]byte{0x01, 0x00},
		[]byte{0x01, 0x00, 0x00, 0x00},
		[]byte{0x02, 0x00, 'H', 'P', 0x03},
		[]byte{0x05, 0x00, 0x00, 0x00},
		[]byte{0x0a, 0x00, 0x00, 0x00},
	)

	// Truncating the stream at any point must fail with an I/O error and no
	// partial table.
	for cut := 0; cut < len(full); cut++ {
		tbl, err := decode(t, full[:cut])
		require.Error(t, err, "cut at %d", cut)
		require.Nil(t, tbl, "cut at %d", cut)
	}
}

func TestDecoder_SentinelValidation(t *testing.T) {
	body := buildFile(zeroPrefix, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00})

	t.Run("Valid sentinel", func(t *testing.T) {
		tbl, err := decode(t, buildFile(body, sentinel), WithSentinelValidation())
		require.NoError(t, err)
		require.NotNil(t, tbl)
	})

	t.Run("Missing sentinel", func(t *testing.T) {
		_, err := decode(t, body, WithSentinelValidation())
		require.ErrorIs(t, err, errs.ErrBadSentinel)
	})

	t.Run("Wrong marker", func(t *testing.T) {
		_, err := decode(t, buildFile(body, []byte{0x05, 'T', 'H', 'E', 'N', 'X'}), WithSentinelValidation())
		require.ErrorIs(t, err, errs.ErrBadSentinel)
	})

	t.Run("Wrong length byte", func(t *testing.T) {
		_, err := decode(t, buildFile(body, []byte{0x04, 'T', 'H', 'E', 'N'}), WithSentinelValidation())
		require.ErrorIs(t, err, errs.ErrBadSentinel)
	})

	t.Run("Disabled by default", func(t *testing.T) {
		tbl, err := decode(t, body)
		require.NoError(t, err)
		require.NotNil(t, tbl)
	})
}

func TestDecoder_SeeksToTableStart(t *testing.T) {
	data := buildFile(
		[]byte{0xde, 0xad, 0xbe, 0xef}, // arbitrary reserved prefix, skipped
		[]byte{0x00, 0x00},
		[]byte{0x00, 0x00, 0x00, 0x00},
	)

	// Position the reader mid-stream; Decode must seek back itself.
	r := bytes.NewReader(data)
	_, err := r.Seek(7, io.SeekStart)
	require.NoError(t, err)

	decoder, err := NewDecoder(r)
	require.NoError(t, err)

	tbl, err := decoder.Decode()
	require.NoError(t, err)
	require.Equal(t, New(), tbl)
}
