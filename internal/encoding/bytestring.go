// Package encoding implements the length-prefixed string codec shared by the
// header and row paths of the table codec.
//
// Format: [Length: uint16] [Data: Length bytes, one byte per character]
//
// DNT text is a single-byte character set, not UTF-8: each stored byte is one
// character. Reading widens every byte to the rune with the same code point
// (so byte 0xE9 becomes U+00E9) and writing narrows every rune back to its
// low 8 bits, which keeps all 0-255 byte values bit-identical through a
// decode/encode round trip. Do not replace this with multi-byte text
// handling; existing files depend on the one-byte-per-character layout.
package encoding

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/hus3h/dnt/endian"
	"github.com/hus3h/dnt/errs"
)

// ReadString reads one length-prefixed string from r.
//
// A zero length prefix yields the empty string with no further bytes
// consumed. A short read surfaces as the underlying I/O error (io.EOF or
// io.ErrUnexpectedEOF for truncated streams).
func ReadString(r io.Reader, engine endian.EndianEngine) (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", err
	}

	length := int(engine.Uint16(lenBuf[:]))
	if length == 0 {
		return "", nil
	}

	raw := make([]byte, length)
	if _, err := io.ReadFull(r, raw); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(length)
	for _, b := range raw {
		sb.WriteRune(rune(b))
	}

	return sb.String(), nil
}

// AppendString appends the length-prefixed encoding of s to dst and returns
// the extended slice.
//
// The length prefix counts characters, and each character is written as a
// single byte. Returns errs.ErrTextTooLong when s has more characters than
// the uint16 prefix can describe.
func AppendString(dst []byte, s string, engine endian.EndianEngine) ([]byte, error) {
	count := utf8.RuneCountInString(s)
	if count > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d characters", errs.ErrTextTooLong, count)
	}

	dst = engine.AppendUint16(dst, uint16(count))
	for _, r := range s {
		dst = append(dst, byte(r))
	}

	return dst, nil
}
