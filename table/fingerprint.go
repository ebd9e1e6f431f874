package table

import (
	"github.com/cespare/xxhash/v2"

	"github.com/hus3h/dnt/endian"
	"github.com/hus3h/dnt/format"
)

// Fingerprint returns a 64-bit xxHash64 digest of the table's content: column
// names, raw type tags and every value, in order.
//
// Two tables have equal fingerprints exactly when an encode would produce the
// same wire bytes, so tooling can detect whether a rewrite changed anything
// without buffering the encoded file. The fingerprint is computed over the
// in-memory representation and is not part of the wire format.
func (t *Table) Fingerprint() uint64 {
	digest := xxhash.New()
	engine := endian.GetLittleEndianEngine()

	var scratch [8]byte

	engine.PutUint32(scratch[:4], uint32(len(t.Header)))
	engine.PutUint32(scratch[4:], uint32(len(t.Body)))
	_, _ = digest.Write(scratch[:])

	for _, column := range t.Header {
		engine.PutUint16(scratch[:2], uint16(len(column.Name)))
		scratch[2] = column.RawTag
		_, _ = digest.Write(scratch[:3])
		_, _ = digest.WriteString(column.Name)
	}

	for _, row := range t.Body {
		for _, value := range row {
			if value.kind == format.TypeText {
				engine.PutUint16(scratch[:2], uint16(len(value.text)))
				_, _ = digest.Write(scratch[:2])
				_, _ = digest.WriteString(value.text)
				continue
			}
			engine.PutUint32(scratch[:4], value.bits)
			_, _ = digest.Write(scratch[:4])
		}
	}

	return digest.Sum64()
}
