// Package dnt reads and writes DNT files, a fixed-layout binary format for
// typed columnar game data tables.
//
// A file is a header of named, typed columns followed by row data and a THEND
// closing marker, little-endian throughout. Every table additionally carries
// an implicit leading id column (int32) that is never serialized.
//
// # Basic Usage
//
// Reading a file:
//
//	tbl, err := dnt.ReadFile("skilltable.dnt")
//	if err != nil {
//	    return err
//	}
//	for _, row := range tbl.Body {
//	    id, _ := row[0].Int32()
//	    fmt.Println(id)
//	}
//
// Writing it back:
//
//	err = dnt.WriteFile("skilltable.dnt", tbl)
//
// Encoding then decoding reproduces a table exactly, including the raw type
// tag variants of each column.
//
// # Package Structure
//
// This package provides convenient wrappers around the table package, which
// holds the model, Decoder and Encoder. The format package defines semantic
// value types and the raw tag mapping; section defines the fixed wire
// structures.
package dnt

import (
	"fmt"
	"io"
	"os"

	"github.com/hus3h/dnt/table"
)

// Decode reads a table from r. The reader may be positioned anywhere; the
// decoder seeks to the table start itself.
func Decode(r io.ReadSeeker, opts ...table.DecoderOption) (*table.Table, error) {
	decoder, err := table.NewDecoder(r, opts...)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// Encode validates tbl and writes its serialized form to w.
func Encode(w io.Writer, tbl *table.Table, opts ...table.EncoderOption) error {
	encoder, err := table.NewEncoder(w, opts...)
	if err != nil {
		return err
	}

	return encoder.Encode(tbl)
}

// ReadFile decodes the table stored in the file at path.
func ReadFile(path string, opts ...table.DecoderOption) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, opts...)
}

// WriteFile encodes tbl into the file at path, creating or truncating it.
func WriteFile(path string, tbl *table.Table, opts ...table.EncoderOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(f, tbl, opts...); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
