package main

import (
	"github.com/hus3h/dnt"
	"github.com/hus3h/dnt/table"
)

// readTable loads a table honoring the global --strict flag.
func readTable(path string) (*table.Table, error) {
	var opts []table.DecoderOption
	if validateSentinel {
		opts = append(opts, table.WithSentinelValidation())
	}

	logger.Debug().Str("path", path).Bool("strict", validateSentinel).Msg("reading table")

	return dnt.ReadFile(path, opts...)
}
