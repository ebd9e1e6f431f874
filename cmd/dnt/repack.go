package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hus3h/dnt"
)

var repackCmd = &cobra.Command{
	Use:   "repack <input> <output>",
	Short: "Decode a table file and re-encode it",
	Long: `repack decodes a table file, validates its shape and writes a fresh
encoding to the output path. The rewrite normalizes the reserved prefix to
zeros and always appends the THEND sentinel; table content is reproduced
bit-for-bit, which the logged fingerprint confirms.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, output := args[0], args[1]

		tbl, err := readTable(input)
		if err != nil {
			return err
		}

		fingerprint := tbl.Fingerprint()
		logger.Debug().
			Int("columns", tbl.NumColumns()).
			Int("rows", tbl.NumRows()).
			Msg("decoded table")

		if err := dnt.WriteFile(output, tbl); err != nil {
			return err
		}

		// Re-read what was written and compare content fingerprints.
		written, err := dnt.ReadFile(output)
		if err != nil {
			return err
		}
		if written.Fingerprint() != fingerprint {
			logger.Warn().Str("output", output).Msg("content fingerprint changed after repack")
		} else {
			logger.Info().
				Str("output", output).
				Str("fingerprint", fmt.Sprintf("%016x", fingerprint)).
				Msg("repacked, content unchanged")
		}

		return nil
	},
}
