package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show the header and row count of a table file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := readTable(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "columns:     %d (including implicit id)\n", tbl.NumColumns())
		fmt.Fprintf(out, "rows:        %d\n", tbl.NumRows())
		fmt.Fprintf(out, "fingerprint: %016x\n", tbl.Fingerprint())
		fmt.Fprintln(out)

		for i, column := range tbl.Header {
			fmt.Fprintf(out, "%3d  %-8s tag=%d  %s\n", i, column.Type, column.RawTag, column.Name)
		}

		return nil
	},
}
