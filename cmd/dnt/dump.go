package main

import (
	"encoding/csv"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Dump table rows as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := readTable(args[0])
		if err != nil {
			return err
		}

		w := csv.NewWriter(cmd.OutOrStdout())

		header := make([]string, 0, tbl.NumColumns())
		for _, column := range tbl.Header {
			header = append(header, column.Name)
		}
		if err := w.Write(header); err != nil {
			return err
		}

		record := make([]string, tbl.NumColumns())
		for _, row := range tbl.Body {
			for i, value := range row {
				record[i] = value.String()
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}

		w.Flush()

		return w.Error()
	},
}
