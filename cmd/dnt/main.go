// Command dnt inspects and rewrites DNT table files.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose          bool
	validateSentinel bool

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
)

var rootCmd = &cobra.Command{
	Use:   "dnt",
	Short: "Inspect and rewrite DNT table files",
	Long: `dnt decodes the binary DNT table format used for typed columnar
game data and lets you inspect, dump and rewrite table files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = logger.Level(zerolog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&validateSentinel, "strict", false, "require a valid THEND sentinel when reading")
	rootCmd.AddCommand(infoCmd, dumpCmd, repackCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
