package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sable/pkg/config"
)

var (
	// Global flags
	cfgFile string
	format  string
	noColor bool
	verbose bool

	// cfg is loaded in the persistent pre-run and read by every subcommand.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sablec",
	Short: "Compiler frontend for the sable language",
	Long: `Sablec lexes, parses, and analyzes sable source files.

Each stage of the pipeline is exposed as a subcommand:
  - tokens: dump the token stream
  - parse:  dump the syntax tree
  - check:  run semantic analysis and dump the typed tree
  - watch:  re-run check on every change to a file`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
		// Flags given on the command line win over the config file.
		if cmd.Flags().Changed("format") {
			cfg.Format = format
		}
		if noColor {
			cfg.Color = false
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "sablec.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
