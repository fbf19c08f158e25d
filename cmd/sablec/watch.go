package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sable/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-run check on every change to a source file",
	Long: `Run the full pipeline on a sable source file, then watch it and
re-run the pipeline after each change. Changes are debounced; the interval
is set by debounce_ms in the config file. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	// Initial run. Pipeline failures are reported but do not stop the
	// watch: the point is to iterate until the file checks.
	if err := checkFile(path); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
	}

	w, err := watch.New(path, cfg.Debounce(), nil)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.Watch(ctx, func() error {
		if err := checkFile(path); err != nil {
			fmt.Fprintln(os.Stderr, renderError(err))
		}
		return nil
	})
}
