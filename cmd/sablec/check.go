package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sable/pkg/lang/parser"
	"sable/pkg/lang/sem"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run the full pipeline through semantic analysis",
	Long: `Lex, parse, and analyze a sable source file, then dump the typed
operation tree. The exit status names the failing stage on error.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	return checkFile(args[0])
}

// checkFile runs the whole pipeline on one file and dumps the typed tree.
// It is shared with the watch command.
func checkFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}
	tree, err := parser.Parse(src)
	if err != nil {
		return err
	}
	typed, err := sem.Transform(tree)
	if err != nil {
		return err
	}
	if err := typed.Render(os.Stdout); err != nil {
		return err
	}
	fmt.Println(okLine("check", path))
	return nil
}
