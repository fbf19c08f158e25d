package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sable/pkg/lang/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Dump the syntax tree of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", args[0], err)
	}
	tree, err := parser.Parse(src)
	if err != nil {
		return err
	}
	if err := tree.Render(os.Stdout); err != nil {
		return err
	}
	fmt.Println(okLine("parse", args[0]))
	return nil
}
