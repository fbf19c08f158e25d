package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sable/pkg/lang/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a source file",
	Long: `Lex a sable source file and print every token with its kind,
byte span, and source text. Use --format json for machine-readable output.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

// tokenRecord is the JSON shape for a single token.
type tokenRecord struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", args[0], err)
	}
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		records := make([]tokenRecord, 0, len(toks))
		for _, tok := range toks {
			records = append(records, tokenRecord{
				Kind:  tok.Kind.String(),
				Start: tok.Start,
				End:   tok.End,
				Text:  string(tok.Source(src)),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	for _, tok := range toks {
		fmt.Printf("%4d..%-4d %-12s %q\n", tok.Start, tok.End, tok.Kind, tok.Source(src))
	}
	return nil
}
