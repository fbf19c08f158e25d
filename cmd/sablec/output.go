package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"sable/pkg/lang/lexer"
	"sable/pkg/lang/parser"
	"sable/pkg/lang/sem"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	stageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// stageOf names the pipeline stage an error came from.
func stageOf(err error) string {
	var lexErr *lexer.LexError
	var parseErr *parser.ParseError
	var semErr *sem.AnalysisError
	switch {
	case errors.As(err, &lexErr):
		return "lex"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &semErr):
		return "analysis"
	default:
		return ""
	}
}

// renderError formats a pipeline error for the terminal, tagging it with
// its originating stage when one can be identified.
func renderError(err error) string {
	tag := "error:"
	if stage := stageOf(err); stage != "" {
		tag = stage + " failed:"
	}
	if !cfg.Color {
		return fmt.Sprintf("%s %v", tag, err)
	}
	return fmt.Sprintf("%s %v", errStyle.Render(tag), err)
}

// okLine formats a stage-success line like "check ok  main.sb".
func okLine(stage, file string) string {
	if !cfg.Color {
		return fmt.Sprintf("%s ok  %s", stage, file)
	}
	return fmt.Sprintf("%s %s  %s", stageStyle.Render(stage), okStyle.Render("ok"), file)
}
