package lexer

import (
	"reflect"
	"testing"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Kind
		wantErr  bool
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []Kind{Eof},
		},
		{
			name:  "Full Punctuation Inventory",
			input: "! ~ $ & * =+ =- =* =/ ( ) { } < > [ ] << , . | :",
			expected: []Kind{
				Bang, Tilde, Dollar, Ampersand, Asterisk,
				EqualPlus, EqualDash, EqualAsterisk, EqualSlash,
				LParen, RParen, LBrace, RBrace, LAngle, RAngle,
				LBracket, RBracket, LAngleLAngle, Comma, Period,
				Pipe, Colon, Eof,
			},
		},
		{
			name:     "Keywords",
			input:    "comptime const global pub type fn struct",
			expected: []Kind{KwComptime, KwConst, KwGlobal, KwPub, KwType, KwFn, KwStruct, Eof},
		},
		{
			name:     "Underscore Is Never Ident",
			input:    "_ _x x_",
			expected: []Kind{Underscore, Ident, Ident, Eof},
		},
		{
			name:     "Identifiers",
			input:    "variableName _under_score constant structural",
			expected: []Kind{Ident, Ident, Ident, Ident, Eof},
		},
		{
			name:     "Numbers",
			input:    "0 7 123 0123",
			expected: []Kind{NumberLit, NumberLit, NumberLit, NumberLit, Eof},
		},
		{
			name:     "String",
			input:    `"hello"`,
			expected: []Kind{StringLit, Eof},
		},
		{
			name:     "Plain Assignment",
			input:    "x = 1",
			expected: []Kind{Ident, Equal, NumberLit, Eof},
		},
		{
			name:     "Assignment At End Of Input",
			input:    "x =",
			expected: []Kind{Ident, Equal, Eof},
		},
		{
			name:     "Adjacent Compound Assignment",
			input:    "x=+y",
			expected: []Kind{Ident, EqualPlus, Ident, Eof},
		},
		{
			name:     "Angle Disambiguation",
			input:    "< << <",
			expected: []Kind{LAngle, LAngleLAngle, LAngle, Eof},
		},
		{
			name:     "Angle At End Of Input",
			input:    "<",
			expected: []Kind{LAngle, Eof},
		},
		{
			name:     "Line And Doc Comments",
			input:    "a // plain\n/// doc\nb",
			expected: []Kind{Ident, LineComment, DocComment, Ident, Eof},
		},
		{
			name:     "Comment At End Of Input",
			input:    "// trailing",
			expected: []Kind{LineComment, Eof},
		},
		{
			name:     "Doc Comment At End Of Input",
			input:    "///",
			expected: []Kind{DocComment, Eof},
		},
		{
			name:     "Declaration",
			input:    "pub const point.x : u8 = 255",
			expected: []Kind{KwPub, KwConst, Ident, Period, Ident, Colon, Ident, Equal, NumberLit, Eof},
		},
		{
			name:     "Call Forms",
			input:    "$size(x) !format(y) run()",
			expected: []Kind{Dollar, Ident, LParen, Ident, RParen, Bang, Ident, LParen, Ident, RParen, Ident, LParen, RParen, Eof},
		},
		{
			name:    "Unterminated String",
			input:   `"abc`,
			wantErr: true,
		},
		{
			name:    "Equal Followed By Letter",
			input:   "=x",
			wantErr: true,
		},
		{
			name:    "Equal Followed By Quote",
			input:   `="s"`,
			wantErr: true,
		},
		{
			name:    "Unexpected Character",
			input:   "@",
			wantErr: true,
		},
		{
			name:    "Lone Slash",
			input:   "/",
			wantErr: true,
		},
		{
			name:    "Slash Then Letter",
			input:   "/x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Tokenize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if _, ok := err.(*LexError); !ok {
					t.Fatalf("Tokenize() error type = %T, want *LexError", err)
				}
				return
			}
			if !reflect.DeepEqual(kinds(got), tt.expected) {
				t.Errorf("Tokenize() kinds = %v, want %v", kinds(got), tt.expected)
			}
		})
	}
}

func TestTokenSpans(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Adjacent Tokens",
			input: "x=+y",
			expected: []Token{
				{Kind: Ident, Start: 0, End: 1},
				{Kind: EqualPlus, Start: 1, End: 3},
				{Kind: Ident, Start: 3, End: 4},
				{Kind: Eof, Start: 4, End: 4},
			},
		},
		{
			name:  "Whitespace Excluded From Spans",
			input: "ab  cd",
			expected: []Token{
				{Kind: Ident, Start: 0, End: 2},
				{Kind: Ident, Start: 4, End: 6},
				{Kind: Eof, Start: 6, End: 6},
			},
		},
		{
			name:  "Comment Span Stops Before Newline",
			input: "// hi\nx",
			expected: []Token{
				{Kind: LineComment, Start: 0, End: 5},
				{Kind: Ident, Start: 6, End: 7},
				{Kind: Eof, Start: 7, End: 7},
			},
		},
		{
			name:  "String Span Includes Quotes",
			input: `a"bc"`,
			expected: []Token{
				{Kind: Ident, Start: 0, End: 1},
				{Kind: StringLit, Start: 1, End: 5},
				{Kind: Eof, Start: 5, End: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize([]byte(tt.input))
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// TestSpanCoverage checks the span invariant: tokens are ordered and
// non-overlapping, every non-whitespace byte belongs to exactly one token,
// and for whitespace-free input the spans tile [0, len(src)) exactly.
func TestSpanCoverage(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"a.b.c",
		"x=+y",
		`{a(b,"s")}`,
		"pub const x : u8 = 255",
		"$intrinsic(a.b)\n!macro(1, 2)",
		"// comment\n/// doc\nconst y = 0",
	}

	for _, input := range inputs {
		src := []byte(input)
		toks, err := Tokenize(src)
		if err != nil {
			t.Fatalf("Tokenize(%q) error = %v", input, err)
		}

		covered := make([]bool, len(src))
		prevEnd := 0
		for _, tok := range toks {
			if tok.Start < prevEnd {
				t.Errorf("input %q: token %v overlaps or precedes previous end %d", input, tok, prevEnd)
			}
			if tok.End < tok.Start {
				t.Errorf("input %q: token %v has inverted span", input, tok)
			}
			for i := tok.Start; i < tok.End; i++ {
				covered[i] = true
			}
			prevEnd = tok.End
		}

		eof := toks[len(toks)-1]
		if eof.Kind != Eof || eof.Start != len(src) || eof.End != len(src) {
			t.Errorf("input %q: final token = %v, want Eof at %d", input, eof, len(src))
		}

		for i, c := range src {
			if !isWhitespace(c) && !covered[i] {
				t.Errorf("input %q: byte %d (%q) not covered by any token", input, i, c)
			}
			if isWhitespace(c) && covered[i] {
				t.Errorf("input %q: whitespace byte %d inside a token span", input, i)
			}
		}
	}
}

// TestNextStreaming checks that the incremental cursor agrees with the
// batch API and keeps returning Eof once exhausted.
func TestNextStreaming(t *testing.T) {
	src := []byte("pub const x = 1\nrun(x)")
	want, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	l := New(src)
	for i, expected := range want {
		got, err := l.Next()
		if err != nil {
			t.Fatalf("Next() #%d error = %v", i, err)
		}
		if got != expected {
			t.Errorf("Next() #%d = %v, want %v", i, got, expected)
		}
	}
	for i := 0; i < 3; i++ {
		got, err := l.Next()
		if err != nil || got.Kind != Eof {
			t.Errorf("Next() after Eof = %v, %v; want Eof, nil", got, err)
		}
	}
}

func TestLexErrorMessageNamesOffender(t *testing.T) {
	_, err := Tokenize([]byte("abc @"))
	if err == nil {
		t.Fatal("Tokenize() expected error, got nil")
	}
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("error type = %T, want *LexError", err)
	}
	if le.Offset != 4 {
		t.Errorf("LexError.Offset = %d, want 4", le.Offset)
	}
}

func TestKeywordTableAtEndOfInput(t *testing.T) {
	// Ident state resolves through the keyword table even when the input
	// ends mid-token.
	for input, want := range map[string]Kind{
		"const":  KwConst,
		"consts": Ident,
		"_":      Underscore,
		"fn":     KwFn,
	} {
		toks, err := Tokenize([]byte(input))
		if err != nil {
			t.Fatalf("Tokenize(%q) error = %v", input, err)
		}
		if toks[0].Kind != want {
			t.Errorf("Tokenize(%q)[0].Kind = %v, want %v", input, toks[0].Kind, want)
		}
	}
}
