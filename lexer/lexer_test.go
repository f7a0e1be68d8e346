package lexer

import (
	"strings"
	"testing"

	"github.com/nilan-lang/lwc/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, input string, want []token.Kind) {
	t.Helper()
	toks, err := New(input).Scan()
	if err != nil {
		t.Fatalf("Scan(%q) returned error: %v", input, err)
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("Scan(%q) = %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Scan(%q)[%d] = %s, want %s", input, i, got[i], want[i])
		}
	}
}

func TestScanOperators(t *testing.T) {
	assertKinds(t, "+ - * / % **", []token.Kind{
		token.ADD, token.SUB, token.MUL, token.QUO, token.REM, token.POW, token.EOF,
	})
}

func TestScanCompoundAssign(t *testing.T) {
	assertKinds(t, "+= -= *= /= %= **= &= |= ~= ^= <<= >>=", []token.Kind{
		token.ASSIGN_ADD, token.ASSIGN_SUB, token.ASSIGN_MUL, token.ASSIGN_QUO,
		token.ASSIGN_REM, token.ASSIGN_POW, token.ASSIGN_BAND, token.ASSIGN_BOR,
		token.ASSIGN_BNOT, token.ASSIGN_XOR, token.ASSIGN_SHL, token.ASSIGN_SHR,
		token.EOF,
	})
}

func TestScanIndentAndEndl(t *testing.T) {
	toks, err := New("if\n\tprint(1)\n").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{token.IF, token.ENDL, token.INDENT, token.PRINT, token.LPAREN, token.INT_LIT, token.RPAREN, token.ENDL, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestScanNumberTerminatesOnSecondDot(t *testing.T) {
	toks, err := New("1.1.2").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.FLOAT_LIT || toks[0].Literal != "1.1" {
		t.Fatalf("expected first token to be FLOAT_LIT 1.1, got %+v", toks[0])
	}
	if toks[1].Kind != token.FLOAT_LIT || toks[1].Literal != ".2" {
		t.Fatalf("expected second token to be FLOAT_LIT .2, got %+v", toks[1])
	}
}

func TestScanCharLiteral(t *testing.T) {
	toks, err := New("'a'").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.CHAR_LIT || toks[0].Literal != "a" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestScanComment(t *testing.T) {
	toks, err := New("1 # trailing comment\n2").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{token.INT_LIT, token.ENDL, token.INT_LIT, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	assertKinds(t, "if elif else while for break continue print foo", []token.Kind{
		token.IF, token.ELIF, token.ELSE, token.WHILE, token.FOR, token.BREAK,
		token.CONTINUE, token.PRINT, token.IDENT, token.EOF,
	})
}

func TestScanUnterminatedCharLiteral(t *testing.T) {
	_, err := New("'a").Scan()
	if err == nil {
		t.Fatalf("expected error for unterminated char literal")
	}
}

func TestScanAllAccumulatesEveryError(t *testing.T) {
	toks, err := New("1 @ 2 $ 3").ScanAll()
	if err == nil {
		t.Fatalf("expected an accumulated error")
	}
	if got := len(kinds(toks)); got != 4 {
		t.Fatalf("expected 3 numbers + EOF despite bad chars, got %d tokens", got)
	}
	if !strings.Contains(err.Error(), "2 errors occurred") {
		t.Errorf("expected multierror to report 2 accumulated errors, got: %v", err)
	}
}
