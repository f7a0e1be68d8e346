package token

import "testing"

func TestNewAndString(t *testing.T) {
	tok := New(INT_LIT, "42", Position{Line: 3, Column: 1})
	if tok.Kind != INT_LIT || tok.Literal != "42" {
		t.Fatalf("unexpected token: %+v", tok)
	}
	if got := tok.String(); got == "" {
		t.Fatalf("String() returned empty")
	}
}

func TestIs(t *testing.T) {
	tok := New(ADD, "+", Position{})
	if !tok.Is(SUB, ADD, MUL) {
		t.Fatalf("expected Is to match ADD")
	}
	if tok.Is(SUB, MUL) {
		t.Fatalf("expected Is to not match")
	}
}

func TestKeywordsContainControlFlow(t *testing.T) {
	for _, kw := range []string{"if", "else", "elif", "for", "while", "break", "continue", "print"} {
		if _, ok := Keywords[kw]; !ok {
			t.Errorf("expected keyword %q to be registered", kw)
		}
	}
}

func TestTypeKeywords(t *testing.T) {
	for kind := range TypeKeywords {
		found := false
		for _, k := range Keywords {
			if k == kind {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("TypeKeywords entry %s has no matching Keywords entry", kind)
		}
	}
}
