package symtab

import "testing"

func TestDefineAndLookup(t *testing.T) {
	root := NewScope(nil, NewFrameAllocator())
	v, err := root.Define("x", TypeInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Offset != 4 {
		t.Errorf("expected first int offset 4, got %d", v.Offset)
	}

	got, ok := root.Lookup("x")
	if !ok || got != v {
		t.Fatalf("expected to find x, got %v, %v", got, ok)
	}
}

func TestDuplicateDefinitionErrors(t *testing.T) {
	root := NewScope(nil, NewFrameAllocator())
	if _, err := root.Define("x", TypeInt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := root.Define("x", TypeInt); err == nil {
		t.Fatalf("expected duplicate definition error")
	}
}

func TestChildScopeReadsThroughParent(t *testing.T) {
	root := NewScope(nil, NewFrameAllocator())
	root.Define("x", TypeInt)
	child := NewScope(root, nil)
	child.Define("y", TypeInt)

	if _, ok := child.Lookup("x"); !ok {
		t.Fatalf("expected child to see parent's variable")
	}
	if _, ok := root.Lookup("y"); ok {
		t.Fatalf("parent should not see child's variables")
	}
}

func TestSiblingScopesShareFrameOffsets(t *testing.T) {
	root := NewScope(nil, NewFrameAllocator())
	a := NewScope(root, nil)
	b := NewScope(root, nil)

	va, _ := a.Define("a", TypeInt)
	vb, _ := b.Define("b", TypeInt)

	if vb.Offset <= va.Offset {
		t.Fatalf("expected sibling scope offsets to keep advancing: a=%d b=%d", va.Offset, vb.Offset)
	}
}

func TestByKeyword(t *testing.T) {
	for _, kw := range []string{"int", "float", "bool", "char"} {
		if _, ok := ByKeyword(kw); !ok {
			t.Errorf("expected %q to resolve to a type", kw)
		}
	}
	if _, ok := ByKeyword("void"); ok {
		t.Errorf("expected void to not resolve to a storable type")
	}
}
