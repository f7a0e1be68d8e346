package ast

import (
	"testing"

	"github.com/nilan-lang/lwc/token"
)

type countingVisitor struct{ visits int }

func (c *countingVisitor) VisitLiteral(*Literal) error         { c.visits++; return nil }
func (c *countingVisitor) VisitAccessible(*Accessible) error   { c.visits++; return nil }
func (c *countingVisitor) VisitArray(*Array) error             { c.visits++; return nil }
func (c *countingVisitor) VisitUnary(*Unary) error             { c.visits++; return nil }
func (c *countingVisitor) VisitBinary(*Binary) error           { c.visits++; return nil }
func (c *countingVisitor) VisitGroup(*Group) error             { c.visits++; return nil }
func (c *countingVisitor) VisitTern(*Tern) error                { c.visits++; return nil }
func (c *countingVisitor) VisitCond(*Cond) error                { c.visits++; return nil }
func (c *countingVisitor) VisitPrint(*Print) error              { c.visits++; return nil }
func (c *countingVisitor) VisitAssign(*Assign) error            { c.visits++; return nil }
func (c *countingVisitor) VisitInit(*Init) error                { c.visits++; return nil }
func (c *countingVisitor) VisitIf(*If) error                    { c.visits++; return nil }
func (c *countingVisitor) VisitElse(*Else) error                { c.visits++; return nil }
func (c *countingVisitor) VisitControlFlow(*ControlFlow) error  { c.visits++; return nil }
func (c *countingVisitor) VisitWhile(*While) error               { c.visits++; return nil }
func (c *countingVisitor) VisitFor(*For) error                   { c.visits++; return nil }
func (c *countingVisitor) VisitFunc(*Func) error                 { c.visits++; return nil }
func (c *countingVisitor) VisitBlock(*Block) error                { c.visits++; return nil }

func TestAcceptDispatchesToVisitor(t *testing.T) {
	v := &countingVisitor{}
	nodes := []Node{
		&Literal{Value: token.New(token.INT_LIT, "1", token.Position{})},
		&Accessible{Name: token.New(token.IDENT, "x", token.Position{})},
		&Array{},
		&Unary{},
		&Binary{},
		&Group{},
		&Tern{},
		&Cond{},
		&Print{},
		&Assign{Target: &Accessible{}},
		&Init{},
		&If{},
		&Else{},
		&ControlFlow{},
		&While{},
		&For{},
		&Func{},
		&Block{},
	}
	for _, n := range nodes {
		if err := n.Accept(v); err != nil {
			t.Fatalf("Accept returned error: %v", err)
		}
	}
	if v.visits != len(nodes) {
		t.Fatalf("expected %d visits, got %d", len(nodes), v.visits)
	}
}

func TestPrintHandlesNilChildren(t *testing.T) {
	n := &Init{
		Type:  token.New(token.INT, "int", token.Position{}),
		Name:  token.New(token.IDENT, "x", token.Position{}),
		Value: nil,
	}
	result := Print(n)
	m, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("expected map result, got %T", result)
	}
	if m["value"] != nil {
		t.Errorf("expected nil value for bare declaration, got %v", m["value"])
	}
}
