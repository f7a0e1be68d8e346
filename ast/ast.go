// Package ast defines the lwc abstract syntax tree: one type per
// grammar production, each implementing Accept so that a Visitor can
// walk the tree without a type switch.
package ast

import "github.com/nilan-lang/lwc/token"

// Node is the common interface every AST node satisfies.
type Node interface {
	Accept(v Visitor) error
}

// Visitor is implemented by anything that walks a tree of Nodes. It
// combines value-producing expression visits and statement-level
// visits into one interface, since every expression in lwc is also
// valid as a standalone statement.
type Visitor interface {
	VisitLiteral(*Literal) error
	VisitAccessible(*Accessible) error
	VisitArray(*Array) error
	VisitUnary(*Unary) error
	VisitBinary(*Binary) error
	VisitGroup(*Group) error
	VisitTern(*Tern) error
	VisitCond(*Cond) error
	VisitPrint(*Print) error
	VisitAssign(*Assign) error
	VisitInit(*Init) error
	VisitIf(*If) error
	VisitElse(*Else) error
	VisitControlFlow(*ControlFlow) error
	VisitWhile(*While) error
	VisitFor(*For) error
	VisitFunc(*Func) error
	VisitBlock(*Block) error
}

// Literal is a bare INT, FLOAT, BOOL, or CHAR value token.
type Literal struct {
	Value token.Token
}

func (n *Literal) Accept(v Visitor) error { return v.VisitLiteral(n) }

// Accessible names a variable, optionally with an array index
// expression (Index is nil for a plain scalar reference).
type Accessible struct {
	Name  token.Token
	Index Node
}

func (n *Accessible) Accept(v Visitor) error { return v.VisitAccessible(n) }

// Array is a bracketed list literal. Parsed but never compiled.
type Array struct {
	Values []Node
}

func (n *Array) Accept(v Visitor) error { return v.VisitArray(n) }

// Unary is a prefix operator applied to a single operand: -, !, ~.
type Unary struct {
	Operator token.Token
	Value    Node
}

func (n *Unary) Accept(v Visitor) error { return v.VisitUnary(n) }

// Binary is a two-operand operator expression.
type Binary struct {
	Left, Right Node
	Operator    token.Token
}

func (n *Binary) Accept(v Visitor) error { return v.VisitBinary(n) }

// Group is a parenthesized expression; purely syntactic, no codegen of
// its own beyond evaluating Value.
type Group struct {
	Value Node
}

func (n *Group) Accept(v Visitor) error { return v.VisitGroup(n) }

// Tern is a ternary conditional: Cond ? CaseTrue : CaseFalse.
type Tern struct {
	Cond, CaseTrue, CaseFalse Node
}

func (n *Tern) Accept(v Visitor) error { return v.VisitTern(n) }

// Cond wraps a boolean-context expression (an if/elif, while or for
// condition; a ternary's condition is not wrapped), tagging its result type as BOOL regardless of how the
// wrapped expression was evaluated.
type Cond struct {
	Value Node
}

func (n *Cond) Accept(v Visitor) error { return v.VisitCond(n) }

// Print evaluates Value and emits it to the standard output channel.
type Print struct {
	Value Node
}

func (n *Print) Accept(v Visitor) error { return v.VisitPrint(n) }

// Assign stores the result of Value into Target using Operator, which
// may be plain '=' or any compound-assignment form.
type Assign struct {
	Target   *Accessible
	Operator token.Token
	Value    Node
}

func (n *Assign) Accept(v Visitor) error { return v.VisitAssign(n) }

// Init declares a new variable of the given Type, naming it Name, with
// an optional initializer expression (Value is nil for a bare
// declaration).
type Init struct {
	Type  token.Token
	Name  token.Token
	Value Node
}

func (n *Init) Accept(v Visitor) error { return v.VisitInit(n) }

// If is one link in an if/elif chain: a condition and a body, with an
// optional next elif link.
type If struct {
	Cond  *Cond
	Block *Block
	Elif  *If
}

func (n *If) Accept(v Visitor) error { return v.VisitIf(n) }

// Else attaches a trailing else body to the head of an if/elif chain.
type Else struct {
	If    *If
	Block *Block
}

func (n *Else) Accept(v Visitor) error { return v.VisitElse(n) }

// ControlFlow is a bare break or continue statement.
type ControlFlow struct {
	Keyword token.Token
}

func (n *ControlFlow) Accept(v Visitor) error { return v.VisitControlFlow(n) }

// While is a condition-checked-first loop.
type While struct {
	Cond  *Cond
	Block *Block
}

func (n *While) Accept(v Visitor) error { return v.VisitWhile(n) }

// For is a three-clause loop: an initializer, a condition, and an
// increment expression evaluated between iterations.
type For struct {
	Assign Node
	Cond   *Cond
	Incr   Node
	Block  *Block
}

func (n *For) Accept(v Visitor) error { return v.VisitFor(n) }

// Func is a function declaration. The parser never produces it and the
// code generator ignores it.
type Func struct {
	Type token.Token
	Name token.Token
	Body *Block
}

func (n *Func) Accept(v Visitor) error { return v.VisitFunc(n) }

// Block is a sequence of statements sharing one indentation depth.
type Block struct {
	Stmts []Node
}

func (n *Block) Accept(v Visitor) error { return v.VisitBlock(n) }
