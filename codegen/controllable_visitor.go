package codegen

import "github.com/nilan-lang/lwc/symtab"

// ControllableVisitor is a StatementVisitor constructed specifically
// for the body of a loop: it carries the loop's break/continue targets
// and is what While/For hand to Block.Accept for their body. The loop
// field on StatementVisitor itself (propagated by child()) is what
// actually makes break/continue work at any nesting depth beneath
// this point; ControllableVisitor exists as the named construction
// site where a loop body first receives that context.
type ControllableVisitor struct {
	*StatementVisitor
}

// NewControllableVisitor builds the visitor a loop uses for its own
// body, parented to the enclosing visitor's assembly buffer with a
// fresh body scope and the given loop labels in effect.
func NewControllableVisitor(parent *StatementVisitor, scope *symtab.Scope, loop *loopLabels) *ControllableVisitor {
	sv := NewStatementVisitor(scope, parent.asm)
	sv.loop = loop
	return &ControllableVisitor{StatementVisitor: sv}
}
