// Package codegen walks a parsed lwc program and emits textual x86
// assembly for it using a stack-machine evaluation model.
package codegen

import (
	"github.com/nilan-lang/lwc/ast"
	"github.com/nilan-lang/lwc/symtab"
)

// Compile generates complete assembly source for block, wrapped in the
// chosen dialect's file prologue/epilogue and a single method
// prologue/epilogue for the implicit top-level entry point (lwc has no
// user-defined functions to compile).
func Compile(block *ast.Block, target Target) (string, error) {
	asm := NewAsmBuffer(target)
	root := symtab.NewScope(nil, symtab.NewFrameAllocator())
	sv := NewStatementVisitor(root, asm)

	asm.FilePrologue()
	asm.EnterMethod()
	if err := block.Accept(sv); err != nil {
		return "", err
	}
	asm.ExitMethod()
	asm.FileEpilogue()

	return asm.String(), nil
}
