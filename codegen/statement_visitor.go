package codegen

import (
	"fmt"

	"github.com/nilan-lang/lwc/ast"
	"github.com/nilan-lang/lwc/symtab"
	"github.com/nilan-lang/lwc/token"
)

// loopLabels names the entry/exit targets a break or continue inside
// the innermost enclosing loop should jump to. continue targets
// enter for a while loop, but a for loop overrides it to its own
// increment label so the increment clause still runs.
type loopLabels struct {
	enter   string
	exit    string
	continu string
}

// StatementVisitor walks statement-level nodes, delegating anything
// that produces a value to its embedded ValueVisitor. loop carries the
// innermost enclosing loop's labels forward into every nested scope
// (including ones reached through an if inside a loop body), which a
// naive embedding-based port would lose: Go gives a base type no way
// to see a wrapping type's extra fields, unlike C++'s virtual this.
type StatementVisitor struct {
	asm   *AsmBuffer
	scope *symtab.Scope
	value *ValueVisitor
	loop  *loopLabels
}

// NewStatementVisitor builds a root statement visitor for a fresh
// frame scope.
func NewStatementVisitor(scope *symtab.Scope, asm *AsmBuffer) *StatementVisitor {
	sv := &StatementVisitor{asm: asm, scope: scope}
	sv.value = &ValueVisitor{owner: sv}
	return sv
}

// child returns a new StatementVisitor for a nested scope, carrying
// this visitor's loop context (if any) forward.
func (sv *StatementVisitor) child(scope *symtab.Scope) *StatementVisitor {
	c := NewStatementVisitor(scope, sv.asm)
	c.loop = sv.loop
	return c
}

// --- value-producing nodes: forwarded to the embedded ValueVisitor ---

func (sv *StatementVisitor) VisitLiteral(n *ast.Literal) error       { return n.Accept(sv.value) }
func (sv *StatementVisitor) VisitAccessible(n *ast.Accessible) error { return n.Accept(sv.value) }

// VisitArray is a no-op when an array literal appears as a bare
// statement: arrays are parsed but never compiled.
func (sv *StatementVisitor) VisitArray(n *ast.Array) error { return nil }

func (sv *StatementVisitor) VisitUnary(n *ast.Unary) error { return n.Accept(sv.value) }
func (sv *StatementVisitor) VisitBinary(n *ast.Binary) error         { return n.Accept(sv.value) }
func (sv *StatementVisitor) VisitGroup(n *ast.Group) error           { return n.Accept(sv.value) }
func (sv *StatementVisitor) VisitTern(n *ast.Tern) error             { return n.Accept(sv.value) }
func (sv *StatementVisitor) VisitCond(n *ast.Cond) error             { return n.Accept(sv.value) }

// --- statement nodes ---

func (sv *StatementVisitor) VisitPrint(n *ast.Print) error {
	if err := n.Value.Accept(sv.value); err != nil {
		return err
	}
	sv.asm.PopValue("eax")
	switch sv.value.lastType {
	case symtab.TypeFloat:
		sv.asm.AppendLine("PUSH eax")
		sv.asm.AppendComment("print: float formatting delegated to the runtime helper")
		sv.asm.AppendLine("CALL print_float")
		sv.asm.AppendLine("ADD esp, 4")
	default:
		sv.asm.AppendLine("PUSH eax")
		sv.asm.AppendLine("CALL print_number")
		sv.asm.AppendLine("ADD esp, 4")
	}
	return nil
}

func (sv *StatementVisitor) VisitAssign(n *ast.Assign) error {
	variable, ok := sv.scope.Lookup(n.Target.Name.Literal)
	if !ok {
		return newErr(UndefinedVariable, "%q is undefined", n.Target.Name.Literal)
	}
	mem := fmt.Sprintf("DWORD [ebp-%d]", variable.Offset)

	if err := n.Value.Accept(sv.value); err != nil {
		return err
	}

	switch n.Operator.Kind {
	case token.ASSIGN:
		sv.asm.PopValue("eax")
		sv.asm.AppendLine("MOV " + mem + ", eax")
		return nil
	case token.ASSIGN_ADD, token.ASSIGN_SUB:
		sv.asm.PopValue("eax")
		instr := "ADD"
		if n.Operator.Kind == token.ASSIGN_SUB {
			instr = "SUB"
		}
		sv.asm.AppendLine(fmt.Sprintf("%s %s, eax", instr, mem))
		return nil
	case token.ASSIGN_BNOT:
		sv.asm.PopValue("eax")
		sv.asm.AppendLine("NOT eax")
		sv.asm.AppendLine("MOV " + mem + ", eax")
		return nil
	}

	// Every remaining compound form (*= /= %= **= &= |= ^= <<= >>=)
	// follows the same shape: push the memory operand again so the
	// right-hand value already on the stack pairs with it, run the
	// matching binary helper, then store the result back.
	sv.asm.PushValue(mem)
	switch n.Operator.Kind {
	case token.ASSIGN_MUL:
		sv.asm.AppendBinary("IMUL")
	case token.ASSIGN_QUO:
		sv.asm.AppendDiv()
	case token.ASSIGN_REM:
		sv.asm.AppendModulo()
	case token.ASSIGN_POW:
		sv.asm.AppendPow()
	case token.ASSIGN_BAND:
		sv.asm.AppendBinary("AND")
	case token.ASSIGN_BOR:
		sv.asm.AppendBinary("OR")
	case token.ASSIGN_XOR:
		sv.asm.AppendBinary("XOR")
	case token.ASSIGN_SHL:
		sv.asm.AppendShift("SHL")
	case token.ASSIGN_SHR:
		sv.asm.AppendShift("SHR")
	default:
		return newErr(Unsupported, "unknown assignment operator %s", n.Operator.Kind)
	}
	sv.asm.PopValue("eax")
	sv.asm.AppendLine("MOV " + mem + ", eax")
	return nil
}

func (sv *StatementVisitor) VisitInit(n *ast.Init) error {
	typ, ok := symtab.ByKeyword(n.Type.Literal)
	if !ok {
		return newErr(Unsupported, "unknown type keyword %q", n.Type.Literal)
	}
	variable, err := sv.scope.Define(n.Name.Literal, typ)
	if err != nil {
		return newErr(DuplicateDefinition, "%s", err)
	}
	if n.Value == nil {
		return nil
	}
	if err := n.Value.Accept(sv.value); err != nil {
		return err
	}
	sv.asm.PopValue("eax")
	sv.asm.AppendLine(fmt.Sprintf("MOV DWORD [ebp-%d], eax", variable.Offset))
	return nil
}

// visitCondition emits the test for one If link. When the condition is
// false it jumps to a fresh per-link label, where the next link (or
// whatever follows the chain) begins; when true it runs the body and
// then jumps to exit.
func (sv *StatementVisitor) visitCondition(n *ast.If, exit string) error {
	if err := n.Cond.Accept(sv.value); err != nil {
		return err
	}
	sv.asm.PopValue("eax")
	sv.asm.AppendLine("CMP eax, 0")
	next := sv.asm.GenerateLabel()
	sv.asm.AppendLine("JZ " + next)

	body := sv.child(symtab.NewScope(sv.scope, nil))
	if err := n.Block.Accept(body); err != nil {
		return err
	}
	sv.asm.AppendLine("JMP " + exit)
	sv.asm.AppendLine(next + ":")

	if n.Elif != nil {
		return sv.visitCondition(n.Elif, exit)
	}
	return nil
}

// VisitIf compiles a bare if/elif chain (no trailing else) behind one
// shared exit label, emitted exactly once regardless of how many links
// the chain has.
func (sv *StatementVisitor) VisitIf(n *ast.If) error {
	exit := sv.asm.GenerateLabel()
	if err := sv.visitCondition(n, exit); err != nil {
		return err
	}
	sv.asm.AppendLine(exit + ":")
	return nil
}

// VisitElse compiles an if/elif/else chain. All links, plus the final
// else body, share a single exit label so the chain falls through to
// exactly one place no matter which branch ran.
func (sv *StatementVisitor) VisitElse(n *ast.Else) error {
	exit := sv.asm.GenerateLabel()
	if err := sv.visitCondition(n.If, exit); err != nil {
		return err
	}
	body := sv.child(symtab.NewScope(sv.scope, nil))
	if err := n.Block.Accept(body); err != nil {
		return err
	}
	sv.asm.AppendLine(exit + ":")
	return nil
}

func (sv *StatementVisitor) VisitControlFlow(n *ast.ControlFlow) error {
	if sv.loop == nil {
		return newErr(ControlFlowOutsideLoop, "%s used outside of a loop", n.Keyword.Literal)
	}
	if n.Keyword.Kind == token.CONTINUE {
		sv.asm.AppendLine("JMP " + sv.loop.continu)
		return nil
	}
	sv.asm.AppendLine("JMP " + sv.loop.exit)
	return nil
}

func (sv *StatementVisitor) VisitWhile(n *ast.While) error {
	enter := sv.asm.GenerateLabel()
	exit := sv.asm.GenerateLabel()
	sv.asm.AppendLine(enter + ":")

	if err := n.Cond.Accept(sv.value); err != nil {
		return err
	}
	sv.asm.PopValue("eax")
	sv.asm.AppendLine("CMP eax, 0")
	sv.asm.AppendLine("JZ " + exit)

	body := NewControllableVisitor(sv, symtab.NewScope(sv.scope, nil), &loopLabels{enter: enter, exit: exit, continu: enter})
	if err := n.Block.Accept(body); err != nil {
		return err
	}
	sv.asm.AppendLine("JMP " + enter)
	sv.asm.AppendLine(exit + ":")
	return nil
}

func (sv *StatementVisitor) VisitFor(n *ast.For) error {
	loopScope := symtab.NewScope(sv.scope, nil)
	init := sv.child(loopScope)

	if n.Assign != nil {
		if err := n.Assign.Accept(init); err != nil {
			return err
		}
	}

	enter := sv.asm.GenerateLabel()
	incr := sv.asm.GenerateLabel()
	exit := sv.asm.GenerateLabel()
	sv.asm.AppendLine(enter + ":")

	if n.Cond != nil {
		if err := n.Cond.Accept(init.value); err != nil {
			return err
		}
		sv.asm.PopValue("eax")
		sv.asm.AppendLine("CMP eax, 0")
		sv.asm.AppendLine("JZ " + exit)
	}

	// continue jumps to incr, not enter: the increment clause must
	// still run before the condition is re-tested.
	body := NewControllableVisitor(init, symtab.NewScope(loopScope, nil), &loopLabels{enter: enter, exit: exit, continu: incr})
	if err := n.Block.Accept(body); err != nil {
		return err
	}

	sv.asm.AppendLine(incr + ":")
	if n.Incr != nil {
		if err := n.Incr.Accept(init); err != nil {
			return err
		}
	}
	sv.asm.AppendLine("JMP " + enter)
	sv.asm.AppendLine(exit + ":")
	return nil
}

// VisitFunc is a no-op: function declarations are parsed but never
// compiled.
func (sv *StatementVisitor) VisitFunc(n *ast.Func) error { return nil }

func (sv *StatementVisitor) VisitBlock(n *ast.Block) error {
	for _, stmt := range n.Stmts {
		if err := stmt.Accept(sv); err != nil {
			return err
		}
	}
	return nil
}
