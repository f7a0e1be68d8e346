package codegen

import (
	"fmt"

	"github.com/nilan-lang/lwc/ast"
	"github.com/nilan-lang/lwc/symtab"
	"github.com/nilan-lang/lwc/token"
)

// ValueVisitor evaluates expression nodes, leaving exactly one value
// pushed on the stack per node visited, and records the static type of
// whatever it just pushed in lastType so the caller (a StatementVisitor
// or another ValueVisitor call) can inspect it without a second walk.
type ValueVisitor struct {
	owner    *StatementVisitor
	lastType *symtab.Type
}

func floatIfEither(a, b *symtab.Type) *symtab.Type {
	if a == symtab.TypeFloat || b == symtab.TypeFloat {
		return symtab.TypeFloat
	}
	return symtab.TypeInt
}

func (v *ValueVisitor) asm() *AsmBuffer { return v.owner.asm }

func (v *ValueVisitor) VisitLiteral(n *ast.Literal) error {
	switch n.Value.Kind {
	case token.INT_LIT:
		v.asm().PushValue(n.Value.Literal)
		v.lastType = symtab.TypeInt
	case token.FLOAT_LIT:
		v.asm().PushValue(n.Value.Literal)
		v.lastType = symtab.TypeFloat
	case token.BOOL_LIT:
		lit := "1"
		if n.Value.Literal == "false" {
			lit = "0"
		}
		v.asm().PushValue(lit)
		v.lastType = symtab.TypeBool
	case token.CHAR_LIT:
		v.asm().PushValue(fmt.Sprintf("%d", []rune(n.Value.Literal)[0]))
		v.lastType = symtab.TypeChar
	default:
		return newErr(InvalidLiteral, "invalid literal token %s", n.Value.Kind)
	}
	return nil
}

func (v *ValueVisitor) VisitAccessible(n *ast.Accessible) error {
	if n.Index != nil {
		return newErr(Unsupported, "array indexing is not compiled")
	}
	variable, ok := v.owner.scope.Lookup(n.Name.Literal)
	if !ok {
		return newErr(UndefinedVariable, "%q is undefined", n.Name.Literal)
	}
	v.asm().PushValue(fmt.Sprintf("DWORD [ebp-%d]", variable.Offset))
	v.lastType = variable.Type
	return nil
}

func (v *ValueVisitor) VisitArray(n *ast.Array) error {
	return newErr(Unsupported, "array literals are not compiled")
}

func (v *ValueVisitor) VisitUnary(n *ast.Unary) error {
	if err := n.Value.Accept(v); err != nil {
		return err
	}
	operandType := v.lastType
	switch n.Operator.Kind {
	case token.SUB:
		v.asm().AppendUnary("NEG")
	case token.ADD:
		// unary plus: no-op, the operand is already on the stack
	case token.NOT:
		v.asm().AppendNot()
		v.lastType = symtab.TypeBool
		return nil
	case token.BNOT:
		v.asm().AppendUnary("NOT")
	default:
		return newErr(Unsupported, "unknown unary operator %s", n.Operator.Kind)
	}
	v.lastType = operandType
	return nil
}

func (v *ValueVisitor) VisitBinary(n *ast.Binary) error {
	// Right is evaluated (and pushed) before left, so left ends up on
	// top of the stack for every pop-based instruction below.
	if err := n.Right.Accept(v); err != nil {
		return err
	}
	rightType := v.lastType
	if err := n.Left.Accept(v); err != nil {
		return err
	}
	leftType := v.lastType
	hasFloat := leftType == symtab.TypeFloat || rightType == symtab.TypeFloat

	switch n.Operator.Kind {
	case token.ADD:
		v.asm().AppendBinary("ADD")
		v.lastType = floatIfEither(leftType, rightType)
	case token.SUB:
		v.asm().AppendBinary("SUB")
		v.lastType = floatIfEither(leftType, rightType)
	case token.MUL:
		v.asm().AppendBinary("IMUL")
		v.lastType = floatIfEither(leftType, rightType)
	case token.QUO:
		v.asm().AppendDiv()
		v.lastType = floatIfEither(leftType, rightType)
	case token.REM:
		if hasFloat {
			return newErr(IllegalFloatOperator, "%% is not defined for float operands")
		}
		v.asm().AppendModulo()
		v.lastType = symtab.TypeInt
	case token.POW:
		v.asm().AppendPow()
		v.lastType = floatIfEither(leftType, rightType)
	case token.AND:
		if hasFloat {
			return newErr(IllegalFloatOperator, "&& is not defined for float operands")
		}
		v.asm().AppendLogicalAnd()
		v.lastType = symtab.TypeBool
	case token.OR:
		if hasFloat {
			return newErr(IllegalFloatOperator, "|| is not defined for float operands")
		}
		v.asm().AppendLogicalOr()
		v.lastType = symtab.TypeBool
	case token.EQEQ, token.NEQ, token.GTR, token.GEQ, token.LSS, token.LEQ:
		v.asm().AppendCondition(string(n.Operator.Kind))
		v.lastType = symtab.TypeBool
	case token.BAND:
		v.asm().AppendBinary("AND")
		v.lastType = symtab.TypeInt
	case token.BOR:
		v.asm().AppendBinary("OR")
		v.lastType = symtab.TypeInt
	case token.XOR:
		v.asm().AppendBinary("XOR")
		v.lastType = symtab.TypeInt
	case token.SHL:
		v.asm().AppendShift("SHL")
		v.lastType = symtab.TypeInt
	case token.SHR:
		v.asm().AppendShift("SHR")
		v.lastType = symtab.TypeInt
	default:
		return newErr(Unsupported, "unknown binary operator %s", n.Operator.Kind)
	}
	return nil
}

func (v *ValueVisitor) VisitGroup(n *ast.Group) error {
	return n.Value.Accept(v)
}

func (v *ValueVisitor) VisitTern(n *ast.Tern) error {
	falseLabel := v.asm().GenerateLabel()
	exit := v.asm().GenerateLabel()

	if err := n.Cond.Accept(v); err != nil {
		return err
	}
	v.asm().PopValue("eax")
	v.asm().AppendLine("CMP eax, 0")
	v.asm().AppendLine("JZ " + falseLabel)

	if err := n.CaseTrue.Accept(v); err != nil {
		return err
	}
	trueType := v.lastType
	v.asm().AppendLine("JMP " + exit)

	v.asm().AppendLine(falseLabel + ":")
	if err := n.CaseFalse.Accept(v); err != nil {
		return err
	}
	falseType := v.lastType
	v.asm().AppendLine(exit + ":")

	if trueType != falseType {
		return newErr(TernaryTypeMismatch, "ternary branches have different types (%s vs %s)", trueType.Name, falseType.Name)
	}
	v.lastType = trueType
	return nil
}

func (v *ValueVisitor) VisitCond(n *ast.Cond) error {
	if err := n.Value.Accept(v); err != nil {
		return err
	}
	v.lastType = symtab.TypeBool
	return nil
}

// The remaining ast.Visitor methods are statement-level nodes that
// leave no value on the stack. Reaching one here is reported as an
// internal error; this happens for the chained initializer of a
// declaration such as "int a = int b = 1", which the parser accepts.
func (v *ValueVisitor) VisitPrint(*ast.Print) error { return unexpectedStatementNode("Print") }
func (v *ValueVisitor) VisitAssign(*ast.Assign) error {
	return unexpectedStatementNode("Assign")
}
func (v *ValueVisitor) VisitInit(*ast.Init) error { return unexpectedStatementNode("Init") }
func (v *ValueVisitor) VisitIf(*ast.If) error     { return unexpectedStatementNode("If") }
func (v *ValueVisitor) VisitElse(*ast.Else) error { return unexpectedStatementNode("Else") }
func (v *ValueVisitor) VisitControlFlow(*ast.ControlFlow) error {
	return unexpectedStatementNode("ControlFlow")
}
func (v *ValueVisitor) VisitWhile(*ast.While) error { return unexpectedStatementNode("While") }
func (v *ValueVisitor) VisitFor(*ast.For) error     { return unexpectedStatementNode("For") }
func (v *ValueVisitor) VisitFunc(*ast.Func) error   { return unexpectedStatementNode("Func") }
func (v *ValueVisitor) VisitBlock(*ast.Block) error { return unexpectedStatementNode("Block") }

func unexpectedStatementNode(name string) error {
	return fmt.Errorf("internal error: %s reached in a value-expression context", name)
}
