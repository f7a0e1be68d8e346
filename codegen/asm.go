package codegen

import (
	"fmt"
	"strings"
)

// Target selects which assembler dialect AsmBuffer emits directives
// for. The instruction-level emission (PushValue, AppendBinary, ...)
// is dialect-independent; only FilePrologue/FileEpilogue differ.
type Target string

const (
	TargetMASM Target = "masm"
	TargetNASM Target = "nasm"
)

// AsmBuffer is an append-only text buffer for generated x86 assembly,
// plus a monotonically increasing label counter. Every label it hands
// out via GenerateLabel is unique for the buffer's lifetime.
type AsmBuffer struct {
	code       strings.Builder
	labelCount int
	target     Target
}

// NewAsmBuffer constructs an empty buffer targeting the given
// assembler dialect.
func NewAsmBuffer(target Target) *AsmBuffer {
	return &AsmBuffer{target: target}
}

func (b *AsmBuffer) Append(s string)     { b.code.WriteString(s) }
func (b *AsmBuffer) AppendLine(s string) { b.Append(s + "\n") }
func (b *AsmBuffer) AppendSpace()        { b.AppendLine("") }
func (b *AsmBuffer) AppendComment(c string) {
	b.AppendLine(";; " + c)
}

// String returns the complete generated assembly text.
func (b *AsmBuffer) String() string { return b.code.String() }

// GenerateLabel returns a fresh, never-before-issued label name.
func (b *AsmBuffer) GenerateLabel() string {
	label := fmt.Sprintf("L%d", b.labelCount)
	b.labelCount++
	return label
}

// LabelCount reports how many labels have been issued so far.
func (b *AsmBuffer) LabelCount() int { return b.labelCount }

func (b *AsmBuffer) PushValue(value string) { b.AppendLine("PUSH " + value) }
func (b *AsmBuffer) PopValue(dest string)   { b.AppendLine("POP " + dest) }

// AppendUnary pops one operand, applies instr to it, and pushes the
// result back. EAX is deliberately avoided since many x86 instructions
// use it implicitly.
func (b *AsmBuffer) AppendUnary(instr string) {
	b.PopValue("edx")
	b.AppendLine(instr + " edx")
	b.PushValue("edx")
}

// AppendBinary pops two operands (eax = the one pushed last, i.e. the
// left operand in lwc's right-then-left evaluation order; ebx = the
// one beneath it, the right operand), applies instr as "instr eax,
// ebx", and pushes the result.
func (b *AsmBuffer) AppendBinary(instr string) {
	b.PopValue("eax")
	b.PopValue("ebx")
	b.AppendLine(fmt.Sprintf("%s eax, ebx", instr))
	b.PushValue("eax")
}

// AppendDiv pops eax (left/dividend) and ebx (right/divisor), divides,
// and pushes the quotient.
func (b *AsmBuffer) AppendDiv() {
	b.PopValue("eax")
	b.AppendLine("MOV edx, 0")
	b.PopValue("ebx")
	b.AppendLine("IDIV ebx")
	b.PushValue("eax")
}

// AppendModulo is AppendDiv's sibling, pushing the remainder (left in
// EDX after IDIV) instead of the quotient.
func (b *AsmBuffer) AppendModulo() {
	b.PopValue("eax")
	b.AppendLine("MOV edx, 0")
	b.PopValue("ebx")
	b.AppendLine("IDIV ebx")
	b.PushValue("edx")
}

// AppendShift pops eax (the value to shift) and ecx (the shift
// count, used via its low byte CL), applies instr ("SHL"/"SHR"), and
// pushes the result.
func (b *AsmBuffer) AppendShift(instr string) {
	b.PopValue("eax")
	b.PopValue("ecx")
	b.AppendLine(fmt.Sprintf("%s eax, cl", instr))
	b.PushValue("eax")
}

// AppendNot implements boolean negation: 0 becomes 1, anything
// non-zero becomes 0.
func (b *AsmBuffer) AppendNot() {
	isFalse := b.GenerateLabel()
	exit := b.GenerateLabel()
	b.PopValue("edx")
	b.AppendLine("CMP edx, 0")
	b.AppendLine("JZ " + isFalse)
	b.PushValue("0")
	b.AppendLine("JMP " + exit)
	b.AppendLine(isFalse + ":")
	b.PushValue("1")
	b.AppendLine(exit + ":")
}

// AppendLogicalAnd evaluates to 1 only if both already-pushed operands
// are non-zero. Both operands are always evaluated by the time this
// runs; there is no short-circuiting in lwc's && / ||.
func (b *AsmBuffer) AppendLogicalAnd() {
	hasZero := b.GenerateLabel()
	exit := b.GenerateLabel()
	b.PopValue("eax")
	b.PopValue("ebx")
	b.AppendLine("CMP eax, 0")
	b.AppendLine("JZ " + hasZero)
	b.AppendLine("CMP ebx, 0")
	b.AppendLine("JZ " + hasZero)
	b.PushValue("1")
	b.AppendLine("JMP " + exit)
	b.AppendLine(hasZero + ":")
	b.PushValue("0")
	b.AppendLine(exit + ":")
}

// AppendLogicalOr evaluates to 1 if either operand is non-zero.
func (b *AsmBuffer) AppendLogicalOr() {
	hasOne := b.GenerateLabel()
	exit := b.GenerateLabel()
	b.PopValue("eax")
	b.PopValue("ebx")
	b.AppendLine("CMP eax, 0")
	b.AppendLine("JNZ " + hasOne)
	b.AppendLine("CMP ebx, 0")
	b.AppendLine("JNZ " + hasOne)
	b.PushValue("0")
	b.AppendLine("JMP " + exit)
	b.AppendLine(hasOne + ":")
	b.PushValue("1")
	b.AppendLine(exit + ":")
}

var conditionJump = map[string]string{
	"==": "JE",
	"!=": "JNE",
	">":  "JG",
	">=": "JGE",
	"<":  "JL",
	"<=": "JLE",
}

// AppendCondition pops eax/ebx, compares them, and pushes 1 or 0
// depending on whether the relation holds.
func (b *AsmBuffer) AppendCondition(operator string) {
	jump := conditionJump[operator]
	caseTrue := b.GenerateLabel()
	exit := b.GenerateLabel()
	b.PopValue("eax")
	b.PopValue("ebx")
	b.AppendLine("CMP eax, ebx")
	b.AppendLine(jump + " " + caseTrue)
	b.PushValue("0")
	b.AppendLine("JMP " + exit)
	b.AppendLine(caseTrue + ":")
	b.PushValue("1")
	b.AppendLine(exit + ":")
}

// AppendPow raises a base to a non-negative integer exponent using the
// LOOP instruction with ECX as the implicit counter. Expects the base
// on top of the stack and the exponent beneath it.
func (b *AsmBuffer) AppendPow() {
	b.PopValue("ebx") // base
	b.AppendLine("MOV eax, 1")
	b.EnterLoop() // pops ecx = exponent
	b.AppendLine("IMUL eax, ebx")
	b.ExitLoop()
	b.PushValue("eax")
}

func (b *AsmBuffer) EnterLoop() {
	label := b.GenerateLabel()
	b.AppendComment("-------- entering loop --------")
	b.PopValue("ecx")
	b.AppendLine(label + ":")
}

// ExitLoop closes the most recently opened EnterLoop block.
func (b *AsmBuffer) ExitLoop() {
	label := fmt.Sprintf("L%d", b.labelCount-1)
	b.AppendLine("LOOP " + label)
	b.AppendComment("----------------------------------------")
}

func (b *AsmBuffer) EnterMethod() {
	b.AppendComment("method prologue")
	b.AppendLine("PUSH ebp")
	b.AppendLine("MOV ebp, esp")
	b.AppendSpace()
}

func (b *AsmBuffer) ExitMethod() {
	b.AppendComment("method epilogue")
	b.AppendLine("MOV esp, ebp")
	b.AppendLine("POP ebp")
	b.AppendSpace()
}

func (b *AsmBuffer) FilePrologue() {
	switch b.target {
	case TargetNASM:
		b.AppendLine("%include \"print_number.inc\"")
		b.AppendSpace()
		b.AppendLine("section .text")
		b.AppendLine("global main")
		b.AppendLine("main:")
		b.AppendSpace()
	default:
		b.AppendLine(`include \masm32\include\masm32rt.inc`)
		b.AppendSpace()
		b.AppendLine(".code")
		b.AppendLine("start:")
		b.AppendSpace()
	}
}

func (b *AsmBuffer) FileEpilogue() {
	switch b.target {
	case TargetNASM:
		b.AppendSpace()
		b.AppendLine("RET")
	default:
		b.AppendSpace()
		b.AppendLine("end start")
	}
}
