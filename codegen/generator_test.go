package codegen

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/nilan-lang/lwc/lexer"
	"github.com/nilan-lang/lwc/parser"
	"github.com/stretchr/testify/require"
)

func compileSource(t *testing.T, src string) string {
	t.Helper()
	toks, err := lexer.New(src).Scan()
	require.NoError(t, err)
	block, err := parser.New(toks).Parse()
	require.NoError(t, err)
	out, err := Compile(block, TargetMASM)
	require.NoError(t, err)
	return out
}

func TestCompileArithmeticSnapshot(t *testing.T) {
	out := compileSource(t, "int x = 1 + 2 * 3\nprint(x)\n")
	snaps.MatchSnapshot(t, out)
}

func TestCompileIfElseSnapshot(t *testing.T) {
	src := "int x = 5\nif x > 0\n\tprint(1)\nelif x < 0\n\tprint(-1)\nelse\n\tprint(0)\n"
	out := compileSource(t, src)
	snaps.MatchSnapshot(t, out)
}

func TestCompileWhileBreakSnapshot(t *testing.T) {
	src := "int i = 0\nwhile i < 10\n\tif i == 5\n\t\tbreak\n\ti += 1\n"
	out := compileSource(t, src)
	snaps.MatchSnapshot(t, out)
}

func TestCompileForContinueSnapshot(t *testing.T) {
	src := "for int i = 0, i < 10, i += 1\n\tif i == 2\n\t\tcontinue\n\tprint(i)\n"
	out := compileSource(t, src)
	snaps.MatchSnapshot(t, out)
}

func TestCompileUndefinedVariableError(t *testing.T) {
	toks, err := lexer.New("print(missing)\n").Scan()
	require.NoError(t, err)
	block, err := parser.New(toks).Parse()
	require.NoError(t, err)
	_, err = Compile(block, TargetNASM)
	require.Error(t, err)
	var codegenErr *Error
	require.ErrorAs(t, err, &codegenErr)
	require.Equal(t, UndefinedVariable, codegenErr.Kind)
}

func TestCompileBreakOutsideLoopError(t *testing.T) {
	toks, err := lexer.New("break\n").Scan()
	require.NoError(t, err)
	block, err := parser.New(toks).Parse()
	require.NoError(t, err)
	_, err = Compile(block, TargetMASM)
	require.Error(t, err)
	var codegenErr *Error
	require.ErrorAs(t, err, &codegenErr)
	require.Equal(t, ControlFlowOutsideLoop, codegenErr.Kind)
}

func TestCompileDuplicateDefinitionError(t *testing.T) {
	toks, err := lexer.New("int x = 1\nint x = 2\n").Scan()
	require.NoError(t, err)
	block, err := parser.New(toks).Parse()
	require.NoError(t, err)
	_, err = Compile(block, TargetMASM)
	require.Error(t, err)
	var codegenErr *Error
	require.ErrorAs(t, err, &codegenErr)
	require.Equal(t, DuplicateDefinition, codegenErr.Kind)
}

func TestCompileNestedBreakInsideIfInsideLoop(t *testing.T) {
	// break/continue nested inside an if inside a loop must still
	// resolve to the enclosing loop's labels.
	src := "while true\n\tif true\n\t\tbreak\n"
	out := compileSource(t, src)
	require.Contains(t, out, "JMP L")
}
