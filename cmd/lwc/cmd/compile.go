package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nilan-lang/lwc/codegen"
	"github.com/nilan-lang/lwc/diag"
	"github.com/nilan-lang/lwc/lexer"
	"github.com/nilan-lang/lwc/parser"
	"github.com/spf13/cobra"
)

var (
	compileOutput string
	compileTarget string
)

var compileCmd = &cobra.Command{
	Use:   "compile FILE",
	Short: "Compile a source file to x86 assembly",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output file (default: <input>.asm)")
	compileCmd.Flags().StringVar(&compileTarget, "target", "masm", "assembler dialect: masm|nasm")
}

func compileFile(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}
	source := string(content)

	toks, err := lexer.New(source).Scan()
	if err != nil {
		return "", diag.New(filename, 0, 0, err.Error(), source)
	}

	block, err := parser.New(toks).Parse()
	if err != nil {
		if pe, ok := err.(*parser.Error); ok {
			return "", diag.New(filename, pe.Pos.Line, pe.Pos.Column, pe.Message, source)
		}
		return "", err
	}

	target := codegen.TargetMASM
	if strings.EqualFold(compileTarget, "nasm") {
		target = codegen.TargetNASM
	}

	asm, err := codegen.Compile(block, target)
	if err != nil {
		return "", err
	}
	return asm, nil
}

func runCompile(cmd *cobra.Command, args []string) error {
	filename := args[0]
	log.Debugf("compiling %s with target=%s", filename, compileTarget)

	asm, err := compileFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("compilation failed")
	}

	out := compileOutput
	if out == "" {
		ext := filepath.Ext(filename)
		out = strings.TrimSuffix(filename, ext) + ".asm"
	}
	if err := os.WriteFile(out, []byte(asm), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Printf("%s -> %s\n", filename, out)
	return nil
}
