package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/nilan-lang/lwc/codegen"
	"github.com/nilan-lang/lwc/lexer"
	"github.com/nilan-lang/lwc/parser"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-compile-print loop",
	Long: `repl reads one line at a time, compiles it as a standalone program,
and prints the generated assembly. It holds no state between lines: every
line is compiled in its own fresh scope, so variables do not persist
across the prompt. Use it to inspect codegen output for a snippet
without writing a file first.`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lwc> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer rl.Close()

	fmt.Println("lwc repl - each line compiles in its own scope. Ctrl-D to quit.")
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		replCompileAndPrint(line)
	}
}

func replCompileAndPrint(line string) {
	toks, err := lexer.New(line + "\n").Scan()
	if err != nil {
		fmt.Println("lex error:", err)
		return
	}

	block, err := parser.New(toks).Parse()
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	asm, err := codegen.Compile(block, codegen.TargetNASM)
	if err != nil {
		fmt.Println("codegen error:", err)
		return
	}
	fmt.Println(asm)
}
