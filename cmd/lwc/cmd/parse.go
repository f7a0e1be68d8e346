package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nilan-lang/lwc/ast"
	"github.com/nilan-lang/lwc/diag"
	"github.com/nilan-lang/lwc/lexer"
	"github.com/nilan-lang/lwc/parser"
	"github.com/spf13/cobra"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the AST as JSON instead of Go's %+v form")
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	source := string(content)

	toks, err := lexer.New(source).Scan()
	if err != nil {
		fmt.Fprintln(os.Stderr, diag.New(filename, 0, 0, err.Error(), source).Format(true))
		return fmt.Errorf("lexing failed")
	}
	log.Debugf("parsing %d tokens", len(toks))

	block, err := parser.New(toks).Parse()
	if err != nil {
		pe, ok := err.(*parser.Error)
		if ok {
			fmt.Fprintln(os.Stderr, diag.New(filename, pe.Pos.Line, pe.Pos.Column, pe.Message, source).Format(true))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("parsing failed")
	}

	var out ast.Block = *block
	if parseJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ast.Print(&out))
	}
	fmt.Printf("%+v\n", ast.Print(&out))
	return nil
}
