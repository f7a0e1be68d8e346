package cmd

import (
	"fmt"
	"os"

	"github.com/nilan-lang/lwc/diag"
	"github.com/nilan-lang/lwc/lexer"
	"github.com/nilan-lang/lwc/token"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex FILE",
	Short: "Tokenize a source file and print every token",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's line:column")
}

func runLex(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	source := string(content)

	log.Debugf("lexing %s (%d bytes)", filename, len(source))
	toks, err := lexer.New(source).ScanAll()
	for _, tok := range toks {
		printToken(tok)
	}
	if err != nil {
		d := diag.New(filename, 0, 0, err.Error(), source)
		fmt.Fprintln(os.Stderr, d.Format(true))
		return fmt.Errorf("lexing failed")
	}
	log.Debugf("produced %d tokens", len(toks))
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("%-10s %q", tok.Kind, tok.Literal)
	if showPos {
		out += " @" + tok.Pos.String()
	}
	fmt.Println(out)
}
