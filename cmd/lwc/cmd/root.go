// Package cmd wires lwc's pipeline stages into a cobra CLI:
// lex, parse, compile, run, repl.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Version = "0.1.0-dev"

	verbose bool
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:     "lwc",
	Short:   "lwc compiles the lwc language to x86 assembly",
	Version: Version,
	Long: `lwc is a tokenizer, parser, and x86 assembly code generator for a
small indentation-structured imperative language.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace pipeline stages to stderr")
}

func exitWithError(msg string) {
	os.Stderr.WriteString(msg + "\n")
	os.Exit(1)
}
