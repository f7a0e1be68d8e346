// Command lwc is the lwc compiler's CLI entry point.
package main

import (
	"os"

	"github.com/nilan-lang/lwc/cmd/lwc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
