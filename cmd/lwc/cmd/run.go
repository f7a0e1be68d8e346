package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	runKeepAsm bool
	runTarget  string
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Compile, assemble, link, and run a source file",
	Long: `run compiles a source file to assembly the same way "lwc compile" does,
then shells out to an external assembler and linker to produce a native
binary and executes it. lwc never assembles or links anything itself;
this is a thin orchestration layer over the system toolchain, chosen by
--target:

  nasm  -  nasm + gcc (nasm assembles to an object file, gcc links it)
  masm  -  ml (the Microsoft Macro Assembler) + its bundled linker`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runTarget, "target", "nasm", "assembler toolchain: masm|nasm")
	runCmd.Flags().BoolVar(&runKeepAsm, "keep-asm", false, "keep the generated .asm/.obj/.exe files instead of cleaning them up")
}

func runRun(cmd *cobra.Command, args []string) error {
	filename := args[0]
	compileTarget = runTarget

	asm, err := compileFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("compilation failed")
	}

	workdir, err := os.MkdirTemp("", "lwc-run-*")
	if err != nil {
		return fmt.Errorf("failed to create work directory: %w", err)
	}
	if !runKeepAsm {
		defer os.RemoveAll(workdir)
	} else {
		log.Debugf("keeping build artifacts in %s", workdir)
	}

	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	asmPath := filepath.Join(workdir, base+".asm")
	if err := os.WriteFile(asmPath, []byte(asm), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", asmPath, err)
	}

	var exePath string
	switch strings.ToLower(compileTarget) {
	case "nasm":
		exePath, err = assembleWithNasm(workdir, base, asmPath)
	case "masm":
		exePath, err = assembleWithMasm(workdir, base, asmPath)
	default:
		return fmt.Errorf("unknown target %q (want masm or nasm)", compileTarget)
	}
	if err != nil {
		return err
	}

	log.Debugf("running %s", exePath)
	run := exec.Command(exePath)
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr
	run.Stdin = os.Stdin
	return run.Run()
}

func assembleWithNasm(workdir, base, asmPath string) (string, error) {
	objPath := filepath.Join(workdir, base+".o")
	exePath := filepath.Join(workdir, base)

	nasm := exec.Command("nasm", "-f", "elf32", "-o", objPath, asmPath)
	if out, err := runCaptured(nasm); err != nil {
		return "", fmt.Errorf("nasm failed: %w\n%s", err, out)
	}

	gcc := exec.Command("gcc", "-m32", "-static", "-o", exePath, objPath)
	if out, err := runCaptured(gcc); err != nil {
		return "", fmt.Errorf("gcc link failed: %w\n%s", err, out)
	}
	return exePath, nil
}

func assembleWithMasm(workdir, base, asmPath string) (string, error) {
	exePath := filepath.Join(workdir, base+".exe")

	ml := exec.Command("ml", "/c", "/coff", "/Fo", filepath.Join(workdir, base+".obj"), asmPath)
	if out, err := runCaptured(ml); err != nil {
		return "", fmt.Errorf("ml assemble failed: %w\n%s", err, out)
	}

	link := exec.Command("link", "/subsystem:console", "/out:"+exePath, filepath.Join(workdir, base+".obj"))
	if out, err := runCaptured(link); err != nil {
		return "", fmt.Errorf("link failed: %w\n%s", err, out)
	}
	return exePath, nil
}

func runCaptured(c *exec.Cmd) (string, error) {
	var buf bytes.Buffer
	c.Stdout = &buf
	c.Stderr = &buf
	err := c.Run()
	return buf.String(), err
}
