// Package diag formats lwc's pipeline errors (lex/parse/codegen) for
// CLI display, with source-context lines and a caret pointing at the
// offending column.
package diag

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// Diagnostic is one formatted compiler error: a position, a message,
// and the source it was found in (so a caret line can be rendered).
type Diagnostic struct {
	File    string
	Line    int
	Column  int
	Message string
	Source  string
}

// New builds a Diagnostic.
func New(file string, line, column int, message, source string) *Diagnostic {
	return &Diagnostic{File: file, Line: line, Column: column, Message: message, Source: source}
}

func (d *Diagnostic) Error() string { return d.Format(false) }

// Format renders the diagnostic as a header line carrying the position
// and message, then the offending source line and a caret beneath the
// exact column. color wraps the caret in ANSI escapes for a terminal.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: %s\n", d.File, d.Line, d.Column, d.Message)
	} else {
		fmt.Fprintf(&sb, "%d:%d: %s\n", d.Line, d.Column, d.Message)
	}

	line := sourceLine(d.Source, d.Line)
	if line == "" {
		return strings.TrimRight(sb.String(), "\n")
	}

	gutter := fmt.Sprintf("%4d | ", d.Line)
	sb.WriteString(gutter)
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(gutter)+caretOffset(line, d.Column)))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// caretOffset converts a 1-based rune column into a display-column
// offset, folding any East Asian wide/fullwidth runes before it into
// two caret columns instead of one so the caret still lands under the
// intended character.
func caretOffset(line string, column int) int {
	offset := 0
	for i, r := range []rune(line) {
		if i >= column-1 {
			break
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			offset += 2
		default:
			offset++
		}
	}
	return offset
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// FormatAll renders a batch of diagnostics, numbering them when there
// is more than one.
func FormatAll(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[%d/%d] ", i+1, len(diags))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
