package parser

import (
	"fmt"

	"github.com/nilan-lang/lwc/token"
)

// Error is a syntax error tied to the token position where parsing
// could not continue. Parsing stops at the first Error; lwc does not
// attempt recovery.
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Message)
}

func newError(tok token.Token, format string, args ...any) *Error {
	return &Error{Pos: tok.Pos, Message: fmt.Sprintf(format, args...)}
}
