package nethtml

import "fmt"

// ParseError describes a well-formedness failure in the input markup.
// It is the only error kind Parse returns for bad input: analysis is
// aborted and no snapshot is produced.
type ParseError struct {
	// Path is the logical file path of the document, may be empty.
	Path string

	// Line and Column locate the failure, 1-based. Zero when unknown.
	Line   int
	Column int

	// Msg describes what was wrong with the markup.
	Msg string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	default:
		return e.Msg
	}
}
