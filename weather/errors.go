package weather

import "fmt"

// FormatError reports a structurally malformed line: wrong column count,
// missing delimiter, empty station name, or invalid UTF-8 in a safe
// parser. Line is 1-based.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format: line %d: %s", e.Line, e.Reason)
}

// ParseError reports a temperature field that is not a valid
// floating-point literal. Line is 1-based, Value is the offending text.
type ParseError struct {
	Line  int
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: line %d: cannot parse temperature %q as a number", e.Line, e.Value)
}
