package cliargs

import (
	"errors"
	"fmt"
	"strings"
)

// Grammar construction errors.
var (
	ErrEmptyName          = errors.New("cliargs: empty name")
	ErrDuplicateCommand   = errors.New("cliargs: duplicate command")
	ErrDuplicateParameter = errors.New("cliargs: duplicate parameter")
	ErrUnbalancedCommand  = errors.New("cliargs: EndCommand without matching BeginCommand")
	ErrPolicyLocked       = errors.New("cliargs: case policy must be set before any definition is added")
	ErrInvalidDefinition  = errors.New("cliargs: invalid parameter definition")
)

// ErrorType categorizes parse diagnostics. The categories drive exit-code
// mapping (see ExitCodes).
type ErrorType string

const (
	ErrorTypeInvalidParameter   ErrorType = "invalid_parameter"
	ErrorTypeUnknownParameter   ErrorType = "unknown_parameter"
	ErrorTypeUnknownArgument    ErrorType = "unknown_argument"
	ErrorTypeAmbiguousParameter ErrorType = "ambiguous_parameter"
	ErrorTypeDuplicateParameter ErrorType = "duplicate_parameter"
	ErrorTypeMissingValue       ErrorType = "missing_value"
	ErrorTypeMissingRequired    ErrorType = "missing_required"
)

// Diagnostic is one non-fatal problem found while parsing.
type Diagnostic struct {
	Type       ErrorType
	Message    string
	Token      string // offending token, empty for end-of-parse checks
	Parameter  string // parameter name when known
	Suggestion string // closest declared name for unknown parameters
}

// String returns the message, followed by the suggestion when there is one.
func (d Diagnostic) String() string {
	if d.Suggestion == "" {
		return d.Message
	}
	return d.Message + " (did you mean '" + d.Suggestion + "'?)"
}

// ParseError wraps the diagnostics of a failed parse for callers that want
// a plain error value.
type ParseError struct {
	Diagnostics []Diagnostic
}

func (e *ParseError) Error() string {
	switch len(e.Diagnostics) {
	case 0:
		return "cliargs: parse failed"
	case 1:
		return e.Diagnostics[0].String()
	}
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.String()
	}
	return fmt.Sprintf("%d errors: %s", len(msgs), strings.Join(msgs, "; "))
}

// Is reports whether the first diagnostic has the ErrorType target.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(ErrorType)
	return ok && len(e.Diagnostics) > 0 && e.Diagnostics[0].Type == t
}

// Error lets an ErrorType be used as an errors.Is target.
func (t ErrorType) Error() string {
	return string(t)
}
