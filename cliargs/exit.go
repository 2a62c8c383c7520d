package cliargs

import "errors"

// ExitCodeDefaults holds the codes used when no category mapping applies.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

// ExitCodes maps parse outcomes to process exit codes.
type ExitCodes struct {
	byType   map[ErrorType]int
	defaults ExitCodeDefaults
}

// NewExitCodes returns a mapping where every diagnostic category is a
// misusage error.
func NewExitCodes() *ExitCodes {
	e := &ExitCodes{
		byType:   make(map[ErrorType]int),
		defaults: ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2},
	}
	for _, t := range []ErrorType{
		ErrorTypeInvalidParameter,
		ErrorTypeUnknownParameter,
		ErrorTypeUnknownArgument,
		ErrorTypeAmbiguousParameter,
		ErrorTypeDuplicateParameter,
		ErrorTypeMissingValue,
		ErrorTypeMissingRequired,
	} {
		e.byType[t] = e.defaults.MisusageError
	}
	return e
}

// Define overrides the code of one diagnostic category.
func (e *ExitCodes) Define(t ErrorType, code int) *ExitCodes { e.byType[t] = code; return e }

// Default replaces the fallback codes. Categories mapped to the old
// misusage code follow the new one.
func (e *ExitCodes) Default(d ExitCodeDefaults) *ExitCodes {
	for t, code := range e.byType {
		if code == e.defaults.MisusageError {
			e.byType[t] = d.MisusageError
		}
	}
	e.defaults = d
	return e
}

// Resolve converts err to an exit code. A *ParseError maps by the category
// of its first diagnostic; any other error is a general error.
func (e *ExitCodes) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}
	var pe *ParseError
	if errors.As(err, &pe) && len(pe.Diagnostics) > 0 {
		if code, ok := e.byType[pe.Diagnostics[0].Type]; ok {
			return code
		}
	}
	return e.defaults.GeneralError
}

// For is Resolve applied to the outcome of a parse.
func (e *ExitCodes) For(a *Arguments) int {
	return e.Resolve(a.Err())
}
