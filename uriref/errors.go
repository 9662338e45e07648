package uriref

import "fmt"

// Code is a stable, numeric error code.
type Code int

const (
	CodeMissingPctHexDig Code = iota
	CodeBadPctHexDig
	CodeIllegalNull
	CodeNoSpace
	CodeSyntax
	CodeMismatch
	CodeNotABase
	CodeURLTooLarge
	CodeInvalidArgument
)

var codeLabels = [...]string{
	CodeMissingPctHexDig: "missing_pct_hexdig",
	CodeBadPctHexDig:     "bad_pct_hexdig",
	CodeIllegalNull:      "illegal_null",
	CodeNoSpace:          "no_space",
	CodeSyntax:           "syntax",
	CodeMismatch:         "mismatch",
	CodeNotABase:         "not_a_base",
	CodeURLTooLarge:      "url_too_large",
	CodeInvalidArgument:  "invalid_argument",
}

// String returns the code's stable human-readable label.
func (c Code) String() string {
	if int(c) < 0 || int(c) >= len(codeLabels) {
		return "unknown"
	}
	return codeLabels[c]
}

// Error is the error type this package's own failures use. Malformed
// percent-encoding is reported with the percent-codec's *pct.Error
// instead, passed through unchanged.
//
// Parsers use the "result form" (return the error); setters that cannot
// satisfy their part's grammar use the "throwing form" (panic with the
// error, via Try). Both forms carry the same value.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func newError(c Code, format string, args ...any) *Error {
	return &Error{Code: c, Msg: fmt.Sprintf(format, args...)}
}

// Try panics with err if it is non-nil. It is the seam between a
// function's result-returning form and its throwing form.
func Try(err error) {
	if err != nil {
		panic(err)
	}
}

// Recover turns a panic raised by Try (or by any *Error-valued panic) back
// into an error, storing it in *errp and recovering the panic. It is
// meant to be deferred at the top of a throwing-form function's
// result-returning wrapper.
func Recover(errp *error) {
	if r := recover(); r != nil {
		if e, ok := r.(*Error); ok {
			*errp = e
			return
		}
		if e, ok := r.(error); ok {
			*errp = e
			return
		}
		panic(r)
	}
}
