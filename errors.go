// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"fmt"
	"strings"
)

// ErrorKind classifies the errors returned by the package. An ErrorKind is
// itself an error, so that callers can test for a kind with errors.Is, for
// instance errors.Is(err, bayescnf.CyclicDependency).
type ErrorKind int

const (
	MalformedInput      ErrorKind = iota + 1 // document cannot be read as a network
	UnknownParent                            // parent not declared in variables
	CyclicDependency                         // parent graph has a cycle
	CptShapeMismatch                         // CPT dimensions disagree with states/parents
	CptNotNormalized                         // CPT column does not sum to 1 (or bad entry)
	UndefinedAssignment                      // assignment does not match a variable or its parents
	IncompleteNetwork                        // network did not go through validation
	UnknownVariable                          // query on an undeclared variable
)

var kindnames = [...]string{
	MalformedInput:      "malformed input",
	UnknownParent:       "unknown parent",
	CyclicDependency:    "cyclic dependency",
	CptShapeMismatch:    "CPT shape mismatch",
	CptNotNormalized:    "CPT not normalized",
	UndefinedAssignment: "undefined assignment",
	IncompleteNetwork:   "incomplete network",
	UnknownVariable:     "unknown variable",
}

func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(kindnames) {
		return fmt.Sprintf("error kind %d", int(k))
	}
	return kindnames[k]
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Error is the concrete error type returned by the package. Variable is the
// name of the offending variable, when there is one, and Err an underlying
// cause (for instance a JSON syntax error).
type Error struct {
	Kind     ErrorKind
	Variable string
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if e.Variable != "" {
		fmt.Fprintf(&sb, " (variable %q)", e.Variable)
	}
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Err != nil {
		sb.WriteString("; ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the ErrorKind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func errorf(kind ErrorKind, variable string, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Variable: variable, Msg: fmt.Sprintf(format, a...)}
}

func wrapf(kind ErrorKind, err error, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...), Err: err}
}
