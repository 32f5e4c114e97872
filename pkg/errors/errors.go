package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// CustomizedError carries a trace chain, an i18n message id and the
// HTTP status the API layer should answer with.
type CustomizedError struct {
	cause   error
	message string
	trace   []string
	code    int
}

func New(trace, message string, err error) *CustomizedError {
	return &CustomizedError{
		cause:   err,
		message: message,
		trace:   []string{trace},
		code:    http.StatusInternalServerError,
	}
}

func (e *CustomizedError) Code(c int) *CustomizedError {
	e.code = c
	return e
}

func (e *CustomizedError) GetCode() int {
	return e.code
}

func (e *CustomizedError) Trace(trace string) *CustomizedError {
	e.trace = append(e.trace, trace)
	return e
}

func Wrap(err error, trace, message string) *CustomizedError {
	ce := &CustomizedError{
		cause:   err,
		message: message,
		trace:   []string{trace},
		code:    http.StatusInternalServerError,
	}
	if income, ok := err.(*CustomizedError); ok {
		ce.code = income.code
	}
	return ce
}

// Trace appends a trace node to an existing CustomizedError or wraps a
// plain error into one.
func Trace(trace string, err error) *CustomizedError {
	if ce, ok := err.(*CustomizedError); ok {
		ce.trace = append(ce.trace, trace)
		return ce
	}
	return Wrap(err, trace, err.Error())
}

// Message returns the user facing message id, falling back to the cause.
func (e *CustomizedError) Message() string {
	if e.message == "" && e.cause != nil {
		return e.cause.Error()
	}
	return e.message
}

func (e *CustomizedError) Unwrap() error {
	return e.cause
}

func (e *CustomizedError) Error() string {
	return fmt.Sprintf(`{"trace":"%s","code":%d,"msg":"%s","error":"%v"}`,
		strings.Join(e.trace, "->"), e.code, e.message, e.cause)
}
