// Copyright (c) 2019 Caleb James DeLisle
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package er provides the error type used across dimd.  An er.R carries the
// underlying error, an optional stack trace (captured only when the
// ENABLE_STACKTRACE environment variable is set) and, for coded errors, the
// ErrorCode which identifies the failure.
package er

import (
	"errors"
	"fmt"
	"os"
	"strings"

	goerrors "github.com/go-errors/errors"
)

var stacktraceDisabled = []string{"No stack, ENABLE_STACKTRACE not set"}

type err struct {
	e      error
	bstack []byte
}

// R is the dimd error type.
type R interface {
	Message() string
	Stack() []string
	String() string
	Wrapped0() error
	Native() error
}

func (e err) Stack() []string {
	if e.bstack == nil {
		return stacktraceDisabled
	}
	return strings.Split(string(e.bstack), "\n")
}

func (e err) Message() string {
	return e.e.Error()
}

func (e err) String() string {
	if e.bstack != nil {
		return fmt.Sprintf("%s\n%s", e.e.Error(), strings.Join(e.Stack(), "\n"))
	}
	return e.e.Error()
}

func (e err) Wrapped0() error {
	return e.e
}

func (e err) Native() error {
	return errors.New(e.String())
}

func captureStack(e error) []byte {
	if os.Getenv("ENABLE_STACKTRACE") == "" {
		return nil
	}
	// Skip captureStack and the constructor which called it.
	return goerrors.Wrap(e, 2).Stack()
}

// Wrapped returns the error which is carried by err, nil if err is nil.
func Wrapped(err R) error {
	if err == nil {
		return nil
	}
	return err.Wrapped0()
}

// New creates an R from a string.
func New(s string) R {
	e := errors.New(s)
	return err{e: e, bstack: captureStack(e)}
}

// Errorf creates an R from a format string.
func Errorf(format string, a ...interface{}) R {
	e := fmt.Errorf(format, a...)
	return err{e: e, bstack: captureStack(e)}
}

// E converts a native error to an R, nil stays nil.
func E(e error) R {
	if e == nil {
		return nil
	}
	return err{e: e, bstack: captureStack(e)}
}

// ErrorType is a family of error codes, typically one per package.
type ErrorType struct {
	Name  string
	Codes []*ErrorCode
}

// NewErrorType creates a new family of error codes.
func NewErrorType(name string) ErrorType {
	return ErrorType{Name: name}
}

// ErrorCode identifies one specific failure within an ErrorType.
type ErrorCode struct {
	Detail string
	Number int
	Type   *ErrorType
}

// Code creates a new ErrorCode belonging to this type.
func (t *ErrorType) Code(detail string) *ErrorCode {
	return t.CodeWithNumber(detail, -1)
}

// CodeWithNumber creates a new ErrorCode carrying a numeric code, for example
// a wire reject code.
func (t *ErrorType) CodeWithNumber(detail string, number int) *ErrorCode {
	c := &ErrorCode{Detail: detail, Number: number, Type: t}
	t.Codes = append(t.Codes, c)
	return c
}

type codedErr struct {
	code  *ErrorCode
	info  string
	inner R
}

func (c *codedErr) Error() string {
	msg := c.code.Detail
	if c.info != "" {
		msg += ": " + c.info
	}
	if c.inner != nil {
		msg += ": " + c.inner.Message()
	}
	return msg
}

// New creates an R carrying this code, info and inner may be empty.
func (c *ErrorCode) New(info string, inner R) R {
	e := &codedErr{code: c, info: info, inner: inner}
	return err{e: e, bstack: captureStack(e)}
}

// Default creates an R carrying this code and no additional information.
func (c *ErrorCode) Default() R {
	return c.New("", nil)
}

// Is reports whether e carries this code.
func (c *ErrorCode) Is(e R) bool {
	if e == nil {
		return false
	}
	ce, ok := e.Wrapped0().(*codedErr)
	return ok && ce.code == c
}

func (c *ErrorCode) String() string {
	return fmt.Sprintf("%s.%s", c.Type.Name, c.Detail)
}

// GenericErrorType holds error codes which are not specific to any package.
var GenericErrorType = NewErrorType("er.GenericErrorType")

// LoopBreak is returned from an iteration callback to stop the iteration
// early without reporting an error.
var LoopBreak = GenericErrorType.Code("er.LoopBreak")

// IsLoopBreak reports whether e is a LoopBreak.
func IsLoopBreak(e R) bool {
	return LoopBreak.Is(e)
}
