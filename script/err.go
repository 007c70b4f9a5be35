package script

import (
	"errors"
	"strconv"

	"github.com/ezrec/rvcsr/translate"
)

var f = translate.From

var (
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrDirective       = errors.New(f("unknown directive"))
	ErrValueMissing    = errors.New(f("value missing"))
)

// ErrSyntax is a batch line that could not be parsed.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime is a batch line that could not be decoded.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err ErrRuntime) Error() string {
	return f("line %v: %v", strconv.Itoa(err.LineNo), err.Err)
}

func (err ErrRuntime) Unwrap() error {
	return err.Err
}
