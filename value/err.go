package value

import (
	"github.com/ezrec/rvcsr/translate"
)

var f = translate.From

// ErrValue is text that is neither a literal nor an integer expression.
type ErrValue string

func (err ErrValue) Error() string {
	return f("'%v' is not a valid value", string(err))
}

// ErrRange is an expression result that does not fit in 64 bits.
type ErrRange string

func (err ErrRange) Error() string {
	return f("'%v' is out of the 64-bit range", string(err))
}

// ErrExpression is a failed expression evaluation.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err ErrExpression) Error() string {
	return f("expression '%v': %v", err.Expr, err.Err)
}

func (err ErrExpression) Unwrap() error {
	return err.Err
}
