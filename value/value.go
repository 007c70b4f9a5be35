// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package value parses the raw register values given on the command line
// and in batch files.
//
// A value is either a literal (decimal, 0x, 0b or 0o, with optional '_'
// separators) or an integer expression evaluated as Starlark, in which
// any group may be written as $(...). Expressions see the equates of the
// Parser and the builtins bit(n), mask(start, end) and
// bits(value, start, end). Negative results wrap to 64 bits.
package value

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/rvcsr/bits"
	"github.com/ezrec/rvcsr/internal"
)

// Parser parses values with a set of named equates.
type Parser struct {
	Define map[string]uint64
}

// Parse parses text with no equates.
func Parse(text string) (value uint64, err error) {
	return (&Parser{}).Parse(text)
}

// Parse returns the 64-bit value of text.
func (ps *Parser) Parse(text string) (value uint64, err error) {
	expr := strings.TrimSpace(text)

	value, err = internal.ParseUint(expr)
	if err == nil {
		return
	}

	// $(...) groups are plain parentheses to Starlark.
	expr = strings.ReplaceAll(expr, "$(", "(")
	if len(expr) == 0 {
		err = ErrValue(text)
		return
	}

	return ps.eval(text, expr)
}

// eval evaluates a Starlark integer expression.
func (ps *Parser) eval(text string, expr string) (value uint64, err error) {
	thread := starlark.Thread{Name: "value"}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{
		"bit":  starlark.NewBuiltin("bit", builtinBit),
		"bits": starlark.NewBuiltin("bits", builtinBits),
		"mask": starlark.NewBuiltin("mask", builtinMask),
	}
	for key, val := range ps.Define {
		pred[key] = starlark.MakeUint64(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "value", prog, pred)
	if err != nil {
		err = ErrExpression{Expr: expr, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrValue(text)
		return
	}

	return toUint64(text, st_int)
}

func toUint64(text string, st_int starlark.Int) (value uint64, err error) {
	if value, ok := st_int.Uint64(); ok {
		return value, nil
	}
	if signed, ok := st_int.Int64(); ok {
		return uint64(signed), nil
	}
	err = ErrRange(text)
	return
}

func unpackSpan(fn *starlark.Builtin, start, end starlark.Int) (span bits.Span, err error) {
	for _, arg := range []starlark.Int{start, end} {
		if index, ok := arg.Uint64(); !ok || index > bits.LAST {
			err = ErrExpression{Expr: fn.Name(), Err: ErrRange(arg.String())}
			return
		}
	}

	lo, _ := start.Uint64()
	hi, _ := end.Uint64()
	span = bits.Span{Start: uint(lo), End: uint(hi)}
	if err = span.Valid(); err != nil {
		err = ErrExpression{Expr: fn.Name(), Err: err}
	}
	return
}

// bit(n) is 1 << n.
func builtinBit(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var index starlark.Int
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &index); err != nil {
		return nil, err
	}
	span, err := unpackSpan(fn, index, index)
	if err != nil {
		return nil, err
	}
	return starlark.MakeUint64(span.Mask()), nil
}

// mask(start, end) has bits start through end set.
func builtinMask(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var start, end starlark.Int
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &start, &end); err != nil {
		return nil, err
	}
	span, err := unpackSpan(fn, start, end)
	if err != nil {
		return nil, err
	}
	return starlark.MakeUint64(span.Mask()), nil
}

// bits(value, start, end) extracts bits start through end of value.
func builtinBits(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var raw, start, end starlark.Int
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 3, &raw, &start, &end); err != nil {
		return nil, err
	}
	value, err := toUint64(raw.String(), raw)
	if err != nil {
		return nil, err
	}
	span, err := unpackSpan(fn, start, end)
	if err != nil {
		return nil, err
	}
	return starlark.MakeUint64(span.Extract(value)), nil
}
