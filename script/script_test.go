package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvcsr/csr"
	"github.com/ezrec/rvcsr/value"
)

func TestScript(t *testing.T) {
	assert := assert.New(t)

	input := `
; register dump
.equ RV64 2
.equ EXT  0x141101

misa    $(RV64 << 62 | EXT)   # boot hart
mhartid 0
0x3b1   0x1234
`

	scr := &Script{}
	err := scr.Parse(strings.NewReader(input))
	if !assert.NoError(err) {
		return
	}

	assert.Equal(map[string]uint64{"RV64": 2, "EXT": 0x141101}, scr.Equate)
	assert.Equal([]Request{
		{LineNo: 6, Id: "misa", Value: 0x8000000000141101},
		{LineNo: 7, Id: "mhartid", Value: 0},
		{LineNo: 8, Id: "0x3b1", Value: 0x1234},
	}, scr.Requests)

	var buf bytes.Buffer
	warnings, err := scr.Run(&buf, csr.Default)
	assert.NoError(err)
	assert.Equal(0, warnings)

	out := buf.String()
	assert.True(strings.HasPrefix(out, "misa\n----\nA: 0b1\n"))
	assert.Contains(out, "MXL: RV64\n\nmhartid: 0x0\n\npmpaddr1\n--------\n")
	assert.True(strings.HasSuffix(out, "ADDRESS: 0x1234 -> 0x48d0\n\n"))
}

func TestScript_Predefine(t *testing.T) {
	assert := assert.New(t)

	scr := &Script{}
	scr.Predefine("BASE", 0x80000000)

	assert.NoError(scr.Parse(strings.NewReader("mepc $(BASE + 4)\n")))
	assert.Equal([]Request{{LineNo: 1, Id: "mepc", Value: 0x80000004}}, scr.Requests)

	assert.NoError(scr.Parse(strings.NewReader("mtval BASE\n")))
	assert.Equal([]Request{{LineNo: 1, Id: "mtval", Value: 0x80000000}}, scr.Requests)

	err := scr.Parse(strings.NewReader(".equ BASE 0\n"))
	assert.Equal(ErrSyntax{LineNo: 1, Line: ".equ BASE 0", Err: ErrEquateDuplicate}, err)
}

func TestScript_Warnings(t *testing.T) {
	assert := assert.New(t)

	scr := &Script{}
	assert.NoError(scr.Parse(strings.NewReader("satp 0x3000000000000000\nhideleg 0b10\n")))

	var buf bytes.Buffer
	warnings, err := scr.Run(&buf, csr.Default)
	assert.NoError(err)
	assert.Equal(2, warnings)
	assert.Contains(buf.String(), "MODE: WARNING: ")
}

func TestScript_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		input string
		err   error
	}){
		{".equ X", ErrSyntax{LineNo: 1, Line: ".equ X", Err: ErrEquateSyntax}},
		{".equ X 1\n.equ X 2", ErrSyntax{LineNo: 2, Line: ".equ X 2", Err: ErrEquateDuplicate}},
		{"\n.macro X", ErrSyntax{LineNo: 2, Line: ".macro X", Err: ErrDirective}},
		{"misa ; value", ErrSyntax{LineNo: 1, Line: "misa", Err: ErrValueMissing}},
	}

	for _, entry := range table {
		scr := &Script{}
		err := scr.Parse(strings.NewReader(entry.input))
		assert.Equal(entry.err, err, entry.input)
	}

	scr := &Script{}
	err := scr.Parse(strings.NewReader("misa notavalue"))
	var syntax ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal(1, syntax.LineNo)
	var expr value.ErrExpression
	assert.True(errors.As(err, &expr))

	assert.NoError(scr.Parse(strings.NewReader("mhartid 1\nnotareg 0\ndcsr 0\n")))
	var buf bytes.Buffer
	_, err = scr.Run(&buf, csr.Default)
	assert.Equal(ErrRuntime{LineNo: 2, Err: csr.ErrUnknown("notareg")}, err)
	assert.True(errors.Is(err, csr.ErrUnknown("notareg")))
	assert.Equal("mhartid: 0x1\n\n", buf.String())
}
