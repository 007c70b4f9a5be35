package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		value uint64
	}){
		{"0", 0},
		{"768", 768},
		{"0x8000000000141101", 0x8000000000141101},
		{"0x8000_0000_0014_1101", 0x8000000000141101},
		{"0b1010", 0b1010},
		{"0o17", 0o17},
		{"-1", 0xffffffffffffffff},
		{"-0x8000000000000000", 0x8000000000000000},
		{"$(1<<63 | 0x141101)", 0x8000000000141101},
		{" $( 2 + 3 ) ", 5},
		{"1 << 12", 0x1000},
		{"bit(63) | bit(0)", 0x8000000000000001},
		{"mask(4, 7)", 0xf0},
		{"mask(0, 63)", 0xffffffffffffffff},
		{"bits(0x1234, 4, 11)", 0x23},
		{"$(bits(-1, 62, 63))", 0b11},
		{"~0", 0xffffffffffffffff},
		{"$(1) | $(2)", 3},
		{"$(1 << 4) + $(bit(0))", 17},
		{"$($(1) + 1) * 2", 4},
	}

	for _, entry := range table {
		value, err := Parse(entry.text)
		if assert.NoError(err, entry.text) {
			assert.Equal(entry.value, value, entry.text)
		}
	}
}

func TestParser_Define(t *testing.T) {
	assert := assert.New(t)

	ps := &Parser{Define: map[string]uint64{
		"RV64":  2,
		"ALL":   0xffffffffffffffff,
		"LOWER": 0x141101,
	}}

	value, err := ps.Parse("$(RV64 << 62 | LOWER)")
	assert.NoError(err)
	assert.Equal(uint64(0x8000000000141101), value)

	value, err = ps.Parse("ALL")
	assert.NoError(err)
	assert.Equal(uint64(0xffffffffffffffff), value)

	_, err = Parse("RV64")
	var expr ErrExpression
	assert.True(errors.As(err, &expr))
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("")
	assert.Equal(ErrValue(""), err)

	_, err = Parse("$()")
	assert.Equal(ErrValue("$()"), err)

	_, err = Parse("'misa'")
	assert.Equal(ErrValue("'misa'"), err)

	_, err = Parse("1 << 64")
	assert.Equal(ErrRange("1 << 64"), err)

	_, err = Parse("-(1 << 63) - 1")
	assert.Equal(ErrRange("-(1 << 63) - 1"), err)

	for _, text := range []string{"0x", "1 +", "bit(64)", "mask(7, 4)", "bits(1)", "notavalue"} {
		_, err = Parse(text)
		var expr ErrExpression
		assert.True(errors.As(err, &expr), text)
	}
}
