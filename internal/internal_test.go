package internal

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var first []int
	for val := range seq {
		first = append(first, val)
		if val == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, first)
}

func TestIterSlicesConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSlicesConcat([]string{"misa"}, nil, []string{"satp", "sepc"})
	assert.Equal([]string{"misa", "satp", "sepc"}, slices.Collect(seq))
}

func TestParseUint(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		value uint64
	}){
		{"0", 0},
		{"768", 768},
		{"0300", 300},
		{"0x300", 0x300},
		{"0X34A", 0x34a},
		{"0b1010", 0b1010},
		{"0o17", 0o17},
		{"0x8000_0000_0014_1101", 0x8000000000141101},
		{" 42 ", 42},
		{"0xffffffffffffffff", 0xffffffffffffffff},
	}

	for _, entry := range table {
		value, err := ParseUint(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.value, value, entry.text)
	}

	for _, text := range []string{"", "0x", "misa", "0b102", "-1", "0x1_0000_0000_0000_0000"} {
		_, err := ParseUint(text)
		assert.Error(err, text)
	}

	_, err := ParseUint("0x")
	assert.True(errors.Is(err, strconv.ErrSyntax))
}
