package bits

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBit(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value uint64
		index uint
		bit   uint64
	}){
		{0b0000_0010, 1, 1},
		{0b1111_1011, 2, 0},
		{0x4000, 14, 1},
		{0xfdff, 9, 0},
		{1 << 63, 63, 1},
		{ALL_SET >> 1, 63, 0},
		{1, 0, 1},
	}

	for _, entry := range table {
		assert.Equal(entry.bit, GetBit(entry.value, entry.index), fmt.Sprintf("%+v", entry))
	}
}

func TestGetBits(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value uint64
		start uint
		end   uint
		bits  uint64
	}){
		{0b000_1100, 2, 3, 3},
		{0b011_1100, 2, 5, 0xf},
		{0x4756, 2, 5, 5},
		{0x8000000000141101, 62, 63, 0b10},
		{ALL_SET, 0, 63, ALL_SET},
		{0x1234_5678_9abc_def0, 32, 47, 0x5678},
	}

	for _, entry := range table {
		assert.Equal(entry.bits, GetBits(entry.value, entry.start, entry.end), fmt.Sprintf("%+v", entry))
	}
}

func TestGetBits_Pattern(t *testing.T) {
	assert := assert.New(t)

	patterns := []uint64{0, 1, 0b101, 0x5555_5555_5555_5555, ALL_SET}

	for start := uint(0); start <= LAST; start++ {
		for end := start; end <= LAST; end++ {
			width := end - start + 1
			for _, pattern := range patterns {
				if width < WIDTH {
					pattern &= (uint64(1) << width) - 1
				}
				value := pattern << start
				assert.Equal(pattern, GetBits(value, start, end), "start %d end %d", start, end)
			}
		}
	}
}

func TestGetBits_SingleBit(t *testing.T) {
	assert := assert.New(t)

	values := []uint64{0, ALL_SET, 0x8000000000141101, 0xdead_beef_cafe_f00d}

	for _, value := range values {
		for index := uint(0); index <= LAST; index++ {
			assert.Equal(GetBit(value, index), GetBits(value, index, index))
		}
	}
}

func TestGetBits_Panics(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { GetBits(3, 7, 4) })
	assert.Panics(func() { GetBits(3, 0, 64) })
	assert.Panics(func() { GetBit(3, 64) })
}
