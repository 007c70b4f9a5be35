// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package bits extracts single bits and inclusive bit ranges from 64-bit
// register values.
//
// Bit positions count from 0 at the least significant bit. Positions are
// fixed when a register layout is written, never taken from user input, so
// an out of range position is a programming error and panics.
package bits

const (
	WIDTH   = 64        // Width of a raw register value in bits.
	LAST    = WIDTH - 1 // Index of the most significant bit.
	ALL_SET = ^uint64(0)
)

// GetBit returns bit index of value, as 0 or 1.
func GetBit(value uint64, index uint) uint64 {
	if index > LAST {
		panic(ErrSpan{Start: index, End: index})
	}

	return (value << (LAST - index)) >> LAST
}

// GetBits returns bits [start,end] of value, right aligned to bit 0.
//
// The bits above end are shifted out to the left, then the result is
// shifted back right so that start lands on bit 0.
func GetBits(value uint64, start, end uint) uint64 {
	if start > end || end > LAST {
		panic(ErrSpan{Start: start, End: end})
	}

	return (value << (LAST - end)) >> (LAST - end + start)
}
