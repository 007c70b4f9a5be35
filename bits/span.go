package bits

import (
	"fmt"
)

// Span is an inclusive range of bit positions, with Start <= End <= LAST.
type Span struct {
	Start uint
	End   uint
}

// NewSpan returns the span [start,end], and panics if the span is invalid.
func NewSpan(start, end uint) Span {
	span := Span{Start: start, End: end}
	if err := span.Valid(); err != nil {
		panic(err)
	}

	return span
}

// Bit returns the single bit span [index,index].
func Bit(index uint) Span {
	return NewSpan(index, index)
}

// Valid returns nil if the span fits in a 64-bit value.
func (span Span) Valid() error {
	if span.Start > span.End || span.End > LAST {
		return ErrSpan(span)
	}
	return nil
}

// Width returns the number of bits in the span.
func (span Span) Width() uint {
	return span.End - span.Start + 1
}

// Mask returns the span's bits in their register position.
func (span Span) Mask() uint64 {
	return (ALL_SET >> (LAST - span.End + span.Start)) << span.Start
}

// Extract returns the span's bits of value, right aligned.
func (span Span) Extract(value uint64) uint64 {
	if span.Start == span.End {
		return GetBit(value, span.Start)
	}
	return GetBits(value, span.Start, span.End)
}

// Overlaps is true if both spans share at least one bit.
func (span Span) Overlaps(other Span) bool {
	return span.Start <= other.End && other.Start <= span.End
}

// String returns the span as written in register manuals, high bit first.
func (span Span) String() string {
	if span.Start == span.End {
		return fmt.Sprintf("[%d]", span.Start)
	}
	return fmt.Sprintf("[%d:%d]", span.End, span.Start)
}
