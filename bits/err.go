package bits

import (
	"strconv"

	"github.com/ezrec/rvcsr/translate"
)

var f = translate.From

// ErrSpan is the panic value for a bit span outside [0,LAST] or reversed.
type ErrSpan Span

func (err ErrSpan) Error() string {
	start := strconv.FormatUint(uint64(err.Start), 10)
	end := strconv.FormatUint(uint64(err.End), 10)
	return f("invalid bit span start %v end %v", start, end)
}
