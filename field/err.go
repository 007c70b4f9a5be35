package field

import (
	"strconv"
	"strings"

	"github.com/ezrec/rvcsr/translate"
)

var f = translate.From

// WARNING prefixes the text of every value a decoder could not represent.
const WARNING = "WARNING: "

func warning(format string, args ...any) string {
	return WARNING + f(format, args...)
}

// IsWarning is true if text carries a decoder warning.
func IsWarning(text string) bool {
	return strings.Contains(text, WARNING)
}

// ErrScheme is the panic value for an unsupported virtual memory scheme.
type ErrScheme Scheme

func (err ErrScheme) Error() string {
	return f("unsupported virtual memory scheme sv%v", strconv.Itoa(int(err)))
}

// ErrShift is the panic value for a shift that empties the value.
type ErrShift uint

func (err ErrShift) Error() string {
	return f("shift of %v bits is too wide", strconv.FormatUint(uint64(err), 10))
}
