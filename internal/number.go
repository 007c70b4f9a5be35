package internal

import (
	"strconv"
	"strings"
)

// ParseUint parses an unsigned 64-bit literal.
//
// Accepted forms are 0x hexadecimal, 0b binary, 0o octal and plain
// decimal, with optional '_' digit separators. A leading zero does not
// select octal.
func ParseUint(text string) (value uint64, err error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	digits := lower
	base := 10

	switch {
	case strings.HasPrefix(lower, "0x"):
		digits, base = lower[2:], 16
	case strings.HasPrefix(lower, "0b"):
		digits, base = lower[2:], 2
	case strings.HasPrefix(lower, "0o"):
		digits, base = lower[2:], 8
	}

	digits = strings.ReplaceAll(digits, "_", "")
	if len(digits) == 0 {
		err = &strconv.NumError{Func: "ParseUint", Num: text, Err: strconv.ErrSyntax}
		return
	}

	value, err = strconv.ParseUint(digits, base, 64)
	return
}
