// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/rvcsr/bits"
)

// Decoder turns an extracted field value into display text.
//
// Only the members used by Kind are meaningful; the rest stay zero.
// Decoders are values and are safe to share.
type Decoder struct {
	Kind     Kind
	Shift    uint     // KIND_RIGHT_SHIFTED: bits omitted from the stored value.
	Expected uint64   // KIND_RESERVED: the only legal value.
	Scheme   Scheme   // KIND_PHYSICAL_PAGE_NUMBER: virtual memory scheme.
	Inner    *Decoder // KIND_RIGHT_SHIFTED, KIND_RESERVED: decoder of the value itself.
}

var (
	Bin           = Decoder{Kind: KIND_BINARY}
	Hex           = Decoder{Kind: KIND_HEX}
	Dec           = Decoder{Kind: KIND_DECIMAL}
	Bool          = Decoder{Kind: KIND_BOOLEAN}
	Arch          = Decoder{Kind: KIND_ARCHITECTURE}
	Priv          = Decoder{Kind: KIND_PRIVILEGE}
	Atp           = Decoder{Kind: KIND_TRANSLATION_MODE}
	Tvec          = Decoder{Kind: KIND_TRAP_VECTOR_MODE}
	ExcCode       = Decoder{Kind: KIND_EXCEPTION_CODE}
	ContextStatus = Decoder{Kind: KIND_CONTEXT_STATUS}
	RoundingMode  = Decoder{Kind: KIND_ROUNDING_MODE}
	PmpCfg        = Decoder{Kind: KIND_PMP_CONFIG}
	Opcode        = Decoder{Kind: KIND_OPCODE}
)

// Ppn returns the physical page number decoder of scheme.
func Ppn(scheme Scheme) Decoder {
	if _, ok := ppnGroups[scheme]; !ok {
		panic(ErrScheme(scheme))
	}
	return Decoder{Kind: KIND_PHYSICAL_PAGE_NUMBER, Scheme: scheme}
}

// RSh returns a decoder for a value stored shifted right by n bits.
func RSh(n uint, inner Decoder) Decoder {
	if n >= bits.WIDTH {
		panic(ErrShift(n))
	}
	return Decoder{Kind: KIND_RIGHT_SHIFTED, Shift: n, Inner: &inner}
}

// Reserved returns a decoder that flags any value other than expected.
func Reserved(expected uint64, inner Decoder) Decoder {
	return Decoder{Kind: KIND_RESERVED, Expected: expected, Inner: &inner}
}

// Decode returns the display text of value, a field of width bits.
//
// Values outside of the decoder's encoding decode to a warning.
func (dec Decoder) Decode(value uint64, width uint) (text string) {
	text, _ = dec.decode(value, width)
	return
}

// Check returns false if Decode would emit a warning for value.
func (dec Decoder) Check(value uint64, width uint) (ok bool) {
	_, ok = dec.decode(value, width)
	return
}

// String returns the decoder's rule, as in "right-shifted(2,hex)".
func (dec Decoder) String() string {
	switch dec.Kind {
	case KIND_RIGHT_SHIFTED:
		return fmt.Sprintf("%v(%d,%v)", dec.Kind, dec.Shift, dec.Inner)
	case KIND_RESERVED:
		return fmt.Sprintf("%v(%#x,%v)", dec.Kind, dec.Expected, dec.Inner)
	case KIND_PHYSICAL_PAGE_NUMBER:
		return fmt.Sprintf("%v(sv%d)", dec.Kind, int(dec.Scheme))
	}
	return dec.Kind.String()
}

func (dec Decoder) decode(value uint64, width uint) (text string, ok bool) {
	if dec.Kind.Wraps() && dec.Inner == nil {
		return warning("no decoder for %v", dec.Kind.String()), false
	}

	switch dec.Kind {
	case KIND_BINARY:
		return fmt.Sprintf("0b%0*b", int(width), value), true
	case KIND_HEX:
		return hex(value), true
	case KIND_DECIMAL:
		return strconv.FormatUint(value, 10), true
	case KIND_BOOLEAN:
		switch value {
		case 0:
			return "false", true
		case 1:
			return "true", true
		}
		return warning("could not represent %v as boolean", binary(value)), false
	case KIND_ARCHITECTURE:
		return lookup(architectures, value, "invalid architecture (%v)")
	case KIND_PRIVILEGE:
		return lookup(privileges, value, "invalid privilege (%v)")
	case KIND_TRANSLATION_MODE:
		return lookup(translationModes, value, "invalid address translation mode (%v)")
	case KIND_TRAP_VECTOR_MODE:
		return lookup(trapVectorModes, value, "invalid trap vector mode (%v)")
	case KIND_CONTEXT_STATUS:
		return lookup(contextStatus, value, "invalid context status (%v)")
	case KIND_ROUNDING_MODE:
		return lookup(roundingModes, value, "reserved rounding mode (%v)")
	case KIND_EXCEPTION_CODE:
		return decodeCause(value)
	case KIND_PHYSICAL_PAGE_NUMBER:
		return decodePpn(dec.Scheme, value)
	case KIND_PMP_CONFIG:
		return decodePmpCfg(value)
	case KIND_OPCODE:
		if name, found := opcodes[value]; found {
			return name, true
		}
		return warning("invalid base opcode (%v)", hex(value)), false
	case KIND_RIGHT_SHIFTED:
		shifted := width + dec.Shift
		if shifted > bits.WIDTH {
			shifted = bits.WIDTH
		}
		raw, rawOk := dec.Inner.decode(value, width)
		full, fullOk := dec.Inner.decode(value<<dec.Shift, shifted)
		return raw + " -> " + full, rawOk && fullOk
	case KIND_RESERVED:
		text, ok = dec.Inner.decode(value, width)
		if value != dec.Expected {
			text += " " + warning("reserved field should be %v", hex(dec.Expected))
			ok = false
		}
		return
	}

	return warning("no decoder for %v", dec.Kind.String()), false
}

func hex(value uint64) string {
	return "0x" + strconv.FormatUint(value, 16)
}

func binary(value uint64) string {
	return "0b" + strconv.FormatUint(value, 2)
}

func lookup(table map[uint64]string, value uint64, format string) (text string, ok bool) {
	text, ok = table[value]
	if !ok {
		text = warning(format, binary(value))
	}
	return
}

// decodeCause decodes a complete xcause value: bit 63 is the interrupt
// flag, bits 62-0 the cause code.
func decodeCause(value uint64) (text string, ok bool) {
	interrupt := bits.GetBit(value, bits.LAST)
	code := bits.GetBits(value, 0, bits.LAST-1)

	table := exceptionCauses
	format := "unknown exception code (%v)"
	if interrupt == 1 {
		table = interruptCauses
		format = "unknown interrupt code (%v)"
	}

	text, ok = table[code]
	if !ok {
		text = warning(format, strconv.FormatUint(code, 10))
	}
	return
}

// decodePpn splits a PPN into its per-level groups, then shows the
// physical address of the page.
func decodePpn(scheme Scheme, value uint64) (text string, ok bool) {
	groups, ok := ppnGroups[scheme]
	if !ok {
		return warning("unsupported virtual memory scheme (%v)", strconv.Itoa(int(scheme))), false
	}

	parts := make([]string, 0, len(groups)+2)
	for _, group := range groups {
		parts = append(parts, hex(group.Extract(value)))
	}
	parts = append(parts, "->", hex(value<<PAGE_SHIFT))

	return strings.Join(parts, " "), true
}

// decodePmpCfg decodes a single pmpXcfg byte.
func decodePmpCfg(value uint64) (text string, ok bool) {
	r := bits.GetBit(value, 0)
	w := bits.GetBit(value, 1)
	x := bits.GetBit(value, 2)
	a := bits.GetBits(value, 3, 4)
	l := bits.GetBit(value, 7)

	text = fmt.Sprintf("L=%d A=%v X=%d W=%d R=%d", l, pmpAddressModes[a], x, w, r)
	ok = true

	if reserved := value &^ 0b1001_1111; reserved != 0 {
		text += " " + warning("reserved bits set (%v)", binary(reserved))
		ok = false
	}
	if w == 1 && r == 0 {
		text += " " + warning("reserved permission W without R")
		ok = false
	}

	return
}
