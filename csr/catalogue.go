package csr

import (
	"slices"
	"strconv"

	"github.com/ezrec/rvcsr/field"
)

// Decoder shorthands of the catalogue.
var (
	bin     = field.Bin
	hex     = field.Hex
	dec     = field.Dec
	boolean = field.Bool
	arch    = field.Arch
	priv    = field.Priv
	atp     = field.Atp
	tvec    = field.Tvec
	cause   = field.ExcCode
	xs      = field.ContextStatus
	frm     = field.RoundingMode
	pmpcfg  = field.PmpCfg
	opcode  = field.Opcode

	rsh      = field.RSh
	ppn      = field.Ppn
	reserved = field.Reserved
)

// Interrupt causes, by the prefix of their enable and pending bits.
var interruptNames = map[uint]string{
	1:  "SS",
	2:  "VSS",
	3:  "MS",
	5:  "ST",
	6:  "VST",
	7:  "MT",
	9:  "SE",
	10: "VSE",
	11: "ME",
	12: "SGE",
	13: "LCOF",
}

// interrupts returns a layout with one bit per interrupt cause, named
// as in SSIE for suffix "E" and SSIP for suffix "P".
func interrupts(suffix string, causes ...uint) (fm *Format) {
	fm = NewFormat()
	for _, code := range causes {
		fm.Bit(interruptNames[code]+"I"+suffix, code, bin)
	}
	return
}

// counters returns the counter enable layout: HPM31 down to HPM3, then
// IR, TM and CY unless the bit is listed in skip.
func counters(skip ...uint) (fm *Format) {
	fm = NewFormat()
	for index := uint(31); index >= 3; index-- {
		fm.Bit("HPM"+strconv.Itoa(int(index)), index, bin)
	}
	low := []struct {
		name  string
		index uint
	}{{"IR", 2}, {"TM", 1}, {"CY", 0}}
	for _, counter := range low {
		if slices.Contains(skip, counter.index) {
			continue
		}
		fm.Bit(counter.name, counter.index, bin)
	}
	return
}

// trapCause is the layout of the scause, vscause and mcause registers.
//
// CODE deliberately spans the whole register including the INTERRUPT
// bit, so that the exception code decoder sees the interrupt flag.
func trapCause() *Format {
	return NewFormat().
		Bit("INTERRUPT", 63, boolean).
		Overlay("CODE", 0, 63, cause)
}

// trapVector is the layout of the stvec, vstvec and mtvec registers.
func trapVector() *Format {
	return NewFormat().
		Field("BASE", 2, 63, rsh(2, hex)).
		Field("MODE", 0, 1, tvec)
}

// addressTranslation is the layout of the satp and vsatp registers.
func addressTranslation() *Format {
	return NewFormat().
		Field("MODE", 60, 63, atp).
		Field("ASID", 44, 59, hex).
		Field("PPN", 0, 43, rsh(field.PAGE_SHIFT, hex))
}
