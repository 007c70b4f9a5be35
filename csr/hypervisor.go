package csr

import (
	"slices"

	"github.com/ezrec/rvcsr/field"
)

// Synchronous exceptions, by cause code.
func exceptions(zero ...uint) (fm *Format) {
	fm = NewFormat()
	for _, exc := range []struct {
		name string
		code uint
	}{
		{"MISALIGNED_FETCH", 0},
		{"FETCH_ACCESS", 1},
		{"ILLEGAL_INSTRUCTION", 2},
		{"BREAKPOINT", 3},
		{"MISALIGNED_LOAD", 4},
		{"LOAD_ACCESS", 5},
		{"MISALIGNED_STORE", 6},
		{"STORE_ACCESS", 7},
		{"USER_ECALL", 8},
		{"SUPERVISOR_ECALL", 9},
		{"VIRTUAL_SUPERVISOR_ECALL", 10},
		{"MACHINE_ECALL", 11},
		{"FETCH_PAGE_FAULT", 12},
		{"LOAD_PAGE_FAULT", 13},
		{"STORE_PAGE_FAULT", 15},
		{"FETCH_GUEST_PAGE_FAULT", 20},
		{"LOAD_GUEST_PAGE_FAULT", 21},
		{"VIRTUAL_INSTRUCTION", 22},
		{"STORE_GUEST_PAGE_FAULT", 23},
	} {
		decoder := bin
		if slices.Contains(zero, exc.code) {
			decoder = reserved(0, bin)
		}
		fm.Bit(exc.name, exc.code, decoder)
	}
	return
}

var formatHstatus = NewFormat().
	Bit("VSBE", 5, bin).
	Bit("GVA", 6, bin).
	Bit("SPV", 7, bin).
	Bit("SPVP", 8, priv).
	Bit("HU", 9, bin).
	Field("VGEIN", 12, 17, dec).
	Bit("VTVM", 20, bin).
	Bit("VTW", 21, bin).
	Bit("VTSR", 22, bin).
	Field("VSXL", 32, 33, arch)

// Bits of supervisor interrupts are read-only zero in hideleg.
var formatHideleg = NewFormat().
	Bit("SSI", 1, reserved(0, bin)).
	Bit("VSSI", 2, bin).
	Bit("STI", 5, reserved(0, bin)).
	Bit("VSTI", 6, bin).
	Bit("SEI", 9, reserved(0, bin)).
	Bit("VSEI", 10, bin).
	Bit("SGEI", 12, reserved(0, bin)).
	Field("CUSTOM", 16, 63, hex)

var formatHgatp = NewFormat().
	Field("MODE", 60, 63, atp).
	Field("VMID", 44, 57, hex).
	Field("PPN", 0, 43, rsh(field.PAGE_SHIFT, hex))

func environment() *Format {
	return NewFormat().
		Bit("STCE", 63, bin).
		Bit("PBMTE", 62, bin).
		Bit("ADUE", 61, bin).
		Bit("CBZE", 7, bin).
		Bit("CBCFE", 6, bin).
		Field("CBIE", 4, 5, bin).
		Bit("FIOM", 0, bin)
}

func guestExternal() *Format {
	return NewFormat().
		Field("GEI", 1, 63, hex).
		Bit("RESERVED", 0, reserved(0, bin))
}

var hypervisor = group("hypervisor",
	register(0x600, formatHstatus, "hstatus"),
	register(0x602, exceptions(9, 10, 11, 20, 21, 22, 23), "hedeleg"),
	register(0x603, formatHideleg, "hideleg"),
	register(0x604, interrupts("E", 2, 6, 10, 12), "hie"),
	register(0x605, single("HTIMEDELTA", hex), "htimedelta"),
	register(0x606, counters(), "hcounteren"),
	register(0x607, guestExternal(), "hgeie"),
	register(0x60a, environment(), "henvcfg"),
	register(0x643, single("HTVAL", rsh(2, hex)), "htval"),
	register(0x644, interrupts("P", 2, 6, 10, 12), "hip"),
	register(0x645, interrupts("P", 2, 6, 10), "hvip"),
	register(0x64a, single("HTINST", hex), "htinst"),
	register(0x680, formatHgatp, "hgatp"),
	unsupported(0x6a8, "hcontext"),
	register(0xe12, guestExternal(), "hgeip"),
)
