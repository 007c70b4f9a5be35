package csr

import (
	"slices"
	"strconv"

	"github.com/ezrec/rvcsr/field"
)

func pageTableEntry(scheme field.Scheme) (fm *Format) {
	fm = NewFormat().
		Bit("VALID", 0, bin).
		Bit("READ", 1, bin).
		Bit("WRITE", 2, bin).
		Bit("EXEC", 3, bin).
		Bit("USER", 4, bin).
		Bit("GLOBAL", 5, bin).
		Bit("ACCESSED", 6, bin).
		Bit("DIRTY", 7, bin).
		Field("RSW", 8, 9, bin)

	if scheme == field.SCHEME_SV32 {
		return fm.Field("PPN", 10, 31, ppn(scheme))
	}

	return fm.
		Field("PPN", 10, 53, ppn(scheme)).
		Field("RESERVED", 54, 60, reserved(0, hex)).
		Field("PBMT", 61, 62, bin).
		Bit("N", 63, bin)
}

// virtualAddress splits the virtual page number into one field per level.
func virtualAddress(scheme field.Scheme) (fm *Format) {
	fm = NewFormat().Field("PAGE_OFFSET", 0, field.PAGE_SHIFT-1, hex)

	var vpnBits uint = 9
	var levels uint
	switch scheme {
	case field.SCHEME_SV32:
		vpnBits, levels = 10, 2
	case field.SCHEME_SV39:
		levels = 3
	case field.SCHEME_SV48:
		levels = 4
	case field.SCHEME_SV57:
		levels = 5
	default:
		panic(field.ErrScheme(scheme))
	}

	// A VPN field is displayed as an index, then as the byte offset of
	// its page table entry.
	shift := uint(3)
	if scheme == field.SCHEME_SV32 {
		shift = 2
	}

	for level := range levels {
		start := field.PAGE_SHIFT + level*vpnBits
		fm.Field("VPN"+strconv.Itoa(int(level)), start, start+vpnBits-1, rsh(shift, hex))
	}

	return
}

func physicalAddress(scheme field.Scheme) *Format {
	end := uint(55)
	if scheme == field.SCHEME_SV32 {
		end = 33
	}
	return NewFormat().
		Field("PAGE_OFFSET", 0, field.PAGE_SHIFT-1, hex).
		Field("PPN", field.PAGE_SHIFT, end, ppn(scheme))
}

func schemeLayouts(scheme field.Scheme) []*Entry {
	name := "sv" + strconv.Itoa(int(scheme))
	return []*Entry{
		layout(pageTableEntry(scheme), "pte_"+name, name+"_pte"),
		layout(virtualAddress(scheme), "vaddr_"+name, name+"_vaddr"),
		layout(physicalAddress(scheme), "paddr_"+name, name+"_paddr"),
	}
}

var vmem = group("virtual memory", slices.Concat(
	schemeLayouts(field.SCHEME_SV32),
	schemeLayouts(field.SCHEME_SV39),
	schemeLayouts(field.SCHEME_SV48),
	schemeLayouts(field.SCHEME_SV57),
)...)
