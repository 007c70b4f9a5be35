package csr

import (
	"strconv"
	"strings"
)

// NO_ADDRESS is the address of catalogue entries that are layouts, not CSRs.
const NO_ADDRESS = -1

// Entry is one catalogue record.
//
// A family entry (Count > 0) stands for Count consecutive registers
// named Names[0] followed by the member number, starting at First, as in
// pmpaddr0 through pmpaddr63.
type Entry struct {
	Names   []string // Canonical name first, then aliases.
	Address int      // CSR address, or NO_ADDRESS.
	First   int      // Number of the first family member.
	Count   int      // Family size, 0 for a single register.
	Format  *Format  // nil for registers that are catalogued but not decoded.
	Group   string
}

// Implemented is true if the entry has a decoder.
func (ent *Entry) Implemented() bool {
	return ent.Format != nil
}

// Family is true if the entry stands for a numbered register family.
func (ent *Entry) Family() bool {
	return ent.Count > 0
}

// Members returns the number of registers the entry stands for.
func (ent *Entry) Members() int {
	if ent.Family() {
		return ent.Count
	}
	return 1
}

// Name returns the canonical name of the entry, as in "pmpaddr0-63".
func (ent *Entry) Name() string {
	if !ent.Family() {
		return ent.Names[0]
	}
	return ent.Names[0] + strconv.Itoa(ent.First) + "-" + strconv.Itoa(ent.First+ent.Count-1)
}

// MemberName returns the name of the offset'th member.
func (ent *Entry) MemberName(offset int) string {
	if !ent.Family() {
		return ent.Names[0]
	}
	return ent.Names[0] + strconv.Itoa(ent.First+offset)
}

// MemberAddress returns the CSR address of the offset'th member.
func (ent *Entry) MemberAddress(offset int) int {
	if ent.Address == NO_ADDRESS {
		return NO_ADDRESS
	}
	return ent.Address + offset
}

// Contains is true if address is one of the entry's CSR addresses.
func (ent *Entry) Contains(address int) bool {
	if ent.Address == NO_ADDRESS {
		return false
	}
	return address >= ent.Address && address < ent.Address+ent.Members()
}

// String returns the listing line of the entry.
func (ent *Entry) String() string {
	addr := "-"
	if ent.Address != NO_ADDRESS {
		addr = "0x" + strconv.FormatInt(int64(ent.Address), 16)
		if ent.Family() {
			addr += "-0x" + strconv.FormatInt(int64(ent.MemberAddress(ent.Count-1)), 16)
		}
	}

	text := addr + " " + ent.Name()
	if len(ent.Names) > 1 {
		text += " (" + strings.Join(ent.Names[1:], ", ") + ")"
	}
	if !ent.Implemented() {
		text += " " + f("[not supported]")
	}

	return text
}

// keys returns the lookup names of every member, in lower case.
func (ent *Entry) keys() (keys map[string]int) {
	keys = map[string]int{}
	for offset := range ent.Members() {
		if ent.Family() {
			keys[strings.ToLower(ent.MemberName(offset))] = offset
			continue
		}
		for _, name := range ent.Names {
			keys[strings.ToLower(name)] = offset
		}
	}
	return
}

func register(address int, fm *Format, names ...string) *Entry {
	return &Entry{Names: names, Address: address, Format: fm}
}

func family(address int, prefix string, first, count int, fm *Format) *Entry {
	return &Entry{Names: []string{prefix}, Address: address, First: first, Count: count, Format: fm}
}

func unsupported(address int, names ...string) *Entry {
	return &Entry{Names: names, Address: address}
}

func layout(fm *Format, names ...string) *Entry {
	return &Entry{Names: names, Address: NO_ADDRESS, Format: fm}
}

func group(name string, entries ...*Entry) []*Entry {
	for _, ent := range entries {
		ent.Group = name
	}
	return entries
}
