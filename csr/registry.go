package csr

import (
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/rvcsr/internal"
)

// Descriptor is a resolved register: its name, address and layout.
type Descriptor struct {
	Name    string
	Address int // NO_ADDRESS for layouts.
	Format  *Format
}

// New decodes raw into a register report.
func (desc Descriptor) New(raw uint64) *Register {
	return desc.Format.New(desc.Name, raw)
}

type member struct {
	entry  *Entry
	offset int
}

// Registry is an immutable catalogue of registers, safe for concurrent use.
type Registry struct {
	entries []*Entry
	names   map[string]member
}

// NewRegistry builds a registry from entries.
//
// Duplicate names, overlapping addresses and invalid formats are
// catalogue bugs and panic with ErrCatalogue.
func NewRegistry(entries iter.Seq[*Entry]) (reg *Registry) {
	reg = &Registry{
		names: map[string]member{},
	}

	for ent := range entries {
		if len(ent.Names) == 0 {
			panic(ErrCatalogue{Reason: "entry has no name"})
		}

		if ent.Format != nil {
			if err := ent.Format.Validate(); err != nil {
				panic(ErrCatalogue{Name: ent.Name(), Reason: err.Error()})
			}
		}

		for key, offset := range ent.keys() {
			if other, found := reg.names[key]; found {
				panic(ErrCatalogue{Name: key, Reason: "name also used by " + other.entry.Name()})
			}
			reg.names[key] = member{entry: ent, offset: offset}
		}

		if ent.Address != NO_ADDRESS {
			for _, other := range reg.entries {
				if other.Contains(ent.Address) || ent.Contains(other.Address) {
					panic(ErrCatalogue{Name: ent.Name(), Reason: "address overlaps " + other.Name()})
				}
			}
		}

		reg.entries = append(reg.entries, ent)
	}

	return
}

// Resolve returns the descriptor of id.
//
// id is first matched against names and aliases, ignoring case, then
// read as a numeric CSR address. Unknown identifiers return ErrUnknown,
// and catalogued registers without a decoder return ErrUnimplemented.
// Both errors carry id as given.
func (reg *Registry) Resolve(id string) (desc Descriptor, err error) {
	key := strings.ToLower(strings.TrimSpace(id))

	mem, found := reg.names[key]
	if !found {
		mem, found = reg.lookup(key)
	}
	if !found {
		err = ErrUnknown(id)
		return
	}

	ent := mem.entry
	if !ent.Implemented() {
		err = ErrUnimplemented(id)
		return
	}

	desc = Descriptor{
		Name:    ent.MemberName(mem.offset),
		Address: ent.MemberAddress(mem.offset),
		Format:  ent.Format,
	}
	return
}

func (reg *Registry) lookup(key string) (mem member, found bool) {
	value, err := internal.ParseUint(key)
	if err != nil || value > 0xfff {
		return
	}

	address := int(value)
	for _, ent := range reg.entries {
		if ent.Contains(address) {
			mem = member{entry: ent, offset: address - ent.Address}
			found = true
			return
		}
	}

	return
}

// Decode resolves id and decodes raw through its layout.
func (reg *Registry) Decode(id string, raw uint64) (out *Register, err error) {
	desc, err := reg.Resolve(id)
	if err != nil {
		return
	}
	out = desc.New(raw)
	return
}

// Entries returns the catalogue in declaration order.
func (reg *Registry) Entries() iter.Seq[*Entry] {
	return slices.Values(reg.entries)
}
