package csr

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvcsr/bits"
	"github.com/ezrec/rvcsr/field"
)

func TestRegistry_Resolve(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		id      string
		name    string
		address int
	}){
		{"misa", "misa", 0x301},
		{"MISA", "misa", 0x301},
		{" mstatus ", "mstatus", 0x300},
		{"0x301", "misa", 0x301},
		{"769", "misa", 0x301},
		{"0b1100000001", "misa", 0x301},
		{"pmpaddr5", "pmpaddr5", 0x3b5},
		{"0x3b5", "pmpaddr5", 0x3b5},
		{"0x3ef", "pmpaddr63", 0x3ef},
		{"pmpcfg2", "pmpcfg2", 0x3a2},
		{"hpmcounter31", "hpmcounter31", 0xc1f},
		{"0xc03", "hpmcounter3", 0xc03},
		{"mhpmevent3", "mhpmevent3", 0x323},
		{"sv39_pte", "pte_sv39", NO_ADDRESS},
		{"PTE_SV57", "pte_sv57", NO_ADDRESS},
		{"vaddr_sv32", "vaddr_sv32", NO_ADDRESS},
		{"r-type", "rtype", NO_ADDRESS},
	}

	for _, entry := range table {
		desc, err := Default.Resolve(entry.id)
		if !assert.NoError(err, entry.id) {
			continue
		}
		assert.Equal(entry.name, desc.Name, entry.id)
		assert.Equal(entry.address, desc.Address, entry.id)
		assert.NotNil(desc.Format, entry.id)
	}
}

func TestRegistry_Resolve_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		id  string
		err error
	}){
		{"notareg", ErrUnknown("notareg")},
		{"", ErrUnknown("")},
		{"0x7ff", ErrUnknown("0x7ff")},
		{"0x1000", ErrUnknown("0x1000")},
		{"pmpaddr64", ErrUnknown("pmpaddr64")},
		{"hpmcounter2", ErrUnknown("hpmcounter2")},
		{"pmpaddr", ErrUnknown("pmpaddr")},
		{"dcsr", ErrUnimplemented("dcsr")},
		{"DCSR", ErrUnimplemented("DCSR")},
		{"0x7b0", ErrUnimplemented("0x7b0")},
		{"mnstatus", ErrUnimplemented("mnstatus")},
		{"vtype", ErrUnimplemented("vtype")},
	}

	for _, entry := range table {
		_, err := Default.Resolve(entry.id)
		assert.Equal(entry.err, err, entry.id)
	}

	reg, err := Decode("notareg", 0)
	assert.Nil(reg)
	assert.Equal(ErrUnknown("notareg"), err)
	assert.Equal("'notareg' is not a known CSR", err.Error())
}

func TestRegistry_FamilyLayout(t *testing.T) {
	assert := assert.New(t)

	first, err := Decode("0x3b0", 0x1234)
	assert.NoError(err)
	last, err := Decode("0x3ef", 0x1234)
	assert.NoError(err)

	assert.Equal("pmpaddr0", first.Name)
	assert.Equal("pmpaddr63", last.Name)
	assert.Equal(first.Lines()[2:], last.Lines()[2:])
	assert.Equal([]string{
		"pmpaddr0",
		"--------",
		"RESERVED: 0x0",
		"ADDRESS: 0x1234 -> 0x48d0",
	}, first.Lines())
}

func TestRegistry_Default(t *testing.T) {
	assert := assert.New(t)

	var groups []string
	for ent := range Default.Entries() {
		if !slices.Contains(groups, ent.Group) {
			groups = append(groups, ent.Group)
		}
		if !ent.Implemented() {
			continue
		}
		for _, raw := range []uint64{0, bits.ALL_SET, 0x8000000000141101} {
			assert.NotPanics(func() {
				_ = ent.Format.New(ent.Name(), raw).String()
			}, ent.Name())
		}
	}

	assert.Equal([]string{
		"unprivileged",
		"supervisor",
		"virtual supervisor",
		"hypervisor",
		"machine",
		"pmp",
		"debug",
		"virtual memory",
		"instruction",
	}, groups)
}

func TestNewRegistry_Panics(t *testing.T) {
	assert := assert.New(t)

	word := single("VALUE", field.Hex)

	assert.PanicsWithValue(ErrCatalogue{Name: "a", Reason: "name also used by a"}, func() {
		NewRegistry(slices.Values([]*Entry{
			register(0x100, word, "a"),
			register(0x101, word, "A"),
		}))
	})

	assert.PanicsWithValue(ErrCatalogue{Name: "b", Reason: "address overlaps x0-3"}, func() {
		NewRegistry(slices.Values([]*Entry{
			family(0x100, "x", 0, 4, word),
			register(0x103, word, "b"),
		}))
	})

	assert.PanicsWithValue(ErrCatalogue{Name: "y0-3", Reason: "address overlaps b"}, func() {
		NewRegistry(slices.Values([]*Entry{
			register(0x103, word, "b"),
			family(0x100, "y", 0, 4, word),
		}))
	})

	assert.Panics(func() {
		NewRegistry(slices.Values([]*Entry{
			register(0x100, NewFormat().Field("LOW", 0, 7, field.Hex).Field("HIGH", 7, 15, field.Hex), "c"),
		}))
	})

	assert.Panics(func() {
		NewRegistry(slices.Values([]*Entry{{Address: 0x100}}))
	})

	assert.NotPanics(func() {
		NewRegistry(slices.Values([]*Entry{
			family(0x100, "x", 0, 4, word),
			register(0x104, word, "b"),
			layout(word, "c"),
			layout(word, "d"),
		}))
	})
}

func TestEntry_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		id   string
		text string
	}){
		{"misa", "0x301 misa"},
		{"pmpaddr7", "0x3b0-0x3ef pmpaddr0-63"},
		{"hpmcounter4", "0xc03-0xc1f hpmcounter3-31"},
		{"pte_sv39", "- pte_sv39 (sv39_pte)"},
		{"dcsr", "0x7b0 dcsr [not supported]"},
	}

	for _, entry := range table {
		mem, found := Default.names[entry.id]
		if assert.True(found, entry.id) {
			assert.Equal(entry.text, mem.entry.String(), entry.id)
		}
	}
}
