package csr

import (
	"strings"

	"github.com/ezrec/rvcsr/bits"
	"github.com/ezrec/rvcsr/field"
)

// Format is the ordered field layout of a register.
//
// Fields are reported in the order they are added. Spans of distinct
// fields must not overlap, unless the field was added with Overlay.
type Format struct {
	Fields  []field.Def
	overlay map[string]bool
}

// NewFormat returns an empty layout.
func NewFormat() *Format {
	return &Format{}
}

// Field appends the field name covering bits start through end.
// Invalid spans panic.
func (fm *Format) Field(name string, start, end uint, decoder field.Decoder) *Format {
	fm.Fields = append(fm.Fields, field.Def{
		Name:    name,
		Span:    bits.NewSpan(start, end),
		Decoder: decoder,
	})
	return fm
}

// Bit appends the single bit field name at index.
func (fm *Format) Bit(name string, index uint, decoder field.Decoder) *Format {
	return fm.Field(name, index, index, decoder)
}

// Overlay appends a field that is allowed to overlap the others.
func (fm *Format) Overlay(name string, start, end uint, decoder field.Decoder) *Format {
	if fm.overlay == nil {
		fm.overlay = map[string]bool{}
	}
	fm.overlay[name] = true
	return fm.Field(name, start, end, decoder)
}

// Validate checks for duplicate field names and unintended overlaps.
func (fm *Format) Validate() (err error) {
	seen := map[string]bool{}
	for n, def := range fm.Fields {
		key := strings.ToLower(def.Name)
		if seen[key] {
			return ErrCatalogue{Name: def.Name, Reason: "duplicate field"}
		}
		seen[key] = true

		if fm.overlay[def.Name] {
			continue
		}
		for _, other := range fm.Fields[:n] {
			if fm.overlay[other.Name] {
				continue
			}
			if def.Span.Overlaps(other.Span) {
				return ErrCatalogue{
					Name:   def.Name,
					Reason: "overlaps field " + other.Name + " at " + other.Span.String(),
				}
			}
		}
	}

	return
}

// New decodes raw through the layout into a register report called name.
func (fm *Format) New(name string, raw uint64) (reg *Register) {
	reg = &Register{
		Name:   name,
		Raw:    raw,
		Fields: make([]field.Field, len(fm.Fields)),
	}
	for n, def := range fm.Fields {
		reg.Fields[n] = def.Extract(raw)
	}
	return
}

// single is the layout of a register holding one value.
func single(name string, decoder field.Decoder) *Format {
	return NewFormat().Field(name, 0, bits.LAST, decoder)
}
