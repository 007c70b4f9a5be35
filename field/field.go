package field

import (
	"github.com/ezrec/rvcsr/bits"
)

// Def is the definition of a named field: where it sits and how it reads.
type Def struct {
	Name    string
	Span    bits.Span
	Decoder Decoder
}

// Field is a Def with its value extracted from a raw register value.
type Field struct {
	Def
	Value uint64
}

// New extracts the field name at span from raw.
func New(name string, span bits.Span, dec Decoder, raw uint64) Field {
	return Def{Name: name, Span: span, Decoder: dec}.Extract(raw)
}

// Extract returns the field with its value taken from raw.
func (def Def) Extract(raw uint64) Field {
	if err := def.Span.Valid(); err != nil {
		panic(err)
	}

	return Field{Def: def, Value: def.Span.Extract(raw)}
}

// Width returns the width of the field in bits.
func (fd Field) Width() uint {
	return fd.Span.Width()
}

// String returns the decoded value.
func (fd Field) String() string {
	return fd.Decoder.Decode(fd.Value, fd.Width())
}

// Warning is true if the value is outside of the decoder's encoding.
func (fd Field) Warning() bool {
	return !fd.Decoder.Check(fd.Value, fd.Width())
}

// Line returns the field as a report line, "NAME: value".
func (fd Field) Line() string {
	return fd.Name + ": " + fd.String()
}
