package csr

import (
	"strings"

	"github.com/ezrec/rvcsr/field"
)

// Register is a raw value decoded through a Format.
type Register struct {
	Name   string
	Raw    uint64
	Fields []field.Field
}

// Compact is true if the register reports on a single line.
func (reg *Register) Compact() bool {
	return len(reg.Fields) == 1
}

// Lines returns the report lines, without line terminators.
//
// The report is the lower-case register name, an underline of dashes
// of the same length, then one "NAME: value" line per field. A single
// field register is reported as "name: value".
func (reg *Register) Lines() (lines []string) {
	title := strings.ToLower(reg.Name)

	if reg.Compact() {
		lines = append(lines, title+": "+reg.Fields[0].String())
		return
	}

	lines = append(lines, title, strings.Repeat("-", len(title)))
	for _, fd := range reg.Fields {
		lines = append(lines, fd.Line())
	}

	return
}

// String returns the report, each line terminated by a newline.
func (reg *Register) String() string {
	var sb strings.Builder
	for _, line := range reg.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Field returns the field called name, ignoring case.
func (reg *Register) Field(name string) (fd field.Field, ok bool) {
	for _, fd = range reg.Fields {
		if strings.EqualFold(fd.Name, name) {
			ok = true
			return
		}
	}
	fd = field.Field{}
	return
}

// Warnings returns the fields whose values decoded to a warning.
func (reg *Register) Warnings() (fields []field.Field) {
	for _, fd := range reg.Fields {
		if fd.Warning() {
			fields = append(fields, fd)
		}
	}
	return
}
