// Package csr decodes RISC-V control and status register values.
//
// A Format is the ordered list of fields of one register layout. The
// catalogue binds formats to register names and addresses in a Registry,
// which resolves an identifier (name, alias or numeric address) to a
// Descriptor. Decoding a raw value through a descriptor yields a Register,
// whose String() is the human readable report:
//
//	misa
//	----
//	A: 0b1
//	...
//	MXL: RV64
//
// Single field registers report on one line, as in "mhartid: 0x0".
//
// Besides CSRs the catalogue carries the page table entry, virtual and
// physical address formats of the Sv32/39/48/57 schemes and the base
// instruction formats. These have no address.
package csr
