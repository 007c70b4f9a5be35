// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package field

// Kind selects the decode rule of a Decoder.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_BINARY               = Kind(0)  // binary
	KIND_HEX                  = Kind(1)  // hex
	KIND_DECIMAL              = Kind(2)  // decimal
	KIND_BOOLEAN              = Kind(3)  // boolean
	KIND_ARCHITECTURE         = Kind(4)  // architecture
	KIND_PRIVILEGE            = Kind(5)  // privilege
	KIND_TRANSLATION_MODE     = Kind(6)  // translation-mode
	KIND_TRAP_VECTOR_MODE     = Kind(7)  // trap-vector-mode
	KIND_EXCEPTION_CODE       = Kind(8)  // exception-code
	KIND_PHYSICAL_PAGE_NUMBER = Kind(9)  // ppn
	KIND_RIGHT_SHIFTED        = Kind(10) // right-shifted
	KIND_RESERVED             = Kind(11) // reserved
	KIND_CONTEXT_STATUS       = Kind(12) // context-status
	KIND_ROUNDING_MODE        = Kind(13) // rounding-mode
	KIND_PMP_CONFIG           = Kind(14) // pmp-config
	KIND_OPCODE               = Kind(15) // opcode
)

// Wraps is true for kinds that delegate to an inner decoder.
func (kind Kind) Wraps() bool {
	return kind == KIND_RIGHT_SHIFTED || kind == KIND_RESERVED
}

// Scheme is a virtual memory scheme, named by its virtual address width.
type Scheme int

const (
	SCHEME_SV32 = Scheme(32)
	SCHEME_SV39 = Scheme(39)
	SCHEME_SV48 = Scheme(48)
	SCHEME_SV57 = Scheme(57)
)
