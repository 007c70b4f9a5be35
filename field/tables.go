package field

import (
	"github.com/ezrec/rvcsr/bits"
)

// PAGE_SHIFT is the width of the page offset in every scheme.
const PAGE_SHIFT = 12

var architectures = map[uint64]string{
	0b01: "RV32",
	0b10: "RV64",
	0b11: "RV128",
}

// 0b10 is reserved.
var privileges = map[uint64]string{
	0b00: "User",
	0b01: "Supervisor",
	0b11: "Machine",
}

var translationModes = map[uint64]string{
	0x0: "Bare",
	0x1: "Sv32",
	0x8: "Sv39",
	0x9: "Sv48",
	0xa: "Sv57",
}

var trapVectorModes = map[uint64]string{
	0x0: "Direct",
	0x1: "Vectored",
}

var contextStatus = map[uint64]string{
	0b00: "Off",
	0b01: "Initial",
	0b10: "Clean",
	0b11: "Dirty",
}

// 0b101 and 0b110 are reserved.
var roundingModes = map[uint64]string{
	0b000: "RNE (round to nearest, ties to even)",
	0b001: "RTZ (round towards zero)",
	0b010: "RDN (round down)",
	0b011: "RUP (round up)",
	0b100: "RMM (round to nearest, ties to max magnitude)",
	0b111: "DYN (dynamic)",
}

var pmpAddressModes = map[uint64]string{
	0b00: "OFF",
	0b01: "TOR",
	0b10: "NA4",
	0b11: "NAPOT",
}

// Causes with the interrupt flag set.
var interruptCauses = map[uint64]string{
	1:  "Supervisor software interrupt",
	2:  "Virtual supervisor software interrupt",
	3:  "Machine software interrupt",
	5:  "Supervisor timer interrupt",
	6:  "Virtual supervisor timer interrupt",
	7:  "Machine timer interrupt",
	9:  "Supervisor external interrupt",
	10: "Virtual supervisor external interrupt",
	11: "Machine external interrupt",
	12: "Supervisor guest external interrupt",
	13: "Counter overflow interrupt",
}

// Causes with the interrupt flag clear.
var exceptionCauses = map[uint64]string{
	0:  "Instruction address misaligned",
	1:  "Instruction access fault",
	2:  "Illegal instruction",
	3:  "Breakpoint",
	4:  "Load address misaligned",
	5:  "Load access fault",
	6:  "Store/AMO address misaligned",
	7:  "Store/AMO access fault",
	8:  "Environment call from U-mode",
	9:  "Environment call from HS-mode",
	10: "Environment call from VS-mode",
	11: "Environment call from M-mode",
	12: "Instruction page fault",
	13: "Load page fault",
	15: "Store/AMO page fault",
	18: "Software check",
	19: "Hardware error",
	20: "Instruction guest-page fault",
	21: "Load guest-page fault",
	22: "Virtual instruction",
	23: "Store/AMO guest-page fault",
}

// Base opcode map, inst[6:0] with inst[1:0] == 0b11.
var opcodes = map[uint64]string{
	0b00_000_11: "LOAD",
	0b00_001_11: "LOAD-FP",
	0b00_010_11: "custom-0",
	0b00_011_11: "MISC-MEM",
	0b00_100_11: "OP-IMM",
	0b00_101_11: "AUIPC",
	0b00_110_11: "OP-IMM-32",
	0b01_000_11: "STORE",
	0b01_001_11: "STORE-FP",
	0b01_010_11: "custom-1",
	0b01_011_11: "AMO",
	0b01_100_11: "OP",
	0b01_101_11: "LUI",
	0b01_110_11: "OP-32",
	0b10_000_11: "MADD",
	0b10_001_11: "MSUB",
	0b10_010_11: "NMSUB",
	0b10_011_11: "NMADD",
	0b10_100_11: "OP-FP",
	0b10_101_11: "OP-V",
	0b10_110_11: "custom-2",
	0b11_000_11: "BRANCH",
	0b11_001_11: "JALR",
	0b11_010_11: "reserved",
	0b11_011_11: "JAL",
	0b11_100_11: "SYSTEM",
	0b11_101_11: "OP-VE",
	0b11_110_11: "custom-3",
}

// PPN groups per scheme, most significant level first.
var ppnGroups = map[Scheme][]bits.Span{
	SCHEME_SV32: {
		bits.NewSpan(10, 21),
		bits.NewSpan(0, 9),
	},
	SCHEME_SV39: {
		bits.NewSpan(18, 43),
		bits.NewSpan(9, 17),
		bits.NewSpan(0, 8),
	},
	SCHEME_SV48: {
		bits.NewSpan(27, 43),
		bits.NewSpan(18, 26),
		bits.NewSpan(9, 17),
		bits.NewSpan(0, 8),
	},
	SCHEME_SV57: {
		bits.NewSpan(36, 43),
		bits.NewSpan(27, 35),
		bits.NewSpan(18, 26),
		bits.NewSpan(9, 17),
		bits.NewSpan(0, 8),
	},
}
