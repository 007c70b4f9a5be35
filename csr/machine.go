package csr

import (
	"strconv"
)

var formatMstatus = NewFormat().
	Bit("SIE", 1, bin).
	Bit("MIE", 3, bin).
	Bit("SPIE", 5, bin).
	Bit("UBE", 6, bin).
	Bit("MPIE", 7, bin).
	Bit("SPP", 8, priv).
	Field("VS", 9, 10, xs).
	Field("MPP", 11, 12, priv).
	Field("FS", 13, 14, xs).
	Field("XS", 15, 16, xs).
	Bit("MPRV", 17, bin).
	Bit("SUM", 18, bin).
	Bit("MXR", 19, bin).
	Bit("TVM", 20, bin).
	Bit("TW", 21, bin).
	Bit("TSR", 22, bin).
	Field("UXL", 32, 33, arch).
	Field("SXL", 34, 35, arch).
	Bit("SBE", 36, bin).
	Bit("MBE", 37, bin).
	Bit("GVA", 38, bin).
	Bit("MPV", 39, bin).
	Bit("SD", 63, bin)

// formatMisa has one bit per extension letter, A through Z.
var formatMisa = func() (fm *Format) {
	fm = NewFormat()
	for index := range uint(26) {
		fm.Bit(string(rune('A'+index)), index, bin)
	}
	return fm.Field("MXL", 62, 63, arch)
}()

var formatMvendorid = NewFormat().
	Field("OFFSET", 0, 6, hex).
	Field("BANK", 7, 31, hex)

var formatMseccfg = NewFormat().
	Bit("MML", 0, bin).
	Bit("MMWP", 1, bin).
	Bit("RLB", 2, bin).
	Bit("USEED", 8, bin).
	Bit("SSEED", 9, bin)

var machine = group("machine",
	register(0xf11, formatMvendorid, "mvendorid"),
	register(0xf12, single("MARCHID", hex), "marchid"),
	register(0xf13, single("MIMPID", hex), "mimpid"),
	register(0xf14, single("MHARTID", hex), "mhartid"),
	register(0xf15, single("MCONFIGPTR", hex), "mconfigptr"),
	register(0x300, formatMstatus, "mstatus"),
	register(0x301, formatMisa, "misa"),
	register(0x302, exceptions(11), "medeleg"),
	register(0x303, interrupts("", 1, 2, 3, 5, 6, 7, 9, 10, 11, 12, 13), "mideleg"),
	register(0x304, interrupts("E", 1, 2, 3, 5, 6, 7, 9, 10, 11, 12, 13), "mie"),
	register(0x305, trapVector(), "mtvec"),
	register(0x306, counters(), "mcounteren"),
	register(0x30a, environment(), "menvcfg"),
	register(0x320, counters(1), "mcountinhibit"),
	family(0x323, "mhpmevent", 3, 29, single("EVENT", hex)),
	register(0x340, single("MSCRATCH", hex), "mscratch"),
	register(0x341, single("MEPC", hex), "mepc"),
	register(0x342, trapCause(), "mcause"),
	register(0x343, single("MTVAL", hex), "mtval"),
	register(0x344, interrupts("P", 1, 2, 3, 5, 6, 7, 9, 10, 11, 12, 13), "mip"),
	register(0x34a, single("MTINST", hex), "mtinst"),
	register(0x34b, single("MTVAL2", rsh(2, hex)), "mtval2"),
	unsupported(0x740, "mnscratch"),
	unsupported(0x741, "mnepc"),
	unsupported(0x742, "mncause"),
	unsupported(0x744, "mnstatus"),
	register(0x747, formatMseccfg, "mseccfg"),
	register(0xb00, formatCounter, "mcycle"),
	register(0xb02, formatCounter, "minstret"),
	family(0xb03, "mhpmcounter", 3, 29, formatCounter),
)

// pmpConfigs returns pmpcfg0 through pmpcfg15. On RV64 the even numbered
// registers hold eight entries each, pmpcfgN holding entries 4*N to 4*N+7;
// the odd numbered ones only exist on RV32.
func pmpConfigs() (entries []*Entry) {
	for index := range 16 {
		name := "pmpcfg" + strconv.Itoa(index)
		address := 0x3a0 + index
		if index%2 == 1 {
			entries = append(entries, unsupported(address, name))
			continue
		}

		fm := NewFormat()
		for slot := range uint(8) {
			number := 4*index + int(slot)
			fm.Field("CFG"+strconv.Itoa(number), slot*8, slot*8+7, pmpcfg)
		}
		entries = append(entries, register(address, fm, name))
	}
	return
}

var formatPmpaddr = NewFormat().
	Field("RESERVED", 54, 63, reserved(0, hex)).
	Field("ADDRESS", 0, 53, rsh(2, hex))

var pmp = group("pmp", append(pmpConfigs(),
	family(0x3b0, "pmpaddr", 0, 64, formatPmpaddr),
)...)

var debug = group("debug",
	unsupported(0x7a0, "tselect"),
	unsupported(0x7a1, "tdata1"),
	unsupported(0x7a2, "tdata2"),
	unsupported(0x7a3, "tdata3"),
	unsupported(0x7a8, "mcontext"),
	unsupported(0x7b0, "dcsr"),
	unsupported(0x7b1, "dpc"),
	unsupported(0x7b2, "dscratch0"),
	unsupported(0x7b3, "dscratch1"),
)
