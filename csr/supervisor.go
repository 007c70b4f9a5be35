package csr

func supervisorStatus() *Format {
	return NewFormat().
		Bit("SIE", 1, bin).
		Bit("SPIE", 5, bin).
		Bit("UBE", 6, bin).
		Bit("SPP", 8, priv).
		Field("VS", 9, 10, xs).
		Field("FS", 13, 14, xs).
		Field("XS", 15, 16, xs).
		Bit("SUM", 18, bin).
		Bit("MXR", 19, bin).
		Field("UXL", 32, 33, arch).
		Bit("SD", 63, bin)
}

func supervisorEnvironment() *Format {
	return NewFormat().
		Bit("FIOM", 0, bin).
		Field("CBIE", 4, 5, bin).
		Bit("CBCFE", 6, bin).
		Bit("CBZE", 7, bin)
}

var supervisor = group("supervisor",
	register(0x100, supervisorStatus(), "sstatus"),
	register(0x104, interrupts("E", 1, 5, 9, 13), "sie"),
	register(0x105, trapVector(), "stvec"),
	register(0x106, counters(), "scounteren"),
	register(0x10a, supervisorEnvironment(), "senvcfg"),
	register(0x140, single("SSCRATCH", hex), "sscratch"),
	register(0x141, single("SEPC", hex), "sepc"),
	register(0x142, trapCause(), "scause"),
	register(0x143, single("STVAL", hex), "stval"),
	register(0x144, interrupts("P", 1, 5, 9, 13), "sip"),
	register(0x14d, single("STIMECMP", dec), "stimecmp"),
	register(0x180, addressTranslation(), "satp"),
	unsupported(0x5a8, "scontext"),
)

var virtualSupervisor = group("virtual supervisor",
	register(0x200, supervisorStatus(), "vsstatus"),
	register(0x204, interrupts("E", 1, 5, 9, 13), "vsie"),
	register(0x205, trapVector(), "vstvec"),
	register(0x240, single("VSSCRATCH", hex), "vsscratch"),
	register(0x241, single("VSEPC", hex), "vsepc"),
	register(0x242, trapCause(), "vscause"),
	register(0x243, single("VSTVAL", hex), "vstval"),
	register(0x244, interrupts("P", 1, 5, 9, 13), "vsip"),
	register(0x24d, single("VSTIMECMP", dec), "vstimecmp"),
	register(0x280, addressTranslation(), "vsatp"),
)
