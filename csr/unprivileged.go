package csr

func floatFlags() *Format {
	return NewFormat().
		Bit("NV", 4, bin).
		Bit("DZ", 3, bin).
		Bit("OF", 2, bin).
		Bit("UF", 1, bin).
		Bit("NX", 0, bin)
}

var formatFcsr = NewFormat().
	Field("FRM", 5, 7, frm).
	Bit("NV", 4, bin).
	Bit("DZ", 3, bin).
	Bit("OF", 2, bin).
	Bit("UF", 1, bin).
	Bit("NX", 0, bin)

var formatCounter = single("COUNT", dec)

var unprivileged = group("unprivileged",
	register(0x001, floatFlags(), "fflags"),
	register(0x002, NewFormat().Field("FRM", 0, 2, frm), "frm"),
	register(0x003, formatFcsr, "fcsr"),
	unsupported(0x008, "vstart"),
	unsupported(0x009, "vxsat"),
	unsupported(0x00a, "vxrm"),
	unsupported(0x00f, "vcsr"),
	unsupported(0x015, "seed"),
	unsupported(0x017, "jvt"),
	register(0xc00, formatCounter, "cycle"),
	register(0xc01, formatCounter, "time"),
	register(0xc02, formatCounter, "instret"),
	family(0xc03, "hpmcounter", 3, 29, formatCounter),
	unsupported(0xc20, "vl"),
	unsupported(0xc21, "vtype"),
	unsupported(0xc22, "vlenb"),
)
