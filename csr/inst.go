package csr

// Base instruction formats. Immediate fragments are displayed as
// stored, then at their weight in the immediate.
func instructionFormat(fields func(fm *Format)) (fm *Format) {
	fm = NewFormat().Field("OPCODE", 0, 6, opcode)
	fields(fm)
	return
}

var instruction = group("instruction",
	layout(NewFormat().Field("OPCODE", 0, 6, opcode), "opcode"),
	layout(instructionFormat(func(fm *Format) {
		fm.Field("RD", 7, 11, dec).
			Field("FUNCT3", 12, 14, bin).
			Field("RS1", 15, 19, dec).
			Field("RS2", 20, 24, dec).
			Field("FUNCT7", 25, 31, bin)
	}), "rtype", "r-type"),
	layout(instructionFormat(func(fm *Format) {
		fm.Field("RD", 7, 11, dec).
			Field("FUNCT3", 12, 14, bin).
			Field("RS1", 15, 19, dec).
			Field("IMM[11:0]", 20, 31, hex)
	}), "itype", "i-type"),
	layout(instructionFormat(func(fm *Format) {
		fm.Field("IMM[4:0]", 7, 11, hex).
			Field("FUNCT3", 12, 14, bin).
			Field("RS1", 15, 19, dec).
			Field("RS2", 20, 24, dec).
			Field("IMM[11:5]", 25, 31, rsh(5, hex))
	}), "stype", "s-type"),
	layout(instructionFormat(func(fm *Format) {
		fm.Bit("IMM[11]", 7, rsh(11, hex)).
			Field("IMM[4:1]", 8, 11, rsh(1, hex)).
			Field("FUNCT3", 12, 14, bin).
			Field("RS1", 15, 19, dec).
			Field("RS2", 20, 24, dec).
			Field("IMM[10:5]", 25, 30, rsh(5, hex)).
			Bit("IMM[12]", 31, rsh(12, hex))
	}), "btype", "b-type"),
	layout(instructionFormat(func(fm *Format) {
		fm.Field("RD", 7, 11, dec).
			Field("IMM[31:12]", 12, 31, rsh(12, hex))
	}), "utype", "u-type"),
	layout(instructionFormat(func(fm *Format) {
		fm.Field("RD", 7, 11, dec).
			Field("IMM[19:12]", 12, 19, rsh(12, hex)).
			Bit("IMM[11]", 20, rsh(11, hex)).
			Field("IMM[10:1]", 21, 30, rsh(1, hex)).
			Bit("IMM[20]", 31, rsh(20, hex))
	}), "jtype", "j-type"),
)
