package slow

// Functions to parse the instruction field values from a 32 bit RISC-V word.
// These should 1:1 match the decoding done by the isa package.
// Immediates are returned sign extended to 32 bits, with their implicit low zero bits.

func ParseImmTypeI(instr U32) U32 {
	return signExtend32(shr32(toU32(20), instr), toU32(11))
}

func ParseImmTypeS(instr U32) U32 {
	return signExtend32(
		or32(
			shl32(toU32(5), shr32(toU32(25), instr)),
			and32(shr32(toU32(7), instr), toU32(0x1F)),
		),
		toU32(11),
	)
}

func ParseImmTypeB(instr U32) U32 {
	return signExtend32(
		or32(
			or32(
				shl32(toU32(1), and32(shr32(toU32(8), instr), toU32(0xF))),
				shl32(toU32(5), and32(shr32(toU32(25), instr), toU32(0x3F))),
			),
			or32(
				shl32(toU32(11), and32(shr32(toU32(7), instr), toU32(1))),
				shl32(toU32(12), shr32(toU32(31), instr)),
			),
		),
		toU32(12),
	)
}

func ParseImmTypeU(instr U32) U32 {
	return shl32(toU32(12), shr32(toU32(12), instr))
}

func ParseImmTypeJ(instr U32) U32 {
	return signExtend32(
		or32(
			or32(
				shl32(toU32(1), and32(shr32(toU32(21), instr), shortToU32(0x3FF))),
				shl32(toU32(11), and32(shr32(toU32(20), instr), toU32(1))),
			),
			or32(
				shl32(toU32(12), and32(shr32(toU32(12), instr), toU32(0xFF))),
				shl32(toU32(20), shr32(toU32(31), instr)),
			),
		),
		toU32(20),
	)
}

func ParseOpcode(instr U32) U32 {
	return and32(instr, toU32(0x7F))
}

func ParseRd(instr U32) U32 {
	return and32(shr32(toU32(7), instr), toU32(0x1F))
}

func ParseFunct3(instr U32) U32 {
	return and32(shr32(toU32(12), instr), toU32(0x7))
}

func ParseRs1(instr U32) U32 {
	return and32(shr32(toU32(15), instr), toU32(0x1F))
}

func ParseRs2(instr U32) U32 {
	return and32(shr32(toU32(20), instr), toU32(0x1F))
}

func ParseFunct7(instr U32) U32 {
	return shr32(toU32(25), instr)
}

// IsCompressed reports whether the low opcode bits mark a 16 bit instruction.
func IsCompressed(instr U32) bool {
	return !iszero32(and32(not32(instr), toU32(0x3)))
}
