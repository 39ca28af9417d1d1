package riscv

// Major opcodes of the 32-bit encoding space (bits 0-6 of a word).
const (
	OpLoad     = 0x03 // 000_0011
	OpLoadFP   = 0x07 // 000_0111
	OpCustom0  = 0x0B // 000_1011
	OpMiscMem  = 0x0F // 000_1111
	OpImm      = 0x13 // 001_0011
	OpAUIPC    = 0x17 // 001_0111
	OpImm32    = 0x1B // 001_1011
	OpStore    = 0x23 // 010_0011
	OpStoreFP  = 0x27 // 010_0111
	OpCustom1  = 0x2B // 010_1011
	OpAMO      = 0x2F // 010_1111
	OpOp       = 0x33 // 011_0011
	OpLUI      = 0x37 // 011_0111
	OpOp32     = 0x3B // 011_1011
	OpCustom2  = 0x5B // 101_1011
	OpBranch   = 0x63 // 110_0011
	OpJALR     = 0x67 // 110_0111
	OpJAL      = 0x6F // 110_1111
	OpSystem   = 0x73 // 111_0011
	OpCustom3  = 0x7B // 111_1011
	OpcodeMask = 0x7F
)

// Fixed field positions within a 32-bit word.
const (
	ShiftRd     = 7
	ShiftFunct3 = 12
	ShiftRs1    = 15
	ShiftRs2    = 20
	ShiftFunct7 = 25

	RegisterMask = 0x1F
	Funct3Mask   = 0x7
	Funct7Mask   = 0x7F
)

// Whole-word system instructions.
const (
	InsnECALL  = 0x00000073
	InsnEBREAK = 0x00100073
	InsnWFI    = 0x10500073
	InsnMRET   = 0x30200073
	InsnSRET   = 0x10200073
	InsnDRET   = 0x7b200073
)

const (
	InstrBytes = 4
	InstrBits  = 32
)
