package opcodes

import "github.com/ethereum-optimism/rvisa/rvgo/riscv"

// Entry is one row of the instruction table. Funct3 and Funct7 hold zero
// where the instruction format does not use them in its lookup key.
type Entry struct {
	Mnemonic  Mnemonic
	Opcode    uint8
	Funct3    uint8
	Funct7    uint8
	Extension Extension
	XLEN      uint8
}

func (e Entry) Key() uint16 {
	return Key(e.Opcode, e.Funct3, e.Funct7)
}

func row(name string, op, f3, f7 uint8, ext Extension, xlen uint8) Entry {
	return Entry{Mnemonic: Mnemonic(name), Opcode: op, Funct3: f3, Funct7: f7, Extension: ext, XLEN: xlen}
}

// amo builds the funct7 of an atomic operation with the aq and rl bits clear.
func amo(funct5 uint8) uint8 {
	return funct5 << 2
}

var entries = []Entry{
	// RV32I
	row("lui", riscv.OpLUI, 0, 0, ExtI, 32),
	row("auipc", riscv.OpAUIPC, 0, 0, ExtI, 32),
	row("jal", riscv.OpJAL, 0, 0, ExtI, 32),
	row("jalr", riscv.OpJALR, 0, 0, ExtI, 32),
	row("beq", riscv.OpBranch, 0, 0, ExtI, 32),
	row("bne", riscv.OpBranch, 1, 0, ExtI, 32),
	row("blt", riscv.OpBranch, 4, 0, ExtI, 32),
	row("bge", riscv.OpBranch, 5, 0, ExtI, 32),
	row("bltu", riscv.OpBranch, 6, 0, ExtI, 32),
	row("bgeu", riscv.OpBranch, 7, 0, ExtI, 32),
	row("lb", riscv.OpLoad, 0, 0, ExtI, 32),
	row("lh", riscv.OpLoad, 1, 0, ExtI, 32),
	row("lw", riscv.OpLoad, 2, 0, ExtI, 32),
	row("lbu", riscv.OpLoad, 4, 0, ExtI, 32),
	row("lhu", riscv.OpLoad, 5, 0, ExtI, 32),
	row("sb", riscv.OpStore, 0, 0, ExtI, 32),
	row("sh", riscv.OpStore, 1, 0, ExtI, 32),
	row("sw", riscv.OpStore, 2, 0, ExtI, 32),
	row("addi", riscv.OpImm, 0, 0, ExtI, 32),
	row("slti", riscv.OpImm, 2, 0, ExtI, 32),
	row("sltiu", riscv.OpImm, 3, 0, ExtI, 32),
	row("xori", riscv.OpImm, 4, 0, ExtI, 32),
	row("ori", riscv.OpImm, 6, 0, ExtI, 32),
	row("andi", riscv.OpImm, 7, 0, ExtI, 32),
	row("slli", riscv.OpImm, 1, 0x00, ExtI, 32),
	row("srli", riscv.OpImm, 5, 0x00, ExtI, 32),
	row("srai", riscv.OpImm, 5, 0x20, ExtI, 32),
	row("add", riscv.OpOp, 0, 0x00, ExtI, 32),
	row("sub", riscv.OpOp, 0, 0x20, ExtI, 32),
	row("sll", riscv.OpOp, 1, 0x00, ExtI, 32),
	row("slt", riscv.OpOp, 2, 0x00, ExtI, 32),
	row("sltu", riscv.OpOp, 3, 0x00, ExtI, 32),
	row("xor", riscv.OpOp, 4, 0x00, ExtI, 32),
	row("srl", riscv.OpOp, 5, 0x00, ExtI, 32),
	row("sra", riscv.OpOp, 5, 0x20, ExtI, 32),
	row("or", riscv.OpOp, 6, 0x00, ExtI, 32),
	row("and", riscv.OpOp, 7, 0x00, ExtI, 32),
	row("fence", riscv.OpMiscMem, 0, 0, ExtI, 32),

	// RV64I
	row("lwu", riscv.OpLoad, 6, 0, ExtI, 64),
	row("ld", riscv.OpLoad, 3, 0, ExtI, 64),
	row("sd", riscv.OpStore, 3, 0, ExtI, 64),
	row("addiw", riscv.OpImm32, 0, 0, ExtI, 64),
	row("slliw", riscv.OpImm32, 1, 0x00, ExtI, 64),
	row("srliw", riscv.OpImm32, 5, 0x00, ExtI, 64),
	row("sraiw", riscv.OpImm32, 5, 0x20, ExtI, 64),
	row("addw", riscv.OpOp32, 0, 0x00, ExtI, 64),
	row("subw", riscv.OpOp32, 0, 0x20, ExtI, 64),
	row("sllw", riscv.OpOp32, 1, 0x00, ExtI, 64),
	row("srlw", riscv.OpOp32, 5, 0x00, ExtI, 64),
	row("sraw", riscv.OpOp32, 5, 0x20, ExtI, 64),

	// Zifencei
	row("fence.i", riscv.OpMiscMem, 1, 0, ExtZifencei, 32),

	// Zicsr
	row("csrrw", riscv.OpSystem, 1, 0, ExtZicsr, 32),
	row("csrrs", riscv.OpSystem, 2, 0, ExtZicsr, 32),
	row("csrrc", riscv.OpSystem, 3, 0, ExtZicsr, 32),
	row("csrrwi", riscv.OpSystem, 5, 0, ExtZicsr, 32),
	row("csrrsi", riscv.OpSystem, 6, 0, ExtZicsr, 32),
	row("csrrci", riscv.OpSystem, 7, 0, ExtZicsr, 32),

	// RV32M
	row("mul", riscv.OpOp, 0, 0x01, ExtM, 32),
	row("mulh", riscv.OpOp, 1, 0x01, ExtM, 32),
	row("mulhsu", riscv.OpOp, 2, 0x01, ExtM, 32),
	row("mulhu", riscv.OpOp, 3, 0x01, ExtM, 32),
	row("div", riscv.OpOp, 4, 0x01, ExtM, 32),
	row("divu", riscv.OpOp, 5, 0x01, ExtM, 32),
	row("rem", riscv.OpOp, 6, 0x01, ExtM, 32),
	row("remu", riscv.OpOp, 7, 0x01, ExtM, 32),

	// RV64M
	row("mulw", riscv.OpOp32, 0, 0x01, ExtM, 64),
	row("divw", riscv.OpOp32, 4, 0x01, ExtM, 64),
	row("divuw", riscv.OpOp32, 5, 0x01, ExtM, 64),
	row("remw", riscv.OpOp32, 6, 0x01, ExtM, 64),
	row("remuw", riscv.OpOp32, 7, 0x01, ExtM, 64),

	// RV32A
	row("lr.w", riscv.OpAMO, 2, amo(0b00010), ExtA, 32),
	row("sc.w", riscv.OpAMO, 2, amo(0b00011), ExtA, 32),
	row("amoswap.w", riscv.OpAMO, 2, amo(0b00001), ExtA, 32),
	row("amoadd.w", riscv.OpAMO, 2, amo(0b00000), ExtA, 32),
	row("amoxor.w", riscv.OpAMO, 2, amo(0b00100), ExtA, 32),
	row("amoand.w", riscv.OpAMO, 2, amo(0b01100), ExtA, 32),
	row("amoor.w", riscv.OpAMO, 2, amo(0b01000), ExtA, 32),
	row("amomin.w", riscv.OpAMO, 2, amo(0b10000), ExtA, 32),
	row("amomax.w", riscv.OpAMO, 2, amo(0b10100), ExtA, 32),
	row("amominu.w", riscv.OpAMO, 2, amo(0b11000), ExtA, 32),
	row("amomaxu.w", riscv.OpAMO, 2, amo(0b11100), ExtA, 32),

	// RV64A
	row("lr.d", riscv.OpAMO, 3, amo(0b00010), ExtA, 64),
	row("sc.d", riscv.OpAMO, 3, amo(0b00011), ExtA, 64),
	row("amoswap.d", riscv.OpAMO, 3, amo(0b00001), ExtA, 64),
	row("amoadd.d", riscv.OpAMO, 3, amo(0b00000), ExtA, 64),
	row("amoxor.d", riscv.OpAMO, 3, amo(0b00100), ExtA, 64),
	row("amoand.d", riscv.OpAMO, 3, amo(0b01100), ExtA, 64),
	row("amoor.d", riscv.OpAMO, 3, amo(0b01000), ExtA, 64),
	row("amomin.d", riscv.OpAMO, 3, amo(0b10000), ExtA, 64),
	row("amomax.d", riscv.OpAMO, 3, amo(0b10100), ExtA, 64),
	row("amominu.d", riscv.OpAMO, 3, amo(0b11000), ExtA, 64),
	row("amomaxu.d", riscv.OpAMO, 3, amo(0b11100), ExtA, 64),

	// F and D loads and stores
	row("flw", riscv.OpLoadFP, 2, 0, ExtF, 32),
	row("fsw", riscv.OpStoreFP, 2, 0, ExtF, 32),
	row("fld", riscv.OpLoadFP, 3, 0, ExtD, 32),
	row("fsd", riscv.OpStoreFP, 3, 0, ExtD, 32),
}

// SystemEntry names a system instruction that is matched on the whole word.
type SystemEntry struct {
	Word uint32
	Entry
}

var systemEntries = []SystemEntry{
	{riscv.InsnECALL, row("ecall", riscv.OpSystem, 0, 0, ExtI, 32)},
	{riscv.InsnEBREAK, row("ebreak", riscv.OpSystem, 0, 0, ExtI, 32)},
	{riscv.InsnWFI, row("wfi", riscv.OpSystem, 0, 0x08, ExtSystem, 32)},
	{riscv.InsnMRET, row("mret", riscv.OpSystem, 0, 0x18, ExtSystem, 32)},
	{riscv.InsnSRET, row("sret", riscv.OpSystem, 0, 0x08, ExtSystem, 32)},
	{riscv.InsnDRET, row("dret", riscv.OpSystem, 0, 0x3d, ExtSdext, 32)},
}
