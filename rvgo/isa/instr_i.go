package isa

import (
	"github.com/ethereum-optimism/rvisa/rvgo/opcodes"
	"github.com/ethereum-optimism/rvisa/rvgo/riscv"
)

// IInstruction covers register-immediate arithmetic, loads, jalr and system instructions.
type IInstruction struct {
	opcode Opcode
	rd     Register
	rs1    Register
	funct3 Funct3
	imm    Immediate
}

var _ Variant = IInstruction{}

func NewIInstruction(opcode Opcode, rd, rs1 Register, funct3 Funct3, imm Immediate) (IInstruction, error) {
	if err := checkFormat(opcode, FormatI); err != nil {
		return IInstruction{}, err
	}
	if imm.Field() != ImmFieldI {
		return IInstruction{}, fieldMismatch(imm, ImmFieldI)
	}
	return IInstruction{opcode: opcode, rd: rd, rs1: rs1, funct3: funct3, imm: imm}, nil
}

func DecodeI(word uint32) (IInstruction, error) {
	opcode, err := OpcodeFromWord(word)
	if err != nil {
		return IInstruction{}, err
	}
	if err := checkFormat(opcode, FormatI); err != nil {
		return IInstruction{}, err
	}
	imm, err := ImmFieldI.FromRawBits(word >> 20)
	if err != nil {
		return IInstruction{}, err
	}
	return IInstruction{
		opcode: opcode,
		rd:     RdFromWord(word),
		rs1:    Rs1FromWord(word),
		funct3: Funct3FromWord(word),
		imm:    imm,
	}, nil
}

func (in IInstruction) Opcode() Opcode       { return in.opcode }
func (in IInstruction) Format() Format       { return FormatI }
func (in IInstruction) Rd() Register         { return in.rd }
func (in IInstruction) Rs1() Register        { return in.rs1 }
func (in IInstruction) Funct3() Funct3       { return in.funct3 }
func (in IInstruction) Immediate() Immediate { return in.imm }

func (in IInstruction) Encode() uint32 {
	return in.opcode.Bits() |
		in.rd.RdBits() |
		in.funct3.Bits() |
		in.rs1.Rs1Bits() |
		in.imm.RawBits()<<20
}

// IsSystem reports whether the word is one of the operand-less system
// instructions (ecall, ebreak, mret, ...).
func (in IInstruction) IsSystem() bool {
	if in.opcode.Value() != riscv.OpSystem {
		return false
	}
	_, ok := opcodes.LookupSystem(in.Encode())
	return ok
}

func (in IInstruction) Mnemonic() (Mnemonic, bool) {
	op := in.opcode.Value()
	if op == riscv.OpSystem && in.funct3.Value() == 0 {
		e, ok := opcodes.LookupSystem(in.Encode())
		if !ok {
			return "", false
		}
		return e.Mnemonic, true
	}
	var funct7 uint8
	if (op == riscv.OpImm || op == riscv.OpImm32) && (in.funct3.Value() == 1 || in.funct3.Value() == 5) {
		// shifts carry their variant in imm[11:5]
		funct7 = uint8(in.imm.RawBits() >> 5)
		if op == riscv.OpImm {
			// rv64 uses bit 5 as the top bit of a 6-bit shift amount
			funct7 &^= 1
		}
	}
	return lookup(in.opcode, in.funct3.Value(), funct7)
}

func (in IInstruction) Operands() []Operand {
	if in.IsSystem() {
		return nil
	}
	return []Operand{regOperand(in.rd), regOperand(in.rs1), immOperand(in.imm)}
}

func (in IInstruction) String() string {
	return render(in)
}

func (IInstruction) variant() {}
