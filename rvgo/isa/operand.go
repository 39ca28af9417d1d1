package isa

import (
	"github.com/ethereum-optimism/rvisa/rvgo/opcodes"
)

type Mnemonic = opcodes.Mnemonic

type OperandKind uint8

const (
	OperandRegister OperandKind = iota
	OperandImmediate
)

// Operand is one entry of an instruction's operand list, in assembly order.
type Operand struct {
	Kind OperandKind
	Reg  Register
	Imm  int64
}

func regOperand(r Register) Operand {
	return Operand{Kind: OperandRegister, Reg: r}
}

func immOperand(imm Immediate) Operand {
	return Operand{Kind: OperandImmediate, Imm: imm.Signed()}
}

// Variant is implemented by the six per-format instruction types only.
type Variant interface {
	Opcode() Opcode
	Format() Format
	// Encode returns the instruction word.
	Encode() uint32
	// Mnemonic reports false when the lookup table has no name for the instruction.
	Mnemonic() (Mnemonic, bool)
	// Operands lists the operands in assembly order.
	Operands() []Operand
	variant()
}

func lookup(op Opcode, funct3, funct7 uint8) (Mnemonic, bool) {
	e, ok := opcodes.Lookup(op.Value(), funct3, funct7)
	if !ok {
		return "", false
	}
	return e.Mnemonic, true
}
