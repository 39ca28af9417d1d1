package isa

import (
	"fmt"

	"github.com/ethereum-optimism/rvisa/rvgo/riscv"
)

// RInstruction is a register-register instruction.
type RInstruction struct {
	opcode Opcode
	rd     Register
	rs1    Register
	rs2    Register
	funct3 Funct3
	funct7 Funct7
}

var _ Variant = RInstruction{}

func NewRInstruction(opcode Opcode, rd, rs1, rs2 Register, funct3 Funct3, funct7 Funct7) (RInstruction, error) {
	if err := checkFormat(opcode, FormatR); err != nil {
		return RInstruction{}, err
	}
	return RInstruction{opcode: opcode, rd: rd, rs1: rs1, rs2: rs2, funct3: funct3, funct7: funct7}, nil
}

func DecodeR(word uint32) (RInstruction, error) {
	opcode, err := OpcodeFromWord(word)
	if err != nil {
		return RInstruction{}, err
	}
	if err := checkFormat(opcode, FormatR); err != nil {
		return RInstruction{}, err
	}
	return RInstruction{
		opcode: opcode,
		rd:     RdFromWord(word),
		rs1:    Rs1FromWord(word),
		rs2:    Rs2FromWord(word),
		funct3: Funct3FromWord(word),
		funct7: Funct7FromWord(word),
	}, nil
}

func (in RInstruction) Opcode() Opcode { return in.opcode }
func (in RInstruction) Format() Format { return FormatR }
func (in RInstruction) Rd() Register   { return in.rd }
func (in RInstruction) Rs1() Register  { return in.rs1 }
func (in RInstruction) Rs2() Register  { return in.rs2 }
func (in RInstruction) Funct3() Funct3 { return in.funct3 }
func (in RInstruction) Funct7() Funct7 { return in.funct7 }

func (in RInstruction) Encode() uint32 {
	return in.opcode.Bits() |
		in.rd.RdBits() |
		in.funct3.Bits() |
		in.rs1.Rs1Bits() |
		in.rs2.Rs2Bits() |
		in.funct7.Bits()
}

func (in RInstruction) Mnemonic() (Mnemonic, bool) {
	funct7 := in.funct7.Value()
	if in.opcode.Value() == riscv.OpAMO {
		// the low two bits are the aq/rl ordering flags
		funct7 &^= 0b11
	}
	return lookup(in.opcode, in.funct3.Value(), funct7)
}

func (in RInstruction) Operands() []Operand {
	return []Operand{regOperand(in.rd), regOperand(in.rs1), regOperand(in.rs2)}
}

func (in RInstruction) String() string {
	return render(in)
}

func (RInstruction) variant() {}

// render is the default text form: "mnemonic op, op, ...".
func render(v Variant) string {
	name, ok := v.Mnemonic()
	if !ok {
		name = "unknown"
	}
	s := string(name)
	ops := v.Operands()
	if v.Format() == FormatS && len(ops) == 3 {
		return fmt.Sprintf("%s %s, %d(%s)", s, ops[0].Reg, ops[1].Imm, ops[2].Reg)
	}
	for i, op := range ops {
		if i == 0 {
			s += " "
		} else {
			s += ", "
		}
		if op.Kind == OperandRegister {
			s += op.Reg.String()
		} else {
			s += fmt.Sprintf("%d", op.Imm)
		}
	}
	return s
}
