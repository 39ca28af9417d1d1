package isa

// UInstruction loads a 20-bit upper immediate.
type UInstruction struct {
	opcode Opcode
	rd     Register
	imm    Immediate
}

var _ Variant = UInstruction{}

func NewUInstruction(opcode Opcode, rd Register, imm Immediate) (UInstruction, error) {
	if err := checkFormat(opcode, FormatU); err != nil {
		return UInstruction{}, err
	}
	if imm.Field() != ImmFieldU {
		return UInstruction{}, fieldMismatch(imm, ImmFieldU)
	}
	return UInstruction{opcode: opcode, rd: rd, imm: imm}, nil
}

func DecodeU(word uint32) (UInstruction, error) {
	opcode, err := OpcodeFromWord(word)
	if err != nil {
		return UInstruction{}, err
	}
	if err := checkFormat(opcode, FormatU); err != nil {
		return UInstruction{}, err
	}
	imm, err := ImmFieldU.FromRawBits(word >> 12)
	if err != nil {
		return UInstruction{}, err
	}
	return UInstruction{opcode: opcode, rd: RdFromWord(word), imm: imm}, nil
}

func (in UInstruction) Opcode() Opcode       { return in.opcode }
func (in UInstruction) Format() Format       { return FormatU }
func (in UInstruction) Rd() Register         { return in.rd }
func (in UInstruction) Immediate() Immediate { return in.imm }

func (in UInstruction) Encode() uint32 {
	return in.opcode.Bits() | in.rd.RdBits() | in.imm.RawBits()<<12
}

func (in UInstruction) Mnemonic() (Mnemonic, bool) {
	return lookup(in.opcode, 0, 0)
}

func (in UInstruction) Operands() []Operand {
	return []Operand{regOperand(in.rd), immOperand(in.imm)}
}

func (in UInstruction) String() string {
	return render(in)
}

func (UInstruction) variant() {}
