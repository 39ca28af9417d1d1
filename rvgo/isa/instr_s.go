package isa

// SInstruction is a store: rs2 is written to imm(rs1).
type SInstruction struct {
	opcode Opcode
	rs1    Register
	rs2    Register
	funct3 Funct3
	imm    Immediate
}

var _ Variant = SInstruction{}

func NewSInstruction(opcode Opcode, rs1, rs2 Register, funct3 Funct3, imm Immediate) (SInstruction, error) {
	if err := checkFormat(opcode, FormatS); err != nil {
		return SInstruction{}, err
	}
	if imm.Field() != ImmFieldS {
		return SInstruction{}, fieldMismatch(imm, ImmFieldS)
	}
	return SInstruction{opcode: opcode, rs1: rs1, rs2: rs2, funct3: funct3, imm: imm}, nil
}

// word[7:11] -> imm[0:4], word[25:31] -> imm[5:11]
func gatherImmS(word uint32) uint32 {
	var raw uint32
	raw = copyBits(word, 7, raw, 0, 5)
	raw = copyBits(word, 25, raw, 5, 7)
	return raw
}

func scatterImmS(raw uint32) uint32 {
	var word uint32
	word = copyBits(raw, 0, word, 7, 5)
	word = copyBits(raw, 5, word, 25, 7)
	return word
}

func DecodeS(word uint32) (SInstruction, error) {
	opcode, err := OpcodeFromWord(word)
	if err != nil {
		return SInstruction{}, err
	}
	if err := checkFormat(opcode, FormatS); err != nil {
		return SInstruction{}, err
	}
	imm, err := ImmFieldS.FromRawBits(gatherImmS(word))
	if err != nil {
		return SInstruction{}, err
	}
	return SInstruction{
		opcode: opcode,
		rs1:    Rs1FromWord(word),
		rs2:    Rs2FromWord(word),
		funct3: Funct3FromWord(word),
		imm:    imm,
	}, nil
}

func (in SInstruction) Opcode() Opcode       { return in.opcode }
func (in SInstruction) Format() Format       { return FormatS }
func (in SInstruction) Rs1() Register        { return in.rs1 }
func (in SInstruction) Rs2() Register        { return in.rs2 }
func (in SInstruction) Funct3() Funct3       { return in.funct3 }
func (in SInstruction) Immediate() Immediate { return in.imm }

func (in SInstruction) Encode() uint32 {
	return in.opcode.Bits() |
		in.funct3.Bits() |
		in.rs1.Rs1Bits() |
		in.rs2.Rs2Bits() |
		scatterImmS(in.imm.RawBits())
}

func (in SInstruction) Mnemonic() (Mnemonic, bool) {
	return lookup(in.opcode, in.funct3.Value(), 0)
}

// Operands are (rs2, imm, rs1), written "rs2, imm(rs1)".
func (in SInstruction) Operands() []Operand {
	return []Operand{regOperand(in.rs2), immOperand(in.imm), regOperand(in.rs1)}
}

func (in SInstruction) String() string {
	return render(in)
}

func (SInstruction) variant() {}
