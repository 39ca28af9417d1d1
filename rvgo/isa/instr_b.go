package isa

// BInstruction is a conditional branch with a pc-relative offset in multiples of 2 bytes.
type BInstruction struct {
	opcode Opcode
	rs1    Register
	rs2    Register
	funct3 Funct3
	imm    Immediate
}

var _ Variant = BInstruction{}

func NewBInstruction(opcode Opcode, rs1, rs2 Register, funct3 Funct3, imm Immediate) (BInstruction, error) {
	if err := checkFormat(opcode, FormatB); err != nil {
		return BInstruction{}, err
	}
	if imm.Field() != ImmFieldB {
		return BInstruction{}, fieldMismatch(imm, ImmFieldB)
	}
	return BInstruction{opcode: opcode, rs1: rs1, rs2: rs2, funct3: funct3, imm: imm}, nil
}

// The raw pattern starts at imm[1]:
// word[8:11] -> imm[1:4], word[25:30] -> imm[5:10], word[7] -> imm[11], word[31] -> imm[12]
func gatherImmB(word uint32) uint32 {
	var raw uint32
	raw = copyBits(word, 8, raw, 0, 4)
	raw = copyBits(word, 25, raw, 4, 6)
	raw = copyBits(word, 7, raw, 10, 1)
	raw = copyBits(word, 31, raw, 11, 1)
	return raw
}

func scatterImmB(raw uint32) uint32 {
	var word uint32
	word = copyBits(raw, 0, word, 8, 4)
	word = copyBits(raw, 4, word, 25, 6)
	word = copyBits(raw, 10, word, 7, 1)
	word = copyBits(raw, 11, word, 31, 1)
	return word
}

func DecodeB(word uint32) (BInstruction, error) {
	opcode, err := OpcodeFromWord(word)
	if err != nil {
		return BInstruction{}, err
	}
	if err := checkFormat(opcode, FormatB); err != nil {
		return BInstruction{}, err
	}
	imm, err := ImmFieldB.FromRawBits(gatherImmB(word))
	if err != nil {
		return BInstruction{}, err
	}
	return BInstruction{
		opcode: opcode,
		rs1:    Rs1FromWord(word),
		rs2:    Rs2FromWord(word),
		funct3: Funct3FromWord(word),
		imm:    imm,
	}, nil
}

func (in BInstruction) Opcode() Opcode       { return in.opcode }
func (in BInstruction) Format() Format       { return FormatB }
func (in BInstruction) Rs1() Register        { return in.rs1 }
func (in BInstruction) Rs2() Register        { return in.rs2 }
func (in BInstruction) Funct3() Funct3       { return in.funct3 }
func (in BInstruction) Immediate() Immediate { return in.imm }

func (in BInstruction) Encode() uint32 {
	return in.opcode.Bits() |
		in.funct3.Bits() |
		in.rs1.Rs1Bits() |
		in.rs2.Rs2Bits() |
		scatterImmB(in.imm.RawBits())
}

func (in BInstruction) Mnemonic() (Mnemonic, bool) {
	return lookup(in.opcode, in.funct3.Value(), 0)
}

func (in BInstruction) Operands() []Operand {
	return []Operand{regOperand(in.rs1), regOperand(in.rs2), immOperand(in.imm)}
}

func (in BInstruction) String() string {
	return render(in)
}

func (BInstruction) variant() {}
