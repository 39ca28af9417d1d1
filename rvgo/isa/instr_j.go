package isa

// JInstruction is jal: rd receives pc+4, pc moves by a 21-bit signed offset.
type JInstruction struct {
	opcode Opcode
	rd     Register
	imm    Immediate
}

var _ Variant = JInstruction{}

func NewJInstruction(opcode Opcode, rd Register, imm Immediate) (JInstruction, error) {
	if err := checkFormat(opcode, FormatJ); err != nil {
		return JInstruction{}, err
	}
	if imm.Field() != ImmFieldJ {
		return JInstruction{}, fieldMismatch(imm, ImmFieldJ)
	}
	return JInstruction{opcode: opcode, rd: rd, imm: imm}, nil
}

// The raw pattern starts at imm[1]:
// word[21:30] -> imm[1:10], word[20] -> imm[11], word[12:19] -> imm[12:19], word[31] -> imm[20]
func gatherImmJ(word uint32) uint32 {
	var raw uint32
	raw = copyBits(word, 21, raw, 0, 10)
	raw = copyBits(word, 20, raw, 10, 1)
	raw = copyBits(word, 12, raw, 11, 8)
	raw = copyBits(word, 31, raw, 19, 1)
	return raw
}

func scatterImmJ(raw uint32) uint32 {
	var word uint32
	word = copyBits(raw, 0, word, 21, 10)
	word = copyBits(raw, 10, word, 20, 1)
	word = copyBits(raw, 11, word, 12, 8)
	word = copyBits(raw, 19, word, 31, 1)
	return word
}

func DecodeJ(word uint32) (JInstruction, error) {
	opcode, err := OpcodeFromWord(word)
	if err != nil {
		return JInstruction{}, err
	}
	if err := checkFormat(opcode, FormatJ); err != nil {
		return JInstruction{}, err
	}
	imm, err := ImmFieldJ.FromRawBits(gatherImmJ(word))
	if err != nil {
		return JInstruction{}, err
	}
	return JInstruction{opcode: opcode, rd: RdFromWord(word), imm: imm}, nil
}

func (in JInstruction) Opcode() Opcode       { return in.opcode }
func (in JInstruction) Format() Format       { return FormatJ }
func (in JInstruction) Rd() Register         { return in.rd }
func (in JInstruction) Immediate() Immediate { return in.imm }

func (in JInstruction) Encode() uint32 {
	return in.opcode.Bits() | in.rd.RdBits() | scatterImmJ(in.imm.RawBits())
}

func (in JInstruction) Mnemonic() (Mnemonic, bool) {
	return lookup(in.opcode, 0, 0)
}

func (in JInstruction) Operands() []Operand {
	return []Operand{regOperand(in.rd), immOperand(in.imm)}
}

func (in JInstruction) String() string {
	return render(in)
}

func (JInstruction) variant() {}
