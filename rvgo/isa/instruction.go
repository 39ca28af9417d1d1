package isa

// Instruction holds exactly one of RInstruction, IInstruction, SInstruction,
// BInstruction, UInstruction or JInstruction. The zero Instruction holds none
// and is only useful as a placeholder.
type Instruction struct {
	v Variant
}

// Wrap puts a variant into the union. Only variants made by their New or
// Decode functions are accepted; a zero variant has no valid opcode.
func Wrap(v Variant) (Instruction, error) {
	if v == nil {
		return Instruction{}, ErrUnrecognizedInstructionFormat
	}
	if err := checkFormat(v.Opcode(), v.Format()); err != nil {
		return Instruction{}, err
	}
	return Instruction{v: v}, nil
}

// Decode classifies the word by its opcode and decodes the matching variant.
func Decode(word uint32) (Instruction, error) {
	opcode, err := OpcodeFromWord(word)
	if err != nil {
		return Instruction{}, err
	}
	var v Variant
	switch opcode.Format() {
	case FormatR:
		v, err = DecodeR(word)
	case FormatI:
		v, err = DecodeI(word)
	case FormatS:
		v, err = DecodeS(word)
	case FormatB:
		v, err = DecodeB(word)
	case FormatU:
		v, err = DecodeU(word)
	case FormatJ:
		v, err = DecodeJ(word)
	default:
		return Instruction{}, ErrUnrecognizedInstructionFormat
	}
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{v: v}, nil
}

// Variant returns the active variant, nil for the zero Instruction.
func (i Instruction) Variant() Variant { return i.v }

func (i Instruction) IsZero() bool { return i.v == nil }

func (i Instruction) Encode() uint32 {
	if i.v == nil {
		return 0
	}
	return i.v.Encode()
}

func (i Instruction) Opcode() Opcode {
	if i.v == nil {
		return Opcode{}
	}
	return i.v.Opcode()
}

func (i Instruction) Format() Format {
	if i.v == nil {
		return FormatUnknown
	}
	return i.v.Format()
}

func (i Instruction) Size() Size {
	return i.Opcode().Size()
}

func (i Instruction) Mnemonic() (Mnemonic, bool) {
	if i.v == nil {
		return "", false
	}
	return i.v.Mnemonic()
}

func (i Instruction) Operands() []Operand {
	if i.v == nil {
		return nil
	}
	return i.v.Operands()
}

func (i Instruction) String() string {
	if i.v == nil {
		return "<nil>"
	}
	return render(i.v)
}

// Field capabilities shared by subsets of the variants.
type (
	hasRs1       interface{ Rs1() Register }
	hasRs2       interface{ Rs2() Register }
	hasRd        interface{ Rd() Register }
	hasFunct3    interface{ Funct3() Funct3 }
	hasFunct7    interface{ Funct7() Funct7 }
	hasImmediate interface{ Immediate() Immediate }
)

func (i Instruction) Rs1() (Register, bool) {
	if x, ok := i.v.(hasRs1); ok {
		return x.Rs1(), true
	}
	return Register{}, false
}

func (i Instruction) Rs2() (Register, bool) {
	if x, ok := i.v.(hasRs2); ok {
		return x.Rs2(), true
	}
	return Register{}, false
}

func (i Instruction) Rd() (Register, bool) {
	if x, ok := i.v.(hasRd); ok {
		return x.Rd(), true
	}
	return Register{}, false
}

func (i Instruction) Funct3() (Funct3, bool) {
	if x, ok := i.v.(hasFunct3); ok {
		return x.Funct3(), true
	}
	return Funct3{}, false
}

func (i Instruction) Funct7() (Funct7, bool) {
	if x, ok := i.v.(hasFunct7); ok {
		return x.Funct7(), true
	}
	return Funct7{}, false
}

func (i Instruction) Immediate() (Immediate, bool) {
	if x, ok := i.v.(hasImmediate); ok {
		return x.Immediate(), true
	}
	return Immediate{}, false
}

func (i Instruction) AsR() (RInstruction, bool) {
	x, ok := i.v.(RInstruction)
	return x, ok
}

func (i Instruction) AsI() (IInstruction, bool) {
	x, ok := i.v.(IInstruction)
	return x, ok
}

func (i Instruction) AsS() (SInstruction, bool) {
	x, ok := i.v.(SInstruction)
	return x, ok
}

func (i Instruction) AsB() (BInstruction, bool) {
	x, ok := i.v.(BInstruction)
	return x, ok
}

func (i Instruction) AsU() (UInstruction, bool) {
	x, ok := i.v.(UInstruction)
	return x, ok
}

func (i Instruction) AsJ() (JInstruction, bool) {
	x, ok := i.v.(JInstruction)
	return x, ok
}
