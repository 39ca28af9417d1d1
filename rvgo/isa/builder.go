package isa

// Builder collects instruction fields and assembles the variant selected by
// the opcode's format. Fields the format does not use are ignored.
type Builder struct {
	opcode    *Opcode
	funct3    *Funct3
	funct7    *Funct7
	rs1       *Register
	rs2       *Register
	rd        *Register
	immediate *int64
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetOpcode(op Opcode) *Builder {
	b.opcode = &op
	return b
}

func (b *Builder) SetFunct3(f Funct3) *Builder {
	b.funct3 = &f
	return b
}

func (b *Builder) SetFunct7(f Funct7) *Builder {
	b.funct7 = &f
	return b
}

func (b *Builder) SetRs1(r Register) *Builder {
	b.rs1 = &r
	return b
}

func (b *Builder) SetRs2(r Register) *Builder {
	b.rs2 = &r
	return b
}

func (b *Builder) SetRd(r Register) *Builder {
	b.rd = &r
	return b
}

// SetImmediate takes the signed value, e.g. the byte offset of a branch.
func (b *Builder) SetImmediate(v int64) *Builder {
	b.immediate = &v
	return b
}

func need[T any](v *T, field string) (T, error) {
	if v == nil {
		var zero T
		return zero, &MissingFieldError{Field: field}
	}
	return *v, nil
}

func (b *Builder) Build() (Instruction, error) {
	opcode, err := need(b.opcode, "opcode")
	if err != nil {
		return Instruction{}, err
	}
	var v Variant
	switch opcode.Format() {
	case FormatR:
		v, err = b.buildR(opcode)
	case FormatI:
		v, err = b.buildI(opcode)
	case FormatS:
		v, err = b.buildS(opcode)
	case FormatB:
		v, err = b.buildB(opcode)
	case FormatU:
		v, err = b.buildU(opcode)
	case FormatJ:
		v, err = b.buildJ(opcode)
	default:
		return Instruction{}, ErrInvalidOpcode
	}
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{v: v}, nil
}

func (b *Builder) buildR(opcode Opcode) (Variant, error) {
	rs1, err := need(b.rs1, "rs1")
	if err != nil {
		return nil, err
	}
	rs2, err := need(b.rs2, "rs2")
	if err != nil {
		return nil, err
	}
	rd, err := need(b.rd, "rd")
	if err != nil {
		return nil, err
	}
	funct3, err := need(b.funct3, "funct3")
	if err != nil {
		return nil, err
	}
	funct7, err := need(b.funct7, "funct7")
	if err != nil {
		return nil, err
	}
	return NewRInstruction(opcode, rd, rs1, rs2, funct3, funct7)
}

func (b *Builder) buildI(opcode Opcode) (Variant, error) {
	rs1, err := need(b.rs1, "rs1")
	if err != nil {
		return nil, err
	}
	rd, err := need(b.rd, "rd")
	if err != nil {
		return nil, err
	}
	funct3, err := need(b.funct3, "funct3")
	if err != nil {
		return nil, err
	}
	v, err := need(b.immediate, "immediate")
	if err != nil {
		return nil, err
	}
	imm, err := ImmFieldI.FromSigned(v)
	if err != nil {
		return nil, err
	}
	return NewIInstruction(opcode, rd, rs1, funct3, imm)
}

func (b *Builder) buildS(opcode Opcode) (Variant, error) {
	rs1, err := need(b.rs1, "rs1")
	if err != nil {
		return nil, err
	}
	rs2, err := need(b.rs2, "rs2")
	if err != nil {
		return nil, err
	}
	funct3, err := need(b.funct3, "funct3")
	if err != nil {
		return nil, err
	}
	v, err := need(b.immediate, "immediate")
	if err != nil {
		return nil, err
	}
	imm, err := ImmFieldS.FromSigned(v)
	if err != nil {
		return nil, err
	}
	return NewSInstruction(opcode, rs1, rs2, funct3, imm)
}

func (b *Builder) buildB(opcode Opcode) (Variant, error) {
	rs1, err := need(b.rs1, "rs1")
	if err != nil {
		return nil, err
	}
	rs2, err := need(b.rs2, "rs2")
	if err != nil {
		return nil, err
	}
	funct3, err := need(b.funct3, "funct3")
	if err != nil {
		return nil, err
	}
	v, err := need(b.immediate, "immediate")
	if err != nil {
		return nil, err
	}
	imm, err := ImmFieldB.FromSigned(v)
	if err != nil {
		return nil, err
	}
	return NewBInstruction(opcode, rs1, rs2, funct3, imm)
}

func (b *Builder) buildU(opcode Opcode) (Variant, error) {
	rd, err := need(b.rd, "rd")
	if err != nil {
		return nil, err
	}
	v, err := need(b.immediate, "immediate")
	if err != nil {
		return nil, err
	}
	imm, err := ImmFieldU.FromSigned(v)
	if err != nil {
		return nil, err
	}
	return NewUInstruction(opcode, rd, imm)
}

func (b *Builder) buildJ(opcode Opcode) (Variant, error) {
	rd, err := need(b.rd, "rd")
	if err != nil {
		return nil, err
	}
	v, err := need(b.immediate, "immediate")
	if err != nil {
		return nil, err
	}
	imm, err := ImmFieldJ.FromSigned(v)
	if err != nil {
		return nil, err
	}
	return NewJInstruction(opcode, rd, imm)
}
