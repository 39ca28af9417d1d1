package disasm

import (
	"fmt"
	"strings"

	"github.com/ethereum-optimism/rvisa/rvgo/isa"
)

// Record is a decoded instruction and the address it was read from.
type Record struct {
	Instruction isa.Instruction
	Address     uint64
}

// String renders the record with DefaultConfig.
func (r Record) String() string {
	return NewFormatter(DefaultConfig()).Format(r)
}

type Formatter struct {
	cfg Config
}

func NewFormatter(cfg Config) *Formatter {
	return &Formatter{cfg: cfg}
}

func (f *Formatter) Format(rec Record) string {
	var sb strings.Builder
	if f.cfg.ShowAddress {
		sb.WriteString(fmt.Sprintf(f.cfg.AddressFormat, rec.Address))
		sb.WriteString(f.cfg.AddressSeparator)
	}
	sb.WriteString(f.FormatInstruction(rec.Instruction))
	return sb.String()
}

func (f *Formatter) FormatInstruction(in isa.Instruction) string {
	name := f.cfg.UnknownMnemonic
	if m, ok := in.Mnemonic(); ok {
		name = string(m)
	}
	out := f.cfg.MnemonicCase.apply(name)

	ops := in.Operands()
	if len(ops) == 0 {
		return out
	}
	out += f.cfg.MnemonicSeparator
	if in.Format() == isa.FormatS && len(ops) == 3 {
		// stores read as "rs2, offset(rs1)"
		return out + f.operand(ops[0]) + f.cfg.OperandSeparator + f.operand(ops[1]) + "(" + f.operand(ops[2]) + ")"
	}
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = f.operand(op)
	}
	return out + strings.Join(parts, f.cfg.OperandSeparator)
}

func (f *Formatter) operand(op isa.Operand) string {
	if op.Kind == isa.OperandRegister {
		return f.cfg.RegisterCase.apply(op.Reg.String())
	}
	return f.immediate(op.Imm)
}

func (f *Formatter) immediate(v int64) string {
	if f.cfg.ImmediateFormat == ImmDecimal {
		return fmt.Sprintf("%d", v)
	}
	sign := ""
	u := uint64(v)
	if v < 0 {
		sign = "-"
		u = uint64(-v)
	}
	if f.cfg.HexUpper {
		return fmt.Sprintf("%s0x%X", sign, u)
	}
	return fmt.Sprintf("%s0x%x", sign, u)
}
