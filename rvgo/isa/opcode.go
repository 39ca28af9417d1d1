package isa

import (
	"fmt"

	"github.com/ethereum-optimism/rvisa/rvgo/riscv"
)

// Opcode is a validated 7-bit major opcode. The zero value is not valid;
// obtain one through NewOpcode or OpcodeFromWord.
type Opcode struct {
	v      uint8
	format Format
	size   Size
}

func NewOpcode(raw uint8) (Opcode, error) {
	if raw&(1<<7) != 0 {
		return Opcode{}, ErrInvalidOpcode
	}
	size, err := SizeFromOpcode(raw)
	if err != nil {
		return Opcode{}, err
	}
	format, err := FormatFromOpcode(raw)
	if err != nil {
		return Opcode{}, err
	}
	return Opcode{v: raw, format: format, size: size}, nil
}

// OpcodeFromWord validates the low seven bits of an instruction word.
func OpcodeFromWord(word uint32) (Opcode, error) {
	return NewOpcode(uint8(word & riscv.OpcodeMask))
}

// MustOpcode is NewOpcode for opcodes known to be valid, like the riscv constants.
func MustOpcode(raw uint8) Opcode {
	op, err := NewOpcode(raw)
	if err != nil {
		panic(fmt.Errorf("opcode %#02x: %w", raw, err))
	}
	return op
}

func (op Opcode) Value() uint8 { return op.v }

func (op Opcode) Bits() uint32 { return uint32(op.v) }

// Format is FormatUnknown only for the zero Opcode.
func (op Opcode) Format() Format { return op.format }

func (op Opcode) Size() Size { return op.size }

func (op Opcode) IsCompressed() bool { return op.v&0b11 != 0b11 }

func (op Opcode) String() string {
	return fmt.Sprintf("%07b", op.v)
}

// checkFormat is the construction guard shared by all instruction variants.
func checkFormat(op Opcode, want Format) error {
	if op.format == FormatUnknown {
		return ErrInvalidOpcode
	}
	if op.format != want {
		return &UnexpectedFormatError{Format: op.format}
	}
	return nil
}
