package isa

import (
	"fmt"

	"github.com/ethereum-optimism/rvisa/rvgo/opcodes"
)

// Format is the field layout of a 32-bit instruction.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatR
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromOpcode classifies the five bits above the two low opcode bits.
func FormatFromOpcode(opcode uint8) (Format, error) {
	switch (opcode >> 2) & 0b11111 {
	case 0b11000:
		return FormatB, nil
	case 0b00100, 0b00000, 0b11001, 0b11100:
		return FormatI, nil
	case 0b11011:
		return FormatJ, nil
	case 0b01100, 0b01011, 0b01110:
		return FormatR, nil
	case 0b01000:
		return FormatS, nil
	case 0b01101:
		return FormatU, nil
	default:
		return FormatUnknown, ErrUnrecognizedInstructionFormat
	}
}

// Size is the encoded length of an instruction.
type Size uint8

const (
	SizeUnknown Size = iota
	Size16
	Size32
	Size48
	Size64
)

// Bits returns the instruction length in bits.
func (s Size) Bits() uint64 {
	switch s {
	case Size16:
		return 16
	case Size32:
		return 32
	case Size48:
		return 48
	case Size64:
		return 64
	default:
		return 0
	}
}

func (s Size) Bytes() uint64 {
	return s.Bits() / 8
}

func (s Size) String() string {
	return fmt.Sprintf("%d", s.Bits())
}

// SizeFromOpcode classifies the instruction length from the low opcode bits.
func SizeFromOpcode(opcode uint8) (Size, error) {
	if opcode&0b11 != 0b11 {
		return Size16, nil
	}
	bits := opcode >> 2
	switch {
	case bits&0b111 != 0b111:
		return Size32, nil
	case bits&0b1111 == 0b0111:
		return Size48, nil
	case bits&0b11111 == 0b01111:
		return Size64, nil
	default:
		return SizeUnknown, ErrUnrecognizedInstructionSize
	}
}

// ExtensionFromOpcode recognizes the opcodes reserved for custom extensions.
func ExtensionFromOpcode(opcode uint8) (opcodes.Extension, error) {
	if opcode&0b11 != 0b11 {
		return opcodes.ExtUnknown, ErrUnrecognizedExtension
	}
	switch (opcode >> 2) & 0b11111 {
	case 0b00010, 0b01010, 0b10110, 0b11110:
		return opcodes.ExtCustom, nil
	default:
		return opcodes.ExtUnknown, ErrUnrecognizedExtension
	}
}
