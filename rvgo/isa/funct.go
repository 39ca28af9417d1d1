package isa

import (
	"fmt"

	"github.com/ethereum-optimism/rvisa/rvgo/riscv"
)

// Funct3 is the 3-bit secondary opcode at bits 12-14.
type Funct3 struct {
	v uint8
}

// Funct7 is the 7-bit secondary opcode at bits 25-31.
type Funct7 struct {
	v uint8
}

func NewFunct3(raw uint8) (Funct3, error) {
	if raw > riscv.Funct3Mask {
		return Funct3{}, &InvalidFunctValueError{Width: 3, Value: raw}
	}
	return Funct3{raw}, nil
}

func NewFunct7(raw uint8) (Funct7, error) {
	if raw > riscv.Funct7Mask {
		return Funct7{}, &InvalidFunctValueError{Width: 7, Value: raw}
	}
	return Funct7{raw}, nil
}

func Funct3FromWord(word uint32) Funct3 {
	return Funct3{uint8((word >> riscv.ShiftFunct3) & riscv.Funct3Mask)}
}

func Funct7FromWord(word uint32) Funct7 {
	return Funct7{uint8((word >> riscv.ShiftFunct7) & riscv.Funct7Mask)}
}

func (f Funct3) Value() uint8 { return f.v }

func (f Funct3) Bits() uint32 { return uint32(f.v) << riscv.ShiftFunct3 }

func (f Funct3) String() string { return fmt.Sprintf("%03b", f.v) }

func (f Funct7) Value() uint8 { return f.v }

func (f Funct7) Bits() uint32 { return uint32(f.v) << riscv.ShiftFunct7 }

func (f Funct7) String() string { return fmt.Sprintf("%07b", f.v) }
