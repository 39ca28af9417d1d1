package isa

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOpcode                 = errors.New("invalid opcode: bit 7 must be clear")
	ErrUnrecognizedInstructionFormat = errors.New("unrecognized instruction format")
	ErrUnrecognizedInstructionSize   = errors.New("unrecognized instruction size")
	ErrUnrecognizedExtension         = errors.New("unrecognized extension")
	ErrInvalidRegister               = errors.New("invalid register: index must be lower than 32")

	// ErrBuilder is matched by every error Builder.Build reports for missing fields.
	ErrBuilder = errors.New("instruction builder")
)

// UnexpectedFormatError is returned when an opcode classifies to a format
// other than the one of the instruction being constructed.
type UnexpectedFormatError struct {
	Format Format
}

func (e *UnexpectedFormatError) Error() string {
	return fmt.Sprintf("unexpected instruction format %s", e.Format)
}

type InvalidFunctValueError struct {
	Width uint8
	Value uint8
}

func (e *InvalidFunctValueError) Error() string {
	return fmt.Sprintf("invalid funct value %#x: does not fit in %d bits", e.Value, e.Width)
}

type ImmediateOutOfRangeError struct {
	Min, Max int64
}

func (e *ImmediateOutOfRangeError) Error() string {
	return fmt.Sprintf("immediate out of range [%d, %d]", e.Min, e.Max)
}

type ImmediateBitsBeforeStartError struct {
	Start uint8
}

func (e *ImmediateBitsBeforeStartError) Error() string {
	return fmt.Sprintf("immediate has non-zero bits below bit %d", e.Start)
}

// MissingFieldError names the field a Builder needed but was not given.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s value not provided", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrBuilder
}
