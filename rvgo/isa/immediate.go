package isa

import (
	"errors"
	"fmt"
)

var ErrInvalidImmediateField = errors.New("invalid immediate field")

// ImmediateField describes which bits Start..End (inclusive) of an immediate
// an instruction format encodes. Bits below Start are always zero.
type ImmediateField struct {
	Start, End uint8
}

var (
	ImmFieldI = ImmediateField{Start: 0, End: 11}
	ImmFieldS = ImmediateField{Start: 0, End: 11}
	ImmFieldB = ImmediateField{Start: 1, End: 12}
	ImmFieldU = ImmediateField{Start: 12, End: 31}
	ImmFieldJ = ImmediateField{Start: 1, End: 20}
)

func (f ImmediateField) valid() bool {
	return f.Start <= f.End && f.End < 32
}

// Width is the number of stored bits.
func (f ImmediateField) Width() uint8 {
	return f.End - f.Start + 1
}

// Range returns the inclusive bounds of the signed values the field can hold.
func (f ImmediateField) Range() (min, max int64) {
	span := int64(1) << (f.End - f.Start)
	return -span << f.Start, (span - 1) << f.Start
}

func (f ImmediateField) String() string {
	return fmt.Sprintf("imm[%d:%d]", f.End, f.Start)
}

// FromSigned validates v and stores it normalized.
func (f ImmediateField) FromSigned(v int64) (Immediate, error) {
	if !f.valid() {
		return Immediate{}, fmt.Errorf("%w: [%d,%d]", ErrInvalidImmediateField, f.Start, f.End)
	}
	if min, max := f.Range(); v < min || v > max {
		return Immediate{}, &ImmediateOutOfRangeError{Min: min, Max: max}
	}
	if v&((int64(1)<<f.Start)-1) != 0 {
		return Immediate{}, &ImmediateBitsBeforeStartError{Start: f.Start}
	}
	return Immediate{field: f, norm: int32(v >> f.Start)}, nil
}

// FromRawBits takes the normalized, unsigned bit pattern as it is scattered
// into an instruction word.
func (f ImmediateField) FromRawBits(bits uint32) (Immediate, error) {
	if !f.valid() {
		return Immediate{}, fmt.Errorf("%w: [%d,%d]", ErrInvalidImmediateField, f.Start, f.End)
	}
	m := mask32(f.Width())
	if bits&^m != 0 {
		return Immediate{}, &ImmediateOutOfRangeError{Min: 0, Max: int64(m)}
	}
	return Immediate{field: f, norm: signExtend32(bits, f.Width())}, nil
}

// Immediate is a signed bit field, kept shifted right by Field().Start and
// sign extended within Field().Width() bits.
type Immediate struct {
	field ImmediateField
	norm  int32
}

func NewImmediate(start, end uint8, v int64) (Immediate, error) {
	return ImmediateField{Start: start, End: end}.FromSigned(v)
}

func ImmediateFromRawBits(start, end uint8, bits uint32) (Immediate, error) {
	return ImmediateField{Start: start, End: end}.FromRawBits(bits)
}

func (imm Immediate) Field() ImmediateField { return imm.field }

// Signed is the value the immediate stands for, low bits included.
func (imm Immediate) Signed() int64 {
	return int64(imm.norm) << imm.field.Start
}

func (imm Immediate) RawBits() uint32 {
	return uint32(imm.norm) & mask32(imm.field.Width())
}

func (imm Immediate) String() string {
	return fmt.Sprintf("%d", imm.Signed())
}

func fieldMismatch(imm Immediate, want ImmediateField) error {
	return fmt.Errorf("%w: got %s, want %s", ErrInvalidImmediateField, imm.Field(), want)
}
