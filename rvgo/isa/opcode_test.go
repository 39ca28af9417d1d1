package isa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum-optimism/rvisa/rvgo/opcodes"
	"github.com/ethereum-optimism/rvisa/rvgo/riscv"
)

func TestFormatFromOpcode(t *testing.T) {
	cases := []struct {
		opcode uint8
		format Format
	}{
		{riscv.OpOp, FormatR},
		{riscv.OpOp32, FormatR},
		{riscv.OpAMO, FormatR},
		{riscv.OpImm, FormatI},
		{riscv.OpLoad, FormatI},
		{riscv.OpJALR, FormatI},
		{riscv.OpSystem, FormatI},
		{riscv.OpStore, FormatS},
		{riscv.OpBranch, FormatB},
		{riscv.OpLUI, FormatU},
		{riscv.OpJAL, FormatJ},
	}
	for _, c := range cases {
		f, err := FormatFromOpcode(c.opcode)
		require.NoError(t, err, "opcode %#02x", c.opcode)
		require.Equal(t, c.format, f, "opcode %#02x", c.opcode)
	}

	for _, op := range []uint8{riscv.OpAUIPC, riscv.OpMiscMem, riscv.OpImm32, riscv.OpCustom0, riscv.OpLoadFP} {
		_, err := FormatFromOpcode(op)
		require.ErrorIs(t, err, ErrUnrecognizedInstructionFormat, "opcode %#02x", op)
	}
}

func TestFormatFromOpcodeAllKeys(t *testing.T) {
	formats := map[uint8]Format{
		0b11000: FormatB,
		0b00100: FormatI, 0b00000: FormatI, 0b11001: FormatI, 0b11100: FormatI,
		0b11011: FormatJ,
		0b01100: FormatR, 0b01011: FormatR, 0b01110: FormatR,
		0b01000: FormatS,
		0b01101: FormatU,
	}
	for key := uint8(0); key < 32; key++ {
		// the low two bits and bit 7 never take part
		for _, low := range []uint8{0b00, 0b11, 0x80 | 0b01} {
			f, err := FormatFromOpcode(key<<2 | low)
			if want, ok := formats[key]; ok {
				require.NoError(t, err, "key %05b", key)
				require.Equal(t, want, f, "key %05b", key)
			} else {
				require.ErrorIs(t, err, ErrUnrecognizedInstructionFormat, "key %05b", key)
				require.Equal(t, FormatUnknown, f)
			}
		}
	}

	// 0b10010 is not a format
	_, err := FormatFromOpcode(0x4B)
	require.ErrorIs(t, err, ErrUnrecognizedInstructionFormat)
	_, err = NewOpcode(0x4B)
	require.ErrorIs(t, err, ErrUnrecognizedInstructionFormat)
	_, err = Decode(0x0000004B)
	require.ErrorIs(t, err, ErrUnrecognizedInstructionFormat)
}

func TestSizeFromOpcode(t *testing.T) {
	cases := []struct {
		opcode uint8
		size   Size
	}{
		{0b0000000, Size16},
		{0b0000001, Size16},
		{0b1111110, Size16},
		{riscv.OpOp, Size32},
		{riscv.OpJAL, Size32},
		{0b0011111, Size48},
		{0b1011111, Size48},
		{0b0111111, Size64},
	}
	for _, c := range cases {
		s, err := SizeFromOpcode(c.opcode)
		require.NoError(t, err, "opcode %07b", c.opcode)
		require.Equal(t, c.size, s, "opcode %07b", c.opcode)
	}
	_, err := SizeFromOpcode(0b1111111)
	require.ErrorIs(t, err, ErrUnrecognizedInstructionSize)

	require.Equal(t, uint64(32), Size32.Bits())
	require.Equal(t, uint64(4), Size32.Bytes())
	require.Equal(t, "48", Size48.String())
}

func TestNewOpcode(t *testing.T) {
	op, err := NewOpcode(riscv.OpOp)
	require.NoError(t, err)
	require.Equal(t, FormatR, op.Format())
	require.Equal(t, Size32, op.Size())
	require.Equal(t, uint32(0x33), op.Bits())
	require.Equal(t, "0110011", op.String())
	require.False(t, op.IsCompressed())

	_, err = NewOpcode(0x80 | riscv.OpOp)
	require.ErrorIs(t, err, ErrInvalidOpcode)

	// size is classified before format
	_, err = NewOpcode(0b1111111)
	require.ErrorIs(t, err, ErrUnrecognizedInstructionSize)
	_, err = NewOpcode(0b0011111)
	require.ErrorIs(t, err, ErrUnrecognizedInstructionFormat)

	// a compressed-size opcode can still land on a known format
	op, err = NewOpcode(0b0010000)
	require.NoError(t, err)
	require.Equal(t, Size16, op.Size())
	require.Equal(t, FormatI, op.Format())
	require.True(t, op.IsCompressed())

	op, err = OpcodeFromWord(0xFFFF_FF63)
	require.NoError(t, err)
	require.Equal(t, uint8(riscv.OpBranch), op.Value())

	require.Panics(t, func() { MustOpcode(riscv.OpAUIPC) })
}

func TestExtensionFromOpcode(t *testing.T) {
	for _, op := range []uint8{riscv.OpCustom0, riscv.OpCustom1, riscv.OpCustom2, riscv.OpCustom3} {
		ext, err := ExtensionFromOpcode(op)
		require.NoError(t, err)
		require.Equal(t, opcodes.ExtCustom, ext)
	}
	_, err := ExtensionFromOpcode(riscv.OpOp)
	require.ErrorIs(t, err, ErrUnrecognizedExtension)
	_, err = ExtensionFromOpcode(riscv.OpCustom0 &^ 0b11)
	require.ErrorIs(t, err, ErrUnrecognizedExtension)
}
