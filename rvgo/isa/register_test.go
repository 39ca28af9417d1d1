package isa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	for i := uint8(0); i < 32; i++ {
		r, err := NewRegister(i)
		require.NoError(t, err)
		require.Equal(t, i, r.Index())

		byName, ok := RegisterByName(r.String())
		require.True(t, ok)
		require.Equal(t, r, byName)
	}

	_, err := NewRegister(32)
	require.ErrorIs(t, err, ErrInvalidRegister)
	_, err = NewRegister(0xFF)
	require.ErrorIs(t, err, ErrInvalidRegister)

	require.Equal(t, "zero", Zero.String())
	require.Equal(t, "a0", A0.String())
	require.Equal(t, "t6", T6.String())

	r, ok := RegisterByName("x12")
	require.True(t, ok)
	require.Equal(t, A2, r)
	for _, name := range []string{"x32", "x", "y1", "", "a8", "x-1"} {
		_, ok := RegisterByName(name)
		require.False(t, ok, name)
	}
}

func TestRegisterFromWord(t *testing.T) {
	word := uint32(0x00628533) // add a0, t0, t1
	require.Equal(t, A0, RdFromWord(word))
	require.Equal(t, T0, Rs1FromWord(word))
	require.Equal(t, T1, Rs2FromWord(word))

	// every field extracts in range, whatever the surrounding bits
	require.Equal(t, T6, RdFromWord(0xFFFF_FFFF))
	require.Equal(t, T6, Rs1FromWord(0xFFFF_FFFF))
	require.Equal(t, T6, Rs2FromWord(0xFFFF_FFFF))

	require.Equal(t, uint32(31)<<7, T6.RdBits())
	require.Equal(t, uint32(31)<<15, T6.Rs1Bits())
	require.Equal(t, uint32(31)<<20, T6.Rs2Bits())
}

func TestFunct(t *testing.T) {
	f3, err := NewFunct3(7)
	require.NoError(t, err)
	require.Equal(t, uint8(7), f3.Value())
	require.Equal(t, uint32(7)<<12, f3.Bits())
	require.Equal(t, "111", f3.String())

	_, err = NewFunct3(8)
	var fe *InvalidFunctValueError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, uint8(3), fe.Width)
	require.Equal(t, uint8(8), fe.Value)

	f7, err := NewFunct7(0x20)
	require.NoError(t, err)
	require.Equal(t, uint32(0x20)<<25, f7.Bits())
	require.Equal(t, "0100000", f7.String())

	_, err = NewFunct7(0x80)
	require.ErrorAs(t, err, &fe)
	require.Equal(t, uint8(7), fe.Width)

	require.Equal(t, uint8(0b101), Funct3FromWord(0x40355513).Value())
	require.Equal(t, uint8(0x20), Funct7FromWord(0x40355513).Value())
}
