package isa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum-optimism/rvisa/rvgo/riscv"
)

func TestBuilder(t *testing.T) {
	in, err := NewBuilder().
		SetOpcode(MustOpcode(riscv.OpOp)).
		SetRd(A0).
		SetRs1(T0).
		SetRs2(T1).
		SetFunct3(Funct3{0}).
		SetFunct7(Funct7{0}).
		Build()
	require.NoError(t, err)
	require.Equal(t, uint32(0x00628533), in.Encode())

	in, err = NewBuilder().
		SetOpcode(MustOpcode(riscv.OpBranch)).
		SetRs1(A2).
		SetRs2(A1).
		SetFunct3(Funct3{4}).
		SetImmediate(8).
		Build()
	require.NoError(t, err)
	require.Equal(t, uint32(0x00b64463), in.Encode())

	in, err = NewBuilder().
		SetOpcode(MustOpcode(riscv.OpStore)).
		SetRs1(SP).
		SetRs2(A1).
		SetFunct3(Funct3{2}).
		SetImmediate(8).
		Build()
	require.NoError(t, err)
	require.Equal(t, uint32(0x00B12423), in.Encode())

	in, err = NewBuilder().
		SetOpcode(MustOpcode(riscv.OpImm)).
		SetRd(A0).
		SetRs1(A0).
		SetFunct3(Funct3{0}).
		SetImmediate(-1).
		Build()
	require.NoError(t, err)
	require.Equal(t, uint32(0xfff50513), in.Encode())

	in, err = NewBuilder().
		SetOpcode(MustOpcode(riscv.OpJAL)).
		SetRd(Zero).
		SetImmediate(-4).
		Build()
	require.NoError(t, err)
	require.Equal(t, uint32(0xffdff06f), in.Encode())
}

func TestBuilderIgnoresExtraFields(t *testing.T) {
	in, err := NewBuilder().
		SetOpcode(MustOpcode(riscv.OpLUI)).
		SetRd(A0).
		SetRs1(T6).
		SetFunct7(Funct7{0x7F}).
		SetImmediate(0x12345000).
		Build()
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345537), in.Encode())
}

func TestBuilderMissingFields(t *testing.T) {
	_, err := NewBuilder().SetRd(A0).Build()
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "opcode", missing.Field)
	require.ErrorIs(t, err, ErrBuilder)
	require.EqualError(t, err, "opcode value not provided")

	_, err = NewBuilder().
		SetOpcode(MustOpcode(riscv.OpOp)).
		SetRd(A0).
		SetRs1(A1).
		SetFunct3(Funct3{0}).
		SetFunct7(Funct7{0}).
		Build()
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "rs2", missing.Field)

	_, err = NewBuilder().
		SetOpcode(MustOpcode(riscv.OpJAL)).
		SetRd(RA).
		Build()
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "immediate", missing.Field)
}

func TestBuilderImmediateChecks(t *testing.T) {
	_, err := NewBuilder().
		SetOpcode(MustOpcode(riscv.OpImm)).
		SetRd(A0).
		SetRs1(A0).
		SetFunct3(Funct3{0}).
		SetImmediate(2048).
		Build()
	var oor *ImmediateOutOfRangeError
	require.ErrorAs(t, err, &oor)
	require.Equal(t, int64(-2048), oor.Min)
	require.Equal(t, int64(2047), oor.Max)

	_, err = NewBuilder().
		SetOpcode(MustOpcode(riscv.OpBranch)).
		SetRs1(A0).
		SetRs2(A1).
		SetFunct3(Funct3{0}).
		SetImmediate(7).
		Build()
	var before *ImmediateBitsBeforeStartError
	require.ErrorAs(t, err, &before)
}

func TestBuilderRoundTripsDecoded(t *testing.T) {
	for _, word := range []uint32{0x00628533, 0xfff50513, 0x00B12423, 0x00b64463, 0x12345537, 0xffdff06f} {
		in, err := Decode(word)
		require.NoError(t, err)

		b := NewBuilder().SetOpcode(in.Opcode())
		if r, ok := in.Rd(); ok {
			b.SetRd(r)
		}
		if r, ok := in.Rs1(); ok {
			b.SetRs1(r)
		}
		if r, ok := in.Rs2(); ok {
			b.SetRs2(r)
		}
		if f, ok := in.Funct3(); ok {
			b.SetFunct3(f)
		}
		if f, ok := in.Funct7(); ok {
			b.SetFunct7(f)
		}
		if imm, ok := in.Immediate(); ok {
			b.SetImmediate(imm.Signed())
		}
		built, err := b.Build()
		require.NoError(t, err)
		require.Equal(t, in, built)
	}
}
