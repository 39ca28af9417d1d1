package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum-optimism/rvisa/rvgo/fast"
	"github.com/ethereum-optimism/rvisa/rvgo/isa"
	"github.com/ethereum-optimism/rvisa/rvgo/slow"
)

// decodeOrSkip decodes instr as the given format, skipping words of other formats.
func decodeOrSkip(t *testing.T, instr uint32, format isa.Format) isa.Instruction {
	in, err := isa.Decode(instr)
	if err != nil || in.Format() != format {
		t.Skip()
	}
	return in
}

func immediate(t *testing.T, in isa.Instruction) uint32 {
	imm, ok := in.Immediate()
	require.True(t, ok)
	return uint32(int32(imm.Signed()))
}

func FuzzParseTypeI(f *testing.F) {
	f.Add(uint32(0xfff50513))
	f.Fuzz(func(t *testing.T, instr uint32) {
		in := decodeOrSkip(t, instr, isa.FormatI)
		var fastOutput = fast.ParseImmTypeI(instr)
		var slowOutput = slow.ParseImmTypeI(slow.ToU32(instr))
		require.Equal(t, fastOutput, slow.Val(slowOutput))
		require.Equal(t, fastOutput, immediate(t, in))
	})
}

func FuzzParseTypeS(f *testing.F) {
	f.Add(uint32(0xFE112E23))
	f.Fuzz(func(t *testing.T, instr uint32) {
		in := decodeOrSkip(t, instr, isa.FormatS)
		var fastOutput = fast.ParseImmTypeS(instr)
		var slowOutput = slow.ParseImmTypeS(slow.ToU32(instr))
		require.Equal(t, fastOutput, slow.Val(slowOutput))
		require.Equal(t, fastOutput, immediate(t, in))
	})
}

func FuzzParseTypeB(f *testing.F) {
	f.Add(uint32(0x00b64463))
	f.Fuzz(func(t *testing.T, instr uint32) {
		in := decodeOrSkip(t, instr, isa.FormatB)
		var fastOutput = fast.ParseImmTypeB(instr)
		var slowOutput = slow.ParseImmTypeB(slow.ToU32(instr))
		require.Equal(t, fastOutput, slow.Val(slowOutput))
		require.Equal(t, fastOutput, immediate(t, in))
	})
}

func FuzzParseTypeU(f *testing.F) {
	f.Add(uint32(0xFFFFF537))
	f.Fuzz(func(t *testing.T, instr uint32) {
		in := decodeOrSkip(t, instr, isa.FormatU)
		var fastOutput = fast.ParseImmTypeU(instr)
		var slowOutput = slow.ParseImmTypeU(slow.ToU32(instr))
		require.Equal(t, fastOutput, slow.Val(slowOutput))
		require.Equal(t, fastOutput, immediate(t, in))
	})
}

func FuzzParseTypeJ(f *testing.F) {
	f.Add(uint32(0xffdff06f))
	f.Fuzz(func(t *testing.T, instr uint32) {
		in := decodeOrSkip(t, instr, isa.FormatJ)
		var fastOutput = fast.ParseImmTypeJ(instr)
		var slowOutput = slow.ParseImmTypeJ(slow.ToU32(instr))
		require.Equal(t, fastOutput, slow.Val(slowOutput))
		require.Equal(t, fastOutput, immediate(t, in))
	})
}

func FuzzParseFields(f *testing.F) {
	f.Add(uint32(0x00628533))
	f.Add(uint32(0x0EC5A52F))
	f.Fuzz(func(t *testing.T, instr uint32) {
		in, err := isa.Decode(instr)
		if err != nil {
			t.Skip()
		}
		word := slow.ToU32(instr)
		for _, parse := range []struct {
			fast func(fast.U32) fast.U32
			slow func(slow.U32) slow.U32
		}{
			{fast.ParseOpcode, slow.ParseOpcode},
			{fast.ParseRd, slow.ParseRd},
			{fast.ParseFunct3, slow.ParseFunct3},
			{fast.ParseRs1, slow.ParseRs1},
			{fast.ParseRs2, slow.ParseRs2},
			{fast.ParseFunct7, slow.ParseFunct7},
		} {
			require.Equal(t, parse.fast(instr), slow.Val(parse.slow(word)))
		}
		require.Equal(t, fast.IsCompressed(instr), slow.IsCompressed(word))
		require.Equal(t, slow.Val(slow.ParseOpcode(word)), uint32(in.Opcode().Value()))
		if rd, ok := in.Rd(); ok {
			require.Equal(t, slow.Val(slow.ParseRd(word)), uint32(rd.Index()))
		}
		if rs1, ok := in.Rs1(); ok {
			require.Equal(t, slow.Val(slow.ParseRs1(word)), uint32(rs1.Index()))
		}
		if rs2, ok := in.Rs2(); ok {
			require.Equal(t, slow.Val(slow.ParseRs2(word)), uint32(rs2.Index()))
		}
		if f3, ok := in.Funct3(); ok {
			require.Equal(t, slow.Val(slow.ParseFunct3(word)), uint32(f3.Value()))
		}
		if f7, ok := in.Funct7(); ok {
			require.Equal(t, slow.Val(slow.ParseFunct7(word)), uint32(f7.Value()))
		}
		require.Equal(t, slow.IsCompressed(word), in.Opcode().IsCompressed())
		require.Equal(t, instr, in.Encode())
	})
}
