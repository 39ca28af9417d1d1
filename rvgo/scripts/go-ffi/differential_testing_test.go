package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum-optimism/rvisa/rvgo/isa"
)

func TestValuesOf(t *testing.T) {
	in, err := isa.Decode(parseWord("0x00b64463"))
	require.NoError(t, err)
	v := valuesOf(in)
	require.Equal(t, fieldValues{
		Format: uint8(isa.FormatB),
		Opcode: 0x63,
		Funct3: 4,
		Rs1:    12,
		Rs2:    11,
		Imm:    8,
	}, v)

	packed, err := decodedInstructionArgs.Pack(v)
	require.NoError(t, err)
	// static tuple: one word per field
	require.Len(t, packed, 8*32)
	require.Equal(t, big.NewInt(8), new(big.Int).SetBytes(packed[7*32:]))

	in, err = isa.Decode(parseWord("4294247699")) // addi a0, a0, -1
	require.NoError(t, err)
	packed, err = decodedInstructionArgs.Pack(valuesOf(in))
	require.NoError(t, err)
	// negative immediates are two's complement across the word
	for _, b := range packed[7*32:] {
		require.Equal(t, byte(0xFF), b)
	}
}

func TestParseWord(t *testing.T) {
	require.Equal(t, uint32(0x73), parseWord("115"))
	require.Equal(t, uint32(0x73), parseWord("0x73"))
	require.Panics(t, func() { parseWord("0x1_0000_0000") })
	require.Panics(t, func() { parseWord("add") })
}
