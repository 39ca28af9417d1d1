package fast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseImmediates(t *testing.T) {
	require.Equal(t, uint32(0xFFFFFFFF), ParseImmTypeI(0xfff50513)) // addi a0, a0, -1
	require.Equal(t, uint32(0xFFFFFFFC), ParseImmTypeS(0xFE112E23)) // sw ra, -4(sp)
	require.Equal(t, uint32(8), ParseImmTypeB(0x00b64463))          // blt a2, a1, 8
	require.Equal(t, uint32(0xFFFFF000), ParseImmTypeU(0xFFFFF537)) // lui a0, 0xfffff
	require.Equal(t, uint32(0xFFFFFFFC), ParseImmTypeJ(0xffdff06f)) // jal zero, -4
}

func TestParseFields(t *testing.T) {
	const add = 0x00628533 // add a0, t0, t1
	require.Equal(t, uint32(0x33), ParseOpcode(add))
	require.Equal(t, uint32(10), ParseRd(add))
	require.Equal(t, uint32(0), ParseFunct3(add))
	require.Equal(t, uint32(5), ParseRs1(add))
	require.Equal(t, uint32(6), ParseRs2(add))
	require.Equal(t, uint32(0), ParseFunct7(add))
	require.Equal(t, uint32(0x20), ParseFunct7(0x40628533))
	require.False(t, IsCompressed(add))
	require.True(t, IsCompressed(0x4501))
}

func TestSignExtend32(t *testing.T) {
	require.Equal(t, uint32(0x7FF), signExtend32(0x7FF, 11))
	require.Equal(t, uint32(0xFFFFF800), signExtend32(0x800, 11))
	require.Equal(t, uint32(0x5), signExtend32(0xF05, 7))
}
