package opcodes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum-optimism/rvisa/rvgo/riscv"
)

func TestKey(t *testing.T) {
	require.Equal(t, uint16(0b01100), Key(riscv.OpOp, 0, 0))
	require.Equal(t, uint16(0b01100|4<<5|0x20<<8), Key(riscv.OpOp, 4, 0x20))
	// the low opcode bits do not take part in the key
	require.Equal(t, Key(riscv.OpOp, 1, 1), Key(riscv.OpOp&^0b11, 1, 1))
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(riscv.OpOp, 0, 0)
	require.True(t, ok)
	require.Equal(t, Mnemonic("add"), e.Mnemonic)
	require.Equal(t, ExtI, e.Extension)

	e, ok = Lookup(riscv.OpOp, 0, 0x20)
	require.True(t, ok)
	require.Equal(t, Mnemonic("sub"), e.Mnemonic)

	e, ok = Lookup(riscv.OpBranch, 4, 0)
	require.True(t, ok)
	require.Equal(t, Mnemonic("blt"), e.Mnemonic)

	e, ok = Lookup(riscv.OpOp32, 7, 1)
	require.True(t, ok)
	require.Equal(t, Mnemonic("remuw"), e.Mnemonic)
	require.Equal(t, ExtM, e.Extension)
	require.Equal(t, uint8(64), e.XLEN)

	_, ok = Lookup(riscv.OpOp, 0, 0x7F)
	require.False(t, ok)
}

func TestLookupSystem(t *testing.T) {
	for word, name := range map[uint32]Mnemonic{
		riscv.InsnECALL:  "ecall",
		riscv.InsnEBREAK: "ebreak",
		riscv.InsnWFI:    "wfi",
		riscv.InsnMRET:   "mret",
		riscv.InsnSRET:   "sret",
		riscv.InsnDRET:   "dret",
	} {
		e, ok := LookupSystem(word)
		require.True(t, ok)
		require.Equal(t, name, e.Mnemonic)
	}
	_, ok := LookupSystem(0x00200073)
	require.False(t, ok)
}

func TestFind(t *testing.T) {
	e, ok := Find("SRAI")
	require.True(t, ok)
	require.Equal(t, uint8(riscv.OpImm), e.Opcode)
	require.Equal(t, uint8(5), e.Funct3)
	require.Equal(t, uint8(0x20), e.Funct7)

	e, ok = Find("amoswap.w")
	require.True(t, ok)
	require.Equal(t, ExtA, e.Extension)
	require.Equal(t, uint8(0b00001<<2), e.Funct7)

	_, ok = Find("nope")
	require.False(t, ok)
}

func TestEntriesUniqueKeys(t *testing.T) {
	all := Entries()
	require.NotEmpty(t, all)
	seen := make(map[uint16]Mnemonic)
	for _, e := range all {
		prev, dup := seen[e.Key()]
		require.False(t, dup, "%s collides with %s", e.Mnemonic, prev)
		seen[e.Key()] = e.Mnemonic

		got, ok := Lookup(e.Opcode, e.Funct3, e.Funct7)
		require.True(t, ok)
		require.Equal(t, e, got)
	}

	all[0].Mnemonic = "changed"
	require.NotEqual(t, Mnemonic("changed"), Entries()[0].Mnemonic)
}

func TestExtensionString(t *testing.T) {
	require.Equal(t, "Zicsr", ExtZicsr.String())
	require.Equal(t, "Custom", ExtCustom.String())
	require.Equal(t, "Extension(200)", Extension(200).String())
}

func TestFindSystem(t *testing.T) {
	word, e, ok := FindSystem("MRET")
	require.True(t, ok)
	require.Equal(t, uint32(riscv.InsnMRET), word)
	require.Equal(t, ExtSystem, e.Extension)

	_, _, ok = FindSystem("add")
	require.False(t, ok)
}

func TestSystemEntriesOrder(t *testing.T) {
	all := SystemEntries()
	require.Len(t, all, 6)
	require.Equal(t, Mnemonic("ecall"), all[0].Mnemonic)
	require.Equal(t, uint32(riscv.InsnECALL), all[0].Word)
	require.Equal(t, Mnemonic("dret"), all[5].Mnemonic)

	// every entry is found again by word and by name
	for _, e := range all {
		got, ok := LookupSystem(e.Word)
		require.True(t, ok)
		require.Equal(t, e.Entry, got)
		for i := 0; i < 10; i++ {
			word, found, ok := FindSystem(string(e.Mnemonic))
			require.True(t, ok)
			require.Equal(t, e.Word, word)
			require.Equal(t, e.Entry, found)
		}
	}

	all[0].Mnemonic = "changed"
	require.Equal(t, Mnemonic("ecall"), SystemEntries()[0].Mnemonic)
}
