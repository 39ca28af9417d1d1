package program

import (
	"debug/elf"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	p, err := Open("testdata/program.elf")
	require.NoError(t, err)
	require.Equal(t, uint64(0x10000), p.Entry)
	require.Equal(t, elf.ELFCLASS32, p.Class)
	require.Len(t, p.Segments, 1)

	seg := p.Segments[0]
	require.Equal(t, uint64(0x10000), seg.Vaddr)
	require.Equal(t, []byte{0x33, 0x85, 0x62, 0x00}, seg.Data[:4])
	require.Len(t, p.Image(), 16)

	require.Len(t, p.Symbols, 2)
	require.Equal(t, "_start", p.Symbols[0].Name)
	require.Equal(t, "loop", p.Symbols[1].Name)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open("testdata/missing.elf")
	require.ErrorContains(t, err, "failed to open ELF file")
}

func TestFindSymbol(t *testing.T) {
	syms := SortedSymbols{
		{Name: "a", Value: 0x100, Size: 8},
		{Name: "b", Value: 0x108, Size: 4},
		{Name: "c", Value: 0x200, Size: 0x10},
	}
	require.Equal(t, "!start", syms.LookupName(0x10))
	require.Equal(t, "a", syms.LookupName(0x100))
	require.Equal(t, "a", syms.LookupName(0x104))
	require.Equal(t, "b", syms.LookupName(0x108))
	require.Equal(t, "!gap", syms.LookupName(0x10c))
	require.Equal(t, "c", syms.LookupName(0x20f))
	require.Equal(t, "!gap", syms.LookupName(0x300))
}

func TestImageFillsGaps(t *testing.T) {
	p := &Program{Segments: []Segment{
		{Vaddr: 0x100, Data: []byte{1, 2, 3, 4}},
		{Vaddr: 0x108, Data: []byte{5, 6, 7, 8}},
	}}
	require.Equal(t, uint64(0x100), p.Base())
	require.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0, 5, 6, 7, 8}, p.Image())

	require.Equal(t, uint64(0), (&Program{}).Base())
	require.Empty(t, (&Program{}).Image())
}
