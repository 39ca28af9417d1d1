package program

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Segment is the file-backed part of an executable PT_LOAD segment.
type Segment struct {
	Index int
	Vaddr uint64
	Data  []byte
}

func (s Segment) Reader() io.Reader {
	return bytes.NewReader(s.Data)
}

// Program holds the executable code of a RISC-V ELF.
type Program struct {
	Entry    uint64
	Class    elf.Class
	Segments []Segment
	Symbols  SortedSymbols
}

func Open(path string) (*Program, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file %q: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads the executable segments and symbols of f.
func Load(f *elf.File) (*Program, error) {
	if f.Machine != elf.EM_RISCV {
		return nil, fmt.Errorf("ELF is not RISC-V, but got %q", f.Machine.String())
	}
	out := &Program{Entry: f.Entry, Class: f.Class}
	for i, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD || prog.Flags&elf.PF_X == 0 {
			continue
		}
		if prog.Filesz > prog.Memsz {
			return nil, fmt.Errorf("invalid PT_LOAD program segment %d, file size (%d) > mem size (%d)", i, prog.Filesz, prog.Memsz)
		}
		data := make([]byte, prog.Filesz)
		if _, err := io.ReadFull(io.NewSectionReader(prog, 0, int64(prog.Filesz)), data); err != nil {
			return nil, fmt.Errorf("failed to read program segment %d: %w", i, err)
		}
		out.Segments = append(out.Segments, Segment{Index: i, Vaddr: prog.Vaddr, Data: data})
	}
	sort.Slice(out.Segments, func(i, j int) bool {
		return out.Segments[i].Vaddr < out.Segments[j].Vaddr
	})
	for i := 1; i < len(out.Segments); i++ {
		prev := out.Segments[i-1]
		if prev.Vaddr+uint64(len(prev.Data)) > out.Segments[i].Vaddr {
			return nil, fmt.Errorf("program segments %d and %d overlap", prev.Index, out.Segments[i].Index)
		}
	}
	symbols, err := Symbols(f)
	if err != nil {
		return nil, err
	}
	out.Symbols = symbols
	return out, nil
}

// Base is the lowest executable address.
func (p *Program) Base() uint64 {
	if len(p.Segments) == 0 {
		return 0
	}
	return p.Segments[0].Vaddr
}

// Image lays out the executable segments from Base, zero filling any gaps
// between them, for writing out a raw binary.
func (p *Program) Image() []byte {
	var buf bytes.Buffer
	base := p.Base()
	for _, s := range p.Segments {
		if pad := s.Vaddr - base - uint64(buf.Len()); pad > 0 {
			buf.Write(make([]byte, pad))
		}
		buf.Write(s.Data)
	}
	return buf.Bytes()
}

type SortedSymbols []elf.Symbol

// FindSymbol finds the symbol that intersects with the given addr, or a placeholder if none exists
func (s SortedSymbols) FindSymbol(addr uint64) elf.Symbol {
	// find first symbol with higher start. Or n if no such symbol exists
	i := sort.Search(len(s), func(i int) bool {
		return s[i].Value > addr
	})
	if i == 0 {
		return elf.Symbol{Name: "!start", Value: 0}
	}
	out := &s[i-1]
	if out.Value+out.Size <= addr { // addr may be pointing to a gap between symbols
		return elf.Symbol{Name: "!gap", Value: addr}
	}
	return *out
}

// LookupName is the name of the symbol containing addr.
func (s SortedSymbols) LookupName(addr uint64) string {
	return s.FindSymbol(addr).Name
}

// Symbols returns the function symbols of f sorted by address. A stripped
// ELF yields no symbols and no error.
func Symbols(f *elf.File) (SortedSymbols, error) {
	symbols, err := f.Symbols()
	if errors.Is(err, elf.ErrNoSymbols) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read symbols data: %w", err)
	}
	out := make(SortedSymbols, 0, len(symbols))
	for _, sym := range symbols {
		if elf.ST_TYPE(sym.Info) == elf.STT_FUNC {
			out = append(out, sym)
		}
	}
	// not every ELF has sorted symbols
	sort.Slice(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	return out, nil
}
