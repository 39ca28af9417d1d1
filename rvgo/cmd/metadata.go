package cmd

import (
	"debug/elf"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ethereum-optimism/rvisa/rvgo/program"
)

type Symbol struct {
	Name  string         `json:"name"`
	Start hexutil.Uint64 `json:"start"`
	Size  hexutil.Uint64 `json:"size"`
}

// Metadata describes a raw binary extracted from an ELF, so it can be
// disassembled at its original addresses.
type Metadata struct {
	Entry   hexutil.Uint64 `json:"entry"`
	Base    hexutil.Uint64 `json:"base"`
	Symbols []Symbol       `json:"symbols"`
}

func makeMetadata(p *program.Program) *Metadata {
	out := &Metadata{Entry: hexutil.Uint64(p.Entry), Base: hexutil.Uint64(p.Base())}
	for _, s := range p.Symbols {
		out.Symbols = append(out.Symbols, Symbol{Name: s.Name, Start: hexutil.Uint64(s.Value), Size: hexutil.Uint64(s.Size)})
	}
	return out
}

// SortedSymbols expects the symbols in address order, as load-elf writes them.
func (m *Metadata) SortedSymbols() program.SortedSymbols {
	out := make(program.SortedSymbols, len(m.Symbols))
	for i, s := range m.Symbols {
		out[i] = elf.Symbol{Name: s.Name, Value: uint64(s.Start), Size: uint64(s.Size)}
	}
	return out
}
