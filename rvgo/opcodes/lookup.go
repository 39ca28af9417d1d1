package opcodes

import (
	"fmt"
	"strings"
)

// Mnemonic is the assembler name of an instruction, e.g. "add".
type Mnemonic string

func (m Mnemonic) String() string { return string(m) }

// Key packs the lookup fields of an instruction: the five opcode bits above
// the fixed low "11", then funct3, then funct7. Fields an instruction format
// does not key on are passed as zero.
func Key(opcode, funct3, funct7 uint8) uint16 {
	return uint16((opcode>>2)&0x1F) | uint16(funct3&0x7)<<5 | uint16(funct7&0x7F)<<8
}

var instructions = func() map[uint16]Entry {
	out := make(map[uint16]Entry, len(entries))
	for _, e := range entries {
		k := e.Key()
		if prev, ok := out[k]; ok {
			panic(fmt.Errorf("duplicate instruction key %#04x: %s and %s", k, prev.Mnemonic, e.Mnemonic))
		}
		out[k] = e
	}
	return out
}()

var systemWords = func() map[uint32]Entry {
	out := make(map[uint32]Entry, len(systemEntries))
	names := make(map[Mnemonic]struct{}, len(systemEntries))
	for _, e := range systemEntries {
		if prev, ok := out[e.Word]; ok {
			panic(fmt.Errorf("duplicate system word %#08x: %s and %s", e.Word, prev.Mnemonic, e.Mnemonic))
		}
		if _, ok := names[e.Mnemonic]; ok {
			panic(fmt.Errorf("duplicate system mnemonic %s", e.Mnemonic))
		}
		out[e.Word] = e.Entry
		names[e.Mnemonic] = struct{}{}
	}
	return out
}()

// Lookup returns the table entry for the given fields, if any.
func Lookup(opcode, funct3, funct7 uint8) (Entry, bool) {
	e, ok := instructions[Key(opcode, funct3, funct7)]
	return e, ok
}

// LookupSystem matches whole-word system instructions like ecall and mret.
func LookupSystem(word uint32) (Entry, bool) {
	e, ok := systemWords[word]
	return e, ok
}

// Find is the reverse lookup, by case-insensitive mnemonic.
func Find(name string) (Entry, bool) {
	name = strings.ToLower(name)
	for _, e := range entries {
		if string(e.Mnemonic) == name {
			return e, true
		}
	}
	return Entry{}, false
}

// SystemEntries returns a copy of the system instruction table in declaration order.
func SystemEntries() []SystemEntry {
	out := make([]SystemEntry, len(systemEntries))
	copy(out, systemEntries)
	return out
}

// Entries returns a copy of the instruction table in declaration order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// FindSystem is the reverse lookup of whole-word system instructions.
func FindSystem(name string) (uint32, Entry, bool) {
	name = strings.ToLower(name)
	for _, e := range systemEntries {
		if string(e.Mnemonic) == name {
			return e.Word, e.Entry, true
		}
	}
	return 0, Entry{}, false
}
