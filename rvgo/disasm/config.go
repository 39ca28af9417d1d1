package disasm

import (
	"fmt"
	"strings"
)

type Case uint8

const (
	CaseLower Case = iota
	CaseUpper
)

func (c Case) apply(s string) string {
	if c == CaseUpper {
		return strings.ToUpper(s)
	}
	return strings.ToLower(s)
}

func (c Case) String() string {
	if c == CaseUpper {
		return "upper"
	}
	return "lower"
}

func ParseCase(s string) (Case, error) {
	switch strings.ToLower(s) {
	case "lower", "":
		return CaseLower, nil
	case "upper":
		return CaseUpper, nil
	default:
		return CaseLower, fmt.Errorf("unknown case %q, expected lower or upper", s)
	}
}

type ImmediateFormat uint8

const (
	ImmDecimal ImmediateFormat = iota
	ImmHex
)

func (f ImmediateFormat) String() string {
	if f == ImmHex {
		return "hex"
	}
	return "dec"
}

func ParseImmediateFormat(s string) (ImmediateFormat, error) {
	switch strings.ToLower(s) {
	case "dec", "decimal", "":
		return ImmDecimal, nil
	case "hex":
		return ImmHex, nil
	default:
		return ImmDecimal, fmt.Errorf("unknown immediate format %q, expected dec or hex", s)
	}
}

// Config controls both the decoder addressing and how records are rendered.
type Config struct {
	MnemonicCase Case
	// MnemonicSeparator goes between the mnemonic and the first operand.
	MnemonicSeparator string
	RegisterCase      Case
	OperandSeparator  string
	ImmediateFormat   ImmediateFormat
	HexUpper          bool

	ShowAddress bool
	// AddressFormat is a fmt verb applied to the uint64 address.
	AddressFormat    string
	AddressSeparator string

	// UnknownMnemonic is printed for instructions missing from the mnemonic table.
	UnknownMnemonic string

	StartAddress   uint64
	ByteAddressing bool
}

func DefaultConfig() Config {
	return Config{
		MnemonicCase:      CaseLower,
		MnemonicSeparator: " ",
		RegisterCase:      CaseLower,
		OperandSeparator:  ", ",
		ImmediateFormat:   ImmDecimal,
		ShowAddress:       true,
		AddressFormat:     "%08x",
		AddressSeparator:  ": ",
		UnknownMnemonic:   "unknown",
	}
}
