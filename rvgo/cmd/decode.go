package cmd

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/rvisa/rvgo/disasm"
	"github.com/ethereum-optimism/rvisa/rvgo/isa"
)

// Fields is the decoded view of one instruction. Fields its format does not
// have are omitted.
type Fields struct {
	Format   string `json:"format"`
	Opcode   string `json:"opcode"`
	Mnemonic string `json:"mnemonic,omitempty"`
	Rd       string `json:"rd,omitempty"`
	Rs1      string `json:"rs1,omitempty"`
	Rs2      string `json:"rs2,omitempty"`
	Funct3   *uint8 `json:"funct3,omitempty"`
	Funct7   *uint8 `json:"funct7,omitempty"`
	Imm      *int64 `json:"imm,omitempty"`
}

func fieldsOf(in isa.Instruction) Fields {
	out := Fields{Format: in.Format().String(), Opcode: in.Opcode().String()}
	if m, ok := in.Mnemonic(); ok {
		out.Mnemonic = string(m)
	}
	if r, ok := in.Rd(); ok {
		out.Rd = r.String()
	}
	if r, ok := in.Rs1(); ok {
		out.Rs1 = r.String()
	}
	if r, ok := in.Rs2(); ok {
		out.Rs2 = r.String()
	}
	if f, ok := in.Funct3(); ok {
		v := f.Value()
		out.Funct3 = &v
	}
	if f, ok := in.Funct7(); ok {
		v := f.Value()
		out.Funct7 = &v
	}
	if imm, ok := in.Immediate(); ok {
		v := imm.Signed()
		out.Imm = &v
	}
	return out
}

func (f Fields) String() string {
	parts := []string{"format=" + f.Format, "opcode=" + f.Opcode}
	if f.Rd != "" {
		parts = append(parts, "rd="+f.Rd)
	}
	if f.Rs1 != "" {
		parts = append(parts, "rs1="+f.Rs1)
	}
	if f.Rs2 != "" {
		parts = append(parts, "rs2="+f.Rs2)
	}
	if f.Funct3 != nil {
		parts = append(parts, fmt.Sprintf("funct3=%03b", *f.Funct3))
	}
	if f.Funct7 != nil {
		parts = append(parts, fmt.Sprintf("funct7=%07b", *f.Funct7))
	}
	if f.Imm != nil {
		parts = append(parts, fmt.Sprintf("imm=%d", *f.Imm))
	}
	return strings.Join(parts, " ")
}

// parseWord reads a hex instruction word as written, most significant digit
// first, with or without 0x prefix.
func parseWord(s string) (uint32, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(digits) == 0 || len(digits) > 8 {
		return 0, fmt.Errorf("invalid instruction word %q: expected 1 to 8 hex digits", s)
	}
	b, err := hexutil.Decode("0x" + strings.Repeat("0", 8-len(digits)) + digits)
	if err != nil {
		return 0, fmt.Errorf("invalid instruction word %q: %w", s, err)
	}
	return binary.BigEndian.Uint32(b), nil
}

func Decode(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("expected at least one instruction word")
	}
	cfg, err := configFromFlags(ctx)
	if err != nil {
		return err
	}
	cfg.ShowAddress = false
	f := disasm.NewFormatter(cfg)
	w := ctx.App.Writer
	for _, arg := range ctx.Args().Slice() {
		word, err := parseWord(arg)
		if err != nil {
			return err
		}
		in, err := isa.Decode(word)
		if err != nil {
			return fmt.Errorf("failed to decode %08x: %w", word, err)
		}
		fmt.Fprintf(w, "%08x: %s\n", word, f.FormatInstruction(in))
		if !ctx.Bool(QuietFlag.Name) {
			fmt.Fprintf(w, "  %s\n", fieldsOf(in))
		}
	}
	return nil
}

var QuietFlag = &cli.BoolFlag{
	Name:    "quiet",
	Aliases: []string{"q"},
	Usage:   "print only the instruction text",
	EnvVars: prefixEnvVars("QUIET"),
}

var DecodeCommand = &cli.Command{
	Name:        "decode",
	Usage:       "Decode instruction words given in hex",
	Description: "Decode instruction words given in hex as arguments, and print their text and fields",
	ArgsUsage:   "WORD...",
	Action:      Decode,
	Flags:       append([]cli.Flag{QuietFlag}, formatFlags...),
}
