package cmd

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	cannon "github.com/ethereum-optimism/optimism/cannon/cmd"

	"github.com/ethereum-optimism/rvisa/rvgo/disasm"
	"github.com/ethereum-optimism/rvisa/rvgo/isa"
	"github.com/ethereum-optimism/rvisa/rvgo/opcodes"
	"github.com/ethereum-optimism/rvisa/rvgo/riscv"
)

// EncodeRequest names an instruction by mnemonic, by raw opcode fields, or
// by a mnemonic with some fields overridden.
type EncodeRequest struct {
	Mnemonic string `json:"mnemonic,omitempty"`
	Opcode   *uint8 `json:"opcode,omitempty"`
	Funct3   *uint8 `json:"funct3,omitempty"`
	Funct7   *uint8 `json:"funct7,omitempty"`
	Rd       string `json:"rd,omitempty"`
	Rs1      string `json:"rs1,omitempty"`
	Rs2      string `json:"rs2,omitempty"`
	Imm      *int64 `json:"imm,omitempty"`
	Aq       bool   `json:"aq,omitempty"`
	Rl       bool   `json:"rl,omitempty"`
}

func register(name string) (isa.Register, error) {
	r, ok := isa.RegisterByName(name)
	if !ok {
		return isa.Register{}, fmt.Errorf("%w: %q", isa.ErrInvalidRegister, name)
	}
	return r, nil
}

func (req EncodeRequest) Build() (isa.Instruction, error) {
	var opcode, funct3, funct7 *uint8
	if req.Mnemonic != "" {
		if word, _, ok := opcodes.FindSystem(req.Mnemonic); ok {
			return isa.Decode(word)
		}
		e, ok := opcodes.Find(req.Mnemonic)
		if !ok {
			return isa.Instruction{}, fmt.Errorf("unknown mnemonic %q", req.Mnemonic)
		}
		opcode, funct3, funct7 = &e.Opcode, &e.Funct3, &e.Funct7
	}
	if req.Opcode != nil {
		opcode = req.Opcode
	}
	if req.Funct3 != nil {
		funct3 = req.Funct3
	}
	if req.Funct7 != nil {
		funct7 = req.Funct7
	}

	b := isa.NewBuilder()
	if opcode != nil {
		op, err := isa.NewOpcode(*opcode)
		if err != nil {
			return isa.Instruction{}, err
		}
		b.SetOpcode(op)
	}
	if funct3 != nil {
		f, err := isa.NewFunct3(*funct3)
		if err != nil {
			return isa.Instruction{}, err
		}
		b.SetFunct3(f)
	}
	if funct7 != nil {
		v := *funct7
		if opcode != nil && *opcode == riscv.OpAMO {
			if req.Aq {
				v |= 0b10
			}
			if req.Rl {
				v |= 0b01
			}
		}
		f, err := isa.NewFunct7(v)
		if err != nil {
			return isa.Instruction{}, err
		}
		b.SetFunct7(f)
	}
	for _, field := range []struct {
		name string
		set  func(isa.Register) *isa.Builder
	}{
		{req.Rd, b.SetRd},
		{req.Rs1, b.SetRs1},
		{req.Rs2, b.SetRs2},
	} {
		if field.name == "" {
			continue
		}
		r, err := register(field.name)
		if err != nil {
			return isa.Instruction{}, err
		}
		field.set(r)
	}
	if req.Imm != nil {
		imm := *req.Imm
		if isShiftImmediate(opcode, funct3) && funct7 != nil {
			// the shift variant lives in imm[11:5]
			imm |= int64(*funct7) << 5
		}
		b.SetImmediate(imm)
	}
	return b.Build()
}

func isShiftImmediate(opcode, funct3 *uint8) bool {
	if opcode == nil || funct3 == nil {
		return false
	}
	return (*opcode == riscv.OpImm || *opcode == riscv.OpImm32) && (*funct3 == 1 || *funct3 == 5)
}

var (
	EncodeMnemonicFlag = &cli.StringFlag{
		Name:    "mnemonic",
		Aliases: []string{"m"},
		Usage:   "instruction mnemonic, e.g. addi",
		EnvVars: prefixEnvVars("ENCODE_MNEMONIC"),
	}
	EncodeOpcodeFlag = &cli.UintFlag{
		Name:    "opcode",
		Usage:   "raw 7-bit opcode, overrides the mnemonic's",
		EnvVars: prefixEnvVars("ENCODE_OPCODE"),
	}
	EncodeFunct3Flag = &cli.UintFlag{
		Name:    "funct3",
		Usage:   "raw funct3, overrides the mnemonic's",
		EnvVars: prefixEnvVars("ENCODE_FUNCT3"),
	}
	EncodeFunct7Flag = &cli.UintFlag{
		Name:    "funct7",
		Usage:   "raw funct7, overrides the mnemonic's",
		EnvVars: prefixEnvVars("ENCODE_FUNCT7"),
	}
	EncodeRdFlag = &cli.StringFlag{
		Name:    "rd",
		Usage:   "destination register, ABI or x-name",
		EnvVars: prefixEnvVars("ENCODE_RD"),
	}
	EncodeRs1Flag = &cli.StringFlag{
		Name:    "rs1",
		Usage:   "first source register, ABI or x-name",
		EnvVars: prefixEnvVars("ENCODE_RS1"),
	}
	EncodeRs2Flag = &cli.StringFlag{
		Name:    "rs2",
		Usage:   "second source register, ABI or x-name",
		EnvVars: prefixEnvVars("ENCODE_RS2"),
	}
	EncodeImmFlag = &cli.Int64Flag{
		Name:    "imm",
		Usage:   "signed immediate value, e.g. a branch offset in bytes",
		EnvVars: prefixEnvVars("ENCODE_IMM"),
	}
	EncodeAqFlag = &cli.BoolFlag{
		Name:    "aq",
		Usage:   "set the acquire bit of an atomic instruction",
		EnvVars: prefixEnvVars("ENCODE_AQ"),
	}
	EncodeRlFlag = &cli.BoolFlag{
		Name:    "rl",
		Usage:   "set the release bit of an atomic instruction",
		EnvVars: prefixEnvVars("ENCODE_RL"),
	}
	EncodeInputFlag = &cli.PathFlag{
		Name:      "input",
		Usage:     "path of a JSON list of encode requests, used instead of the field flags",
		TakesFile: true,
		EnvVars:   prefixEnvVars("ENCODE_INPUT"),
	}
)

func optUint8(ctx *cli.Context, flag *cli.UintFlag) (*uint8, error) {
	if !ctx.IsSet(flag.Name) {
		return nil, nil
	}
	v := ctx.Uint(flag.Name)
	if v > 0xFF {
		return nil, fmt.Errorf("--%s value %d out of range", flag.Name, v)
	}
	out := uint8(v)
	return &out, nil
}

func requestFromFlags(ctx *cli.Context) (EncodeRequest, error) {
	req := EncodeRequest{
		Mnemonic: ctx.String(EncodeMnemonicFlag.Name),
		Rd:       ctx.String(EncodeRdFlag.Name),
		Rs1:      ctx.String(EncodeRs1Flag.Name),
		Rs2:      ctx.String(EncodeRs2Flag.Name),
		Aq:       ctx.Bool(EncodeAqFlag.Name),
		Rl:       ctx.Bool(EncodeRlFlag.Name),
	}
	var err error
	if req.Opcode, err = optUint8(ctx, EncodeOpcodeFlag); err != nil {
		return req, err
	}
	if req.Funct3, err = optUint8(ctx, EncodeFunct3Flag); err != nil {
		return req, err
	}
	if req.Funct7, err = optUint8(ctx, EncodeFunct7Flag); err != nil {
		return req, err
	}
	if ctx.IsSet(EncodeImmFlag.Name) {
		v := ctx.Int64(EncodeImmFlag.Name)
		req.Imm = &v
	}
	return req, nil
}

func Encode(ctx *cli.Context) error {
	var reqs []EncodeRequest
	if path := ctx.Path(EncodeInputFlag.Name); path != "" {
		loaded, err := cannon.LoadJSON[[]EncodeRequest](path)
		if err != nil {
			return fmt.Errorf("failed to load encode requests: %w", err)
		}
		reqs = *loaded
	} else {
		req, err := requestFromFlags(ctx)
		if err != nil {
			return err
		}
		reqs = []EncodeRequest{req}
	}

	cfg, err := configFromFlags(ctx)
	if err != nil {
		return err
	}
	f := disasm.NewFormatter(cfg)
	var le [riscv.InstrBytes]byte
	for i, req := range reqs {
		in, err := req.Build()
		if err != nil {
			return fmt.Errorf("failed to encode instruction %d: %w", i, err)
		}
		word := in.Encode()
		binary.LittleEndian.PutUint32(le[:], word)
		fmt.Fprintf(ctx.App.Writer, "%08x %s %s\n", word, hexutil.Encode(le[:]), f.FormatInstruction(in))
	}
	return nil
}

var EncodeCommand = &cli.Command{
	Name:        "encode",
	Usage:       "Encode an instruction from its fields",
	Description: "Encode an instruction from a mnemonic and operands, or from raw fields, and print the word and its little-endian bytes",
	Action:      Encode,
	Flags: append([]cli.Flag{
		EncodeMnemonicFlag,
		EncodeOpcodeFlag,
		EncodeFunct3Flag,
		EncodeFunct7Flag,
		EncodeRdFlag,
		EncodeRs1Flag,
		EncodeRs2Flag,
		EncodeImmFlag,
		EncodeAqFlag,
		EncodeRlFlag,
		EncodeInputFlag,
	}, formatFlags...),
}
