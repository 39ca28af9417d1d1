package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	cannon "github.com/ethereum-optimism/optimism/cannon/cmd"

	"github.com/ethereum-optimism/rvisa/rvgo/disasm"
)

const envVarPrefix = "RVGO"

func prefixEnvVars(name string) []string {
	return []string{envVarPrefix + "_" + name}
}

var (
	InputFlag = &cli.PathFlag{
		Name:      "input",
		Usage:     "path of the raw instruction binary, '-' for stdin",
		TakesFile: true,
		Value:     "-",
		EnvVars:   prefixEnvVars("INPUT"),
	}
	ELFFlag = &cli.PathFlag{
		Name:      "elf",
		Usage:     "path of a RISC-V ELF file; its executable segments are decoded instead of --input",
		TakesFile: true,
		EnvVars:   prefixEnvVars("ELF"),
	}
	MetaFlag = &cli.PathFlag{
		Name:      "meta",
		Usage:     "path of a JSON metadata file written by load-elf, to annotate a raw binary with symbols",
		TakesFile: true,
		EnvVars:   prefixEnvVars("META"),
	}
	OutputFlag = &cli.PathFlag{
		Name:      "output",
		Usage:     "path of the output file, '-' for stdout",
		TakesFile: true,
		Value:     "-",
		EnvVars:   prefixEnvVars("OUTPUT"),
	}
	StartAddressFlag = &cli.Uint64Flag{
		Name:    "start-address",
		Usage:   "address of the first instruction of a raw binary",
		EnvVars: prefixEnvVars("START_ADDRESS"),
	}
	ByteAddressingFlag = &cli.BoolFlag{
		Name:    "byte-addressing",
		Usage:   "advance addresses by bytes instead of bits",
		EnvVars: prefixEnvVars("BYTE_ADDRESSING"),
	}
	MnemonicCaseFlag = &cli.StringFlag{
		Name:    "mnemonic-case",
		Usage:   "case of mnemonics: lower or upper",
		Value:   "lower",
		EnvVars: prefixEnvVars("MNEMONIC_CASE"),
	}
	RegisterCaseFlag = &cli.StringFlag{
		Name:    "register-case",
		Usage:   "case of register names: lower or upper",
		Value:   "lower",
		EnvVars: prefixEnvVars("REGISTER_CASE"),
	}
	ImmediateFormatFlag = &cli.StringFlag{
		Name:    "imm-format",
		Usage:   "format of immediates: dec or hex",
		Value:   "dec",
		EnvVars: prefixEnvVars("IMM_FORMAT"),
	}
	HexUpperFlag = &cli.BoolFlag{
		Name:    "hex-upper",
		Usage:   "print hex immediates with upper case digits",
		EnvVars: prefixEnvVars("HEX_UPPER"),
	}
	OperandSeparatorFlag = &cli.StringFlag{
		Name:    "operand-separator",
		Usage:   "text between operands",
		Value:   ", ",
		EnvVars: prefixEnvVars("OPERAND_SEPARATOR"),
	}
	NoAddressFlag = &cli.BoolFlag{
		Name:    "no-address",
		Usage:   "do not print the address of each instruction",
		EnvVars: prefixEnvVars("NO_ADDRESS"),
	}
	AddressFormatFlag = &cli.StringFlag{
		Name:    "address-format",
		Usage:   "fmt verb for addresses",
		Value:   "%08x",
		EnvVars: prefixEnvVars("ADDRESS_FORMAT"),
	}
	UnknownMnemonicFlag = &cli.StringFlag{
		Name:    "unknown",
		Usage:   "placeholder for instructions without a mnemonic",
		Value:   "unknown",
		EnvVars: prefixEnvVars("UNKNOWN"),
	}
	InfoAtFlag = &cli.GenericFlag{
		Name:    "info-at",
		Usage:   "instruction count pattern to log progress at: 'never' (default), 'always', '=123' at exactly 123, '%123' every 123",
		Value:   new(cannon.StepMatcherFlag),
		EnvVars: prefixEnvVars("INFO_AT"),
	}
	PProfCPUFlag = &cli.BoolFlag{
		Name:    "pprof.cpu",
		Usage:   "enable pprof cpu profiling",
		EnvVars: prefixEnvVars("PPROF_CPU"),
	}
	LogLevelFlag = &cli.StringFlag{
		Name:    "log.level",
		Usage:   "log level: trace, debug, info, warn, error or crit",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
	}
)

var formatFlags = []cli.Flag{
	MnemonicCaseFlag,
	RegisterCaseFlag,
	ImmediateFormatFlag,
	HexUpperFlag,
	OperandSeparatorFlag,
	NoAddressFlag,
	AddressFormatFlag,
	UnknownMnemonicFlag,
}

// configFromFlags reads the decoder and formatting flags.
func configFromFlags(ctx *cli.Context) (disasm.Config, error) {
	cfg := disasm.DefaultConfig()
	var err error
	if cfg.MnemonicCase, err = disasm.ParseCase(ctx.String(MnemonicCaseFlag.Name)); err != nil {
		return cfg, fmt.Errorf("invalid --%s: %w", MnemonicCaseFlag.Name, err)
	}
	if cfg.RegisterCase, err = disasm.ParseCase(ctx.String(RegisterCaseFlag.Name)); err != nil {
		return cfg, fmt.Errorf("invalid --%s: %w", RegisterCaseFlag.Name, err)
	}
	if cfg.ImmediateFormat, err = disasm.ParseImmediateFormat(ctx.String(ImmediateFormatFlag.Name)); err != nil {
		return cfg, fmt.Errorf("invalid --%s: %w", ImmediateFormatFlag.Name, err)
	}
	cfg.HexUpper = ctx.Bool(HexUpperFlag.Name)
	cfg.OperandSeparator = ctx.String(OperandSeparatorFlag.Name)
	cfg.ShowAddress = !ctx.Bool(NoAddressFlag.Name)
	cfg.AddressFormat = ctx.String(AddressFormatFlag.Name)
	cfg.UnknownMnemonic = ctx.String(UnknownMnemonicFlag.Name)
	cfg.StartAddress = ctx.Uint64(StartAddressFlag.Name)
	cfg.ByteAddressing = ctx.Bool(ByteAddressingFlag.Name)
	return cfg, nil
}

func loggerFromFlags(ctx *cli.Context) (log.Logger, error) {
	lvl, err := parseLevel(ctx.String(LogLevelFlag.Name))
	if err != nil {
		return nil, err
	}
	return Logger(ctx.App.ErrWriter, lvl), nil
}
