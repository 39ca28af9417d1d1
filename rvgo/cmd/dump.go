package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli/v2"

	cannon "github.com/ethereum-optimism/optimism/cannon/cmd"
	"github.com/ethereum-optimism/optimism/op-service/jsonutil"

	"github.com/ethereum-optimism/rvisa/rvgo/disasm"
)

type DumpRecord struct {
	Address hexutil.Uint64 `json:"address"`
	Word    HexU32         `json:"word"`
	Text    string         `json:"text"`
	Symbol  string         `json:"symbol,omitempty"`
	Fields
}

type DumpOutput struct {
	// CodeHash is the keccak256 hash of all decoded bytes
	CodeHash common.Hash    `json:"codeHash"`
	Count    uint64         `json:"count"`
	Records  []DumpRecord   `json:"records"`
	Size     hexutil.Uint64 `json:"size"`
	// Mnemonics counts the records per mnemonic, with the unknown placeholder
	// for words that have none
	Mnemonics jsonutil.LazySortedJsonMap[string, uint64] `json:"mnemonics"`
}

func Dump(ctx *cli.Context) error {
	l, err := loggerFromFlags(ctx)
	if err != nil {
		return err
	}
	cfg, err := configFromFlags(ctx)
	if err != nil {
		return err
	}
	in, err := openInput(ctx, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := in.close(); err != nil {
			l.Error("failed to close input", "err", err)
		}
	}()

	// the text field never carries the address, it has its own field
	textCfg := cfg
	textCfg.ShowAddress = false
	f := disasm.NewFormatter(textCfg)
	out := &DumpOutput{Records: []DumpRecord{}, Mnemonics: make(jsonutil.LazySortedJsonMap[string, uint64])}
	count, err := walk(ctx, l, cfg, in, func(rec disasm.Record) error {
		r := DumpRecord{
			Address: hexutil.Uint64(rec.Address),
			Word:    HexU32(rec.Instruction.Encode()),
			Text:    f.FormatInstruction(rec.Instruction),
			Fields:  fieldsOf(rec.Instruction),
		}
		if len(in.symbols) > 0 {
			r.Symbol = in.symbols.LookupName(rec.Address)
		}
		out.Records = append(out.Records, r)
		if r.Mnemonic != "" {
			out.Mnemonics[r.Mnemonic]++
		} else {
			out.Mnemonics[cfg.UnknownMnemonic]++
		}
		return nil
	})
	if err != nil {
		return err
	}
	image, err := in.image()
	if err != nil {
		return fmt.Errorf("failed to read decoded image: %w", err)
	}
	out.Count = count
	out.Size = hexutil.Uint64(len(image))
	out.CodeHash = crypto.Keccak256Hash(image)

	if err := cannon.WriteJSON(ctx.Path(OutputFlag.Name), out); err != nil {
		return fmt.Errorf("failed to write dump output: %w", err)
	}
	l.Info("dumped", "count", count, "codeHash", out.CodeHash)
	return nil
}

var DumpCommand = &cli.Command{
	Name:        "dump",
	Usage:       "Write the decoded instructions as JSON",
	Description: "Write the decoded instructions, with their fields and the keccak256 hash of the decoded bytes, as JSON. The hash is logged to stderr",
	Action:      Dump,
	Flags: append([]cli.Flag{
		InputFlag,
		ELFFlag,
		MetaFlag,
		OutputFlag,
		StartAddressFlag,
		ByteAddressingFlag,
		InfoAtFlag,
		LogLevelFlag,
	}, formatFlags...),
}
