package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/pkg/profile"

	cannon "github.com/ethereum-optimism/optimism/cannon/cmd"
	"github.com/ethereum-optimism/optimism/op-service/ioutil"

	"github.com/ethereum-optimism/rvisa/rvgo/disasm"
	"github.com/ethereum-optimism/rvisa/rvgo/program"
)

// source is one contiguous run of instruction words.
type source struct {
	name string
	r    io.Reader
	opts []disasm.Option
}

type input struct {
	sources []source
	symbols program.SortedSymbols
	// image is every decoded byte, in order
	image func() ([]byte, error)
	close func() error
}

func openInput(ctx *cli.Context, l log.Logger) (*input, error) {
	if elfPath := ctx.Path(ELFFlag.Name); elfPath != "" {
		p, err := program.Open(elfPath)
		if err != nil {
			return nil, err
		}
		l.Info("loaded ELF", "path", elfPath, "entry", hexutil.Uint64(p.Entry), "segments", len(p.Segments), "symbols", len(p.Symbols))
		in := &input{
			symbols: p.Symbols,
			image:   func() ([]byte, error) { return p.Image(), nil },
			close:   func() error { return nil },
		}
		for _, seg := range p.Segments {
			in.sources = append(in.sources, source{
				name: fmt.Sprintf("segment %d", seg.Index),
				r:    seg.Reader(),
				opts: []disasm.Option{disasm.WithStartAddress(seg.Vaddr), disasm.WithByteAddressing()},
			})
		}
		return in, nil
	}

	var opts []disasm.Option
	var symbols program.SortedSymbols
	if metaPath := ctx.Path(MetaFlag.Name); metaPath != "" {
		meta, err := cannon.LoadJSON[Metadata](metaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load metadata: %w", err)
		}
		symbols = meta.SortedSymbols()
		if !ctx.IsSet(StartAddressFlag.Name) {
			opts = append(opts, disasm.WithStartAddress(uint64(meta.Base)))
		}
		opts = append(opts, disasm.WithByteAddressing())
	}

	path := ctx.Path(InputFlag.Name)
	var r io.Reader
	closeFn := func() error { return nil }
	if path == "-" || path == "" {
		r = ctx.App.Reader
		path = "stdin"
	} else {
		// .gz inputs are decompressed
		f, err := ioutil.OpenDecompressed(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input %q: %w", path, err)
		}
		r = f
		closeFn = f.Close
	}
	// keep a copy of what was read for the code hash of dumps
	var seen []byte
	tee := io.TeeReader(bufio.NewReader(r), writerFunc(func(b []byte) (int, error) {
		seen = append(seen, b...)
		return len(b), nil
	}))
	return &input{
		sources: []source{{name: path, r: tee, opts: opts}},
		symbols: symbols,
		image:   func() ([]byte, error) { return seen, nil },
		close:   closeFn,
	}, nil
}

type writerFunc func(b []byte) (int, error)

func (fn writerFunc) Write(b []byte) (int, error) { return fn(b) }

func openOutput(ctx *cli.Context) (io.Writer, func() error, error) {
	path := ctx.Path(OutputFlag.Name)
	if path == "-" || path == "" {
		return ctx.App.Writer, func() error { return nil }, nil
	}
	// the file is renamed into place on close, gzipped when it ends in .gz
	f, err := ioutil.NewAtomicWriterCompressed(path, OutFilePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output %q: %w", path, err)
	}
	return f, f.Close, nil
}

// progress exposes the instruction count to step matchers.
type progress uint64

func (p progress) GetStep() uint64 { return uint64(p) }

// walk decodes every source in order and calls fn for each record.
func walk(ctx *cli.Context, l log.Logger, cfg disasm.Config, in *input, fn func(rec disasm.Record) error) (uint64, error) {
	infoAt := ctx.Generic(InfoAtFlag.Name).(*cannon.StepMatcherFlag).Matcher()
	start := time.Now()
	var total uint64
	for _, src := range in.sources {
		opts := append([]disasm.Option{disasm.WithConfig(cfg), disasm.WithLogger(l)}, src.opts...)
		d := disasm.New(src.r, opts...)
		for {
			if total%100 == 0 { // don't do the ctx err check (includes lock) too often
				if err := ctx.Context.Err(); err != nil {
					return total, err
				}
			}
			rec, err := d.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return total, fmt.Errorf("failed to disassemble %s: %w", src.name, err)
			}
			if infoAt(progress(total)) {
				delta := time.Since(start)
				l.Info("processing",
					"count", total,
					"addr", hexutil.Uint64(rec.Address),
					"insn", HexU32(rec.Instruction.Encode()),
					"ips", float64(total)/(float64(delta)/float64(time.Second)),
					"name", in.symbols.LookupName(rec.Address),
				)
			}
			if err := fn(rec); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

func Disasm(ctx *cli.Context) error {
	if ctx.Bool(PProfCPUFlag.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}
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
	out, closeOut, err := openOutput(ctx)
	if err != nil {
		return err
	}
	f := disasm.NewFormatter(cfg)
	w := bufio.NewWriter(out)
	lastSymbol := ""
	total, walkErr := walk(ctx, l, cfg, in, func(rec disasm.Record) error {
		if len(in.symbols) > 0 {
			if name := in.symbols.LookupName(rec.Address); name != lastSymbol {
				if lastSymbol != "" {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "<%s>:\n", name)
				lastSymbol = name
			}
		}
		_, err := fmt.Fprintln(w, f.Format(rec))
		return err
	})
	// print what was decoded before a failure
	writeErr := w.Flush()
	// closing moves a file output into place
	if err := closeOut(); err != nil && writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write listing: %w", writeErr)
	}
	if walkErr != nil {
		return walkErr
	}
	l.Debug("disassembled", "instructions", total)
	return nil
}

var DisasmCommand = &cli.Command{
	Name:        "disasm",
	Usage:       "Disassemble RISC-V instruction words",
	Description: "Disassemble a raw binary of little-endian 32-bit RISC-V instruction words, or the executable segments of an ELF file",
	Action:      Disasm,
	Flags: append([]cli.Flag{
		InputFlag,
		ELFFlag,
		MetaFlag,
		OutputFlag,
		StartAddressFlag,
		ByteAddressingFlag,
		InfoAtFlag,
		PProfCPUFlag,
		LogLevelFlag,
	}, formatFlags...),
}
