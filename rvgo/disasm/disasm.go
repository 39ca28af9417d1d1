package disasm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/log"

	"github.com/ethereum-optimism/rvisa/rvgo/isa"
	"github.com/ethereum-optimism/rvisa/rvgo/riscv"
)

// ErrUnexpectedEOF is reported when the source ends inside an instruction word.
var ErrUnexpectedEOF = errors.New("unexpected end of file")

// UnsupportedSizeError is reported for instruction lengths other than 32 bits.
type UnsupportedSizeError struct {
	Size    isa.Size
	Address uint64
}

func (e *UnsupportedSizeError) Error() string {
	return fmt.Sprintf("unsupported instruction size %s bits at %#x", e.Size, e.Address)
}

type state uint8

const (
	stateReady state = iota
	stateEnded
	stateFailed
)

// Disasm decodes a stream of little-endian instruction words. It reads
// forward only, and once the stream ended or failed every call to Next
// returns io.EOF.
type Disasm struct {
	r     io.Reader
	cfg   Config
	log   log.Logger
	addr  uint64
	state state
	buf   [riscv.InstrBytes]byte
	count uint64
}

type Option func(d *Disasm)

// WithConfig replaces the whole configuration; options given after it still apply.
func WithConfig(cfg Config) Option {
	return func(d *Disasm) {
		d.cfg = cfg
	}
}

func WithStartAddress(addr uint64) Option {
	return func(d *Disasm) {
		d.cfg.StartAddress = addr
	}
}

// WithByteAddressing advances the address by the instruction length in bytes,
// so addresses line up with the virtual addresses of a loaded program.
func WithByteAddressing() Option {
	return func(d *Disasm) {
		d.cfg.ByteAddressing = true
	}
}

func WithLogger(l log.Logger) Option {
	return func(d *Disasm) {
		d.log = l
	}
}

func New(r io.Reader, opts ...Option) *Disasm {
	d := &Disasm{r: r, cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(d)
	}
	d.addr = d.cfg.StartAddress
	return d
}

// Address is the address the next record will be tagged with.
func (d *Disasm) Address() uint64 { return d.addr }

// Count is the number of records decoded so far.
func (d *Disasm) Count() uint64 { return d.count }

func (d *Disasm) Config() Config { return d.cfg }

// Next decodes the next instruction. A clean end of the stream at an
// instruction boundary is reported as io.EOF. Any other error is reported
// once, after which Next returns io.EOF.
func (d *Disasm) Next() (Record, error) {
	if d.state != stateReady {
		return Record{}, io.EOF
	}
	rec, err := d.step()
	if errors.Is(err, io.EOF) {
		d.state = stateEnded
		d.debug("end of stream", "records", d.count, "addr", d.addr)
		return Record{}, io.EOF
	}
	if err != nil {
		d.state = stateFailed
		d.debug("decoding failed", "records", d.count, "addr", d.addr, "err", err)
		return Record{}, err
	}
	d.count++
	return rec, nil
}

func (d *Disasm) step() (Record, error) {
	if _, err := io.ReadFull(d.r, d.buf[:1]); err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("failed to read instruction at %#x: %w", d.addr, err)
	}
	size, err := isa.SizeFromOpcode(d.buf[0] & riscv.OpcodeMask)
	if err != nil {
		return Record{}, fmt.Errorf("instruction at %#x: %w", d.addr, err)
	}
	if size != isa.Size32 {
		return Record{}, &UnsupportedSizeError{Size: size, Address: d.addr}
	}
	if _, err := io.ReadFull(d.r, d.buf[1:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Record{}, ErrUnexpectedEOF
		}
		return Record{}, fmt.Errorf("failed to read instruction at %#x: %w", d.addr, err)
	}
	word := binary.LittleEndian.Uint32(d.buf[:])
	insn, err := isa.Decode(word)
	if err != nil {
		return Record{}, fmt.Errorf("failed to decode %08x at %#x: %w", word, d.addr, err)
	}
	rec := Record{Instruction: insn, Address: d.addr}
	if d.log != nil {
		d.log.Trace("decoded", "addr", rec.Address, "insn", hexWord(word), "format", insn.Format())
	}
	d.addr += d.advance(insn.Size())
	return rec, nil
}

func (d *Disasm) advance(size isa.Size) uint64 {
	if d.cfg.ByteAddressing {
		return size.Bytes()
	}
	return size.Bits()
}

func (d *Disasm) debug(msg string, ctx ...any) {
	if d.log != nil {
		d.log.Debug(msg, ctx...)
	}
}

// ReadAll drains the decoder. The records decoded before a failure are
// returned along with the error.
func (d *Disasm) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := d.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

type hexWord uint32

func (v hexWord) String() string {
	return fmt.Sprintf("%08x", uint32(v))
}
