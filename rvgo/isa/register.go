package isa

import (
	"strconv"
	"strings"

	"github.com/ethereum-optimism/rvisa/rvgo/riscv"
)

// Register is an integer register index in [0, 31].
type Register struct {
	idx uint8
}

var (
	Zero = Register{0}
	RA   = Register{1}
	SP   = Register{2}
	GP   = Register{3}
	TP   = Register{4}
	T0   = Register{5}
	T1   = Register{6}
	T2   = Register{7}
	S0   = Register{8}
	S1   = Register{9}
	A0   = Register{10}
	A1   = Register{11}
	A2   = Register{12}
	A3   = Register{13}
	A4   = Register{14}
	A5   = Register{15}
	A6   = Register{16}
	A7   = Register{17}
	S2   = Register{18}
	S3   = Register{19}
	S4   = Register{20}
	S5   = Register{21}
	S6   = Register{22}
	S7   = Register{23}
	S8   = Register{24}
	S9   = Register{25}
	S10  = Register{26}
	S11  = Register{27}
	T3   = Register{28}
	T4   = Register{29}
	T5   = Register{30}
	T6   = Register{31}
)

var registerNames = [32]string{
	"zero", "ra", "sp", "gp", "tp",
	"t0", "t1", "t2",
	"s0", "s1",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
}

func NewRegister(raw uint8) (Register, error) {
	if raw >= 32 {
		return Register{}, ErrInvalidRegister
	}
	return Register{raw}, nil
}

// RegisterByName resolves an ABI name ("a0") or an x-name ("x10").
func RegisterByName(name string) (Register, bool) {
	for i, n := range registerNames {
		if n == name {
			return Register{uint8(i)}, true
		}
	}
	if !strings.HasPrefix(name, "x") {
		return Register{}, false
	}
	idx, err := strconv.ParseUint(name[1:], 10, 8)
	if err != nil || idx >= 32 {
		return Register{}, false
	}
	return Register{uint8(idx)}, true
}

func (r Register) Index() uint8 { return r.idx }

func (r Register) String() string { return registerNames[r.idx] }

// the mask keeps every extracted index below 32
func registerAt(word uint32, shift uint) Register {
	return Register{uint8((word >> shift) & riscv.RegisterMask)}
}

func Rs1FromWord(word uint32) Register { return registerAt(word, riscv.ShiftRs1) }

func Rs2FromWord(word uint32) Register { return registerAt(word, riscv.ShiftRs2) }

func RdFromWord(word uint32) Register { return registerAt(word, riscv.ShiftRd) }

func (r Register) Rs1Bits() uint32 { return uint32(r.idx) << riscv.ShiftRs1 }

func (r Register) Rs2Bits() uint32 { return uint32(r.idx) << riscv.ShiftRs2 }

func (r Register) RdBits() uint32 { return uint32(r.idx) << riscv.ShiftRd }
