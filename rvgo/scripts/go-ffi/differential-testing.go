package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ethereum-optimism/rvisa/rvgo/isa"
)

// ABI types
var (
	decodedInstruction, _ = abi.NewType("tuple", "DecodedInstruction", []abi.ArgumentMarshaling{
		{Name: "format", Type: "uint8"},
		{Name: "opcode", Type: "uint8"},
		{Name: "rd", Type: "uint8"},
		{Name: "funct3", Type: "uint8"},
		{Name: "rs1", Type: "uint8"},
		{Name: "rs2", Type: "uint8"},
		{Name: "funct7", Type: "uint8"},
		{Name: "imm", Type: "int64"},
	})
	decodedInstructionArgs = abi.Arguments{
		{Name: "encodedDecodedInstruction", Type: decodedInstruction},
	}
)

// fieldValues is the abi view of a decoded instruction, with zero for every
// field the format does not have.
type fieldValues struct {
	Format uint8
	Opcode uint8
	Rd     uint8
	Funct3 uint8
	Rs1    uint8
	Rs2    uint8
	Funct7 uint8
	Imm    int64
}

func valuesOf(in isa.Instruction) fieldValues {
	out := fieldValues{Format: uint8(in.Format()), Opcode: in.Opcode().Value()}
	if r, ok := in.Rd(); ok {
		out.Rd = r.Index()
	}
	if f, ok := in.Funct3(); ok {
		out.Funct3 = f.Value()
	}
	if r, ok := in.Rs1(); ok {
		out.Rs1 = r.Index()
	}
	if r, ok := in.Rs2(); ok {
		out.Rs2 = r.Index()
	}
	if f, ok := in.Funct7(); ok {
		out.Funct7 = f.Value()
	}
	if imm, ok := in.Immediate(); ok {
		out.Imm = imm.Signed()
	}
	return out
}

func DiffTestUtils() {
	args := os.Args[2:]

	// This command requires arguments
	if len(args) == 0 {
		panic("Error: No arguments provided")
	}

	switch args[0] {
	case "decodeInstruction":
		// <insn>
		if len(args) != 2 {
			panic("Error: decodeInstruction requires 1 argument")
		}
		in, err := isa.Decode(parseWord(args[1]))
		checkErr(err, "Error decoding instruction")

		packed, err := decodedInstructionArgs.Pack(valuesOf(in))
		checkErr(err, "Error encoding output")
		fmt.Print(hexutil.Encode(packed))
	case "encodeInstruction":
		// <insn>, re-encoded from its decoded fields
		if len(args) != 2 {
			panic("Error: encodeInstruction requires 1 argument")
		}
		in, err := isa.Decode(parseWord(args[1]))
		checkErr(err, "Error decoding instruction")
		fmt.Printf("%064x", in.Encode())
	default:
		panic(fmt.Errorf("unknown command: %s", args[0]))
	}
}
