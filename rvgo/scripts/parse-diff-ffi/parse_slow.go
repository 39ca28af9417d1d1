package main

import (
	"flag"
	"fmt"

	"github.com/ethereum-optimism/rvisa/rvgo/slow"
)

var parsers = map[string]func(slow.U32) slow.U32{
	"ParseTypeI":  slow.ParseImmTypeI,
	"ParseTypeS":  slow.ParseImmTypeS,
	"ParseTypeB":  slow.ParseImmTypeB,
	"ParseTypeU":  slow.ParseImmTypeU,
	"ParseTypeJ":  slow.ParseImmTypeJ,
	"ParseOpcode": slow.ParseOpcode,
	"ParseRd":     slow.ParseRd,
	"ParseFunct3": slow.ParseFunct3,
	"ParseRs1":    slow.ParseRs1,
	"ParseRs2":    slow.ParseRs2,
	"ParseFunct7": slow.ParseFunct7,
}

func main() {
	function := flag.String("fuzz", "ParseTypeI", "fuzz function")
	input := flag.Uint64("number", 0, "instruction word to parse")
	flag.Parse()

	parse, ok := parsers[*function]
	if !ok {
		panic(fmt.Errorf("unknown fuzz function: %s", *function))
	}
	if *input > 0xFFFF_FFFF {
		panic(fmt.Errorf("instruction word %#x does not fit in 32 bits", *input))
	}
	// one abi word, as the solidity side reads it
	fmt.Printf("%064x", slow.Val(parse(slow.ToU32(uint32(*input)))))
}
