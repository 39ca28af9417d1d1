package main

import (
	"os"

	"github.com/ethereum/go-ethereum/log"
)

const usage = "usage: go-ffi diff <decodeInstruction|encodeInstruction> <insn>"

func main() {
	log.Root().SetHandler(log.LvlFilterHandler(log.LvlInfo, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
	if len(os.Args) < 2 {
		log.Crit("missing subcommand", "usage", usage)
	}
	switch os.Args[1] {
	case "diff":
		DiffTestUtils()
	default:
		log.Crit("unrecognized subcommand", "subcommand", os.Args[1], "usage", usage)
	}
}
