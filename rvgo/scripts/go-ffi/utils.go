package main

import (
	"fmt"
	"strconv"
)

// checkErr panics with the reason when err is set, so forge sees a failed ffi call.
func checkErr(err error, failReason string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", failReason, err))
	}
}

// parseWord reads an instruction word in decimal or 0x-prefixed hex.
func parseWord(arg string) uint32 {
	word, err := strconv.ParseUint(arg, 0, 32)
	checkErr(err, "Error decoding insn")
	return uint32(word)
}
