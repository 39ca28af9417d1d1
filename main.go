package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"

	"github.com/ethereum-optimism/rvisa/rvgo/disasm"
)

func main() {
	logger := log.New()
	logger.SetHandler(log.LvlFilterHandler(log.LvlInfo, log.StreamHandler(os.Stderr, log.LogfmtFormat())))

	f, err := os.Open("program.bin")
	if err != nil {
		logger.Crit("failed to open program", "err", err)
	}
	defer f.Close()

	// the image starts at 0x10000, one word every 4 bytes
	d := disasm.New(f, disasm.WithStartAddress(0x10000), disasm.WithByteAddressing(), disasm.WithLogger(logger))
	for {
		rec, err := d.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Crit("failed to disassemble", "err", err)
		}
		fmt.Println(rec)
	}
	logger.Info("done", "instructions", d.Count())
}
