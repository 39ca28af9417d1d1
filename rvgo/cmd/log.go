package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/log"
)

func Logger(w io.Writer, lvl log.Lvl) log.Logger {
	h := log.StreamHandler(w, log.LogfmtFormat())
	h = log.SyncHandler(h)
	h = log.LvlFilterHandler(lvl, h)
	l := log.New()
	l.SetHandler(h)
	return l
}

func parseLevel(s string) (log.Lvl, error) {
	if s == "" {
		return log.LvlInfo, nil
	}
	lvl, err := log.LvlFromString(strings.ToLower(s))
	if err != nil {
		return log.LvlInfo, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return lvl, nil
}

// HexU32 to lazy-format integer attributes for logging
type HexU32 uint32

func (v HexU32) String() string {
	return fmt.Sprintf("%08x", uint32(v))
}

func (v HexU32) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *HexU32) UnmarshalText(text []byte) error {
	x, err := strconv.ParseUint(string(text), 16, 32)
	if err != nil {
		return fmt.Errorf("invalid hex word %q: %w", text, err)
	}
	*v = HexU32(x)
	return nil
}
