package opcodes

import "fmt"

// Extension names the ISA extension an instruction belongs to.
type Extension uint8

const (
	ExtUnknown Extension = iota
	ExtI
	ExtZifencei
	ExtM
	ExtA
	ExtF
	ExtD
	ExtZicsr
	ExtSystem
	ExtSdext
	ExtCustom
)

var extensionNames = [...]string{
	ExtUnknown:  "unknown",
	ExtI:        "I",
	ExtZifencei: "Zifencei",
	ExtM:        "M",
	ExtA:        "A",
	ExtF:        "F",
	ExtD:        "D",
	ExtZicsr:    "Zicsr",
	ExtSystem:   "System",
	ExtSdext:    "Sdext",
	ExtCustom:   "Custom",
}

func (e Extension) String() string {
	if int(e) < len(extensionNames) {
		return extensionNames[e]
	}
	return fmt.Sprintf("Extension(%d)", uint8(e))
}
