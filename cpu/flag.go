package cpu

// CodeFlag is the state of the FL register, as set by CMP.
type CodeFlag uint8

// FL register bit layout: 00000LGE
const (
	FLAG_NONE = CodeFlag(0)
	FLAG_E    = CodeFlag(0b001) // Equal
	FLAG_G    = CodeFlag(0b010) // Greater than
	FLAG_L    = CodeFlag(0b100) // Less than
)

// compare returns the flag describing a relative to b.
func compare(a, b uint8) CodeFlag {
	switch {
	case a == b:
		return FLAG_E
	case a < b:
		return FLAG_L
	default:
		return FLAG_G
	}
}

// String returns the flag mnemonic.
func (fl CodeFlag) String() string {
	switch fl {
	case FLAG_NONE:
		return "-"
	case FLAG_E:
		return "E"
	case FLAG_G:
		return "G"
	case FLAG_L:
		return "L"
	}
	return "?"
}
