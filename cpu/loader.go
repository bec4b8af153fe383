package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseBinary reads the .ls8 text format into a Program.
//
// Each line holds one byte, written in base 2. Anything after a '#' is a
// comment, and an optional 0b prefix is permitted. Blank lines,
// comment-only lines and lines that are not a base 2 byte are skipped.
func ParseBinary(input io.Reader) (prog *Program, err error) {
	prog = &Program{}

	scanner := bufio.NewScanner(input)

	var lineno int
	var ip int
	for scanner.Scan() {
		lineno += 1

		text, comment, _ := strings.Cut(scanner.Text(), "#")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		text = strings.TrimPrefix(strings.TrimPrefix(text, "0b"), "0B")
		value, perr := strconv.ParseUint(text, 2, 8)
		if perr != nil {
			continue
		}

		var words []string
		if comment = strings.TrimSpace(comment); len(comment) > 0 {
			words = []string{comment}
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo: lineno,
			Ip:     ip,
			Words:  words,
			Codes:  []uint8{uint8(value)},
		})
		ip++
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
		return
	}

	return
}
