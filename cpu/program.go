package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Opcode represents a line of source with its location and generated bytes.
type Opcode struct {
	LineNo    int
	Ip        int
	Words     []string
	Codes     []uint8
	LinkLabel string
}

// Program is a listing of a loaded or assembled LS-8 program.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the listing entry covering an address.
type Debug struct {
	*Opcode
	Index int
}

func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  ip - op.Ip,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
func (prog *Program) Binary() (bins []uint8) {
	for ip, code := range prog.Codes() {
		for len(bins) <= ip {
			bins = append(bins, 0)
		}
		bins[ip] = code
	}

	return
}

// Codes returns an iterator over the address and value of every program byte.
func (prog *Program) Codes() iter.Seq2[int, uint8] {
	return func(yield func(ip int, code uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Ip+n, code) {
					return
				}
			}
		}
	}
}

// WriteText writes the program in the .ls8 text format, one byte per line,
// with the source of each entry as a comment.
func (prog *Program) WriteText(w io.Writer) (err error) {
	for _, op := range prog.Opcodes {
		for n, code := range op.Codes {
			if n == 0 && len(op.Words) > 0 {
				_, err = fmt.Fprintf(w, "%08b # %v\n", code, strings.Join(op.Words, " "))
			} else {
				_, err = fmt.Fprintf(w, "%08b\n", code)
			}
			if err != nil {
				return
			}
		}
	}

	return
}
