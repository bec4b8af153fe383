package io

import (
	"fmt"
	"io"
)

// Tape provides sequential console output. Decimal values are written
// one per line, characters are written as-is.
type Tape struct {
	Output io.Writer

	Written int   // Bytes written since the last rewind.
	Last    uint8 // Last byte written.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; only the statistics are cleared.
func (tc *Tape) Rewind() {
	tc.Written = 0
	tc.Last = 0
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value uint8, format Format) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	var n int
	switch format {
	case FORMAT_DECIMAL:
		n, err = fmt.Fprintf(tc.Output, "%d\n", value)
		if err == nil {
			tc.Last = '\n'
		}
	case FORMAT_CHAR:
		n, err = tc.Output.Write([]byte{value})
		if err == nil {
			tc.Last = value
		}
	default:
		err = ErrFormat
	}

	tc.Written += n
	return
}
