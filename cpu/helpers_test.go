package cpu

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

// encode concatenates the encoding of a sequence of instructions.
func encode(codes ...Code) (bins []uint8) {
	for _, code := range codes {
		bins = append(bins, code.Bytes()...)
	}
	return
}

// newTestCpu returns a CPU attached to an output buffer.
func newTestCpu() (cpu *Cpu, output *bytes.Buffer) {
	output = &bytes.Buffer{}
	cpu = NewCpu()
	cpu.SetChannel(&io.Tape{Output: output})
	return
}

// runProgram loads and runs a program on a fresh CPU.
func runProgram(t *testing.T, program []uint8) (cpu *Cpu, output string, err error) {
	cpu, buffer := newTestCpu()
	assert.NoError(t, cpu.Load(slices.Values(program)))

	err = cpu.Run()
	output = buffer.String()
	return
}
