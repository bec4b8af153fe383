package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// faults is the complete set of reasons an instruction may fail.
var faults = []error{
	ErrAddressFault,
	ErrDivisionByZero,
	ErrIllegalOpcode,
	ErrRegisterInvalid,
	ErrStackOverflow,
	ErrStackUnderflow,
}

func FuzzCpu(f *testing.F) {
	for op := range opInfoMap {
		f.Add(uint8(op), uint8(0), uint8(1), uint8(STACK_TOP))
		f.Add(uint8(op), uint8(1), uint8(0), uint8(0))
		f.Add(uint8(op), uint8(7), uint8(9), uint8(0x80))
	}
	f.Add(uint8(0xff), uint8(0), uint8(0), uint8(STACK_TOP))

	f.Fuzz(func(t *testing.T, opcode uint8, a uint8, b uint8, sp uint8) {
		assert := assert.New(t)

		cpu, _ := newTestCpu()

		const pc = 0x10
		code := Code{Pc: pc, Op: CodeOp(opcode), A: a, B: b}
		for n, value := range code.Bytes() {
			assert.NoError(cpu.Memory.Write(pc+n, value))
		}

		for n := range SP {
			cpu.Register[n] = uint8(0x11 * (n + 1))
		}
		cpu.Register[SP] = sp
		cpu.Pc = pc

		fetched, err := cpu.FetchCode()
		assert.NoError(err)
		assert.Equal(code.Op, fetched.Op)

		state, err := cpu.Tick()

		code_str := fmt.Sprintf("0x%02x (%v) a:%d b:%d sp:0x%02x\ncpu:%v",
			opcode, fetched, a, b, sp, cpu.String())

		if err != nil {
			assert.Equal(STATE_FAULTED, state, code_str)
			assert.Equal(pc, cpu.Pc, code_str)
			assert.Equal(0, cpu.Ticks, code_str)

			var fault *ErrFault
			if assert.True(errors.As(err, &fault), code_str) {
				assert.Equal(pc, fault.Pc, code_str)
				assert.Equal(code.Op, fault.Code.Op, code_str)
			}

			known := false
			for _, target := range faults {
				known = known || errors.Is(err, target)
			}
			assert.True(known, code_str+"\n"+err.Error())

			if !code.Op.Valid() {
				assert.ErrorIs(err, ErrIllegalOpcode, code_str)
			}
			return
		}

		assert.True(code.Op.Valid(), code_str)
		assert.Equal(1, cpu.Ticks, code_str)

		switch {
		case code.Op == OP_HLT:
			assert.Equal(STATE_HALTED, state, code_str)
			assert.Equal(pc, cpu.Pc, code_str)
		case code.Op.SetsPc():
			assert.Equal(STATE_RUNNING, state, code_str)
			assert.Less(cpu.Pc, MEMORY_SIZE, code_str)
		default:
			assert.Equal(STATE_RUNNING, state, code_str)
			assert.Equal(code.Next(), cpu.Pc, code_str)
		}
	})
}
