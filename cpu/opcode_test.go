package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode_Layout(t *testing.T) {
	assert := assert.New(t)

	sets_pc := map[CodeOp]bool{
		OP_CALL: true, OP_RET: true, OP_JMP: true,
		OP_JEQ: true, OP_JNE: true, OP_JGT: true,
		OP_JLT: true, OP_JLE: true, OP_JGE: true,
	}

	for op, info := range opInfoMap {
		assert.True(op.Valid(), info.Name)
		assert.LessOrEqual(op.Operands(), 2, info.Name)
		assert.LessOrEqual(op.Registers(), op.Operands(), info.Name)
		assert.Equal(sets_pc[op], op.SetsPc(), info.Name)
		assert.Equal(info.Name, op.String())
		assert.Equal(op, mnemonicMap[info.Name])

		_, ok := dispatch[op]
		assert.True(ok, "%v has no handler", info.Name)
	}

	for op := range dispatch {
		assert.True(op.Valid(), "0x%02x", uint8(op))
	}

	assert.Equal(len(opInfoMap), len(mnemonicMap))
}

func TestOpcode_Width(t *testing.T) {
	assert := assert.New(t)

	table := map[CodeOp]int{
		OP_HLT:  1,
		OP_RET:  1,
		OP_NOP:  1,
		OP_PRN:  2,
		OP_PUSH: 2,
		OP_POP:  2,
		OP_CALL: 2,
		OP_JMP:  2,
		OP_JEQ:  2,
		OP_JNE:  2,
		OP_LDI:  3,
		OP_ADD:  3,
		OP_MUL:  3,
		OP_CMP:  3,
		OP_ADDI: 3,
	}

	for op, width := range table {
		assert.Equal(width, op.Width(), op.String())
		assert.Equal(width, len(Code{Op: op}.Bytes()), op.String())
	}

	assert.True(OP_ADD.IsAlu())
	assert.True(OP_NOT.IsAlu())
	assert.True(OP_ADDI.IsAlu())
	assert.False(OP_LDI.IsAlu())
	assert.False(OP_CALL.IsAlu())
}

func TestOpcode_Invalid(t *testing.T) {
	assert := assert.New(t)

	op := CodeOp(0xff)
	assert.False(op.Valid())
	assert.Equal("CodeOp(0xff)", op.String())
	assert.Equal(0, op.Registers())
	assert.Equal([]uint8{0xff, 0x01, 0x02}, Code{Op: op, A: 1, B: 2}.Bytes())
	assert.Equal("CodeOp(0xff) 1,2", Code{Op: op, A: 1, B: 2}.String())
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		code Code
		text string
	}{
		{Code{Op: OP_HLT}, "HLT"},
		{Code{Op: OP_LDI, A: 0, B: 8}, "LDI R0,8"},
		{Code{Op: OP_PRN, A: 1}, "PRN R1"},
		{Code{Op: OP_MUL, A: 0, B: 1}, "MUL R0,R1"},
		{Code{Op: OP_CALL, A: 7}, "CALL R7"},
		{Code{Op: OP_ADDI, A: 2, B: 255}, "ADDI R2,255"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.code.String())
	}
}

func TestCode_Next(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(11, Code{Pc: 10, Op: OP_HLT}.Next())
	assert.Equal(12, Code{Pc: 10, Op: OP_PRN}.Next())
	assert.Equal(13, Code{Pc: 10, Op: OP_LDI}.Next())
}

func TestFlag_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("-", FLAG_NONE.String())
	assert.Equal("E", FLAG_E.String())
	assert.Equal("G", FLAG_G.String())
	assert.Equal("L", FLAG_L.String())
	assert.Equal("?", CodeFlag(7).String())

	assert.Equal("running", STATE_RUNNING.String())
	assert.Equal("halted", STATE_HALTED.String())
	assert.Equal("faulted", STATE_FAULTED.String())
}
