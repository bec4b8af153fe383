package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.Equal(0, cpu.Depth())
	assert.Equal(uint8(STACK_TOP), cpu.Register[SP])

	assert.NoError(cpu.Push(0x12))
	assert.Equal(1, cpu.Depth())
	assert.Equal(uint8(STACK_TOP-1), cpu.Register[SP])
	assert.Equal(uint8(0x12), cpu.Memory[STACK_TOP-1])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Push(0x12))
	assert.NoError(cpu.Push(0xAB))

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0xAB), val)
	assert.Equal(1, cpu.Depth())

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0x12), val)
	assert.Equal(0, cpu.Depth())
	assert.Equal(uint8(STACK_TOP), cpu.Register[SP])
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	val, err := cpu.Pop()
	assert.ErrorIs(err, ErrStackUnderflow)
	assert.Equal(uint8(0), val)
	assert.Equal(uint8(STACK_TOP), cpu.Register[SP])
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Push(0x12))
	assert.NoError(cpu.Push(0xAB))

	val, ok := cpu.Peek()
	assert.True(ok)
	assert.Equal(uint8(0xAB), val)
	assert.Equal(2, cpu.Depth())
}

func TestStack_Peek_Empty(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	val, ok := cpu.Peek()
	assert.False(ok)
	assert.Equal(uint8(0), val)
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	for i := range STACK_TOP {
		assert.NoError(cpu.Push(uint8(i)))
	}

	assert.Equal(STACK_TOP, cpu.Depth())
	assert.Equal(uint8(0), cpu.Register[SP])

	err := cpu.Push(0xff)
	assert.ErrorIs(err, ErrStackOverflow)
	assert.Equal(uint8(0), cpu.Register[SP])
	assert.Equal(uint8(STACK_TOP-1), cpu.Memory[0])
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Push(0x12))
	assert.NoError(cpu.Push(0xAB))
	assert.Equal(2, cpu.Depth())

	cpu.Reset()
	assert.Equal(0, cpu.Depth())
	assert.Equal(uint8(STACK_TOP), cpu.Register[SP])
}
