package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	for addr := range MEMORY_SIZE {
		assert.NoError(mem.Write(addr, uint8(addr^0x5a)))
	}

	for addr := range MEMORY_SIZE {
		value, err := mem.Read(addr)
		assert.NoError(err)
		assert.Equal(uint8(addr^0x5a), value)
	}
}

func TestMemory_AddressFault(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	for _, addr := range []int{-1000, -256, -1, MEMORY_SIZE, MEMORY_SIZE + 1, 0x1000} {
		_, err := mem.Read(addr)
		assert.ErrorIs(err, ErrAddressFault, "read %d", addr)

		var ea ErrAddress
		assert.True(errors.As(err, &ea))
		assert.Equal(addr, int(ea))

		err = mem.Write(addr, 0xff)
		assert.ErrorIs(err, ErrAddressFault, "write %d", addr)
	}

	// Nothing was written.
	assert.Equal(Memory{}, *mem)
}

func TestMemory_Dump(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem[0] = 0x82
	mem[0xff] = 0x01

	out := &bytes.Buffer{}
	assert.NoError(mem.Dump(out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(MEMORY_SIZE/16, len(lines))
	assert.True(strings.HasPrefix(lines[0], "00000000  82 00"))
	assert.Contains(lines[len(lines)-1], "00 01")
}
