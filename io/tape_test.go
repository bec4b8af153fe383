package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(5, FORMAT_DECIMAL))
	assert.NoError(tape.Send(255, FORMAT_DECIMAL))
	assert.NoError(tape.Send('H', FORMAT_CHAR))
	assert.NoError(tape.Send('i', FORMAT_CHAR))

	assert.Equal("5\n255\nHi", output.String())
	assert.Equal(8, tape.Written)
	assert.Equal(uint8('i'), tape.Last)

	assert.NoError(tape.Send(7, FORMAT_DECIMAL))
	assert.Equal(uint8('\n'), tape.Last)
}

func TestTape_Send_Closed(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	err := tape.Send(1, FORMAT_DECIMAL)
	assert.ErrorIs(err, ErrChannelClosed)
}

func TestTape_Send_Format(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	err := tape.Send(1, Format(99))
	assert.ErrorIs(err, ErrFormat)
	assert.Equal(0, output.Len())
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(42, FORMAT_DECIMAL))
	assert.Equal(3, tape.Written)

	tape.Rewind()
	assert.Equal(0, tape.Written)
	assert.Equal(uint8(0), tape.Last)
	assert.Equal("42\n", output.String())
}
