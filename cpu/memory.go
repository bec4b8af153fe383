package cpu

import (
	"encoding/hex"
	"io"
)

const (
	MEMORY_SIZE = 256 // Addressable bytes.
)

// Memory is the LS-8 address space, shared by code and data.
type Memory [MEMORY_SIZE]uint8

// Read returns the byte at addr.
func (mem *Memory) Read(addr int) (value uint8, err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrAddress(addr)
		return
	}

	value = mem[addr]
	return
}

// Write stores value at addr.
func (mem *Memory) Write(addr int, value uint8) (err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrAddress(addr)
		return
	}

	mem[addr] = value
	return
}

// Dump writes a hex dump of the memory to w.
func (mem *Memory) Dump(w io.Writer) (err error) {
	dumper := hex.Dumper(w)
	_, err = dumper.Write(mem[:])
	if err != nil {
		return
	}

	err = dumper.Close()
	return
}
