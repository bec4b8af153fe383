// Package io provides the I/O channel implementations for the LS-8 emulator.
// It includes the console output channel (Tape) written by the PRN and PRA
// instructions, and the program ROM the emulator boots from.
package io

// Format selects how a byte sent to a channel is rendered.
type Format int

const (
	FORMAT_DECIMAL = Format(0) // Decimal integer, one per line.
	FORMAT_CHAR    = Format(1) // Raw character byte.
)

// Channel defines the interface for output channels in the LS-8 system.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes a single byte to the channel, in the requested format.
	Send(value uint8, format Format) error
}
