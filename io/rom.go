package io

import (
	"iter"
)

// Rom holds a program image, read out in address order.
type Rom struct {
	Data []uint8
}

var _ Channel = (*Rom)(nil)

// Rewind does nothing, as a ROM has no position.
func (rc *Rom) Rewind() {
}

// Receive returns an iterator that yields the ROM bytes.
func (rc *Rom) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		for _, data := range rc.Data {
			if !yield(data) {
				return
			}
		}
	}
}

// Send always fails, as a ROM is read-only.
func (rc *Rom) Send(value uint8, format Format) error {
	return ErrChannelFull
}
