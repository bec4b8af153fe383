package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelClosed = errors.New(f("channel closed"))
	ErrChannelFull   = errors.New(f("channel full"))
	ErrFormat        = errors.New(f("format unknown"))
)
