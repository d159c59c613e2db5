package ir

import "errors"

var ErrInvalidOperation = errors.New("invalid operation")
