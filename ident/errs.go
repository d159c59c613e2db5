package ident

import "errors"

var ErrInvalidIdentifier = errors.New("invalid identifier")
