package qcircuit

import "errors"

var (
	ErrSameQubit     = errors.New("operation acts on the same qubit twice")
	ErrFrozen        = errors.New("circuit is frozen")
	ErrNegativeCount = errors.New("qubit count must not be negative")
	ErrUnknownKind   = errors.New("operation has no gate kind")
)
