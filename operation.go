package qcircuit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the gate an Operation applies.
type Kind int

const (
	KindInvalid Kind = iota // zero value, never appended
	KindH
	KindCNOT
	KindSWAP
	KindRX
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "INVALID"
	case KindH:
		return "H"
	case KindCNOT:
		return "CNOT"
	case KindSWAP:
		return "SWAP"
	case KindRX:
		return "RX"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Arity is the number of qubits a gate of this kind acts on.
func (k Kind) Arity() int {
	switch k {
	case KindCNOT, KindSWAP:
		return 2
	default:
		return 1
	}
}

/*
Operation is a gate bound to the qubits it acts on. It is a plain value:
the qubits are held in a fixed array, so copies never share state and an
appended Operation cannot be changed afterwards.
*/
type Operation struct {
	kind   Kind
	qubits [2]GridQubit
	angle  float64
}

// H places a qubit into equal superposition.
func H(q GridQubit) Operation {
	return Operation{kind: KindH, qubits: [2]GridQubit{q}}
}

// CNOT flips target when control is |1⟩.
func CNOT(control, target GridQubit) Operation {
	return Operation{kind: KindCNOT, qubits: [2]GridQubit{control, target}}
}

func SWAP(a, b GridQubit) Operation {
	return Operation{kind: KindSWAP, qubits: [2]GridQubit{a, b}}
}

// RX rotates a qubit about the X axis by angle radians.
func RX(q GridQubit, angle float64) Operation {
	return Operation{kind: KindRX, qubits: [2]GridQubit{q}, angle: angle}
}

func (op Operation) Kind() Kind {
	return op.kind
}

// Qubits returns a fresh slice of the qubits in gate order (control first for CNOT).
func (op Operation) Qubits() []GridQubit {
	out := make([]GridQubit, op.kind.Arity())
	copy(out, op.qubits[:])
	return out
}

// Angle reports the rotation parameter, if the gate has one.
func (op Operation) Angle() (float64, bool) {
	return op.angle, op.kind == KindRX
}

func (op Operation) validate() error {
	switch op.kind {
	case KindH, KindCNOT, KindSWAP, KindRX:
	default:
		return fmt.Errorf("%s on %s: %w", op.kind, op.qubits[0], ErrUnknownKind)
	}

	if op.kind.Arity() == 2 && op.qubits[0] == op.qubits[1] {
		return fmt.Errorf("%s on %s: %w", op.kind, op.qubits[0], ErrSameQubit)
	}
	return nil
}

func (op Operation) String() string {
	names := make([]string, 0, 2)
	for _, q := range op.Qubits() {
		names = append(names, q.String())
	}

	gate := op.kind.String()
	if op.kind == KindRX {
		gate = "Rx(" + formatTurns(op.angle) + ")"
	}

	return gate + "(" + strings.Join(names, ", ") + ")"
}

// symbols returns the diagram glyph for each qubit, in gate order.
func (op Operation) symbols() []string {
	switch op.kind {
	case KindCNOT:
		return []string{"@", "X"}
	case KindSWAP:
		return []string{"×", "×"}
	case KindRX:
		return []string{"Rx(" + formatTurns(op.angle) + ")"}
	default:
		return []string{op.kind.String()}
	}
}

// formatTurns writes an angle as a multiple of π, rounded to 3 decimals.
// Huge multiples fall back to exponent notation.
func formatTurns(radians float64) string {
	turns := math.Round(radians/math.Pi*1000) / 1000
	if turns == 0 {
		turns = 0 // drop negative zero
	}
	return strconv.FormatFloat(turns, 'g', -1, 64) + "π"
}
