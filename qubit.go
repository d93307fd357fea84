package qcircuit

import (
	"cmp"
	"fmt"
	"slices"
)

/*
GridQubit addresses a qubit by its position on a 2D grid. It carries no
quantum state, only a coordinate, so two GridQubits with the same row and
column are the same qubit.
*/
type GridQubit struct {
	Row int
	Col int
}

func NewGridQubit(row, col int) GridQubit {
	return GridQubit{Row: row, Col: col}
}

func (q GridQubit) String() string {
	return fmt.Sprintf("(%d, %d)", q.Row, q.Col)
}

// Compare orders qubits by row, then column.
func (q GridQubit) Compare(other GridQubit) int {
	if c := cmp.Compare(q.Row, other.Row); c != 0 {
		return c
	}
	return cmp.Compare(q.Col, other.Col)
}

/*
CreateQubits returns n qubits laid out along row 0, indexed 0..n-1.
*/
func CreateQubits(n int) ([]GridQubit, error) {
	return LineOnRow(0, n)
}

// LineOnRow returns n qubits at columns 0..n-1 of the given row.
func LineOnRow(row, n int) ([]GridQubit, error) {
	if n < 0 {
		return nil, fmt.Errorf("line of %d qubits: %w", n, ErrNegativeCount)
	}

	qubits := make([]GridQubit, 0, n)
	for col := 0; col < n; col++ {
		qubits = append(qubits, NewGridQubit(row, col))
	}

	return qubits, nil
}

// sortedUnique returns the distinct qubits in value order.
func sortedUnique(qubits []GridQubit) []GridQubit {
	out := slices.Clone(qubits)
	slices.SortFunc(out, GridQubit.Compare)
	return slices.Compact(out)
}
