package qcircuit

import (
	"github.com/theapemachine/errnie"
)

// AppendHadamard puts an H on each qubit, in slice order.
func (c *Circuit) AppendHadamard(qubits []GridQubit) error {
	ops := make([]Operation, 0, len(qubits))
	for _, q := range qubits {
		ops = append(ops, H(q))
	}
	return c.Append(ops...)
}

/*
AppendEntanglingChain links neighbouring qubits with CNOTs: qubits[i]
controls qubits[i+1] for every i, lowest first. Fewer than two qubits
yields no operations.
*/
func (c *Circuit) AppendEntanglingChain(qubits []GridQubit) error {
	if len(qubits) < 2 {
		return c.Append()
	}

	ops := make([]Operation, 0, len(qubits)-1)
	for i := 0; i < len(qubits)-1; i++ {
		ops = append(ops, CNOT(qubits[i], qubits[i+1]))
	}
	return c.Append(ops...)
}

// AppendSwap exchanges a and b. Swapping a qubit with itself returns ErrSameQubit.
func (c *Circuit) AppendSwap(a, b GridQubit) error {
	return c.Append(SWAP(a, b))
}

// AppendRotationX puts an RX(angle) on each qubit, in slice order.
func (c *Circuit) AppendRotationX(qubits []GridQubit, angle float64) error {
	ops := make([]Operation, 0, len(qubits))
	for _, q := range qubits {
		ops = append(ops, RX(q, angle))
	}
	return c.Append(ops...)
}

/*
Build runs the fixed construction program: a line of cfg.Qubits qubits on
cfg.Row, a Hadamard layer, a CNOT chain, a SWAP between the first and last
qubit, and an RX(cfg.Angle) layer. The returned circuit is frozen.

With fewer than two qubits there is nothing to swap, so that step is
skipped rather than rejected.
*/
func Build(cfg *Config) (*Circuit, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	qubits, err := LineOnRow(cfg.Row, cfg.Qubits)
	if err != nil {
		return nil, err
	}

	errnie.Info("Build - qubits %v, angle %v", qubits, cfg.Angle)

	circuit := NewCircuit()

	if err := circuit.AppendHadamard(qubits); err != nil {
		return nil, err
	}

	if err := circuit.AppendEntanglingChain(qubits); err != nil {
		return nil, err
	}

	if len(qubits) >= 2 {
		if err := circuit.AppendSwap(qubits[0], qubits[len(qubits)-1]); err != nil {
			return nil, err
		}
	} else {
		errnie.Info("Build - skipping swap, %d qubits", len(qubits))
	}

	if err := circuit.AppendRotationX(qubits, cfg.Angle); err != nil {
		return nil, err
	}

	circuit.Freeze()
	errnie.Info("Build - done, %d operations", circuit.Len())

	return circuit, nil
}
