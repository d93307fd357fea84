package qcircuit

import (
	"fmt"
	"slices"
	"sync"
)

// CircuitState tracks whether a circuit still accepts operations.
type CircuitState int

const (
	CircuitBuilding CircuitState = iota // Appends allowed
	CircuitFrozen                       // Finalized for display
)

/*
Circuit is an append-only, ordered sequence of operations. Insertion order
is execution order, and nothing is ever removed or rewritten once appended.
After Freeze the circuit rejects further appends and is safe to read from
several goroutines.
*/
type Circuit struct {
	mu    sync.RWMutex
	ops   []Operation
	state CircuitState
}

func NewCircuit() *Circuit {
	return &Circuit{
		ops:   make([]Operation, 0),
		state: CircuitBuilding,
	}
}

/*
Append adds ops in order. The batch is all or nothing: every operation is
validated first, and if any is invalid the circuit is left untouched.
*/
func (c *Circuit) Append(ops ...Operation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == CircuitFrozen {
		return fmt.Errorf("append %d operations: %w", len(ops), ErrFrozen)
	}

	for i, op := range ops {
		if err := op.validate(); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}

	c.ops = append(c.ops, ops...)
	return nil
}

// Freeze ends construction. It is safe to call more than once.
func (c *Circuit) Freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = CircuitFrozen
}

func (c *Circuit) State() CircuitState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Circuit) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ops)
}

// Operations returns a copy of the operations in append order.
func (c *Circuit) Operations() []Operation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.ops)
}

// Qubits returns every qubit touched by an operation, in value order.
func (c *Circuit) Qubits() []GridQubit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return touchedQubits(c.ops)
}

func touchedQubits(ops []Operation) []GridQubit {
	all := make([]GridQubit, 0, len(ops)*2)
	for _, op := range ops {
		all = append(all, op.Qubits()...)
	}
	return sortedUnique(all)
}

func (c *Circuit) String() string {
	return Render(c)
}
