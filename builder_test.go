package qcircuit

import (
	"errors"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func kinds(ops []Operation) []Kind {
	out := make([]Kind, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.Kind())
	}
	return out
}

func TestBuild(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		circuit, err := Build(NewConfig())

		So(err, ShouldBeNil)
		So(circuit.State(), ShouldEqual, CircuitFrozen)

		ops := circuit.Operations()
		qubits, _ := CreateQubits(5)

		Convey("Then it should hold 15 operations in batch order", func() {
			So(kinds(ops), ShouldResemble, []Kind{
				KindH, KindH, KindH, KindH, KindH,
				KindCNOT, KindCNOT, KindCNOT, KindCNOT,
				KindSWAP,
				KindRX, KindRX, KindRX, KindRX, KindRX,
			})
		})

		Convey("Then the Hadamard layer should follow qubit order", func() {
			for i := 0; i < 5; i++ {
				So(ops[i].Qubits(), ShouldResemble, []GridQubit{qubits[i]})
			}
		})

		Convey("Then the CNOTs should chain neighbours", func() {
			for i := 0; i < 4; i++ {
				So(ops[5+i].Qubits(), ShouldResemble, []GridQubit{qubits[i], qubits[i+1]})
			}
		})

		Convey("Then the SWAP should join the first and last qubit", func() {
			So(ops[9].Qubits(), ShouldResemble, []GridQubit{qubits[0], qubits[4]})
		})

		Convey("Then every rotation should carry π/2", func() {
			for i := 0; i < 5; i++ {
				op := ops[10+i]
				angle, ok := op.Angle()
				So(ok, ShouldBeTrue)
				So(angle, ShouldAlmostEqual, 1.5707963267948966, 1e-15)
				So(op.Qubits(), ShouldResemble, []GridQubit{qubits[i]})
			}
		})

		Convey("Then rendering twice should give the same text and leave the circuit as is", func() {
			before := spew.Sdump(ops)
			first := Render(circuit)
			second := Render(circuit)

			So(first, ShouldEqual, second)
			So(spew.Sdump(circuit.Operations()), ShouldEqual, before)
		})
	})

	Convey("Given a nil configuration", t, func() {
		circuit, err := Build(nil)

		So(err, ShouldBeNil)
		So(circuit.Len(), ShouldEqual, 15)
	})

	Convey("Given zero qubits", t, func() {
		circuit, err := Build(&Config{Qubits: 0, Angle: math.Pi / 2})

		So(err, ShouldBeNil)
		So(circuit.Len(), ShouldEqual, 0)
		So(Render(circuit), ShouldEqual, "")
	})

	Convey("Given a single qubit", t, func() {
		circuit, err := Build(&Config{Qubits: 1, Angle: math.Pi / 2})

		Convey("Then the chain and the swap should be skipped", func() {
			So(err, ShouldBeNil)
			So(kinds(circuit.Operations()), ShouldResemble, []Kind{KindH, KindRX})
		})
	})

	Convey("Given a negative qubit count", t, func() {
		circuit, err := Build(&Config{Qubits: -3})

		So(circuit, ShouldBeNil)
		So(errors.Is(err, ErrNegativeCount), ShouldBeTrue)
	})
}

func TestAppenders(t *testing.T) {
	Convey("Given an empty qubit line", t, func() {
		circuit := NewCircuit()
		var qubits []GridQubit

		So(circuit.AppendHadamard(qubits), ShouldBeNil)
		So(circuit.AppendEntanglingChain(qubits), ShouldBeNil)
		So(circuit.AppendRotationX(qubits, math.Pi/2), ShouldBeNil)
		So(circuit.Len(), ShouldEqual, 0)
	})

	Convey("Given one qubit", t, func() {
		circuit := NewCircuit()
		qubits, _ := CreateQubits(1)

		Convey("The chain should append nothing", func() {
			So(circuit.AppendEntanglingChain(qubits), ShouldBeNil)
			So(circuit.Len(), ShouldEqual, 0)
		})

		Convey("Swapping the qubit with itself should be rejected", func() {
			err := circuit.AppendSwap(qubits[0], qubits[0])
			So(errors.Is(err, ErrSameQubit), ShouldBeTrue)
			So(circuit.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given a line with a repeated neighbour", t, func() {
		circuit := NewCircuit()
		q := NewGridQubit(0, 0)

		err := circuit.AppendEntanglingChain([]GridQubit{q, NewGridQubit(0, 1), NewGridQubit(0, 1)})

		So(errors.Is(err, ErrSameQubit), ShouldBeTrue)
		So(circuit.Len(), ShouldEqual, 0)
	})

	Convey("Given a frozen circuit", t, func() {
		circuit := NewCircuit()
		circuit.Freeze()
		qubits, _ := CreateQubits(2)

		So(errors.Is(circuit.AppendHadamard(qubits), ErrFrozen), ShouldBeTrue)
		So(errors.Is(circuit.AppendSwap(qubits[0], qubits[1]), ErrFrozen), ShouldBeTrue)
		So(errors.Is(circuit.AppendRotationX(qubits, 1), ErrFrozen), ShouldBeTrue)
	})
}
