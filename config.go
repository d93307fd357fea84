package qcircuit

import "math"

// Config holds the parameters of the fixed construction program.
type Config struct {
	Qubits int
	Row    int
	Angle  float64 // radians
}

func NewConfig() *Config {
	return &Config{
		Qubits: 5,
		Row:    0,
		Angle:  math.Pi / 2,
	}
}
