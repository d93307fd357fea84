package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/qcircuit"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "qcircuit",
		ReportTimestamp: true,
	})

	circuit, err := qcircuit.Build(qcircuit.NewConfig())
	if err != nil {
		logger.Fatal("building circuit", "err", err)
	}

	fmt.Println(circuit)
}
