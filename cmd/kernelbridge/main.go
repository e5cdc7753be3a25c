package main

import (
	"fmt"
	"os"

	"github.com/GriffinCanCode/kernelbridge/cmd/kernelbridge/cmd"
	// Registers the in-process kernel
	_ "github.com/GriffinCanCode/kernelbridge/internal/kernel/embedded"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
