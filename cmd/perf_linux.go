//go:build linux
// +build linux

package cmd

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// runWithPerf runs f under a retired-instruction counter. Falls back to a
// plain run if the perf_event interface cannot be opened (permissions or
// kernel config).
func runWithPerf(f func()) {
	profileValue, err := perf.CPUInstructions(func() error {
		f()
		return nil
	})
	if err != nil {
		fmt.Printf("unable to open perf counters: %s\n", err)
		f()
		return
	}
	fmt.Printf("CPU instructions retired: %d\n", profileValue.Value)
}
