//go:build !linux
// +build !linux

package cmd

import "fmt"

// perf_event_open is linux only
func runWithPerf(f func()) {
	fmt.Println("perf counters are only available on linux")
	f()
}
