package cli

import "fmt"

// User-facing result output goes to stdout; logs go to stderr. These helpers
// keep the two channels separate so scripted callers can capture paths
// without parsing log lines.

func printSuccess(format string, args ...any) {
	fmt.Printf("✓ "+format+"\n", args...)
}

func printInfo(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

func printDetail(format string, args ...any) {
	fmt.Printf("  "+format+"\n", args...)
}
