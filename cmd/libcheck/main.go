// Package main provides the entry point for the libcheck CLI.
package main

import (
	"os"
	"runtime"

	"github.com/Aman-CERP/libcheck/cmd/libcheck/cmd"
)

// GLFW must be driven from the process's main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
