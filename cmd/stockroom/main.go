// Package main provides the stockroom CLI, a small inventory tracker over
// a JSON file or SQLite snapshot.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error to the CLI exit-code contract: user errors
// (usage, validation, not-found, bad arguments) exit 1, system errors
// (persistence, I/O) exit 2.
func exitCodeFor(err error) int {
	if !argsAccepted {
		// Cobra rejected the command, flags, or argument count before
		// any command logic ran.
		return exitUserError
	}

	var numErr *strconv.NumError
	switch {
	case errors.Is(err, types.ErrEmptyItem),
		errors.Is(err, types.ErrNegativeQuantity),
		errors.Is(err, types.ErrItemNotFound),
		errors.Is(err, types.ErrBackendUnknown),
		errors.Is(err, types.ErrBackendEmpty),
		errors.As(err, &numErr):
		return exitUserError
	default:
		return exitSysError
	}
}
