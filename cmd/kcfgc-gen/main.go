// Package main provides the CLI entrypoint for kcfgc-gen.
//
// kcfgc-gen turns a configuration-entry model into the C++ accessor source
// of a KConfigSkeleton class:
//   - Getters, immutability predicates and setters per entry
//   - Range clamping with runtime diagnostics in setters
//   - Change notification through signals or the settingsChanged mask
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"kcfgc-gen/internal/gen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The open failure message has already been written.
		if !errors.Is(err, gen.ErrOpenOutput) {
			fmt.Fprintf(os.Stderr, "kcfgc-gen: %v\n", err)

			for _, hint := range errors.GetAllHints(err) {
				fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
			}
		}

		os.Exit(1)
	}
}
