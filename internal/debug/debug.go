// Package debug prints development diagnostics when FERREUS_DEBUG is set.
// Callers must never pass secret material through it.
package debug

import (
	"fmt"
	"os"
)

var enabled = os.Getenv("FERREUS_DEBUG") != ""

// Print writes a formatted line to stderr when debugging is enabled.
func Print(format string, args ...interface{}) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "DEBUG: "+format+"\n", args...)
}
