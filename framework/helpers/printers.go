package helpers

import (
	"fmt"
	"io"
)

// MustFprintf writes formatted output and panics on a write error.
func MustFprintf(w io.Writer, format string, a ...any) {
	if _, err := fmt.Fprintf(w, format, a...); err != nil {
		panic(err)
	}
}
