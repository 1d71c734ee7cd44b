package toolutils

import (
	"fmt"
	"io"
	"strings"
)

// StatusPrinter writes aligned key=value lines.
type StatusPrinter struct {
	File    io.Writer
	Padding int
}

// Print writes one line, the key right-aligned to the padding.
func (s StatusPrinter) Print(key string, value any) {
	fmt.Fprintf(s.File, "%s%s=%v\n", strings.Repeat(" ", max(s.Padding-len(key), 0)), key, value)
}

// PrintIf writes the line only if value is present.
func (s StatusPrinter) PrintIf(key string, value any, present bool) {
	if present {
		s.Print(key, value)
	}
}
