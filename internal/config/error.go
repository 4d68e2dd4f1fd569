package config

import (
	"fmt"
	"strings"
)

// Error reports every problem found in one config file.
type Error struct {
	Path    string
	Missing []string // Variables referenced with no value and no fallback
	Errors  []string // Field validation failures
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("config")
	if e.Path != "" {
		b.WriteString(" " + e.Path)
	}
	fmt.Fprintf(&b, ": %d problem(s)", len(e.Missing)+len(e.Errors))
	for _, name := range e.Missing {
		fmt.Fprintf(&b, "\n  - ${%s} is not set", name)
	}
	for _, msg := range e.Errors {
		b.WriteString("\n  - " + msg)
	}
	return b.String()
}
