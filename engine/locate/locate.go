// Package locate resolves the first existing file from an ordered list of
// candidate paths.
package locate

import (
	"fmt"
	"os"
	"strings"
)

// NotFoundError lists every path that was checked, in order.
type NotFoundError struct {
	What    string
	Checked []string
}

func (e *NotFoundError) Error() string {
	var b strings.Builder
	what := e.What
	if what == "" {
		what = "file"
	}
	fmt.Fprintf(&b, "could not find %s\nExpected one of:", what)
	for _, p := range e.Checked {
		b.WriteString("\n  - ")
		b.WriteString(p)
	}
	return b.String()
}

// First returns the first candidate that exists as a regular file. When none
// does, the error is a *NotFoundError naming what was looked for.
func First(what string, candidates ...string) (string, error) {
	for _, c := range candidates {
		info, err := os.Stat(c)
		if err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", &NotFoundError{What: what, Checked: append([]string(nil), candidates...)}
}
