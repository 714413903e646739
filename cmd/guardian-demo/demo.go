package main

import (
	"fmt"
	"io"
	"strings"
)

type demo struct {
	w      io.Writer
	failed int
}

func (d *demo) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.w, format, args...)
}

func (d *demo) section(title string) {
	d.printf("%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func (d *demo) end() {
	d.printf("\n")
}

// unexpected reports whether a step that must succeed returned err.
func (d *demo) unexpected(err error) bool {
	if err == nil {
		return false
	}
	d.failed++
	d.printf("✗ Unexpected error: %v\n", err)
	return true
}

func (d *demo) done(format string, args ...any) {
	d.printf("✓ "+format+"\n", args...)
}

// rejects reports a step that must fail.
func (d *demo) rejects(err error, what string) {
	if err == nil {
		d.failed++
		d.printf("✗ Should have been rejected: %s\n", what)
		return
	}
	d.printf("✓ Correctly rejected %s: %v\n", what, err)
}
