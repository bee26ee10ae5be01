package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

func printError(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, color.New(color.FgRed).Sprintf("✗ "+format, args...))
}

func printSuccess(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, color.New(color.FgGreen).Sprintf("✔ "+format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, color.New(color.FgYellow).Sprintf("⚠ "+format, args...))
}
