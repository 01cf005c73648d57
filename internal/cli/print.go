package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"putgen/internal/common"
	"putgen/internal/diagnostic"
)

// printDiagnostics writes all diagnostics to stderr, errors first.
func printDiagnostics(diags *diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.New(color.FgRed).Sprint("error:"), d)
	}

	for _, d := range diags.Warnings {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.New(color.FgYellow).Sprint("warning:"), d)
	}

	for _, d := range diags.Infos {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.New(color.FgCyan).Sprint("info:"), d)
	}
}

// diagError summarizes error diagnostics as a single error for cobra.
func diagError(diags *diagnostic.Diagnostics) error {
	first, ok := common.First(diags.Errors)
	if !ok {
		return nil
	}

	if len(diags.Errors) == 1 {
		return fmt.Errorf("%s", first)
	}

	return fmt.Errorf("%s (and %d more errors)", first, len(diags.Errors)-1)
}
