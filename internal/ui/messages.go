package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintError writes a fatal error message to w
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)
}

// PrintUsage writes a usage fault and the usage line to w
func PrintUsage(w io.Writer, program string, err error) {
	if err != nil {
		fmt.Fprintln(w, color.YellowString("%v", err))
	}
	fmt.Fprintf(w, "usage: %s [flags] <template> <junit xml> [<junit xml> ...]\n", program)
	fmt.Fprintf(w, "Run '%s --help' for the list of flags.\n", program)
}
