package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Handler renders an error (and its suggestions/context) to a writer and
// reports the process exit code to use, mirroring how cmd/ordinatorctl
// turns any returned error into terminal output and an exit status.
type Handler struct {
	Writer  io.Writer
	Verbose bool
	NoColor bool
}

// DefaultHandler writes to stderr with color enabled and verbose context
// display off.
func DefaultHandler() *Handler {
	return &Handler{Writer: os.Stderr}
}

// Handle displays err and returns the process exit code.
func (h *Handler) Handle(err error) int {
	if err == nil {
		return 0
	}

	oe, ok := err.(*OrdinatorError)
	if !ok {
		h.displayGeneric(err)
		return 1
	}

	h.displayOrdinatorError(oe)
	if oe.HasSuggestions() {
		h.displaySuggestions(oe.Suggestions)
	}
	if h.Verbose && len(oe.Context) > 0 {
		h.displayContext(oe.Context)
	}

	if oe.Code > 0 {
		return oe.Code
	}
	return 1
}

func (h *Handler) displayOrdinatorError(e *OrdinatorError) {
	label := string(e.Kind)
	if h.NoColor {
		fmt.Fprintf(h.Writer, "%s: %s\n", label, e.Message)
	} else {
		fmt.Fprintf(h.Writer, "%s: %s\n", color.RedString(label), e.Message)
	}

	if h.Verbose && e.Cause != nil {
		if h.NoColor {
			fmt.Fprintf(h.Writer, "  caused by: %v\n", e.Cause)
		} else {
			fmt.Fprintf(h.Writer, "  %s: %v\n", color.HiBlackString("caused by"), e.Cause)
		}
	}
}

func (h *Handler) displayGeneric(err error) {
	if h.NoColor {
		fmt.Fprintf(h.Writer, "error: %v\n", err)
	} else {
		fmt.Fprintf(h.Writer, "%s: %v\n", color.RedString("error"), err)
	}
}

func (h *Handler) displaySuggestions(suggestions []string) {
	fmt.Fprintln(h.Writer)
	if h.NoColor {
		fmt.Fprintln(h.Writer, "Suggestions:")
	} else {
		fmt.Fprintln(h.Writer, color.YellowString("Suggestions:"))
	}
	for _, s := range suggestions {
		fmt.Fprintf(h.Writer, "  - %s\n", s)
	}
}

func (h *Handler) displayContext(context map[string]string) {
	fmt.Fprintln(h.Writer)
	if h.NoColor {
		fmt.Fprintln(h.Writer, "Context:")
	} else {
		fmt.Fprintln(h.Writer, color.HiBlackString("Context:"))
	}
	for k, v := range context {
		fmt.Fprintf(h.Writer, "  %s: %s\n", k, v)
	}
}

// Print handles err with the default handler and returns the exit code.
func Print(err error) int {
	return DefaultHandler().Handle(err)
}

// Exit handles err with the default handler and exits the process.
func Exit(err error) {
	os.Exit(Print(err))
}
