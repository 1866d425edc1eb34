// Package reporter collects the errors raised while checking a set of
// source files and renders them for the terminal.
package reporter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Errors aggregates multiple errors.
type Errors struct {
	Errors []error
}

// Error implements the error interface for Errors.
func (e *Errors) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString("Multiple errors:")
	for i, err := range e.Errors {
		sb.WriteString("\n  [")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString("] ")
		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Unwrap returns the collected errors so errors.Is and errors.As see each of them.
func (e *Errors) Unwrap() []error {
	return e.Errors
}

// AsErrors is a helper to extract *Errors from err using errors.As.
func AsErrors(err error) (*Errors, bool) {
	var errs *Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}

// Reporter is an ordered error sink.
type Reporter struct {
	errors []error
	color  bool
}

// New creates a Reporter. With useColor set, Show highlights its output.
func New(useColor bool) *Reporter {
	return &Reporter{color: useColor}
}

// Report appends err. nil is ignored and an *Errors aggregate is flattened.
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}

	if errs, ok := err.(*Errors); ok {
		for _, e := range errs.Errors {
			r.Report(e)
		}
		return
	}

	r.errors = append(r.errors, err)
}

// IsEmpty reports whether no error has been reported.
func (r *Reporter) IsEmpty() bool {
	return len(r.errors) == 0
}

// Errors returns the reported errors in order.
func (r *Reporter) Errors() []error {
	return append([]error(nil), r.errors...)
}

// Err returns nil when nothing was reported, otherwise an *Errors holding every error.
func (r *Reporter) Err() error {
	if r.IsEmpty() {
		return nil
	}
	return &Errors{Errors: r.Errors()}
}

// Show writes the first reported error to w. It writes nothing when the reporter is empty.
func (r *Reporter) Show(w io.Writer) {
	if r.IsEmpty() {
		return
	}

	label := color.New(color.FgRed, color.Bold)
	if !r.color {
		label.DisableColor()
	} else {
		label.EnableColor()
	}

	fmt.Fprintf(w, "%s %s\n", label.Sprint("Error:"), r.errors[0])

	if rest := len(r.errors) - 1; rest > 0 {
		fmt.Fprintf(w, "  (%d more)\n", rest)
	}
}
