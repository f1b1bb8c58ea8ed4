package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including timestamps.
	Verbose bool
}

// HandleError logs a StyleError to stderr.
func (h *LogHandler) HandleError(err *StyleError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[stylekit error] %s %s [%s]: %v\n",
			err.Timestamp.Format("15:04:05.000"), err.Op, err.Kind, err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[stylekit error] %s: %v\n", err.Op, err.Err)
	}
}
