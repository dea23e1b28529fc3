package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that writes to a stream (stderr by default).
type LogHandler struct {
	// Out is the destination stream. Nil means os.Stderr.
	Out io.Writer
	// Verbose enables timestamps on error lines.
	Verbose bool
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a SlateError.
func (h *LogHandler) HandleError(err *SlateError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(h.out(), "[slate error] %s %s [%s]: %v\n",
			err.Timestamp.Format("15:04:05.000"), err.Op, err.Kind, err.Err)
		return
	}
	fmt.Fprintf(h.out(), "[slate error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
}

// HandleWarning logs a diagnostic message.
func (h *LogHandler) HandleWarning(message string) {
	fmt.Fprintf(h.out(), "[slate] %s\n", message)
}
