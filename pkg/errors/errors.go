// Package errors provides structured error reporting and the non-fatal
// diagnostic sink used throughout the slate toolkit.
//
// The core never halts the frame loop: authoring mistakes (an unconfigured
// switch predicate, a nil child, a malformed drawable) are reported here and
// neutralized to a safe default by the caller. A stalled frame loop on a
// handheld device is worse than a misconfigured widget.
package errors

import (
	"fmt"
	"sync"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindAuthoring indicates a caller-side wiring mistake: missing
	// predicates, invalid children, malformed locks or drawables.
	KindAuthoring
	// KindLayout indicates content exceeding a container's bounds.
	KindLayout
	// KindConfig indicates a configuration load or parse failure.
	KindConfig
	// KindRender indicates a rendering surface error.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthoring:
		return "authoring"
	case KindLayout:
		return "layout"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// SlateError represents a structured error in the slate toolkit.
type SlateError struct {
	// Op is the operation that failed (e.g., "core.Element.AddChildren").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SlateError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SlateError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors and warnings reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called for every reported error.
	HandleError(err *SlateError)
	// HandleWarning is called for non-fatal diagnostics.
	HandleWarning(message string)
}

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}

	onceMu   sync.Mutex
	onceSeen = map[string]struct{}{}
)

// SetHandler replaces the global error handler. Passing nil restores the
// default stderr LogHandler. Returns the previous handler so callers can
// restore it during cleanup.
func SetHandler(h ErrorHandler) ErrorHandler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	if h == nil {
		h = &LogHandler{}
	}
	handler = h
	return prev
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report sends a structured error to the global handler.
func Report(op string, kind ErrorKind, err error) {
	currentHandler().HandleError(&SlateError{
		Op:        op,
		Kind:      kind,
		Err:       err,
		Timestamp: time.Now(),
	})
}

// Reportf is Report with printf-style message construction.
func Reportf(op string, kind ErrorKind, format string, args ...any) {
	Report(op, kind, fmt.Errorf(format, args...))
}

// Warnf sends a non-fatal diagnostic to the global handler.
func Warnf(format string, args ...any) {
	currentHandler().HandleWarning(fmt.Sprintf(format, args...))
}

// WarnOnce sends a diagnostic at most once per key for the lifetime of the
// process. Used for conditions that would otherwise repeat every frame, such
// as an unconfigured switch predicate.
func WarnOnce(key, format string, args ...any) {
	onceMu.Lock()
	_, seen := onceSeen[key]
	if !seen {
		onceSeen[key] = struct{}{}
	}
	onceMu.Unlock()
	if seen {
		return
	}
	Warnf(format, args...)
}

// ResetOnce clears the WarnOnce ledger. Intended for tests.
func ResetOnce() {
	onceMu.Lock()
	onceSeen = map[string]struct{}{}
	onceMu.Unlock()
}
