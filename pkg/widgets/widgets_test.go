package widgets

import (
	"testing"

	"github.com/go-slate/slate/pkg/animation"
	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/platform"
	slatetest "github.com/go-slate/slate/pkg/testing"
)

// Shared test fixtures for the widgets package.

type recordingHandler struct {
	errs     []*errors.SlateError
	warnings []string
}

func (h *recordingHandler) HandleError(err *errors.SlateError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandleWarning(m string) { h.warnings = append(h.warnings, m) }

func withRecordingHandler(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	prev := errors.SetHandler(h)
	t.Cleanup(func() {
		errors.SetHandler(prev)
		errors.ResetOnce()
	})
	errors.ResetOnce()
	return h
}

func withFakeClock(t *testing.T) *slatetest.FakeClock {
	t.Helper()
	clk := slatetest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func withRecordingSurfaces(t *testing.T) *[]*slatetest.RecordingSurface {
	t.Helper()
	var surfaces []*slatetest.RecordingSurface
	prev := platform.SetSurfaceProvider(func(w, h int) platform.Surface {
		s := slatetest.NewRecordingSurface(w, h)
		surfaces = append(surfaces, s)
		return s
	})
	t.Cleanup(func() { platform.SetSurfaceProvider(prev) })
	return &surfaces
}

func coreOffset(x, y float64) graphics.Offset {
	return graphics.Offset{X: x, Y: y}
}

func enableAll(n core.Node) {
	n.Base().SetEnablingCriteria(
		func() bool { return true },
		func() bool { return true },
		func() bool { return true },
	)
}
