package platform

import "github.com/go-slate/slate/pkg/graphics"

// PlayDirection controls how an image table steps through its frames.
type PlayDirection int

const (
	// PlayForward steps frames 0..n-1 once, then holds the last frame.
	PlayForward PlayDirection = iota
	// PlayBackward steps frames n-1..0 once, then holds the first frame.
	PlayBackward
	// PlayLoop steps forward and wraps around indefinitely.
	PlayLoop
)

// ImageTable is a frame sequence used for animated foreground and background
// layers. Bookmarks let a caller return to a remembered frame, which the
// original hardware toolkits use for ping-pong press animations.
//
// Advance is polled once per element update while the owning layer is
// animating; it reports false when playback has run out of frames in the
// current direction.
type ImageTable interface {
	// FrameCount returns the number of frames in the table.
	FrameCount() int
	// Frame returns the drawable for a frame index, clamped to valid range.
	Frame(i int) Drawable
	// CurrentFrame returns the index playback is currently on.
	CurrentFrame() int
	// Play starts playback in the given direction from the current frame.
	Play(direction PlayDirection)
	// Advance steps playback by one frame; false means playback finished.
	Advance() bool
	// SetBookmark remembers the current frame under a name.
	SetBookmark(name string)
	// SeekBookmark jumps to a remembered frame; false if the name is unknown.
	SeekBookmark(name string) bool
}

// SliceTable is a simple in-memory ImageTable backed by a slice of
// drawables. Hosts with real sprite sheets provide their own.
type SliceTable struct {
	frames    []Drawable
	current   int
	direction PlayDirection
	playing   bool
	bookmarks map[string]int
}

// NewSliceTable builds an image table from pre-baked frames.
func NewSliceTable(frames ...Drawable) *SliceTable {
	return &SliceTable{frames: frames, bookmarks: map[string]int{}}
}

// FrameCount returns the number of frames in the table.
func (t *SliceTable) FrameCount() int { return len(t.frames) }

// Frame returns the drawable for a frame index, clamped to valid range.
func (t *SliceTable) Frame(i int) Drawable {
	if len(t.frames) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t.frames) {
		i = len(t.frames) - 1
	}
	return t.frames[i]
}

// CurrentFrame returns the index playback is currently on.
func (t *SliceTable) CurrentFrame() int { return t.current }

// Play starts playback in the given direction from the current frame.
func (t *SliceTable) Play(direction PlayDirection) {
	t.direction = direction
	t.playing = len(t.frames) > 1
}

// Advance steps playback by one frame; false means playback finished.
func (t *SliceTable) Advance() bool {
	if !t.playing {
		return false
	}
	switch t.direction {
	case PlayForward:
		if t.current >= len(t.frames)-1 {
			t.playing = false
			return false
		}
		t.current++
	case PlayBackward:
		if t.current <= 0 {
			t.playing = false
			return false
		}
		t.current--
	case PlayLoop:
		t.current = (t.current + 1) % len(t.frames)
	}
	return true
}

// SetBookmark remembers the current frame under a name.
func (t *SliceTable) SetBookmark(name string) {
	t.bookmarks[name] = t.current
}

// SeekBookmark jumps to a remembered frame; false if the name is unknown.
func (t *SliceTable) SeekBookmark(name string) bool {
	i, ok := t.bookmarks[name]
	if !ok {
		return false
	}
	t.current = i
	return true
}

// TableDrawable adapts an ImageTable's current frame to the Drawable
// interface so it can be installed as an element layer.
type TableDrawable struct {
	Table ImageTable
}

// Draw renders the table's current frame.
func (d TableDrawable) Draw(dst Surface, at graphics.Offset) {
	if d.Table == nil {
		return
	}
	if f := d.Table.Frame(d.Table.CurrentFrame()); f != nil {
		f.Draw(dst, at)
	}
}

// DrawSize returns the current frame's dimensions.
func (d TableDrawable) DrawSize() graphics.Size {
	if d.Table == nil {
		return graphics.Size{}
	}
	if f := d.Table.Frame(d.Table.CurrentFrame()); f != nil {
		return f.DrawSize()
	}
	return graphics.Size{}
}
