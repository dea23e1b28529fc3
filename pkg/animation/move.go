// Package animation provides the timing primitives behind element
// repositioning: an injectable clock, easing curves, and the frame-polled
// [Move] that carries an element from one point to another.
//
// Moves are not goroutines or timers. The host drives every live element once
// per frame; an element with a Move in flight polls [Move.Advance] during its
// update and reports itself unavailable for input until the move arrives.
package animation

import (
	"time"

	"github.com/go-slate/slate/pkg/graphics"
)

// DefaultSpeed is the travel speed, in pixels per second, used by moves that
// do not set their own. The duration of a move is the Euclidean distance
// between origin and destination divided by its speed.
const DefaultSpeed = 300.0

// MoveStatus reports where a move is in its lifecycle.
type MoveStatus int

const (
	// MoveRunning means the move is still in flight.
	MoveRunning MoveStatus = iota
	// MoveArrived means the move reached its destination and fired OnArrive.
	MoveArrived
	// MoveCancelled means the move was superseded before arriving.
	// OnArrive never fires for a cancelled move; OnDone fires with
	// cancelled=true.
	MoveCancelled
)

// Move is a time-bounded eased translation from Origin to Destination,
// polled once per frame via Advance.
//
// A zero-distance move completes on its first poll; there is no such thing
// as a move that never arrives.
//
// Completion hooks:
//
//   - OnArrive fires exactly once, on genuine arrival only. It is cleared
//     after firing so a stale reference can never be invoked again.
//   - OnDone fires exactly once in every outcome, arrival or cancellation,
//     after OnArrive. Release-critical work (unlocking dependable-action
//     locks) belongs here so that superseding a move can never leak a hold.
type Move struct {
	// Origin is the starting position.
	Origin graphics.Offset
	// Destination is the target position.
	Destination graphics.Offset
	// Curve transforms linear progress (default EaseInOut).
	Curve func(float64) float64
	// Reverses makes the move animate back to Origin after arriving;
	// OnArrive fires once, at the final arrival back at Origin.
	Reverses bool
	// OnArrive is the one-shot user arrival callback.
	OnArrive func()
	// OnDone is the one-shot completion hook; receives cancelled=true when
	// the move was superseded before arrival.
	OnDone func(cancelled bool)

	speed     float64
	start     time.Time
	duration  time.Duration
	returning bool
	status    MoveStatus
	at        graphics.Offset
}

// NewMove creates a move from origin to destination at DefaultSpeed,
// starting at the current clock time.
func NewMove(origin, destination graphics.Offset) *Move {
	return NewMoveWithSpeed(origin, destination, DefaultSpeed)
}

// NewMoveWithSpeed creates a move travelling at the given speed in pixels
// per second. Non-positive speeds fall back to DefaultSpeed.
func NewMoveWithSpeed(origin, destination graphics.Offset, speed float64) *Move {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	m := &Move{
		Origin:      origin,
		Destination: destination,
		Curve:       EaseInOut,
		speed:       speed,
		start:       Now(),
		at:          origin,
		status:      MoveRunning,
	}
	m.duration = travelTime(origin, destination, speed)
	return m
}

func travelTime(a, b graphics.Offset, speed float64) time.Duration {
	return time.Duration(a.Distance(b) / speed * float64(time.Second))
}

// Status returns the move's lifecycle status.
func (m *Move) Status() MoveStatus {
	return m.status
}

// Position returns the position computed by the most recent Advance.
func (m *Move) Position() graphics.Offset {
	return m.at
}

// Advance polls the move against the animation clock. It returns the
// position the element should occupy this frame and whether the move has
// finished. Once finished it keeps returning the final position.
func (m *Move) Advance() (graphics.Offset, bool) {
	if m.status != MoveRunning {
		return m.at, true
	}

	progress := 1.0
	if m.duration > 0 {
		progress = float64(Now().Sub(m.start)) / float64(m.duration)
		if progress > 1 {
			progress = 1
		}
	}

	eased := progress
	if m.Curve != nil {
		eased = m.Curve(progress)
	}
	m.at = graphics.Lerp(m.Origin, m.Destination, eased)

	if progress < 1 {
		return m.at, false
	}

	if m.Reverses && !m.returning {
		// Arrived at the far end; swap and travel back.
		m.returning = true
		m.Origin, m.Destination = m.Destination, m.Origin
		m.start = Now()
		return m.at, false
	}

	m.finish()
	return m.at, true
}

// Cancel abandons an in-flight move. The user arrival callback never fires;
// the completion hook fires with cancelled=true. Cancelling a finished move
// is a no-op.
func (m *Move) Cancel() {
	if m.status != MoveRunning {
		return
	}
	m.status = MoveCancelled
	m.OnArrive = nil
	m.complete(true)
}

func (m *Move) finish() {
	m.status = MoveArrived
	// Take-on-fire: clear the slot before invoking so a callback that
	// starts a new move on the same element cannot re-enter itself.
	if arrive := m.OnArrive; arrive != nil {
		m.OnArrive = nil
		arrive()
	}
	m.complete(false)
}

func (m *Move) complete(cancelled bool) {
	if done := m.OnDone; done != nil {
		m.OnDone = nil
		done(cancelled)
	}
}
