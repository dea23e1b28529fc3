package core

// Lock is a named advisory hold counter used to serialize dependent UI
// actions. It is not an OS mutex: the frame loop is single-threaded, and a
// lock merely records that some action is still in flight. The count, not a
// boolean, is the source of truth so overlapping holds from independent
// callers compose correctly.
type Lock struct {
	name  string
	holds int
}

// NewLock creates a lock with a diagnostic name and no holds.
func NewLock(name string) *Lock {
	return &Lock{name: name}
}

// Name returns the lock's diagnostic name.
func (l *Lock) Name() string { return l.name }

// Lock adds a hold.
func (l *Lock) Lock() {
	l.holds++
}

// Unlock removes a hold. Unlocking an already-free lock is a no-op, which
// tolerates mismatched call counts from independent callers; it also means a
// double-unlock bug can silently mask another caller's pending hold.
func (l *Lock) Unlock() {
	if l.holds > 0 {
		l.holds--
	}
}

// IsUnlocked reports whether no holds remain.
func (l *Lock) IsUnlocked() bool {
	return l.holds == 0
}

// Holds returns the current hold count.
func (l *Lock) Holds() int {
	return l.holds
}
