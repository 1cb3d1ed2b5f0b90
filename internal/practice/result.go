package practice

// TickKind describes what a single tick did to the session.
type TickKind int

const (
	// TickStale means there was no session, or the tick belonged to an
	// earlier timer stream. The caller must not reschedule it.
	TickStale TickKind = iota
	// TickPaused means the session exists but is paused. Time did not move.
	TickPaused
	// TickCountdown means TimeLeft was decremented.
	TickCountdown
	// TickAdvanced means the session moved on to the next word.
	TickAdvanced
	// TickEnded means the list vanished or shrank under the session and the
	// engine returned to Idle.
	TickEnded
)

func (k TickKind) String() string {
	switch k {
	case TickStale:
		return "stale"
	case TickPaused:
		return "paused"
	case TickCountdown:
		return "countdown"
	case TickAdvanced:
		return "advanced"
	case TickEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// TickResult is returned by Engine.Tick.
type TickResult struct {
	Kind TickKind
	// Session is the state after the tick. Zero for TickStale and TickEnded.
	Session Session
	// Word is the word now shown. Set for TickAdvanced only.
	Word string
}

// Live reports whether the timer stream that produced the tick should keep
// running.
func (r TickResult) Live() bool {
	return r.Kind != TickStale && r.Kind != TickEnded
}
