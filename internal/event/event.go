// Package event defines the notifications emitted by the list store and the
// practice engine, consumed by the TUI status line, the CLI and the practice
// journal. Delivery is fire-and-forget: emitters never depend on a handler
// being present.
package event

// Kind identifies the type of event.
type Kind int

const (
	// KindSuccess confirms a mutation (list created, list deleted).
	KindSuccess Kind = iota
	// KindError reports a rejected operation (validation failure, missing list).
	KindError
	// KindInfo is a neutral progress message (session started, paused, stopped).
	KindInfo
	// KindWord announces the word now shown by a practice session.
	KindWord
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindInfo:
		return "info"
	case KindWord:
		return "word"
	default:
		return "unknown"
	}
}

// Event is a single short human-readable notification.
type Event struct {
	Kind Kind
	Text string
}

// Handler is a callback that receives events.
type Handler func(Event)

// Emit delivers e to h if h is set.
func (h Handler) Emit(e Event) {
	if h != nil {
		h(e)
	}
}

// Fanout returns a handler that forwards every event to each non-nil handler.
func Fanout(handlers ...Handler) Handler {
	return func(e Event) {
		for _, h := range handlers {
			h.Emit(e)
		}
	}
}

// Success creates a KindSuccess event.
func Success(text string) Event { return Event{Kind: KindSuccess, Text: text} }

// Error creates a KindError event.
func Error(text string) Event { return Event{Kind: KindError, Text: text} }

// Info creates a KindInfo event.
func Info(text string) Event { return Event{Kind: KindInfo, Text: text} }

// Word creates a KindWord event.
func Word(text string) Event { return Event{Kind: KindWord, Text: text} }
