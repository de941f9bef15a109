package session

// EventKind enumerates the normalized input events.
type EventKind int

const (
	EventInsert EventKind = iota
	EventBackspace
	EventLeft
	EventRight
	EventUp
	EventDown
	EventEnter
	EventEsc
	EventGenerate

	// View actions, meaningful in list and detail screens.
	EventToggleSecret
	EventCopyUsername
	EventCopySecret
	EventDelete
	EventEdit

	// EventResize carries the number of list lines that fit on screen.
	EventResize
)

var eventNames = [...]string{
	EventInsert:       "insert",
	EventBackspace:    "backspace",
	EventLeft:         "left",
	EventRight:        "right",
	EventUp:           "up",
	EventDown:         "down",
	EventEnter:        "enter",
	EventEsc:          "esc",
	EventGenerate:     "generate",
	EventToggleSecret: "toggle-secret",
	EventCopyUsername: "copy-username",
	EventCopySecret:   "copy-secret",
	EventDelete:       "delete",
	EventEdit:         "edit",
	EventResize:       "resize",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is one normalized key press (or a terminal resize).
type Event struct {
	Kind   EventKind
	Rune   rune // EventInsert
	Height int  // EventResize
}

// Key builds an event that carries no payload.
func Key(kind EventKind) Event {
	return Event{Kind: kind}
}

func Insert(r rune) Event {
	return Event{Kind: EventInsert, Rune: r}
}

func Resize(height int) Event {
	return Event{Kind: EventResize, Height: height}
}
