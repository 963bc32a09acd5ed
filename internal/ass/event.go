package ass

// EventKind is a closed set of event line types from the [Events] section.
// Adding a kind is a compile-time-visible change everywhere it is matched.
type EventKind uint8

const (
	// EventDialogue is a rendered, timed subtitle line.
	EventDialogue EventKind = iota
	// EventComment is a non-rendered annotation line.
	EventComment
	// EventOther covers the remaining event types (Picture, Movie, Sound,
	// Command). The linter carries them through untouched.
	EventOther
)

func (k EventKind) String() string {
	switch k {
	case EventDialogue:
		return "Dialogue"
	case EventComment:
		return "Comment"
	case EventOther:
		return "Other"
	}
	return "Unknown"
}

// Event is one parsed line from the [Events] section.
//
// Text may embed {...} override tags and \N/\n break escapes. Effect is a
// free-form annotation field; the linter reuses it as the suppression
// directive channel.
type Event struct {
	Kind   EventKind
	Start  Time
	End    Time
	Style  string
	Name   string
	Effect string
	Text   string
}

// Document is the parsed subtitle file, reduced to what the linter needs:
// the ordered event sequence.
type Document struct {
	Events []Event
}

// Dialogues counts the rendered subtitle lines.
func (d *Document) Dialogues() int {
	n := 0
	for i := range d.Events {
		if d.Events[i].Kind == EventDialogue {
			n++
		}
	}
	return n
}
