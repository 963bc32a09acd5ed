package driver

// Status of one file inside a multi-file run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusLinting
	StatusClean
	StatusIssues
	StatusError
)

// Event is one progress update published during a run.
// File is empty for run-level events.
type Event struct {
	File   string
	Status Status
}

// ProgressSink receives progress events. Publish must not block for long:
// the lint workers call it inline.
type ProgressSink interface {
	Publish(Event)
}

// ChannelSink forwards events into a channel, dropping them when the
// receiver falls behind rather than stalling the run.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Publish(ev Event) {
	select {
	case s.Ch <- ev:
	default:
	}
}

func publish(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.Publish(ev)
	}
}

func statusFor(res FileResult) Status {
	switch {
	case res.Bag.HasErrors():
		return StatusError
	case res.Bag.HasWarnings():
		return StatusIssues
	default:
		return StatusClean
	}
}
