package domain

// SessionStatus defines the current mode of the playback mechanics.
type SessionStatus string

const (
	// StatusIdle means no timeline is loaded.
	StatusIdle SessionStatus = "idle"
	// StatusDelivering means the scheduler is walking an autonomous line
	// through its pre-delay and typing windows.
	StatusDelivering SessionStatus = "delivering"
	// StatusAwaitingActor means playback is suspended on a performer line;
	// progress is driven entirely by key signals.
	StatusAwaitingActor SessionStatus = "awaiting_actor"
	// StatusComplete means the cursor passed the last line.
	StatusComplete SessionStatus = "complete"
)

// Running reports whether the session is mid-playback.
func (s SessionStatus) Running() bool {
	return s == StatusDelivering || s == StatusAwaitingActor
}
