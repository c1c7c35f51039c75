package domain

import "time"

// RunRecord is the persisted trace of one performance: which lines were
// revealed and when the session started and ended. Records are written only
// after a session completes or is reset, never during playback.
type RunRecord struct {
	ScriptTitle string    `json:"script_title"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at"`
	Completed   bool      `json:"completed"`
	Delivered   []Line    `json:"delivered"`
}
