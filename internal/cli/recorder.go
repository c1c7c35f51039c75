package cli

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/offbook/offbook/pkg/domain"
	"github.com/offbook/offbook/pkg/ports"
)

// runRecorder folds the playback event stream into a RunRecord and persists
// it when the session completes or is reset. Nothing is written mid-run.
type runRecorder struct {
	store  ports.RunStore
	runID  string
	title  string
	logger *slog.Logger

	startedAt time.Time
	delivered []domain.Line
	takes     int
}

func newRunRecorder(store ports.RunStore, runID, title string, logger *slog.Logger) *runRecorder {
	return &runRecorder{
		store:     store,
		runID:     runID,
		title:     title,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// attach subscribes the recorder to the session and returns the unsubscribe
// function.
func (r *runRecorder) attach(subscribe func(fn func(domain.Event)) func()) func() {
	return subscribe(r.onEvent)
}

func (r *runRecorder) onEvent(ev domain.Event) {
	switch ev := ev.(type) {
	case domain.LineDelivered:
		r.delivered = append(r.delivered, ev.Line)
	case domain.SessionCompleted:
		r.flush(ev.OccurredAt(), true)
		r.startedAt = ev.OccurredAt()
		r.delivered = nil
	case domain.SessionReset:
		r.flush(ev.OccurredAt(), false)
		r.startedAt = ev.OccurredAt()
		r.delivered = nil
	}
}

// flush writes one take. An abandoned take with no delivered lines is not
// worth a record.
func (r *runRecorder) flush(endedAt time.Time, completed bool) {
	if !completed && len(r.delivered) == 0 {
		return
	}

	record := &domain.RunRecord{
		ScriptTitle: r.title,
		StartedAt:   r.startedAt,
		EndedAt:     endedAt,
		Completed:   completed,
		Delivered:   append([]domain.Line(nil), r.delivered...),
	}

	id := r.takeID()
	if err := r.store.Save(context.Background(), id, record); err != nil {
		r.logger.Warn("failed to persist run record", "run_id", id, "err", err)
		return
	}
	r.logger.Info("run record saved", "run_id", id, "completed", completed, "lines", len(record.Delivered))
}

// takeID suffixes retakes so a restart never overwrites the previous take.
func (r *runRecorder) takeID() string {
	r.takes++
	if r.takes == 1 {
		return r.runID
	}
	return r.runID + "-take-" + strconv.Itoa(r.takes)
}
