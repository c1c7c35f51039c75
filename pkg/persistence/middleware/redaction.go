package middleware

import (
	"context"
	"regexp"

	"github.com/offbook/offbook/pkg/domain"
	"github.com/offbook/offbook/pkg/ports"
)

type redactionMiddleware struct {
	next     ports.RunStore
	patterns []*regexp.Regexp
}

// NewRedactionMiddleware creates a middleware that masks the text of lines
// whose speaker ID matches any of the patterns. The line IDs and speakers
// stay visible, so the run is still auditable line by line.
func NewRedactionMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.RunStore) ports.RunStore {
		return &redactionMiddleware{next: next, patterns: patterns}
	}
}

func (m *redactionMiddleware) Save(ctx context.Context, runID string, record *domain.RunRecord) error {
	// Clone to avoid side effects on the in-memory record used by the host.
	cloned := *record
	cloned.Delivered = make([]domain.Line, len(record.Delivered))
	copy(cloned.Delivered, record.Delivered)

	for i, line := range cloned.Delivered {
		for _, p := range m.patterns {
			if p.MatchString(line.SpeakerID) {
				cloned.Delivered[i].Text = "***"
				break
			}
		}
	}

	return m.next.Save(ctx, runID, &cloned)
}

func (m *redactionMiddleware) Load(ctx context.Context, runID string) (*domain.RunRecord, error) {
	return m.next.Load(ctx, runID)
}

func (m *redactionMiddleware) Delete(ctx context.Context, runID string) error {
	return m.next.Delete(ctx, runID)
}

func (m *redactionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
