// Package clock provides the wall-clock implementation of ports.Clock.
package clock

import (
	"time"

	"github.com/offbook/offbook/pkg/ports"
)

type systemClock struct{}

// System returns a Clock backed by the process wall clock and time.AfterFunc.
func System() ports.Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, fn func()) ports.Timer {
	return systemTimer{t: time.AfterFunc(d, fn)}
}

type systemTimer struct{ t *time.Timer }

func (s systemTimer) Stop() bool { return s.t.Stop() }
