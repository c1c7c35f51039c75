package ports

import "time"

// Clock abstracts timer creation so playback logic can be driven by virtual
// time in tests. The engine never blocks on a clock; every wait is expressed
// as a deferred, cancellable callback.
type Clock interface {
	Now() time.Time

	// AfterFunc runs fn after d has elapsed. Callbacks may fire on arbitrary
	// goroutines; callers are responsible for their own serialization.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from firing and reports whether it did so
	// before the callback started. Stop is best-effort: a callback already
	// in flight must detect staleness on its own.
	Stop() bool
}
