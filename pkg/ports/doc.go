// Package ports defines the driven-side interfaces of the offbook engine:
// the clock the scheduler waits on, the randomness source behind natural
// cadence, run-record persistence, and script loading. Adapters implement
// these; the engine never imports an adapter.
package ports
