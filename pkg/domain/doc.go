// Package domain holds the core value types of the offbook engine: scripts,
// participants, key signals, playback events, and the errors shared between
// the engine and its adapters.
//
// Everything here is plain data. Behavior lives in the internal engine
// packages; adapters and hosts depend only on these types plus pkg/ports.
package domain
