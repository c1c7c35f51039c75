// Package middleware provides composable wrappers around a RunStore.
// Productions shooting under embargo encrypt or redact the stored
// transcripts without the stores themselves knowing about it.
package middleware

import "github.com/offbook/offbook/pkg/ports"

// Middleware allows wrapping a RunStore to add behavior.
type Middleware func(ports.RunStore) ports.RunStore

// Chain wraps the store so the first middleware sits closest to it:
// Chain(store, a, b) wraps the store with a, then b around that, so on Save
// b sees the record first. A redaction listed after an encryption therefore
// masks the plaintext before the envelope is sealed.
func Chain(store ports.RunStore, middlewares ...Middleware) ports.RunStore {
	for _, mw := range middlewares {
		store = mw(store)
	}
	return store
}
