package domain

// KeySignal is the engine-facing classification of a raw key press. Only the
// category matters: during forced typing the identity of a printable key is
// deliberately discarded, so the core never depends on any keyboard-event
// shape. Hosts classify their native events and forward the category.
type KeySignal int

const (
	// SignalIgnored covers every key the engine does not react to
	// (modifiers, navigation, function keys).
	SignalIgnored KeySignal = iota
	// SignalPrintable is any single non-control key. It reveals the next
	// character of the pending line, whatever key was actually struck.
	SignalPrintable
	// SignalErase is backspace or delete.
	SignalErase
	// SignalSubmit is enter/return.
	SignalSubmit
)

// String returns the wire/diagnostic name of the signal category.
func (s KeySignal) String() string {
	switch s {
	case SignalPrintable:
		return "printable"
	case SignalErase:
		return "erase"
	case SignalSubmit:
		return "submit"
	default:
		return "ignored"
	}
}
