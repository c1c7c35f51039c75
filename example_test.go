package offbook_test

import (
	"fmt"
	"log"

	"github.com/offbook/offbook"
	"github.com/offbook/offbook/pkg/domain"
)

// Example demonstrates forced typing: the performer's keystrokes reveal the
// scripted text one character per printable key, whatever keys were struck.
func Example() {
	sess := offbook.New()

	sess.Subscribe(func(ev domain.Event) {
		switch e := ev.(type) {
		case domain.AwaitingActorInput:
			fmt.Printf("awaiting performer for %q\n", e.Line.Text)
		case domain.LineDelivered:
			fmt.Printf("delivered: %s\n", e.Line.Text)
		case domain.SessionCompleted:
			fmt.Println("scene complete")
		}
	})

	err := sess.Start(domain.Script{
		Title: "Scene 3",
		Participants: []domain.Participant{
			{ID: "mia", Name: "Mia", Actor: true},
		},
		Lines: []domain.Line{
			{ID: "l1", SpeakerID: "mia", Text: "ok"},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	// The performer hammers two arbitrary printable keys, then enter.
	sess.OnKeySignal(domain.SignalPrintable)
	sess.OnKeySignal(domain.SignalPrintable)
	sess.OnKeySignal(domain.SignalSubmit)

	// Output:
	// awaiting performer for "ok"
	// delivered: ok
	// scene complete
}
