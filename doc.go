/*
Package offbook is a scripted playback and forced-input engine for
performing pre-written text conversations on camera.

A script assigns every line to a participant. Lines owned by autonomous
participants are delivered by the engine on a simulated human cadence: a
random "noticing the chat" delay, a typing-indicator window scaled to the
line's length, then delivery. The one participant flagged as the actor is
the performing human: their lines are revealed through forced typing, where
any printable key press reveals the next scripted character regardless of
which key was struck, backspace hides one, and enter submits only a fully
revealed line. The audience-facing screen always shows the exact scripted
text, paced by real keystrokes.

# Architecture

The engine owns all timing and cursor state and publishes a stream of
playback events; hosts (the bundled terminal UI, the HTTP preview server,
or an embedding application) subscribe and render, feeding nothing back
except classified key signals. Scheduling goes through a clock port, so the
whole state machine can be tested against virtual time.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/offbook/offbook"
		"github.com/offbook/offbook/pkg/domain"
	)

	func main() {
		sess := offbook.New()
		done := make(chan struct{})

		sess.Subscribe(func(ev domain.Event) {
			switch e := ev.(type) {
			case domain.LineDelivered:
				fmt.Printf("%s: %s\n", e.Line.SpeakerID, e.Line.Text)
			case domain.SessionCompleted:
				close(done)
			}
		})

		err := sess.Start(domain.Script{
			Participants: []domain.Participant{{ID: "ray", Name: "Ray"}},
			Lines: []domain.Line{
				{ID: "l1", SpeakerID: "ray", Text: "hey. you up?"},
			},
		})
		if err != nil {
			log.Fatal(err)
		}
		<-done
	}

Actor lines suspend playback until the host forwards key signals:

	sess.OnKeySignal(domain.SignalPrintable) // reveals the next character
	sess.OnKeySignal(domain.SignalSubmit)    // delivers a fully revealed line
*/
package offbook
