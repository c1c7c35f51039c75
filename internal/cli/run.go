package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/offbook/offbook"
	"github.com/offbook/offbook/internal/adapters/scriptfile"
	"github.com/offbook/offbook/internal/presentation/tui"
	"github.com/offbook/offbook/pkg/domain"
)

// RunOptions contains all the configuration for the perform command.
type RunOptions struct {
	ScriptPath string
	Headless   bool
	Debug      bool
	Seed       uint64
	Store      string
	StorePath  string
	RedisURL   string
	RunID      string
}

// Execute handles the 'perform' command logic, dispatching to the terminal
// performance screen or the headless line-printer mode.
func Execute(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	script, err := scriptfile.New().Load(opts.ScriptPath)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}

	store, err := createStore(opts)
	if err != nil {
		return err
	}

	sessionOpts := []offbook.Option{offbook.WithLogger(logger)}
	if rng := createRand(opts.Seed); rng != nil {
		sessionOpts = append(sessionOpts, offbook.WithRand(rng))
	}
	session := offbook.New(sessionOpts...)

	runID := opts.RunID
	if runID == "" {
		runID = "run-" + time.Now().Format("20060102-150405")
	}
	recorder := newRunRecorder(store, runID, script.Title, logger)
	unsubscribe := recorder.attach(session.Subscribe)
	defer unsubscribe()

	if opts.Headless || !isInteractive() {
		sigCtx := NewSignalContext(context.Background())
		defer sigCtx.Cancel()
		return runHeadless(sigCtx, session, script, NewInterruptibleReader(os.Stdin, sigCtx.Done()))
	}

	tui.PrintBanner()
	// The screen starts the session itself, after it has subscribed, so
	// events emitted during Start are not lost.
	defer session.Cancel()
	return tui.Run(session, script)
}

// runHeadless performs the script on stdout, reading actor lines from stdin.
// Whatever is typed for an actor line is discarded; only the scripted text
// is revealed. Useful for dry runs and piping a scene into another process.
func runHeadless(ctx *SignalContext, session *offbook.Session, script domain.Script, input io.Reader) error {
	done := make(chan struct{})
	awaiting := make(chan domain.Line, 1)

	unsubscribe := session.Subscribe(func(ev domain.Event) {
		switch ev := ev.(type) {
		case domain.TypingStarted:
			printSystemMessage("%s is typing...", speakerName(script, ev.SpeakerID))
		case domain.LineDelivered:
			fmt.Printf("[%s] %s\n", speakerName(script, ev.Line.SpeakerID), ev.Line.Text)
		case domain.AwaitingActorInput:
			awaiting <- ev.Line
		case domain.SessionCompleted:
			close(done)
		}
	})
	defer unsubscribe()

	if err := session.Start(script); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.Cancel()

	reader := bufio.NewReader(input)
	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			printSystemMessage("Performance interrupted.")
			return nil
		case <-done:
			printSystemMessage("Scene complete.")
			return nil
		case line := <-awaiting:
			for session.Status() == domain.StatusAwaitingActor {
				fmt.Print("> ")
				text, err := reader.ReadString('\n')
				if err != nil {
					if ctx.Err() != nil {
						break // the ctx.Done branch reports it
					}
					// EOF with an actor line still pending means the scene
					// cannot finish; exit instead of waiting forever.
					return fmt.Errorf("input error: %w", err)
				}
				typed := strings.TrimRight(text, "\r\n")
				for range typed {
					session.OnKeySignal(domain.SignalPrintable)
				}
				session.OnKeySignal(domain.SignalSubmit)
				if session.Status() == domain.StatusAwaitingActor {
					printSystemMessage("Line not finished (%d characters). Keep typing.", runeCount(line.Text))
				}
			}
		}
	}
}

func runeCount(s string) int { return utf8.RuneCountInString(s) }

func speakerName(script domain.Script, id string) string {
	if p, ok := script.Participant(id); ok && p.Name != "" {
		return p.Name
	}
	return id
}

// InterruptibleReader wraps an io.Reader (like os.Stdin) and checks for a
// cancellation signal.
type InterruptibleReader struct {
	base   io.Reader
	cancel <-chan struct{}
}

func NewInterruptibleReader(base io.Reader, cancel <-chan struct{}) *InterruptibleReader {
	return &InterruptibleReader{
		base:   base,
		cancel: cancel,
	}
}

func (r *InterruptibleReader) Read(p []byte) (n int, err error) {
	// Check before blocking
	select {
	case <-r.cancel:
		return 0, errors.New("interrupted")
	default:
	}

	// Read (This blocks!)
	n, err = r.base.Read(p)

	// Check after returning
	select {
	case <-r.cancel:
		return 0, errors.New("interrupted")
	default:
	}
	return n, err
}
