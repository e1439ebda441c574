package game

import (
	"context"
	"testing"
	"time"
)

const (
	testQuestionTime = 300 * time.Millisecond
	testRevealDelay  = 50 * time.Millisecond
)

// newTestHub starts a hub with compressed pacing and stops it at cleanup.
func newTestHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub(nil, testQuestionTime, testRevealDelay)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

// connect registers a named player and consumes the hello greeting.
func connect(t *testing.T, hub *Hub, id, name string) *Player {
	t.Helper()

	p := NewPlayer(id)
	hub.RegisterPlayer(p)
	mustEvent(t, p.Events, EventHello)
	p.Commands <- &Command{Kind: CommandSetName, Name: name}
	return p
}

// mustEvent waits for an event of the given kind, discarding others.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// mustNoEvent drains the channel for the given window and fails if an event
// of the given kind shows up.
func mustNoEvent(t *testing.T, ch <-chan *Event, kind EventKind, window time.Duration) {
	t.Helper()

	deadline := time.Now().Add(window)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev != nil && ev.Kind == kind {
				t.Fatalf("unexpected event kind %v received", kind)
			}
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
}
