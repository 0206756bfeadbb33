package session

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Razil2005/wordGame/internal/game"
)

// helper: receive one event with a timeout so tests never hang
func recvEvent(t *testing.T, ch <-chan Event, within time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(within):
		t.Fatalf("timed out waiting for event")
		return Event{} // unreachable
	}
}

func recvNoEvent(t *testing.T, ch <-chan Event, within time.Duration) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("expected no event within %v, but got: %+v", within, ev)
	case <-time.After(within):
		// good: nothing arrived
	}
}

func recvView(t *testing.T, ch <-chan View, within time.Duration) View {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(within):
		t.Fatalf("timed out waiting for view")
		return View{} // unreachable
	}
}

func newTestSession(t *testing.T, mode game.Mode) *Session {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	room := game.NewRoom("AB12CD", mode, "c1", 0)
	return New(ctx, room, zap.NewNop())
}

func TestSession_CreatorGetsRoomCreatedAndOthersGetPlayerJoined(t *testing.T) {
	s := newTestSession(t, game.ModeRounds)

	hostOut := make(chan Event, 4)
	s.Inbox() <- Join{ConnID: "c1", Name: "Alice", Outbox: hostOut, Created: true}

	first := recvEvent(t, hostOut, 100*time.Millisecond)
	if first.Type != EventRoomCreated {
		t.Fatalf("want %q, got %q", EventRoomCreated, first.Type)
	}
	if first.State == nil || len(first.State.Players) != 1 || !first.State.Players[0].IsHost {
		t.Fatalf("creator snapshot wrong: %+v", first.State)
	}

	guestOut := make(chan Event, 4)
	s.Inbox() <- Join{ConnID: "c2", Name: "Bob", Outbox: guestOut}

	joined := recvEvent(t, guestOut, 100*time.Millisecond)
	if joined.Type != EventRoomJoined {
		t.Fatalf("want %q, got %q", EventRoomJoined, joined.Type)
	}
	if len(joined.State.Players) != 2 || joined.State.Players[1].IsHost {
		t.Fatalf("joiner snapshot wrong: %+v", joined.State)
	}

	notice := recvEvent(t, hostOut, 100*time.Millisecond)
	if notice.Type != EventPlayerJoined || notice.PlayerName != "Bob" {
		t.Fatalf("want playerJoined for Bob, got %+v", notice)
	}
}

func TestSession_CommandBroadcastsAndVersionIncrements(t *testing.T) {
	s := newTestSession(t, game.ModeRounds)

	hostOut := make(chan Event, 8)
	guestOut := make(chan Event, 8)
	s.Inbox() <- Join{ConnID: "c1", Name: "Alice", Outbox: hostOut, Created: true}
	s.Inbox() <- Join{ConnID: "c2", Name: "Bob", Outbox: guestOut}

	first := recvEvent(t, hostOut, 100*time.Millisecond)
	_ = recvEvent(t, hostOut, 100*time.Millisecond) // playerJoined
	_ = recvEvent(t, guestOut, 100*time.Millisecond)

	s.Inbox() <- FromClient{Cmd: game.Command{Type: game.CmdStartGame, ConnID: "c1"}}

	started := recvEvent(t, guestOut, 100*time.Millisecond)
	if started.Type != game.EventGameStarted {
		t.Fatalf("want gameStarted, got %q", started.Type)
	}
	if started.Version <= first.Version {
		t.Fatalf("version did not increase: %d -> %d", first.Version, started.Version)
	}
	if started.State.Phase != game.PhaseWordSetting {
		t.Fatalf("want word-setting phase, got %q", started.State.Phase)
	}

	// Both clients see the same frame.
	if got := recvEvent(t, hostOut, 100*time.Millisecond); got.Version != started.Version {
		t.Fatalf("host saw version %d, guest %d", got.Version, started.Version)
	}
}

func TestSession_ErrorGoesOnlyToInitiator(t *testing.T) {
	s := newTestSession(t, game.ModeRounds)

	hostOut := make(chan Event, 8)
	guestOut := make(chan Event, 8)
	s.Inbox() <- Join{ConnID: "c1", Name: "Alice", Outbox: hostOut, Created: true}
	s.Inbox() <- Join{ConnID: "c2", Name: "Bob", Outbox: guestOut}
	_ = recvEvent(t, hostOut, 100*time.Millisecond)
	_ = recvEvent(t, hostOut, 100*time.Millisecond)
	_ = recvEvent(t, guestOut, 100*time.Millisecond)

	// Bob tries to start; only Bob hears about it failing.
	s.Inbox() <- FromClient{Cmd: game.Command{Type: game.CmdStartGame, ConnID: "c2"}}

	ev := recvEvent(t, guestOut, 100*time.Millisecond)
	if ev.Type != EventError || ev.Err == "" {
		t.Fatalf("want private error, got %+v", ev)
	}
	recvNoEvent(t, hostOut, 100*time.Millisecond)
}

func TestSession_LeaveReportsRemainingAndBroadcasts(t *testing.T) {
	s := newTestSession(t, game.ModeRounds)

	hostOut := make(chan Event, 8)
	guestOut := make(chan Event, 8)
	s.Inbox() <- Join{ConnID: "c1", Name: "Alice", Outbox: hostOut, Created: true}
	s.Inbox() <- Join{ConnID: "c2", Name: "Bob", Outbox: guestOut}
	_ = recvEvent(t, hostOut, 100*time.Millisecond)
	_ = recvEvent(t, hostOut, 100*time.Millisecond)
	_ = recvEvent(t, guestOut, 100*time.Millisecond)

	reply := make(chan int, 1)
	s.Inbox() <- Leave{ConnID: "c1", Reply: reply}

	select {
	case n := <-reply:
		if n != 1 {
			t.Fatalf("want 1 remaining, got %d", n)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("no leave reply")
	}

	left := recvEvent(t, guestOut, 100*time.Millisecond)
	if left.Type != EventPlayerLeft {
		t.Fatalf("want playerLeft, got %q", left.Type)
	}
	// Host role moved to Bob.
	if len(left.State.Players) != 1 || !left.State.Players[0].IsHost {
		t.Fatalf("host not reassigned: %+v", left.State.Players)
	}

	reply2 := make(chan int, 1)
	s.Inbox() <- Leave{ConnID: "c2", Reply: reply2}
	if n := <-reply2; n != 0 {
		t.Fatalf("want 0 remaining, got %d", n)
	}
}

func TestSession_DropSlowClient(t *testing.T) {
	s := newTestSession(t, game.ModeClassic)

	// Zero-capacity outbox: the join snapshot cannot be delivered.
	out := make(chan Event)
	s.Inbox() <- Join{ConnID: "c1", Name: "Alice", Outbox: out}

	reply := make(chan View, 1)
	s.Inbox() <- GetState{Reply: reply}
	view := recvView(t, reply, 100*time.Millisecond)

	if view.NumClients != 0 {
		t.Fatalf("expected slow client to be dropped; NumClients=%d", view.NumClients)
	}
	// The player stays in the room; only the outbox is gone.
	if len(view.State.Players) != 1 {
		t.Fatalf("player record should survive a dropped outbox")
	}
}
