package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/Razil2005/wordGame/internal/game"
)

// Membership event names. Command result names live in the game package.
const (
	EventRoomCreated  = "roomCreated"
	EventRoomJoined   = "roomJoined"
	EventPlayerJoined = "playerJoined"
	EventPlayerLeft   = "playerLeft"
	EventError        = "error"
)

type Msg interface{ isSessionMsg() }

type Join struct {
	ConnID string
	Name   string
	Outbox chan Event
	// Created marks the room creator, who gets roomCreated instead of
	// roomJoined.
	Created bool
}

func (Join) isSessionMsg() {}

type Leave struct {
	ConnID string
	Reply  chan int // remaining player count, so the registry can reap empty rooms
}

func (Leave) isSessionMsg() {}

type FromClient struct {
	Cmd game.Command
}

func (FromClient) isSessionMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

// Event is one outbound frame for a connected client.
type Event struct {
	Type       string
	Version    int
	State      *game.State
	Guess      *game.GuessOutcome
	PlayerName string
	Err        string
}

type View struct {
	Version    int
	NumClients int
	State      game.State
}

// Session is the actor that owns one Room. Every mutation runs to completion
// inside loop before the next message is taken, so the room itself needs no
// locking.
type Session struct {
	inbox   chan Msg
	room    *game.Room
	version int
	clients map[string]chan Event
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(parent context.Context, room *game.Room, log *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)

	s := &Session{
		inbox:   make(chan Msg, 64),
		room:    room,
		clients: make(map[string]chan Event),
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}

	go s.loop()
	return s
}

func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				s.room.AddPlayer(msg.ConnID, msg.Name)
				s.clients[msg.ConnID] = msg.Outbox
				s.version++
				state := s.room.State()

				event := EventRoomJoined
				if msg.Created {
					event = EventRoomCreated
				}
				s.sendTo(msg.ConnID, Event{Type: event, Version: s.version, State: &state, PlayerName: msg.Name})
				s.broadcastExcept(msg.ConnID, Event{Type: EventPlayerJoined, Version: s.version, State: &state, PlayerName: msg.Name})
				s.log.Info("player joined", zap.String("conn", msg.ConnID), zap.Int("players", s.room.PlayerCount()))

			case Leave:
				s.room.RemovePlayer(msg.ConnID)
				delete(s.clients, msg.ConnID)
				if s.room.PlayerCount() > 0 {
					s.version++
					state := s.room.State()
					s.broadcast(Event{Type: EventPlayerLeft, Version: s.version, State: &state})
				}
				if msg.Reply != nil {
					msg.Reply <- s.room.PlayerCount()
				}

			case FromClient:
				result, err := game.Apply(s.room, msg.Cmd)
				if err != nil {
					s.sendTo(msg.Cmd.ConnID, Event{Type: EventError, Err: err.Error()})
					break
				}
				s.version++
				state := s.room.State()
				s.broadcast(Event{Type: result.Event, Version: s.version, State: &state, Guess: result.Outcome})

			case GetState:
				// test-only: reflect internal state without data races
				msg.Reply <- View{
					Version:    s.version,
					NumClients: len(s.clients),
					State:      s.room.State(),
				}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

func (s *Session) shutdown() {
	clear(s.clients)
	s.cancel()
}

// sendTo delivers privately. Outboxes are never closed here; the connection
// handler owns their lifetime.
func (s *Session) sendTo(connID string, ev Event) {
	ch, ok := s.clients[connID]
	if !ok {
		return
	}
	select {
	case ch <- ev:
	default:
		// Slow client; drop them rather than stall the room.
		delete(s.clients, connID)
	}
}

func (s *Session) broadcast(ev Event) {
	for id, ch := range s.clients {
		select {
		case ch <- ev:
		default:
			delete(s.clients, id)
		}
	}
}

func (s *Session) broadcastExcept(connID string, ev Event) {
	for id, ch := range s.clients {
		if id == connID {
			continue
		}
		select {
		case ch <- ev:
		default:
			delete(s.clients, id)
		}
	}
}
