package registry

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"go.uber.org/zap"

	"github.com/Razil2005/wordGame/internal/game"
	"github.com/Razil2005/wordGame/internal/session"
)

var ErrIdentityMissing = errors.New("set a player name first")
var ErrRoomNotFound = errors.New("room not found")

// GuestName is assigned when a join arrives before the client's name
// registration, which happens with reconnecting clients.
const GuestName = "Guest"

const codeLength = 6

type Msg interface{ isRegistryMsg() }

type RegisterName struct {
	ConnID string
	Name   string
}

func (RegisterName) isRegistryMsg() {}

type CreateRoom struct {
	ConnID string
	Mode   game.Mode
	Outbox chan session.Event
	Reply  chan RoomReply
}

func (CreateRoom) isRegistryMsg() {}

type JoinRoom struct {
	ConnID string
	Code   string
	Outbox chan session.Event
	Reply  chan RoomReply
}

func (JoinRoom) isRegistryMsg() {}

type LookupRoom struct {
	Code  string
	Reply chan bool
}

func (LookupRoom) isRegistryMsg() {}

type RemoveConnection struct {
	ConnID string
}

func (RemoveConnection) isRegistryMsg() {}

type Shutdown struct{}

func (Shutdown) isRegistryMsg() {}

type RoomReply struct {
	Sess *session.Session
	Code string
	Err  error
}

type identity struct {
	name string
	room string // room code, empty while not in a room
}

// Registry is the actor that owns the two process-wide maps: room code to
// session and connection id to identity. All mutations are serialized
// through its inbox.
type Registry struct {
	inbox      chan Msg
	rooms      map[string]*session.Session
	identities map[string]*identity
	maxHealth  int
	log        *zap.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

func New(parent context.Context, maxHealth int, log *zap.Logger) *Registry {
	ctx, cancel := context.WithCancel(parent)
	r := &Registry{
		inbox:      make(chan Msg, 64),
		rooms:      make(map[string]*session.Session),
		identities: make(map[string]*identity),
		maxHealth:  maxHealth,
		log:        log,
		ctx:        ctx,
		cancel:     cancel,
	}
	go r.loop()
	return r
}

func (r *Registry) Inbox() chan<- Msg { return r.inbox }

func (r *Registry) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case RegisterName:
				name := strings.TrimSpace(msg.Name)
				if name == "" {
					break
				}
				if id, ok := r.identities[msg.ConnID]; ok {
					id.name = name
				} else {
					r.identities[msg.ConnID] = &identity{name: name}
				}

			case CreateRoom:
				id, ok := r.identities[msg.ConnID]
				if !ok {
					msg.Reply <- RoomReply{Err: ErrIdentityMissing}
					break
				}
				r.leaveCurrentRoom(msg.ConnID, id)

				code := r.newCode()
				room := game.NewRoom(code, msg.Mode, msg.ConnID, r.maxHealth)
				sess := session.New(r.ctx, room, r.log.With(zap.String("room", code)))
				r.rooms[code] = sess
				id.room = code

				sess.Inbox() <- session.Join{ConnID: msg.ConnID, Name: id.name, Outbox: msg.Outbox, Created: true}
				r.log.Info("room created", zap.String("room", code), zap.String("mode", string(msg.Mode)))
				msg.Reply <- RoomReply{Sess: sess, Code: code}

			case JoinRoom:
				code := strings.ToUpper(strings.TrimSpace(msg.Code))
				sess, ok := r.rooms[code]
				if !ok {
					msg.Reply <- RoomReply{Err: ErrRoomNotFound}
					break
				}
				id, ok := r.identities[msg.ConnID]
				if !ok {
					id = &identity{name: GuestName}
					r.identities[msg.ConnID] = id
				}
				if id.room != code {
					r.leaveCurrentRoom(msg.ConnID, id)
				}
				id.room = code

				sess.Inbox() <- session.Join{ConnID: msg.ConnID, Name: id.name, Outbox: msg.Outbox}
				msg.Reply <- RoomReply{Sess: sess, Code: code}

			case LookupRoom:
				_, ok := r.rooms[strings.ToUpper(strings.TrimSpace(msg.Code))]
				msg.Reply <- ok

			case RemoveConnection:
				id, ok := r.identities[msg.ConnID]
				if !ok {
					break
				}
				delete(r.identities, msg.ConnID)
				r.leaveCurrentRoom(msg.ConnID, id)

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

// leaveCurrentRoom removes the connection from whatever room its identity
// names and reaps the room if that was the last player.
func (r *Registry) leaveCurrentRoom(connID string, id *identity) {
	if id.room == "" {
		return
	}
	code := id.room
	id.room = ""

	sess, ok := r.rooms[code]
	if !ok {
		return
	}
	reply := make(chan int, 1)
	sess.Inbox() <- session.Leave{ConnID: connID, Reply: reply}
	if <-reply == 0 {
		delete(r.rooms, code)
		sess.Inbox() <- session.Shutdown{}
		r.log.Info("room deleted", zap.String("room", code))
	}
}

func (r *Registry) shutdown() {
	for _, sess := range r.rooms {
		sess.Inbox() <- session.Shutdown{}
	}
	clear(r.rooms)
	clear(r.identities)
	r.cancel()
}

// newCode allocates a code that is unique among active rooms, retrying on
// the rare collision.
func (r *Registry) newCode() string {
	for {
		code, err := generateCode()
		if err != nil {
			continue
		}
		if _, taken := r.rooms[code]; !taken {
			return code
		}
	}
}

func generateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, codeLength)
	for i := 0; i < codeLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}
