package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Razil2005/wordGame/internal/game"
	"github.com/Razil2005/wordGame/internal/registry"
	"github.com/Razil2005/wordGame/internal/session"
	"github.com/Razil2005/wordGame/internal/types"
)

const writeTimeout = 3 * time.Second

// Handler upgrades the connection and bridges it to the registry and, once
// the client is in a room, to that room's session. Events from one
// connection are processed strictly in the order they were sent.
func Handler(reg *registry.Registry, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Warn("websocket accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		connID := uuid.NewString()
		clog := log.With(zap.String("conn", connID))
		out := make(chan session.Event, 16)

		defer func() { reg.Inbox() <- registry.RemoveConnection{ConnID: connID} }()

		// Writer goroutine. The outbox is never closed; the write context
		// ends it when the handler returns.
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for {
				select {
				case <-writeCtx.Done():
					return
				case ev := <-out:
					msg := types.ServerMessage{
						Type:       ev.Type,
						Version:    ev.Version,
						PlayerName: ev.PlayerName,
						State:      ev.State,
						Guess:      ev.Guess,
						Error:      ev.Err,
					}
					if ev.State != nil {
						msg.RoomCode = ev.State.Code
					}
					payload, _ := json.Marshal(msg)
					ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
					_ = conn.Write(ctx, websocket.MessageText, payload)
					cancel()
				}
			}
		}()

		// Reader loop.
		var sess *session.Session
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (RemoveConnection in defer):
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				pushError(out, "bad json")
				continue
			}

			switch cm.Type {
			case types.MsgSetPlayerName:
				reg.Inbox() <- registry.RegisterName{ConnID: connID, Name: cm.Name}
				push(out, session.Event{Type: types.MsgPlayerSet, PlayerName: cm.Name})

			case types.MsgCreateRoom:
				reply := make(chan registry.RoomReply, 1)
				reg.Inbox() <- registry.CreateRoom{ConnID: connID, Mode: parseMode(cm.Mode), Outbox: out, Reply: reply}
				rr := <-reply
				if rr.Err != nil {
					pushError(out, rr.Err.Error())
					continue
				}
				sess = rr.Sess
				clog.Info("created room", zap.String("room", rr.Code))

			case types.MsgJoinRoom:
				reply := make(chan registry.RoomReply, 1)
				reg.Inbox() <- registry.JoinRoom{ConnID: connID, Code: cm.RoomCode, Outbox: out, Reply: reply}
				rr := <-reply
				if rr.Err != nil {
					pushError(out, rr.Err.Error())
					continue
				}
				sess = rr.Sess
				clog.Info("joined room", zap.String("room", rr.Code))

			case types.MsgStartGame, types.MsgSetWord, types.MsgGuessLetter, types.MsgNextRound, types.MsgNewGame:
				if sess == nil {
					pushError(out, "join a room first")
					continue
				}
				sess.Inbox() <- session.FromClient{Cmd: toCommand(connID, cm)}

			default:
				pushError(out, "unknown message type")
			}
		}
	}
}

func toCommand(connID string, m types.ClientMessage) game.Command {
	switch m.Type {
	case types.MsgStartGame:
		return game.Command{Type: game.CmdStartGame, ConnID: connID}
	case types.MsgSetWord:
		return game.Command{Type: game.CmdSetWordAndHints, ConnID: connID, Word: m.Word, Hints: m.Hints}
	case types.MsgGuessLetter:
		return game.Command{Type: game.CmdGuess, ConnID: connID, Guess: m.Guess}
	default: // nextRound / newGame
		return game.Command{Type: game.CmdAdvanceRound, ConnID: connID}
	}
}

func parseMode(mode string) game.Mode {
	if mode == string(game.ModeRounds) {
		return game.ModeRounds
	}
	return game.ModeClassic
}

func push(out chan session.Event, ev session.Event) {
	select {
	case out <- ev:
	default:
	}
}

func pushError(out chan session.Event, reason string) {
	push(out, session.Event{Type: types.MsgError, Err: reason})
}
