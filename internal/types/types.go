package types

import "github.com/Razil2005/wordGame/internal/game"

// Client -> server message names.
const (
	MsgSetPlayerName = "setPlayerName"
	MsgCreateRoom    = "createRoom"
	MsgJoinRoom      = "joinRoom"
	MsgStartGame     = "startGame"
	MsgSetWord       = "setWordAndHints"
	MsgGuessLetter   = "guessLetter"
	MsgNextRound     = "nextRound"
	MsgNewGame       = "newGame"
)

// Server -> client message names handled outside any room.
const (
	MsgPlayerSet = "playerSet"
	MsgError     = "error"
)

type ClientMessage struct {
	Type     string   `json:"type"`
	Name     string   `json:"name,omitempty"`
	RoomCode string   `json:"roomCode,omitempty"`
	Mode     string   `json:"mode,omitempty"`
	Word     string   `json:"word,omitempty"`
	Hints    []string `json:"hints,omitempty"`
	Guess    string   `json:"guess,omitempty"`
}

type ServerMessage struct {
	Type       string             `json:"type"`
	Version    int                `json:"version,omitempty"`
	RoomCode   string             `json:"roomId,omitempty"`
	PlayerName string             `json:"playerName,omitempty"`
	State      *game.State        `json:"gameState,omitempty"`
	Guess      *game.GuessOutcome `json:"guess,omitempty"`
	Error      string             `json:"error,omitempty"`
}
