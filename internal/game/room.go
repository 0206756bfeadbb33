package game

import "slices"

type Mode string

const (
	// ModeClassic shares one random word from the built-in list per game;
	// every player, host included, guesses against it.
	ModeClassic Mode = "classic"
	// ModeRounds rotates a word setter through the players in join order;
	// everyone else guesses against the setter's word.
	ModeRounds Mode = "rounds"
)

type Phase string

const (
	PhaseWaiting     Phase = "waiting"
	PhaseWordSetting Phase = "word-setting"
	PhasePlaying     Phase = "playing"
	PhaseFinished    Phase = "finished"
)

type Winner string

const (
	WinnerGuessers Winner = "guessers"
	WinnerHost     Winner = "host"
)

const (
	DefaultMaxHealth  = 6
	MinSecretLetters  = 3
	minPlayersClassic = 1
	minPlayersRounds  = 2
)

// Scoring events. Completing a word pays the guesser; in rounds mode the
// setter gets an assist, or the full reward when the guessers run out of
// health.
const (
	pointsForGuess = 10
	pointsForSet   = 5
	pointsForStump = 10
)

type Player struct {
	ID     string
	Name   string
	Score  int
	IsHost bool
}

// Room is one game's entire state. It is not safe for concurrent use; a
// session actor owns each instance and serializes every mutation.
type Room struct {
	Code      string
	Mode      Mode
	HostID    string
	Phase     Phase
	MaxHealth int
	Health    int

	players map[string]*Player
	order   []string // join order; doubles as the setter rotation in rounds mode

	secret   string
	Hints    []string
	guessed  map[string]bool
	correct  map[string]bool
	WordMask string

	Winner     Winner
	WinnerName string

	Round     int
	TurnIndex int
	SetterID  string
}

func NewRoom(code string, mode Mode, hostID string, maxHealth int) *Room {
	if maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	return &Room{
		Code:      code,
		Mode:      mode,
		HostID:    hostID,
		Phase:     PhaseWaiting,
		MaxHealth: maxHealth,
		Health:    maxHealth,
		players:   make(map[string]*Player),
		guessed:   make(map[string]bool),
		correct:   make(map[string]bool),
	}
}

// AddPlayer inserts the player, preserving join order. Re-adding an existing
// id only updates the name, so duplicate join events from a flaky reconnect
// never produce two entries.
func (r *Room) AddPlayer(id, name string) {
	if p, ok := r.players[id]; ok {
		p.Name = name
		return
	}
	r.players[id] = &Player{ID: id, Name: name, IsHost: id == r.HostID}
	r.order = append(r.order, id)
}

// RemovePlayer deletes the entry and repairs whatever the departure broke:
// host role moves to the first remaining player in join order, the turn
// index is re-clamped, and a round abandoned by its own setter resets.
func (r *Room) RemovePlayer(id string) {
	if _, ok := r.players[id]; !ok {
		return
	}
	delete(r.players, id)
	r.order = slices.DeleteFunc(r.order, func(pid string) bool { return pid == id })

	if id == r.HostID && len(r.order) > 0 {
		r.HostID = r.order[0]
		r.players[r.HostID].IsHost = true
	}
	if r.TurnIndex >= len(r.order) {
		r.TurnIndex = 0
	}
	if r.Mode == ModeRounds && id == r.SetterID &&
		(r.Phase == PhaseWordSetting || r.Phase == PhasePlaying) {
		r.resetRound()
		if len(r.order) >= minPlayersRounds {
			r.SetterID = r.order[r.TurnIndex]
			r.Phase = PhaseWordSetting
		} else {
			r.SetterID = ""
			r.Phase = PhaseWaiting
		}
	}
}

func (r *Room) PlayerCount() int { return len(r.players) }

func (r *Room) Player(id string) (*Player, bool) {
	p, ok := r.players[id]
	return p, ok
}

// Start begins the game from the lobby. Host only.
func (r *Room) Start(connID string) error {
	if connID != r.HostID {
		return ErrNotHost
	}
	if r.Phase != PhaseWaiting {
		return ErrAlreadyStarted
	}
	switch r.Mode {
	case ModeRounds:
		if len(r.order) < minPlayersRounds {
			return ErrInsufficientPlayers
		}
		r.Round = 1
		r.TurnIndex = 0
		r.resetRound()
		r.SetterID = r.order[r.TurnIndex]
		r.Phase = PhaseWordSetting
	default:
		if len(r.order) < minPlayersClassic {
			return ErrInsufficientPlayers
		}
		r.startClassicRound()
	}
	return nil
}

// AdvanceRound moves a finished room back into play. Host only. In rounds
// mode the setter rotation advances and the next setter must submit a word;
// in classic mode a fresh word is rolled immediately.
func (r *Room) AdvanceRound(connID string) error {
	if connID != r.HostID {
		return ErrNotHost
	}
	if r.Phase != PhaseFinished {
		return ErrRoundNotActive
	}
	switch r.Mode {
	case ModeRounds:
		if len(r.order) < minPlayersRounds {
			return ErrInsufficientPlayers
		}
		r.TurnIndex = (r.TurnIndex + 1) % len(r.order)
		r.Round++
		r.resetRound()
		r.SetterID = r.order[r.TurnIndex]
		r.Phase = PhaseWordSetting
	default:
		r.startClassicRound()
	}
	return nil
}

func (r *Room) startClassicRound() {
	entry := pickWord()
	r.resetRound()
	r.secret = entry.Word
	r.Hints = entry.Hints
	r.updateMask()
	r.Phase = PhasePlaying
}

func (r *Room) resetRound() {
	r.secret = ""
	r.Hints = nil
	r.guessed = make(map[string]bool)
	r.correct = make(map[string]bool)
	r.WordMask = ""
	r.Health = r.MaxHealth
	r.Winner = ""
	r.WinnerName = ""
}
