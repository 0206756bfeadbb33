package game

import (
	"slices"

	"github.com/samber/lo"
)

type PlayerView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	IsHost bool   `json:"isHost"`
}

// State is the public snapshot broadcast to clients. SecretWord is only
// populated once the round is finished.
type State struct {
	Code           string       `json:"id"`
	Mode           Mode         `json:"mode"`
	Phase          Phase        `json:"gameState"`
	Players        []PlayerView `json:"players"`
	WordMask       string       `json:"wordMask"`
	Hints          []string     `json:"hints"`
	GuessedLetters []string     `json:"guessedLetters"`
	Health         int          `json:"currentHealth"`
	MaxHealth      int          `json:"maxHealth"`
	Winner         Winner       `json:"winner,omitempty"`
	WinnerName     string       `json:"winnerName,omitempty"`
	Round          int          `json:"round,omitempty"`
	TurnIndex      int          `json:"turnIndex"`
	SetterID       string       `json:"wordSetterId,omitempty"`
	SecretWord     string       `json:"currentWord,omitempty"`
}

func (r *Room) State() State {
	players := lo.Map(r.order, func(id string, _ int) PlayerView {
		p := r.players[id]
		return PlayerView{ID: p.ID, Name: p.Name, Score: p.Score, IsHost: p.IsHost}
	})
	guessed := lo.Keys(r.guessed)
	slices.Sort(guessed)

	s := State{
		Code:           r.Code,
		Mode:           r.Mode,
		Phase:          r.Phase,
		Players:        players,
		WordMask:       r.WordMask,
		Hints:          slices.Clone(r.Hints),
		GuessedLetters: guessed,
		Health:         r.Health,
		MaxHealth:      r.MaxHealth,
		Winner:         r.Winner,
		WinnerName:     r.WinnerName,
		Round:          r.Round,
		TurnIndex:      r.TurnIndex,
		SetterID:       r.SetterID,
	}
	if r.Phase == PhaseFinished {
		s.SecretWord = r.secret
	}
	return s
}
