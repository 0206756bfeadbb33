package game

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"
)

// Word guesses within this edit distance of the secret get a "close" flag
// back instead of a plain miss.
const closeGuessDistance = 2

// GuessOutcome reports what a single accepted guess did, for the broadcast
// layer. Guess is the normalized input.
type GuessOutcome struct {
	Guess       string `json:"guess"`
	WordGuess   bool   `json:"isWordGuess"`
	Correct     bool   `json:"correct"`
	Close       bool   `json:"close,omitempty"`
	RoundWon    bool   `json:"roundWon"`
	RoundLost   bool   `json:"roundLost"`
	GuesserName string `json:"playerName"`
}

// SetWordAndHints accepts the current setter's word and hints and moves the
// round into play. Rounds mode only.
func (r *Room) SetWordAndHints(connID, word string, hints []string) error {
	if r.Mode != ModeRounds {
		return ErrUnsupportedCommand
	}
	if r.Phase == PhasePlaying && connID == r.SetterID {
		// Duplicate submission after the phase already advanced.
		return ErrAlreadySet
	}
	if r.Phase != PhaseWordSetting {
		return ErrRoundNotActive
	}
	if connID != r.SetterID {
		return ErrNotYourTurn
	}
	secret := normalize(word)
	if !validSecret(secret) {
		return ErrInvalidWord
	}
	kept := lo.Filter(
		lo.Map(hints, func(h string, _ int) string { return strings.TrimSpace(h) }),
		func(h string, _ int) bool { return h != "" },
	)
	if len(kept) == 0 {
		return ErrInvalidHints
	}

	r.secret = secret
	r.Hints = kept
	r.updateMask()
	r.Phase = PhasePlaying
	return nil
}

// Guess evaluates a letter guess (normalized length 1) or a word guess
// (anything longer). Nothing is mutated when an error comes back.
func (r *Room) Guess(connID, raw string) (GuessOutcome, error) {
	if r.Phase != PhasePlaying {
		return GuessOutcome{}, ErrRoundNotActive
	}
	p, ok := r.players[connID]
	if !ok {
		return GuessOutcome{}, ErrUnknownPlayer
	}
	if r.Mode == ModeRounds && connID == r.SetterID {
		return GuessOutcome{}, ErrSelfGuess
	}

	guess := normalize(raw)
	if guess == "" {
		return GuessOutcome{}, ErrInvalidGuess
	}
	if utf8.RuneCountInString(guess) == 1 {
		return r.guessLetter(p, guess)
	}
	return r.guessWord(p, guess)
}

func (r *Room) guessLetter(p *Player, letter string) (GuessOutcome, error) {
	if letter[0] < 'A' || letter[0] > 'Z' {
		return GuessOutcome{}, ErrInvalidGuess
	}
	if r.guessed[letter] {
		return GuessOutcome{}, ErrAlreadyGuessed
	}

	r.guessed[letter] = true
	out := GuessOutcome{Guess: letter, GuesserName: p.Name}

	if strings.Contains(r.secret, letter) {
		r.correct[letter] = true
		r.updateMask()
		out.Correct = true
		if r.maskComplete() {
			r.finishGuessersWin(p)
			out.RoundWon = true
		}
		return out, nil
	}

	r.Health--
	if r.Health <= 0 {
		r.Health = 0
		r.finishSetterWin()
		out.RoundLost = true
	}
	return out, nil
}

func (r *Room) guessWord(p *Player, word string) (GuessOutcome, error) {
	out := GuessOutcome{Guess: word, WordGuess: true, GuesserName: p.Name}
	if word == r.secret {
		out.Correct = true
		out.RoundWon = true
		r.finishGuessersWin(p)
		return out, nil
	}
	// A wrong word costs nothing; nearly-right ones get a nudge.
	out.Close = levenshtein.ComputeDistance(word, r.secret) <= closeGuessDistance
	return out, nil
}

func (r *Room) finishGuessersWin(p *Player) {
	r.Phase = PhaseFinished
	r.Winner = WinnerGuessers
	r.WinnerName = p.Name
	p.Score += pointsForGuess
	if r.Mode == ModeRounds {
		if setter, ok := r.players[r.SetterID]; ok {
			setter.Score += pointsForSet
		}
	}
	r.revealSecret()
}

func (r *Room) finishSetterWin() {
	r.Phase = PhaseFinished
	r.Winner = WinnerHost
	if r.Mode == ModeRounds {
		if setter, ok := r.players[r.SetterID]; ok {
			r.WinnerName = setter.Name
			setter.Score += pointsForStump
		}
	}
	r.revealSecret()
}

// revealSecret marks every letter correct so the final mask shows the whole
// word. The secret itself only leaves the room via State() once finished.
func (r *Room) revealSecret() {
	for _, ch := range r.secret {
		if ch != ' ' {
			r.correct[string(ch)] = true
		}
	}
	r.updateMask()
}

// updateMask rebuilds WordMask from the secret and the correct set. Spaces
// in multi-word secrets pass through; everything else is the letter or "_".
func (r *Room) updateMask() {
	parts := make([]string, 0, len(r.secret))
	for _, ch := range r.secret {
		switch {
		case ch == ' ':
			parts = append(parts, " ")
		case r.correct[string(ch)]:
			parts = append(parts, string(ch))
		default:
			parts = append(parts, "_")
		}
	}
	r.WordMask = strings.Join(parts, " ")
}

func (r *Room) maskComplete() bool {
	for _, ch := range r.secret {
		if ch != ' ' && !r.correct[string(ch)] {
			return false
		}
	}
	return true
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// validSecret wants at least MinSecretLetters A-Z runes; internal spaces are
// allowed for multi-word secrets, anything else is not.
func validSecret(s string) bool {
	letters := 0
	for _, ch := range s {
		switch {
		case ch >= 'A' && ch <= 'Z':
			letters++
		case ch == ' ':
		default:
			return false
		}
	}
	return letters >= MinSecretLetters
}
