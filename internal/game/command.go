package game

type CommandType string

const (
	CmdStartGame       CommandType = "StartGame"
	CmdSetWordAndHints CommandType = "SetWordAndHints"
	CmdGuess           CommandType = "Guess"
	CmdAdvanceRound    CommandType = "AdvanceRound"
)

type Command struct {
	Type   CommandType
	ConnID string
	Word   string
	Hints  []string
	Guess  string
}

// Broadcast event names for successfully applied commands.
const (
	EventGameStarted   = "gameStarted"
	EventWordSet       = "wordSet"
	EventLetterGuessed = "letterGuessed"
	EventRoundComplete = "roundComplete"
)

type Result struct {
	Event   string
	Outcome *GuessOutcome
}

// Apply dispatches a command against the room. The room is mutated only when
// the returned error is nil.
func Apply(r *Room, cmd Command) (Result, error) {
	switch cmd.Type {
	case CmdStartGame:
		if err := r.Start(cmd.ConnID); err != nil {
			return Result{}, err
		}
		return Result{Event: EventGameStarted}, nil

	case CmdSetWordAndHints:
		if err := r.SetWordAndHints(cmd.ConnID, cmd.Word, cmd.Hints); err != nil {
			return Result{}, err
		}
		return Result{Event: EventWordSet}, nil

	case CmdGuess:
		out, err := r.Guess(cmd.ConnID, cmd.Guess)
		if err != nil {
			return Result{}, err
		}
		event := EventLetterGuessed
		if out.RoundWon || out.RoundLost {
			event = EventRoundComplete
		}
		return Result{Event: event, Outcome: &out}, nil

	case CmdAdvanceRound:
		if err := r.AdvanceRound(cmd.ConnID); err != nil {
			return Result{}, err
		}
		return Result{Event: EventGameStarted}, nil

	default:
		return Result{}, ErrUnsupportedCommand
	}
}
