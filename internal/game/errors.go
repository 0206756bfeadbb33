package game

import "errors"

var ErrNotHost = errors.New("only the host can do that")
var ErrAlreadyStarted = errors.New("game already started")
var ErrInsufficientPlayers = errors.New("not enough players to start")
var ErrNotYourTurn = errors.New("not your turn to set the word")
var ErrAlreadySet = errors.New("word already set this round")
var ErrRoundNotActive = errors.New("no active round")
var ErrSelfGuess = errors.New("the word setter cannot guess their own word")
var ErrAlreadyGuessed = errors.New("letter already guessed")
var ErrInvalidGuess = errors.New("guess must be a letter or a word")
var ErrInvalidWord = errors.New("word must be at least 3 letters, letters only")
var ErrInvalidHints = errors.New("at least one non-empty hint required")
var ErrUnknownPlayer = errors.New("player is not in this room")
var ErrUnsupportedCommand = errors.New("unsupported command")
