package types

// Client -> Server
// setPlayerName:
//   name: string (trimmed; empty is ignored)
//
// createRoom:
//   mode: "classic" | "rounds" (default "classic")
//
// joinRoom:
//   roomCode: string (6 uppercase alphanumeric chars)
//
// startGame: {} (host only)
//
// setWordAndHints (rounds mode, current setter only):
//   word: string (>= 3 letters after normalization)
//   hints: string[] (at least one non-empty)
//
// guessLetter:
//   guess: string (one letter, or a whole word)
//
// nextRound: {} (host only, rounds mode, from finished)
//
// newGame: {} (host only, classic mode, from finished)

// Server -> Client
// playerSet:
//   playerName: string
//
// roomCreated | roomJoined (initiator only):
//   roomId: string
//   version: number
//   gameState: snapshot (see snapshot.go)
//
// playerJoined | playerLeft (other room members):
//   version: number
//   gameState: snapshot
//
// gameStarted | wordSet:
//   version: number
//   gameState: snapshot
//
// letterGuessed | roundComplete:
//   version: number
//   gameState: snapshot
//   guess: { guess, isWordGuess, correct, close?, roundWon, roundLost, playerName }
//
// error (initiator only):
//   error: string
