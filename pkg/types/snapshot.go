package types

// gameState snapshot:
//   id: string (room code)
//   mode: "classic" | "rounds"
//   gameState: "waiting" | "word-setting" | "playing" | "finished"
//   players: [{ id, name, score, isHost }] // join order
//   wordMask: string // "O _ _ _ _"; spaces in multi-word secrets pass through
//   hints: string[]
//   guessedLetters: string[] // sorted
//   currentHealth: number
//   maxHealth: number
//   winner: "guessers" | "host" // once finished
//   winnerName: string
//   round: number // rounds mode
//   turnIndex: number // rounds mode
//   wordSetterId: string // rounds mode
//   currentWord: string // only present once finished
