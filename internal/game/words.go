package game

import (
	"crypto/rand"
	"math/big"
)

type WordEntry struct {
	Word  string
	Hints []string
}

// Built-in list for classic mode. Words are stored normalized (uppercase).
var wordList = []WordEntry{
	{
		Word:  "JAVASCRIPT",
		Hints: []string{"Programming language", "Runs in browsers", "Used for web development", "Created by Brendan Eich"},
	},
	{
		Word:  "RAINBOW",
		Hints: []string{"Appears after rain", "Has seven colors", "Arc in the sky", "ROYGBIV"},
	},
	{
		Word:  "ELEPHANT",
		Hints: []string{"Large mammal", "Has a trunk", "Never forgets", "Lives in Africa and Asia"},
	},
	{
		Word:  "COMPUTER",
		Hints: []string{"Electronic device", "Processes data", "Has keyboard and monitor", "Used for calculations"},
	},
	{
		Word:  "BUTTERFLY",
		Hints: []string{"Flying insect", "Has colorful wings", "Starts as a caterpillar", "Undergoes metamorphosis"},
	},
	{
		Word:  "MOUNTAIN",
		Hints: []string{"Tall landform", "Higher than hills", "Can be climbed", "Often snow-capped"},
	},
	{
		Word:  "GUITAR",
		Hints: []string{"Musical instrument", "Has strings", "Can be acoustic or electric", "Played with fingers or pick"},
	},
	{
		Word:  "OCEAN",
		Hints: []string{"Large body of water", "Covers most of Earth", "Home to whales", "Has waves and tides"},
	},
}

// pickWord is a package var so tests can pin the word for a round.
var pickWord = func() WordEntry {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(wordList))))
	if err != nil {
		return wordList[0]
	}
	return wordList[n.Int64()]
}
