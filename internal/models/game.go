// internal/models/game.go
package models

// Language is a display language code. It only drives string lookup, never game rules.
type Language string

const (
	LanguageSpanish Language = "es"
	LanguageEnglish Language = "en"
	LanguageSwedish Language = "sv"
)

// DefaultLanguage is used when nothing has been stored yet.
const DefaultLanguage = LanguageSpanish

// Languages lists the supported display languages in menu order.
var Languages = []Language{LanguageSpanish, LanguageEnglish, LanguageSwedish}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// GameState is everything the scoreboard remembers between sessions.
type GameState struct {
	Players      []Player `json:"players"`
	CurrentRound int      `json:"currentRound"`
	Language     Language `json:"language"`
}

// NewGameState returns an empty table on round 0 in the default language.
func NewGameState() GameState {
	return GameState{
		Players:  []Player{},
		Language: DefaultLanguage,
	}
}

// Clone deep-copies the state so callers can read it without touching the engine's copy.
func (s GameState) Clone() GameState {
	out := GameState{
		Players:      make([]Player, len(s.Players)),
		CurrentRound: s.CurrentRound,
		Language:     s.Language,
	}
	for i, p := range s.Players {
		out.Players[i] = p.Clone()
	}
	return out
}
