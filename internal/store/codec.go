// internal/store/codec.go
package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jason-s-yu/carioca/internal/models"
)

// playerRecord is the on-disk player shape. Slices instead of arrays so that records
// written by older versions (no winners, or short arrays) still decode.
type playerRecord struct {
	Name    string `json:"name"`
	Scores  []*int `json:"scores"`
	Winners []bool `json:"winners"`
}

// EncodePlayers serializes the players slot.
func EncodePlayers(players []models.Player) (string, error) {
	if players == nil {
		players = []models.Player{}
	}
	data, err := json.Marshal(players)
	if err != nil {
		return "", fmt.Errorf("failed to marshal players: %w", err)
	}
	return string(data), nil
}

// DecodePlayers parses the players slot, migrating older shapes on the way:
// a missing winners list becomes eight false flags and every list is padded or
// truncated to the fixed round count.
//
// Records that break the table's rules are repaired rather than trusted: null or
// unnamed records are dropped, names are trimmed and cut to the length limit, the
// list stops at the seat limit, scores that are negative or off the 5-point step
// become empty, and only the first winner flag of each round survives, with its
// score forced to zero.
func DecodePlayers(raw string) ([]models.Player, error) {
	var records []*playerRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal players: %w", err)
	}

	players := make([]models.Player, 0, models.MaxPlayers)
	var winnerSeen [models.NumRounds]bool
	for _, rec := range records {
		if len(players) == models.MaxPlayers {
			break
		}
		if rec == nil {
			continue
		}
		name := truncateName(strings.TrimSpace(rec.Name))
		if name == "" {
			continue
		}

		p := models.NewPlayer(name)
		for i := 0; i < models.NumRounds && i < len(rec.Scores); i++ {
			if v := rec.Scores[i]; v != nil && validScore(*v) {
				p.SetScore(i, *v)
			}
		}
		// rec.Winners is nil for records saved before winners existed
		for i := 0; i < models.NumRounds && i < len(rec.Winners); i++ {
			if rec.Winners[i] && !winnerSeen[i] {
				winnerSeen[i] = true
				p.Winners[i] = true
				p.SetScore(i, 0)
			}
		}
		players = append(players, p)
	}
	return players, nil
}

func validScore(v int) bool {
	return v >= 0 && v%models.ScoreStep == 0
}

func truncateName(name string) string {
	if utf8.RuneCountInString(name) <= models.MaxNameLength {
		return name
	}
	return strings.TrimSpace(string([]rune(name)[:models.MaxNameLength]))
}

// EncodeRound serializes the round slot.
func EncodeRound(round int) string {
	return strconv.Itoa(round)
}

// DecodeRound parses the round slot. Anything unparsable or outside the round range
// falls back to the first round.
func DecodeRound(raw string) int {
	round, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || round < 0 || round >= models.NumRounds {
		return 0
	}
	return round
}

// DecodeLanguage parses the language slot, falling back to the default language.
func DecodeLanguage(raw string) models.Language {
	lang := models.Language(strings.ToLower(strings.TrimSpace(raw)))
	if !lang.Valid() {
		return models.DefaultLanguage
	}
	return lang
}
