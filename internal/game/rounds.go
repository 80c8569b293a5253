// internal/game/rounds.go
package game

import "github.com/jason-s-yu/carioca/internal/models"

// Objective is the card combination a round asks for, e.g. two trios.
// Trios are three of a kind; escalas are runs of four in one suit.
type Objective struct {
	Trios   int `json:"trios"`
	Escalas int `json:"escalas"`
}

// Objectives lists the eight rounds in play order.
var Objectives = [models.NumRounds]Objective{
	{Trios: 2},
	{Trios: 1, Escalas: 1},
	{Escalas: 2},
	{Trios: 3},
	{Trios: 2, Escalas: 1},
	{Trios: 1, Escalas: 2},
	{Trios: 4},
	{Escalas: 3},
}

// LastRound is the index of the final round.
const LastRound = models.NumRounds - 1

// RoundObjective returns the objective for round, or false if round is out of range.
func RoundObjective(round int) (Objective, bool) {
	if round < 0 || round >= models.NumRounds {
		return Objective{}, false
	}
	return Objectives[round], true
}

// Card point values used when counting a loser's hand.
const (
	PointsJoker = 30
	PointsAce   = 15
	PointsHigh  = 10 // 8 through K
	PointsLow   = 5  // 2 through 7
)
