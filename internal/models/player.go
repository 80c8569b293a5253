// internal/models/player.go
package models

// NumRounds is the fixed number of rounds in a Carioca game.
const NumRounds = 8

// MaxPlayers caps the number of seats at the table.
const MaxPlayers = 6

// MaxNameLength is the longest accepted player name, in runes.
const MaxNameLength = 15

// ScoreStep is the granularity of every recorded score.
const ScoreStep = 5

// Player is one row of the scoreboard. Scores[i] and Winners[i] belong to round i.
// A nil score means nothing has been recorded for that round yet.
type Player struct {
	Name    string          `json:"name"`
	Scores  [NumRounds]*int `json:"scores"`
	Winners [NumRounds]bool `json:"winners"`
}

// NewPlayer returns a player with no scores and no round wins.
func NewPlayer(name string) Player {
	return Player{Name: name}
}

// ScoreAt returns the recorded score for the round and whether one exists.
func (p Player) ScoreAt(round int) (int, bool) {
	if round < 0 || round >= NumRounds || p.Scores[round] == nil {
		return 0, false
	}
	return *p.Scores[round], true
}

// SetScore records v for the round.
func (p *Player) SetScore(round, v int) {
	p.Scores[round] = &v
}

// ClearScore forgets the score for the round.
func (p *Player) ClearScore(round int) {
	p.Scores[round] = nil
}

// Total sums every recorded score, counting empty rounds as zero.
func (p Player) Total() int {
	total := 0
	for _, s := range p.Scores {
		if s != nil {
			total += *s
		}
	}
	return total
}

// Clone returns a copy that shares no score pointers with p.
func (p Player) Clone() Player {
	out := Player{Name: p.Name, Winners: p.Winners}
	for i, s := range p.Scores {
		if s != nil {
			v := *s
			out.Scores[i] = &v
		}
	}
	return out
}
