// internal/game/engine.go
package game

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jason-s-yu/carioca/internal/models"
	"github.com/sirupsen/logrus"
)

// Persister receives each slot of the state right after it changes.
// Implementations must not fail loudly; the engine never waits on a retry.
type Persister interface {
	SavePlayers(ctx context.Context, players []models.Player)
	SaveRound(ctx context.Context, round int)
	SaveLanguage(ctx context.Context, lang models.Language)
}

// Engine owns the scoreboard state and every rule that changes it.
// Callers read through Snapshot and Standings and mutate only through methods.
type Engine struct {
	// ID identifies this session in logs.
	ID uuid.UUID

	mu        sync.Mutex
	state     models.GameState
	persister Persister
	log       *logrus.Entry
}

// NewEngine starts an engine from a previously loaded state. persister may be nil.
func NewEngine(state models.GameState, persister Persister, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if state.Players == nil {
		state.Players = []models.Player{}
	}
	if !state.Language.Valid() {
		state.Language = models.DefaultLanguage
	}
	if state.CurrentRound < 0 || state.CurrentRound > LastRound {
		state.CurrentRound = 0
	}

	id, _ := uuid.NewRandom()
	return &Engine{
		ID:        id,
		state:     state.Clone(),
		persister: persister,
		log:       logger.WithField("session", id.String()),
	}
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() models.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// CurrentRound returns the 0-based index of the round being played.
func (e *Engine) CurrentRound() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.CurrentRound
}

// Language returns the active display language.
func (e *Engine) Language() models.Language {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Language
}

// AddPlayer appends a player named name (trimmed).
// When the table already has players, the newcomer inherits, for every round, the
// highest score recorded so far in that round (empty counts as zero).
func (e *Engine) AddPlayer(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return e.reject(ErrEmptyPlayerName, nil)
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return e.reject(ErrPlayerNameTooLong, logrus.Fields{"name": name})
	}
	if len(e.state.Players) >= models.MaxPlayers {
		return e.reject(ErrPlayerLimitReached, logrus.Fields{"name": name})
	}

	p := models.NewPlayer(name)
	if len(e.state.Players) > 0 {
		for round := 0; round < models.NumRounds; round++ {
			p.SetScore(round, maxScore(e.state.Players, round))
		}
	}
	e.state.Players = append(e.state.Players, p)

	e.log.WithField("player", name).Info("player added")
	e.savePlayers()
	return nil
}

// RemovePlayer drops the player at index. The round pointer is left alone.
func (e *Engine) RemovePlayer(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkPlayer(index); err != nil {
		return err
	}
	name := e.state.Players[index].Name
	e.state.Players = append(e.state.Players[:index], e.state.Players[index+1:]...)

	e.log.WithField("player", name).Info("player removed")
	e.savePlayers()
	return nil
}

// ToggleWinner makes playerIndex the only winner of round and sets their score to zero.
// Calling it again for the same player leaves the state unchanged.
func (e *Engine) ToggleWinner(playerIndex, round int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkPlayer(playerIndex); err != nil {
		return err
	}
	if err := e.checkRound(round); err != nil {
		return err
	}

	for i := range e.state.Players {
		e.state.Players[i].Winners[round] = false
	}
	winner := &e.state.Players[playerIndex]
	winner.Winners[round] = true
	winner.SetScore(round, 0)

	e.log.WithFields(logrus.Fields{"player": winner.Name, "round": round}).Info("round winner set")
	e.savePlayers()
	return nil
}

// UpdateScore records raw as the score of playerIndex in round.
// An empty string clears the score, and on the winner's cell it also clears the winner
// flag. Anything else must be a non-negative multiple of five, is refused on the
// winner's cell, and zero is refused while another player already holds zero for
// that round.
func (e *Engine) UpdateScore(playerIndex, round int, raw string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkPlayer(playerIndex); err != nil {
		return err
	}
	if err := e.checkRound(round); err != nil {
		return err
	}
	p := &e.state.Players[playerIndex]
	fields := logrus.Fields{"player": p.Name, "round": round, "input": raw}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		if p.Winners[round] {
			p.Winners[round] = false
			e.log.WithFields(fields).Info("round winner cleared")
		}
		p.ClearScore(round)
		e.savePlayers()
		return nil
	}
	if p.Winners[round] {
		return e.reject(ErrWinnerScoreLocked, fields)
	}

	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 || score%models.ScoreStep != 0 {
		return e.reject(ErrInvalidScoreFormat, fields)
	}
	if score == 0 {
		for i, other := range e.state.Players {
			if v, ok := other.ScoreAt(round); i != playerIndex && ok && v == 0 {
				return e.reject(ErrDuplicateZeroScore, fields)
			}
		}
	}

	p.SetScore(round, score)
	e.savePlayers()
	return nil
}

// NextRound moves to the following round once it is complete: a winner is selected
// and every other player has a score above zero. On the last round it does nothing.
func (e *Engine) NextRound() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	round := e.state.CurrentRound
	if round >= LastRound {
		return nil
	}

	hasWinner := false
	for _, p := range e.state.Players {
		if p.Winners[round] {
			hasWinner = true
			break
		}
	}
	if !hasWinner {
		return e.reject(ErrNoWinnerSelected, logrus.Fields{"round": round})
	}

	for _, p := range e.state.Players {
		if p.Winners[round] {
			continue
		}
		if v, ok := p.ScoreAt(round); !ok || v <= 0 {
			return e.reject(ErrIncompleteRoundScores, logrus.Fields{"round": round, "player": p.Name})
		}
	}

	e.state.CurrentRound++
	e.log.WithField("round", e.state.CurrentRound).Info("advanced to next round")
	e.saveRound()
	return nil
}

// PrevRound steps back one round. Going back is never validated.
func (e *Engine) PrevRound() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.CurrentRound == 0 {
		return
	}
	e.state.CurrentRound--
	e.saveRound()
}

// ResetGame clears the table and rewinds to the first round when confirmed is true.
// The display language survives a reset. Reports whether anything was reset.
func (e *Engine) ResetGame(confirmed bool) bool {
	if !confirmed {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Players = []models.Player{}
	e.state.CurrentRound = 0

	e.log.Info("game reset")
	e.savePlayers()
	e.saveRound()
	return true
}

// SetLanguage switches the display language.
func (e *Engine) SetLanguage(lang models.Language) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !lang.Valid() {
		return e.reject(ErrUnsupportedLanguage, logrus.Fields{"language": lang})
	}
	if e.state.Language == lang {
		return nil
	}
	e.state.Language = lang
	e.persist(func(ctx context.Context) { e.persister.SaveLanguage(ctx, lang) })
	return nil
}

// Rank returns the dense rank of the player at index.
func (e *Engine) Rank(index int) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkPlayer(index); err != nil {
		return 0, err
	}
	return Rank(e.state.Players, index), nil
}

// Standing is one row of the derived leaderboard.
type Standing struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Total int    `json:"total"`
	Rank  int    `json:"rank"`
}

// Standings returns totals and ranks for every player in display order.
func (e *Engine) Standings() []Standing {
	e.mu.Lock()
	defer e.mu.Unlock()

	ranks := DenseRanks(e.state.Players)
	out := make([]Standing, len(e.state.Players))
	for i, p := range e.state.Players {
		out[i] = Standing{Index: i, Name: p.Name, Total: p.Total(), Rank: ranks[i]}
	}
	return out
}

// TotalScore sums every round of p, counting empty rounds as zero.
func TotalScore(p models.Player) int {
	return p.Total()
}

// Rank returns the 1-based dense rank of players[index] by ascending total.
// Tied players share a rank and no rank is skipped after a tie.
func Rank(players []models.Player, index int) int {
	if index < 0 || index >= len(players) {
		return 0
	}
	return DenseRanks(players)[index]
}

// DenseRanks ranks every player, lowest total first.
func DenseRanks(players []models.Player) []int {
	seen := make(map[int]bool, len(players))
	var totals []int
	for _, p := range players {
		t := p.Total()
		if !seen[t] {
			seen[t] = true
			totals = append(totals, t)
		}
	}
	sort.Ints(totals)

	position := make(map[int]int, len(totals))
	for i, t := range totals {
		position[t] = i + 1
	}
	ranks := make([]int, len(players))
	for i, p := range players {
		ranks[i] = position[p.Total()]
	}
	return ranks
}

func maxScore(players []models.Player, round int) int {
	best := 0
	for _, p := range players {
		v, _ := p.ScoreAt(round)
		if v > best {
			best = v
		}
	}
	return best
}

func (e *Engine) checkPlayer(index int) error {
	if index < 0 || index >= len(e.state.Players) {
		return e.reject(ErrPlayerNotFound, logrus.Fields{"player_index": index})
	}
	return nil
}

func (e *Engine) checkRound(round int) error {
	if round < 0 || round >= models.NumRounds {
		return e.reject(ErrRoundOutOfRange, logrus.Fields{"round": round})
	}
	return nil
}

func (e *Engine) reject(err *ValidationError, fields logrus.Fields) error {
	e.log.WithFields(fields).WithField("kind", err.Kind).Debug("operation rejected")
	return err
}

func (e *Engine) savePlayers() {
	players := e.state.Clone().Players
	e.persist(func(ctx context.Context) { e.persister.SavePlayers(ctx, players) })
}

func (e *Engine) saveRound() {
	round := e.state.CurrentRound
	e.persist(func(ctx context.Context) { e.persister.SaveRound(ctx, round) })
}

func (e *Engine) persist(fn func(ctx context.Context)) {
	if e.persister == nil {
		return
	}
	fn(context.Background())
}
