// internal/store/slots.go
package store

import (
	"context"
	"time"

	"github.com/jason-s-yu/carioca/internal/models"
	"github.com/sirupsen/logrus"
)

// defaultTimeout bounds a single backend call.
const defaultTimeout = 5 * time.Second

// Slots reads and writes GameState through an Adapter, one slot at a time.
// Storage problems never reach the caller: loads degrade to defaults and failed
// saves are logged.
type Slots struct {
	adapter Adapter
	prefix  string
	logger  *logrus.Logger
	timeout time.Duration
}

// NewSlots wraps adapter. An empty prefix selects DefaultKeyPrefix.
func NewSlots(adapter Adapter, prefix string, logger *logrus.Logger) *Slots {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Slots{
		adapter: adapter,
		prefix:  prefix,
		logger:  logger,
		timeout: defaultTimeout,
	}
}

// Key returns the storage identifier used for slot.
func (s *Slots) Key(slot Slot) string {
	return Key(s.prefix, slot)
}

// LoadState restores a GameState from the three slots.
func (s *Slots) LoadState(ctx context.Context) models.GameState {
	state := models.NewGameState()

	if raw, ok := s.load(ctx, SlotPlayers); ok {
		players, err := DecodePlayers(raw)
		if err != nil {
			s.logger.WithError(err).WithField("slot", SlotPlayers).Warn("discarding unreadable players slot")
		} else {
			state.Players = players
		}
	}
	if raw, ok := s.load(ctx, SlotRound); ok {
		state.CurrentRound = DecodeRound(raw)
	}
	if raw, ok := s.load(ctx, SlotLanguage); ok {
		state.Language = DecodeLanguage(raw)
	}
	return state
}

// SavePlayers writes the players slot.
func (s *Slots) SavePlayers(ctx context.Context, players []models.Player) {
	raw, err := EncodePlayers(players)
	if err != nil {
		s.logger.WithError(err).WithField("slot", SlotPlayers).Warn("failed to encode slot")
		return
	}
	s.save(ctx, SlotPlayers, raw)
}

// SaveRound writes the round slot.
func (s *Slots) SaveRound(ctx context.Context, round int) {
	s.save(ctx, SlotRound, EncodeRound(round))
}

// SaveLanguage writes the language slot.
func (s *Slots) SaveLanguage(ctx context.Context, lang models.Language) {
	s.save(ctx, SlotLanguage, string(lang))
}

func (s *Slots) load(ctx context.Context, slot Slot) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, ok, err := s.adapter.Load(ctx, s.Key(slot))
	if err != nil {
		s.logger.WithError(err).WithField("slot", slot).Warn("failed to load slot, using default")
		return "", false
	}
	return raw, ok
}

func (s *Slots) save(ctx context.Context, slot Slot, raw string) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.adapter.Save(ctx, s.Key(slot), raw); err != nil {
		s.logger.WithError(err).WithField("slot", slot).Warn("failed to save slot")
		return
	}
	s.logger.WithField("slot", slot).Debug("slot saved")
}
