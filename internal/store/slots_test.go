package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jason-s-yu/carioca/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

// failingAdapter errors on every call.
type failingAdapter struct{}

func (failingAdapter) Load(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func (failingAdapter) Save(context.Context, string, string) error {
	return errors.New("disk on fire")
}

func TestSlotsRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	slots := NewSlots(mem, "", quietLogger())

	ana := models.NewPlayer("Ana")
	ana.SetScore(0, 0)
	ana.Winners[0] = true
	leo := models.NewPlayer("Leo")
	leo.SetScore(0, 10)
	leo.SetScore(1, 25)

	want := models.GameState{
		Players:      []models.Player{ana, leo},
		CurrentRound: 1,
		Language:     models.LanguageSwedish,
	}
	slots.SavePlayers(ctx, want.Players)
	slots.SaveRound(ctx, want.CurrentRound)
	slots.SaveLanguage(ctx, want.Language)

	raw, ok, err := mem.Load(ctx, "carioca-round")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", raw)

	assert.Equal(t, want, slots.LoadState(ctx))
}

func TestSlotsLoadDefaults(t *testing.T) {
	slots := NewSlots(NewMemoryStore(), "test-", quietLogger())
	assert.Equal(t, models.NewGameState(), slots.LoadState(context.Background()))
	assert.Equal(t, "test-players", slots.Key(SlotPlayers))
}

func TestSlotsLoadLegacyAndCorrupt(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	require.NoError(t, mem.Save(ctx, "carioca-players", `[{"name":"Ana","scores":[null,null,null,null,null,null,null,null]}]`))
	require.NoError(t, mem.Save(ctx, "carioca-round", "not-a-number"))

	st := NewSlots(mem, "", quietLogger()).LoadState(ctx)
	require.Len(t, st.Players, 1)
	assert.Equal(t, [models.NumRounds]bool{}, st.Players[0].Winners)
	assert.Equal(t, 0, st.CurrentRound)
	assert.Equal(t, models.LanguageSpanish, st.Language)

	require.NoError(t, mem.Save(ctx, "carioca-players", "{broken"))
	st = NewSlots(mem, "", quietLogger()).LoadState(ctx)
	assert.Empty(t, st.Players)
}

func TestSlotsSwallowBackendErrors(t *testing.T) {
	slots := NewSlots(failingAdapter{}, "", quietLogger())
	ctx := context.Background()

	assert.NotPanics(t, func() {
		slots.SavePlayers(ctx, nil)
		slots.SaveRound(ctx, 2)
		slots.SaveLanguage(ctx, models.LanguageEnglish)
	})
	assert.Equal(t, models.NewGameState(), slots.LoadState(ctx))
}
