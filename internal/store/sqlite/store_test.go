package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jason-s-yu/carioca/internal/models"
	"github.com/jason-s-yu/carioca/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carioca.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestLoadSave(t *testing.T) {
	s, _ := openTempStore(t)
	ctx := context.Background()

	_, ok, err := s.Load(ctx, "carioca-round")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, "carioca-round", "2"))
	require.NoError(t, s.Save(ctx, "carioca-round", "3"))

	v, ok, err := s.Load(ctx, "carioca-round")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestStateSurvivesReopen(t *testing.T) {
	s, path := openTempStore(t)
	ctx := context.Background()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	p := models.NewPlayer("Ana")
	p.SetScore(0, 20)
	slots := store.NewSlots(s, "", logger)
	slots.SavePlayers(ctx, []models.Player{p})
	slots.SaveRound(ctx, 4)
	slots.SaveLanguage(ctx, models.LanguageEnglish)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	st := store.NewSlots(reopened, "", logger).LoadState(ctx)
	require.Len(t, st.Players, 1)
	assert.Equal(t, 20, *st.Players[0].Scores[0])
	assert.Equal(t, 4, st.CurrentRound)
	assert.Equal(t, models.LanguageEnglish, st.Language)
}

func TestClosedStore(t *testing.T) {
	var s *Store
	_, _, err := s.Load(context.Background(), "k")
	assert.ErrorIs(t, err, store.ErrClosed)
	assert.ErrorIs(t, s.Save(context.Background(), "k", "v"), store.ErrClosed)
}

func TestStoreUsedAfterClose(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "k", "v"))

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second close is a no-op")

	_, _, err = s.Load(ctx, "k")
	assert.ErrorIs(t, err, store.ErrClosed)
	assert.ErrorIs(t, s.Save(ctx, "k", "w"), store.ErrClosed)
}
