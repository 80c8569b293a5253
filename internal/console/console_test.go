package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jason-s-yu/carioca/internal/game"
	"github.com/jason-s-yu/carioca/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(t *testing.T, script string) (*Console, *game.Engine, *bytes.Buffer) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	e := game.NewEngine(models.NewGameState(), nil, logger)
	out := &bytes.Buffer{}
	return New(e, strings.NewReader(script), out, logger), e, out
}

func TestRunScenario(t *testing.T) {
	script := strings.Join([]string{
		"lang en",
		"add Ana",
		"add Leo",
		"score 2 10",
		"win 1",
		"next",
		"quit",
	}, "\n")
	c, e, out := newTestConsole(t, script)

	require.NoError(t, c.Run(context.Background()))

	st := e.Snapshot()
	require.Len(t, st.Players, 2)
	assert.Equal(t, 1, st.CurrentRound)
	assert.True(t, st.Players[0].Winners[0])
	assert.Equal(t, 10, *st.Players[1].Scores[0])

	text := out.String()
	assert.Contains(t, text, "Carioca Scoreboard")
	assert.Contains(t, text, "Round 2: 1 Set + 1 Run")
	assert.Contains(t, text, "0*")
	assert.Contains(t, text, "[R2]")
}

func TestRejectionsAreTranslated(t *testing.T) {
	ctx := context.Background()
	c, e, out := newTestConsole(t, "")
	c.Execute(ctx, "add Ana")
	c.Execute(ctx, "score 1 7")
	assert.Contains(t, out.String(), "! Los puntos deben ser múltiplos de 5")
	assert.Nil(t, e.Snapshot().Players[0].Scores[0])

	c.Execute(ctx, "lang sv")
	c.Execute(ctx, "next")
	assert.Contains(t, out.String(), "! Du måste välja en vinnare innan du går vidare")

	c.Execute(ctx, "rm x")
	assert.Contains(t, out.String(), "! Användning: rm <n>")

	c.Execute(ctx, "dance")
	assert.Contains(t, out.String(), "Okänt kommando: dance")
}

func TestResetAsksForConfirmation(t *testing.T) {
	ctx := context.Background()
	c, e, _ := newTestConsole(t, "n\ns\n")
	c.Execute(ctx, "add Ana")

	c.Execute(ctx, "reset")
	assert.Len(t, e.Snapshot().Players, 1, "declined")

	c.Execute(ctx, "reset")
	assert.Empty(t, e.Snapshot().Players, "confirmed with the Spanish yes")
}

func TestScoreWithoutPointsClears(t *testing.T) {
	ctx := context.Background()
	c, e, _ := newTestConsole(t, "")
	c.Execute(ctx, "add Ana")
	c.Execute(ctx, "score 1 15")
	require.Equal(t, 15, *e.Snapshot().Players[0].Scores[0])

	c.Execute(ctx, "score 1")
	assert.Nil(t, e.Snapshot().Players[0].Scores[0])
}

func TestRunStopsAtEOF(t *testing.T) {
	c, _, out := newTestConsole(t, "add Ana\n")
	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "Ana")
}

func TestRunHonorsContext(t *testing.T) {
	c, e, _ := newTestConsole(t, "add Ana\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
	assert.Empty(t, e.Snapshot().Players, "typed line must not run after cancel")
}

func TestRunReturnsWhenCancelledWhileWaitingForInput(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	e := game.NewEngine(models.NewGameState(), nil, logger)
	in, w := io.Pipe()
	defer w.Close()
	c := New(e, in, io.Discard, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	// let Run block on the empty pipe before cancelling
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}

	// input arriving after cancel is never executed
	go w.Write([]byte("add Ana\n"))
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, e.Snapshot().Players)
}

func TestRenderShowsLanguageAndLegend(t *testing.T) {
	ctx := context.Background()
	c, _, out := newTestConsole(t, "")
	c.Execute(ctx, "lang en")
	assert.Contains(t, out.String(), "Language: en")

	c.Execute(ctx, "add Ana")
	assert.Contains(t, out.String(), "* = Winner")
	assert.Contains(t, out.String(), "reset: Reset Game")

	c.Execute(ctx, "lang sv")
	assert.Contains(t, out.String(), "Språk: sv")
	assert.Contains(t, out.String(), "* = Vinnare")
}

func TestQuitReturnsTrue(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestConsole(t, "")
	assert.True(t, c.Execute(ctx, "quit"))
	assert.False(t, c.Execute(ctx, ""))
	assert.False(t, c.Execute(ctx, "help"))
}
