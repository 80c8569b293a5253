// Package console is a line-oriented terminal front end for the scoreboard engine.
// It only renders engine state and forwards intents; every rule lives in the engine.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/jason-s-yu/carioca/internal/game"
	"github.com/jason-s-yu/carioca/internal/i18n"
	"github.com/jason-s-yu/carioca/internal/models"
	"github.com/sirupsen/logrus"
)

// Console reads commands from in and writes the table to out.
type Console struct {
	engine *game.Engine
	in     io.Reader
	out    io.Writer
	log    *logrus.Entry

	// lines is fed by a single reader goroutine so a blocked read never holds up
	// cancellation; it is closed at end of input, after scanErr is set.
	lines     chan string
	scanErr   error
	startScan sync.Once
}

// New builds a console around engine.
func New(engine *game.Engine, in io.Reader, out io.Writer, logger *logrus.Logger) *Console {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Console{
		engine: engine,
		in:     in,
		out:    out,
		log:    logger.WithField("session", engine.ID.String()),
		lines:  make(chan string),
	}
}

// Run renders the board and processes commands until quit, end of input, or ctx is done.
// Once ctx is done no further line is executed, even one already typed.
func (c *Console) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Render()
	for {
		fmt.Fprint(c.out, "> ")
		line, err := c.readLine(ctx)
		if err != nil {
			fmt.Fprintln(c.out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if quit := c.Execute(ctx, line); quit {
			return nil
		}
	}
}

// Execute runs one command line. It reports whether the user asked to quit.
func (c *Console) Execute(ctx context.Context, line string) bool {
	t := c.translator()
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	var err error
	switch strings.ToLower(cmd) {
	case "":
		return false
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(c.out, t.T(i18n.KeyHelp))
		return false
	case "show":
	case "add":
		err = c.engine.AddPlayer(rest)
	case "rm", "remove":
		var idx int
		if idx, err = c.playerArg(rest, "rm <n>"); err == nil {
			err = c.engine.RemovePlayer(idx)
		}
	case "win":
		var idx int
		if idx, err = c.playerArg(rest, "win <n>"); err == nil {
			err = c.engine.ToggleWinner(idx, c.engine.CurrentRound())
		}
	case "score":
		who, pts, _ := strings.Cut(rest, " ")
		var idx int
		if idx, err = c.playerArg(who, "score <n> <pts>"); err == nil {
			err = c.engine.UpdateScore(idx, c.engine.CurrentRound(), pts)
		}
	case "next":
		err = c.engine.NextRound()
	case "prev":
		c.engine.PrevRound()
	case "reset":
		if c.confirm(ctx, t.T(i18n.KeyResetConfirm)) {
			c.engine.ResetGame(true)
		}
	case "lang":
		err = c.engine.SetLanguage(models.Language(strings.ToLower(rest)))
	default:
		fmt.Fprintln(c.out, t.T(i18n.KeyUnknownCommand, cmd))
		return false
	}

	if err != nil {
		c.log.WithError(err).WithField("command", cmd).Debug("command rejected")
		fmt.Fprintf(c.out, "! %s\n", c.translator().Error(err))
		return false
	}
	c.Render()
	return false
}

// Render draws the whole board in the active language.
func (c *Console) Render() {
	t := c.translator()
	st := c.engine.Snapshot()

	fmt.Fprintf(c.out, "\n%s  (%s)\n", t.T(i18n.KeyTitle), t.T(i18n.KeyLanguage, st.Language))
	if len(st.Players) == 0 {
		fmt.Fprintf(c.out, "%s: add <%s>\n", t.T(i18n.KeyAddPlayers), strings.ToLower(t.T(i18n.KeyPlayerName)))
		return
	}

	fmt.Fprintf(c.out, "%s: %s\n", t.Round(st.CurrentRound), t.Objective(st.CurrentRound))
	if st.CurrentRound == game.LastRound {
		fmt.Fprintln(c.out, t.T(i18n.KeyLastRound))
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	header := []string{"#", t.T(i18n.KeyColPlayer)}
	for r := 0; r < models.NumRounds; r++ {
		label := t.T(i18n.KeyRoundShort, r+1)
		if r == st.CurrentRound {
			label = "[" + label + "]"
		}
		header = append(header, label)
	}
	header = append(header, t.T(i18n.KeyColTotal), t.T(i18n.KeyColRank))
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	ranks := game.DenseRanks(st.Players)
	for i, p := range st.Players {
		row := []string{strconv.Itoa(i + 1), p.Name}
		for r := 0; r < models.NumRounds; r++ {
			row = append(row, formatCell(p, r))
		}
		row = append(row, strconv.Itoa(game.TotalScore(p)), strconv.Itoa(ranks[i]))
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	fmt.Fprintf(c.out, "* = %s   reset: %s\n", t.T(i18n.KeyWinner), t.T(i18n.KeyReset))
	fmt.Fprintf(c.out, "%s: %s\n", t.T(i18n.KeyScoring),
		t.T(i18n.KeyScoringGuide, game.PointsJoker, game.PointsAce, game.PointsHigh, game.PointsLow))
}

// formatCell shows "-" for an empty round and marks the round winner with "*".
func formatCell(p models.Player, round int) string {
	v, ok := p.ScoreAt(round)
	if !ok {
		return "-"
	}
	s := strconv.Itoa(v)
	if p.Winners[round] {
		s += "*"
	}
	return s
}

func (c *Console) translator() *i18n.Translator {
	return i18n.New(c.engine.Language())
}

// playerArg parses a 1-based player number into an index.
func (c *Console) playerArg(arg, usage string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, errors.New(c.translator().T(i18n.KeyUsage, usage))
	}
	return n - 1, nil
}

func (c *Console) confirm(ctx context.Context, question string) bool {
	t := c.translator()
	fmt.Fprintf(c.out, "%s %s ", question, t.T(i18n.KeyConfirmHint))
	answer, err := c.readLine(ctx)
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer != "" && (strings.HasPrefix(answer, t.T(i18n.KeyConfirmYes)) || strings.HasPrefix(answer, "y"))
}

// readLine waits for the next input line. It returns io.EOF at end of input and
// ctx.Err() once ctx is done, even if a line is already waiting.
func (c *Console) readLine(ctx context.Context) (string, error) {
	c.startScan.Do(func() { go c.scan() })
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !ok {
			if c.scanErr != nil {
				return "", c.scanErr
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (c *Console) scan() {
	defer close(c.lines)
	sc := bufio.NewScanner(c.in)
	for sc.Scan() {
		c.lines <- sc.Text()
	}
	c.scanErr = sc.Err()
}
