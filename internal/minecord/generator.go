package minecord

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/42triangles/minecord/internal/config"
	"github.com/42triangles/minecord/internal/minefield"
)

var Log = logrus.New()

// Numerals maps every possible neighbour count to its emoji name.
var Numerals = [9]string{
	":zero:",
	":one:",
	":two:",
	":three:",
	":four:",
	":five:",
	":six:",
	":seven:",
	":eight:",
}

type Generator struct {
	conf config.Conf
	rnd  minefield.Rand
}

// NewGenerator expects a validated conf. rnd must not be shared with
// concurrent renders.
func NewGenerator(conf config.Conf, rnd minefield.Rand) *Generator {
	return &Generator{conf: conf, rnd: rnd}
}

func (g *Generator) Conf() config.Conf {
	return g.conf
}

// Render mines a fresh field and lays it out as spoiler tokens. Violated
// field preconditions are returned as errors and no board is produced.
func (g *Generator) Render() (board *Board, err error) {
	defer func() {
		var ae minefield.AssertionError
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.As(e, &ae) {
				panic(r)
			}
			board, err = nil, fmt.Errorf("unable to generate minefield: %w", ae)
		}
	}()

	conf := g.conf
	field := minefield.New(conf.Width, conf.Height)
	field.Mine(g.rnd, conf.MineCount)

	var (
		safe      minefield.Position
		safeCount int
	)
	if conf.OpenFirst {
		safe, safeCount = field.SafestCell(g.rnd)
	}

	Log.WithFields(logrus.Fields{
		"size":       fmt.Sprintf("%dx%d", conf.Width, conf.Height),
		"mines":      field.Mines(),
		"open_first": conf.OpenFirst,
		"safe":       safe.String(),
		"safe_count": safeCount,
	}).Debug("rendering minefield")

	board = &Board{
		Header: fmt.Sprintf("***%dx%d, %d mines***", conf.Width, conf.Height, conf.MineCount),
		Rows:   make([][]Token, field.Height()),
	}
	for y := range field.Height() {
		row := make([]Token, field.Width())
		for x := range field.Width() {
			pos := minefield.Position{X: x, Y: y}
			switch n, ok := field.Number(pos); {
			case conf.OpenFirst && pos == safe:
				row[x] = Token{Body: Numerals[safeCount], Revealed: true}
			case ok:
				row[x] = Token{Body: Numerals[n]}
			default:
				row[x] = Token{Body: conf.Mine}
			}
		}
		board.Rows[y] = row
	}

	return board, nil
}

func Render(conf config.Conf, rnd minefield.Rand) (*Board, error) {
	return NewGenerator(conf, rnd).Render()
}
