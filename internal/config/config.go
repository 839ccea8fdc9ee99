package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/42triangles/minecord/internal/minefield"
)

const DefaultMine = ":bomb:"

var (
	ErrUsage     = errors.New("expected WIDTH HEIGHT MINECOUNT [MINE]")
	ErrEmptyMine = errors.New("mine token cannot be empty")
)

// Conf describes one board. It is not mutated after it is resolved.
type Conf struct {
	Width     int    `schema:"width,required"`
	Height    int    `schema:"height,required"`
	MineCount int    `schema:"minecount,required"`
	Mine      string `schema:"mine"`
	OpenFirst bool   `schema:"open_first"`
}

// Parse decodes query-style values into a Conf. Missing mine token falls
// back to [DefaultMine]. Parse does not validate.
func Parse(src map[string][]string) (Conf, error) {
	var conf Conf
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&conf, src); err != nil {
		return Conf{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if conf.Mine == "" {
		conf.Mine = DefaultMine
	}
	return conf, nil
}

// Cells returns width*height. Only meaningful once [Conf.Validate] passed.
func (c Conf) Cells() int {
	return c.Width * c.Height
}

func (c Conf) Validate() error {
	if err := minefield.CheckDimensions(c.Width, c.Height); err != nil {
		return fmt.Errorf("invalid board size %dx%d: %w", c.Width, c.Height, err)
	}
	if c.MineCount < 0 {
		return fmt.Errorf("invalid mine count %d: %w", c.MineCount, minefield.ErrNegativeMines)
	}
	if c.MineCount > c.Cells() {
		return fmt.Errorf(
			"%d mines do not fit on %dx%d: %w",
			c.MineCount, c.Width, c.Height, minefield.ErrTooManyMines,
		)
	}
	if c.OpenFirst && c.MineCount == c.Cells() {
		return fmt.Errorf("cannot open a cell on a full board: %w", minefield.ErrNoSafeCell)
	}
	if c.Mine == "" {
		return ErrEmptyMine
	}
	return nil
}

func (c Conf) Fields() logrus.Fields {
	return map[string]any{
		"width":      c.Width,
		"height":     c.Height,
		"minecount":  c.MineCount,
		"mine":       c.Mine,
		"open_first": c.OpenFirst,
	}
}

// Resolve builds a validated Conf from positional arguments, a preset name
// and the defaults file. With a preset, args may only hold the mine token.
func Resolve(args []string, file *File, preset string, openFirst bool) (Conf, error) {
	values := make(map[string][]string)

	if preset != "" {
		p, err := file.Preset(preset)
		if err != nil {
			return Conf{}, err
		}
		if len(args) > 1 {
			return Conf{}, fmt.Errorf("preset %q takes at most a mine token: %w", preset, ErrUsage)
		}
		values["width"] = []string{strconv.Itoa(p.Width)}
		values["height"] = []string{strconv.Itoa(p.Height)}
		values["minecount"] = []string{strconv.Itoa(p.MineCount)}
		if len(args) == 1 {
			values["mine"] = []string{args[0]}
		}
	} else {
		if len(args) < 3 || len(args) > 4 {
			return Conf{}, ErrUsage
		}
		values["width"] = []string{args[0]}
		values["height"] = []string{args[1]}
		values["minecount"] = []string{args[2]}
		if len(args) == 4 {
			values["mine"] = []string{args[3]}
		}
	}

	if _, ok := values["mine"]; !ok && file.Mine != "" {
		values["mine"] = []string{file.Mine}
	}
	values["open_first"] = []string{strconv.FormatBool(openFirst || file.OpenFirst)}

	conf, err := Parse(values)
	if err != nil {
		return Conf{}, err
	}
	return conf, conf.Validate()
}

func Development() bool {
	development, ok := os.LookupEnv("MINECORD_DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// Path returns the defaults file path from the environment, if any.
func Path() string {
	return os.Getenv("MINECORD_CONFIG")
}
