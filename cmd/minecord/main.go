package main

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	flag "github.com/spf13/pflag"

	"github.com/42triangles/minecord/internal/config"
	"github.com/42triangles/minecord/internal/minecord"
)

// Longest message a chat client accepts in one post.
const messageLimit = 2000

var (
	log = logrus.New()

	configPath string
	preset     string
	openFirst  bool
	seed       uint64
	count      int
	verbose    bool
	logFile    string
)

func init() {
	flag.StringVarP(&configPath, "config", "c", "", "defaults file path (env MINECORD_CONFIG)")
	flag.StringVarP(&preset, "preset", "p", "", "named board size instead of WIDTH HEIGHT MINECOUNT")
	flag.BoolVarP(&openFirst, "open-first", "o", false, "reveal the safest cell")
	flag.Uint64VarP(&seed, "seed", "s", 0, "seed for a reproducible board")
	flag.IntVarP(&count, "count", "n", 1, "number of boards to generate")
	flag.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flag.StringVar(&logFile, "log-file", "", "also write logs to a rotated file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] WIDTH HEIGHT MINECOUNT [MINE]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s [flags] --preset NAME [MINE]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose || config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to open log file: ", err)
		}
		log.AddHook(hook)
	}

	minecord.Log = log
}

func loadDefaults() *config.File {
	path := configPath
	if path == "" {
		path = config.Path()
	}
	if path == "" {
		return config.DefaultFile()
	}
	file, err := config.LoadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("path", path).Debug("loaded defaults")
	return file
}

func createRand() *rand.Rand {
	if flag.CommandLine.Changed("seed") {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	flag.Parse()

	setupLogging()

	conf, err := config.Resolve(flag.Args(), loadDefaults(), preset, openFirst)
	if errors.Is(err, config.ErrUsage) {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	} else if err != nil {
		log.Fatal("invalid configuration: ", err)
	}
	if count < 1 {
		log.Fatalf("invalid board count %d", count)
	}

	log.WithFields(conf.Fields()).Debug("config")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	boards, err := minecord.RenderMany(ctx, conf, minecord.SeedsFrom(createRand(), count))
	if err != nil {
		log.Fatal(err)
	}

	for i, board := range boards {
		if i > 0 {
			fmt.Println()
		}
		text := board.String()
		if n := utf8.RuneCountInString(text); n > messageLimit {
			log.WithFields(logrus.Fields{
				"board":  i,
				"length": n,
				"limit":  messageLimit,
			}).Warn("board does not fit in a single message")
		}
		fmt.Println(text)
	}
}
