// apps/solver/main.go
//
// wordle-solver entry point.
//
// Usage:
//
//	wordle-solver [play]                         interactive solver (default)
//	wordle-solver serve                          HTTP session API on $PORT
//	wordle-solver replay FILE                    play a YAML script of rounds
//	wordle-solver simulate [-opener W] [-random] [ANSWER]
//	                                             self-play; today's word if no ANSWER
//	wordle-solver import FILE                    copy a word list into $WORDS_DB
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/repl"
	"github.com/robalobadob/wordle/apps/solver/internal/replay"
	"github.com/robalobadob/wordle/apps/solver/internal/round"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	cmd, args := "play", os.Args[1:]
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}
	// Only the server logs JSON; the rest talk to a person.
	config.SetupLogging(cfg, cmd != "serve", os.Stderr)

	ctx := context.Background()
	switch cmd {
	case "play":
		err = play(ctx, cfg)
	case "serve":
		err = serve(ctx, cfg)
	case "replay":
		err = runReplay(ctx, cfg, args)
	case "simulate":
		err = simulate(ctx, cfg, args)
	case "import":
		err = importWords(ctx, cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\nusage: wordle-solver [play|serve|replay FILE|simulate [-opener W] [-random] [ANSWER]|import FILE]\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("failed")
	}
}

func loadWords(ctx context.Context, cfg config.Config) (*words.Dictionary, error) {
	return words.Load(ctx, words.Source{DB: cfg.WordsDB, File: cfg.WordsFile})
}

func play(ctx context.Context, cfg config.Config) error {
	dict, err := loadWords(ctx, cfg)
	if err != nil {
		return err
	}
	opts := repl.Options{Out: os.Stdout, Dict: dict, MaxTurns: cfg.MaxTurns}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		t, err := repl.NewTerminal()
		if err != nil {
			return err
		}
		defer t.Close()
		opts.In, opts.Confirm = t, repl.Confirm
	} else {
		opts.In = repl.NewScanner(os.Stdin)
	}
	return repl.Run(ctx, opts)
}

func serve(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	dict, err := loadWords(ctx, cfg)
	if err != nil {
		return err
	}
	srv := httpserver.New(store.NewMemoryStore(), dict, httpserver.Options{
		ClientOrigin: cfg.ClientOrigin,
		Secret:       []byte(cfg.SessionSecret),
		SessionTTL:   cfg.SessionTTL,
		MaxTurns:     cfg.MaxTurns,
	})
	go srv.SweepLoop(ctx, time.Minute)

	log.Info().Str("port", cfg.Port).Int("words", dict.Len()).Msg("starting solver server")
	return srv.Serve(ctx, ":"+cfg.Port)
}

func runReplay(ctx context.Context, cfg config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("replay: expected one script path, got %d", len(args))
	}
	dict, err := loadWords(ctx, cfg)
	if err != nil {
		return err
	}
	s, err := replay.LoadFile(args[0])
	if err != nil {
		return err
	}
	rep, err := replay.Run(s, dict, cfg.MaxTurns)
	if err != nil {
		return err
	}
	return rep.Write(os.Stdout)
}

func simulate(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	opener := fs.String("opener", "", "first guess (default: first dictionary word)")
	random := fs.Bool("random", false, "play against a random word instead of today's")
	if err := fs.Parse(args); err != nil {
		return err
	}
	dict, err := loadWords(ctx, cfg)
	if err != nil {
		return err
	}

	answer := fs.Arg(0)
	switch {
	case answer != "":
	case *random:
		answer = dict.Random()
	default:
		answer = daily.Pick(dict, time.Now(), cfg.DailySalt)
		log.Info().Str("date", daily.DateKey(time.Now())).Msg("using today's word")
	}
	res, err := round.Simulate(dict, answer, *opener, cfg.MaxTurns)
	if err != nil {
		return err
	}

	outcome := "not found"
	if res.Found {
		outcome = fmt.Sprintf("found in %d", len(res.Guesses))
	}
	fmt.Printf("%s: %s (%s)\n", res.Answer, outcome, strings.Join(res.Guesses, " → "))
	return nil
}

func importWords(ctx context.Context, cfg config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("import: expected one word list path, got %d", len(args))
	}
	if cfg.WordsDB == "" {
		return fmt.Errorf("import: WORDS_DB is not set")
	}
	d, err := words.LoadFile(args[0])
	if err != nil {
		return err
	}
	db, err := words.OpenDB(cfg.WordsDB)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := words.Migrate(db); err != nil {
		return err
	}
	n, err := words.ImportDB(ctx, db, d)
	if err != nil {
		return err
	}
	log.Info().Int("read", d.Len()).Int("inserted", n).Str("db", cfg.WordsDB).Msg("import done")
	return nil
}
