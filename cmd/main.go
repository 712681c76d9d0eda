package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/Trungkien03/poker-hand-logic/appconfig"
	"github.com/Trungkien03/poker-hand-logic/domain/deck"
	"github.com/Trungkien03/poker-hand-logic/domain/poker"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

var errConfig = errors.New("invalid configuration")

// session is what the commands share once flags and config are resolved.
type session struct {
	cfg  *appconfig.AppConfig
	log  *slog.Logger
	eval *poker.Evaluator
	out  io.Writer
	// jsonFlag is --json as given, known before the config loads.
	jsonFlag bool
}

func (s *session) jsonOutput() bool {
	if s.cfg == nil {
		return s.jsonFlag
	}
	return s.cfg.Output == appconfig.OutputJSON
}

func run(args []string, out, errOut io.Writer) int {
	s := &session{out: out}
	app := newApp(s, out, errOut)
	if err := app.Run(args); err != nil {
		printError(s, errOut, err)
		return 1
	}
	return 0
}

func newApp(s *session, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:                      "pokerhand",
		Usage:                     "find the best poker hand and the winners of a showdown",
		Writer:                    out,
		ErrWriter:                 errOut,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "config file (yaml, json, toml or env)", EnvVars: []string{"POKERHAND_CONFIG"}},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.IntFlag{Name: "workers", Usage: "players evaluated concurrently"},
			&cli.BoolFlag{Name: "json", Usage: "print results as JSON"},
		},
		Before: func(c *cli.Context) error {
			return s.setup(c, errOut)
		},
		Commands: []*cli.Command{
			{
				Name:      "best",
				Usage:     "print the best hand in up to ten cards",
				ArgsUsage: "CARD...",
				Action:    s.best,
			},
			{
				Name:  "winners",
				Usage: "resolve the winners among several players",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "player", Aliases: []string{"p"}, Usage: "ID=CARD,CARD,... (repeatable)"},
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "JSON array of {\"id\", \"cards\"} players"},
				},
				Action: s.winners,
			},
			{
				Name:  "deal",
				Usage: "deal random hands from a shuffled deck and resolve the winners",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "players", Value: 2, Usage: "number of players"},
					&cli.IntFlag{Name: "cards", Value: 7, Usage: "cards per player"},
				},
				Action: s.deal,
			},
			{
				Name:  "env",
				Usage: "list the environment variables read at startup",
				Action: func(c *cli.Context) error {
					u, err := appconfig.Usage()
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, u)
					return err
				},
			},
		},
	}
}

func (s *session) setup(c *cli.Context, errOut io.Writer) error {
	s.jsonFlag = c.Bool("json")
	cfg, err := appconfig.LoadAppConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.Bool("json") {
		cfg.Output = appconfig.OutputJSON
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	level, _ := cfg.SlogLevel()

	logger := pterm.DefaultLogger.WithLevel(ptermLevel(level)).WithWriter(errOut)
	if cfg.Output == appconfig.OutputJSON {
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	}
	s.cfg = cfg
	s.log = slog.New(pterm.NewSlogHandler(logger))
	s.eval = poker.NewEvaluator(poker.WithLogger(s.log), poker.WithWorkers(cfg.Workers))
	s.log.Debug("configuration loaded", "workers", cfg.Workers, "output", cfg.Output)
	return nil
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	}
	return pterm.LogLevelError
}

func (s *session) best(c *cli.Context) error {
	cards, err := parseCardArgs(c.Args().Slice())
	if err != nil {
		return err
	}
	res, err := s.eval.BestHand(cards)
	if err != nil {
		return err
	}
	s.log.Info("hand evaluated", "category", res.Category.String(), "cards", len(cards))
	if s.jsonOutput() {
		return writeJSON(s.out, res)
	}
	_, err = fmt.Fprintln(s.out, handPanel(res))
	return err
}

func (s *session) winners(c *cli.Context) error {
	var players []poker.PlayerEntry
	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if players, err = decodePlayers(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	for _, p := range c.StringSlice("player") {
		entry, err := parsePlayerArg(p)
		if err != nil {
			return err
		}
		players = append(players, entry)
	}
	return s.resolve(players)
}

func (s *session) deal(c *cli.Context) error {
	n, size := c.Int("players"), c.Int("cards")
	if size > poker.MaxCards {
		return fmt.Errorf("%w: %d cards per player, at most %d allowed", poker.ErrInvalidCardCount, size, poker.MaxCards)
	}
	d := deck.New()
	d.Shuffle()
	hands, err := d.Deal(n, size)
	if err != nil {
		return err
	}
	players := make([]poker.PlayerEntry, len(hands))
	for i, h := range hands {
		players[i] = poker.PlayerEntry{ID: uuid.NewString(), Cards: h}
	}
	s.log.Debug("hands dealt", "players", n, "cards", size, "left", d.Remaining())
	return s.resolve(players)
}

func (s *session) resolve(players []poker.PlayerEntry) error {
	set, err := s.eval.ResolveWinners(players)
	if err != nil {
		return err
	}
	s.log.Info("showdown resolved", "players", len(players), "winners", set.WinCount)
	if s.jsonOutput() {
		return writeJSON(s.out, set)
	}
	return renderShowdown(s.out, set)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// errorCode tags err for JSON output.
func errorCode(err error) string {
	if code := poker.ErrorCode(err); code != "" {
		return code
	}
	if errors.Is(err, errConfig) {
		return "ConfigError"
	}
	return "Error"
}

func printError(s *session, errOut io.Writer, err error) {
	if s.jsonOutput() {
		_ = writeJSON(errOut, map[string]string{
			"error":   errorCode(err),
			"message": err.Error(),
		})
		return
	}
	fmt.Fprint(errOut, pterm.Error.Sprintln(err))
}
