package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/internal/console"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"Path to HCL config file" default:"drawpoker.hcl"`
	Seed    int64            `help:"Seed for deterministic shuffles and opponent decisions" default:"0"`
	Debug   bool             `short:"d" help:"Enable debug logging"`
	NoColor bool             `help:"Disable colored output"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawpoker"),
		kong.Description("Heads-up five-card draw poker against a scripted opponent"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)
	err := run(&cli)
	ctx.FatalIfErrorf(err)
}

func run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := setupLogger(cli, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	logger.Debug("session starting", "seed", seed, "config", cli.Config)

	styles := console.DefaultStyles()
	if cli.NoColor || !cfg.UI.Color {
		styles = console.PlainStyles()
	}

	fmt.Println(styles.Title.Render(" ♠ ♥ Five-Card Draw Poker ♦ ♣ "))
	fmt.Println()
	fmt.Printf("You and the opponent each start with $%d.\n", cfg.Game.StartingBank)
	fmt.Printf("The ante is $%d per hand.\n", cfg.Game.Ante)

	session := game.NewSession(cfg.Game.StartingBank)
	policy := game.NewPolicy(rng, game.PolicyConfig{
		MinBet:                cfg.Policy.MinBet,
		SpeculativeCallLimit:  cfg.Policy.SpeculativeCallLimit,
		SpeculativeCallChance: cfg.Policy.SpeculativeCallChance,
	})

	prompter := console.NewPrompter(os.Stdin, os.Stdout, styles)
	engine := game.NewEngine(session, prompter,
		game.WithRNG(rng),
		game.WithPolicy(policy),
		game.WithAnte(cfg.Game.Ante),
		game.WithLogger(logger),
	)
	engine.EventBus().Subscribe(console.NewDisplay(os.Stdout, styles))

	for !session.Finished() {
		if _, err := engine.PlayHand(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if session.Finished() {
			break
		}
		if !prompter.Confirm("Play another hand?") {
			break
		}
	}

	printSummary(styles, session)
	return nil
}

func setupLogger(cli *CLI, cfg *config.Config) (*log.Logger, func(), error) {
	var level log.Level
	switch cfg.UI.LogLevel {
	case "debug":
		level = log.DebugLevel
	case "info":
		level = log.InfoLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	default:
		level = log.InfoLevel
	}
	if cli.Debug {
		level = log.DebugLevel
	}

	sink := io.Writer(os.Stderr)
	closeLog := func() {}
	if cfg.UI.LogFile != "" {
		f, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		sink = f
		closeLog = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(sink, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	return logger, closeLog, nil
}

func printSummary(styles console.Styles, session *game.Session) {
	playerBank := session.Bank(game.SeatPlayer)
	opponentBank := session.Bank(game.SeatOpponent)

	fmt.Println()
	fmt.Println("Final bankrolls:")
	fmt.Printf("You: $%d | Opponent: $%d\n", playerBank, opponentBank)
	switch {
	case playerBank > opponentBank:
		fmt.Println(styles.Success.Render("You come out ahead. Well played!"))
	case playerBank < opponentBank:
		fmt.Println(styles.Error.Render("Opponent has the edge this time."))
	default:
		fmt.Println("It's a wash. Thanks for playing!")
	}
}
