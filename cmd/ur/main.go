package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ur_go/internal/config"
	"ur_go/internal/dice"
	"ur_go/internal/i18n"
	"ur_go/internal/layout"
	"ur_go/internal/ui"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML file overriding the built-in configuration")
		logLevel   = flag.String("log-level", "", "log level (debug, info, warn, error); overrides the config")
		lang       = flag.String("lang", "", "label language; overrides the config")
		seed       = flag.Uint64("seed", 0, "dice seed, 0 picks one from the clock")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *lang != "" {
		cfg.Language = *lang
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if cfg.Language != "en" && !i18n.Has(cfg.Language) {
		log.Warn().Str("lang", cfg.Language).Strs("available", i18n.Languages()).Msg("no catalog for language, using English")
	}

	lay := layout.New(cfg)
	log.Info().
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Int("tile", lay.TileLen).
		Msg("Royal Game of Ur started")

	gameLoop := ui.NewGameLoop(cfg, lay, dice.NewRoller(cfg.Grid.Dice, *seed), i18n.New(cfg.Language))
	if err := ui.Run(gameLoop); err != nil {
		log.Fatal().Err(err).Msg("game loop")
	}
	log.Info().Msg("bye")
}
