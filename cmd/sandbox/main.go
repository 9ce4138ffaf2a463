package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"blockworld/internal/app"
	"blockworld/internal/game/config"
	"blockworld/internal/game/sim"
)

func main() {
	cfg := config.Default()

	configPath := flag.String("config", "sandbox.yaml", "config file path")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "world width in blocks")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "world height in blocks")
	flag.IntVar(&cfg.Depth, "depth", cfg.Depth, "world depth in blocks")
	flag.IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "chunk footprint in blocks")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world generation seed")
	flag.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "simulation ticks per second")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "screen pixels per world column")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	fromFile, err := config.Load(*configPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	config.Merge(cfg, fromFile, explicit)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	s, err := sim.New(cfg.Width, cfg.Height, cfg.Depth, cfg.ChunkSize, cfg.Seed, cfg.TickRate)
	if err != nil {
		log.Error("create simulation", "error", err)
		os.Exit(1)
	}
	log.Info("world generated",
		"seed", cfg.Seed,
		"size", cfg.Width*cfg.Height*cfg.Depth,
		"chunk", cfg.ChunkSize,
	)

	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Depth*cfg.Scale)
	ebiten.SetWindowTitle("blockworld")

	if err := ebiten.RunGame(app.New(s, cfg, log)); err != nil {
		log.Error("game loop", "error", err)
		os.Exit(1)
	}
}
