package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"skyhaul/config"
	"skyhaul/game"
	"skyhaul/hook"
	"skyhaul/input"
	"skyhaul/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	seed := flag.Uint64("seed", 1, "Seed for the generated system")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	log := logger.L()

	if err := run(cfg, *seed, log); err != nil {
		log.Error("game exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, seed uint64, log *slog.Logger) error {
	outfits := map[string]game.Outfit{}
	if path := cfg.Data.OutfitsFile; path != "" {
		o, err := game.LoadOutfitsFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Warn("outfit catalogue missing", "path", path)
		case err != nil:
			return err
		default:
			outfits = o
		}
	}

	hooks := hook.New(log)
	defer hooks.Close()
	if dir := cfg.Data.HooksDir; dir != "" {
		n, err := hooks.LoadDir(dir)
		if err != nil {
			return err
		}
		log.Info("hooks loaded", "dir", dir, "scripts", n)
	}

	gc := game.DefaultConfig()
	gc.ScreenWidth, gc.ScreenHeight = cfg.Window.Width, cfg.Window.Height
	g, err := game.NewGame(game.Options{
		Config:   gc,
		Settings: cfg.InputSettings(),
		Layout:   cfg.Input.Layout,
		Outfits:  outfits,
		Notifier: hooks,
		Log:      log,
		Seed:     seed,
	})
	if err != nil {
		return err
	}

	if path := cfg.Input.KeybindsFile; path != "" {
		err := input.LoadKeybinds(path, g.Input().Registry, g.Keys())
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Info("no keybind file, using layout", "layout", cfg.Input.Layout)
		case err != nil:
			log.Warn("keybinds not loaded", "path", path, "error", err)
		}
		if cfg.Input.WatchKeybinds {
			w, err := input.WatchKeybinds(path, g.Keys(), g.Input().Reloads(), log)
			if err != nil {
				log.Warn("keybind watcher disabled", "error", err)
			} else {
				defer w.Close()
			}
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(g)
}
