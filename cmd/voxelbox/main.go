package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-craft/voxelbox/internal/sandbox"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/config"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/storage"
	"github.com/go-theft-craft/voxelbox/internal/sandbox/term"
)

func main() {
	cfg := config.DefaultConfig()

	dir := flag.String("dir", ".", "directory holding config.json")
	writeConfig := flag.Bool("write-config", false, "write the effective config to config.json and exit")
	flag.IntVar(&cfg.WorldWidth, "width", cfg.WorldWidth, "world width in cells")
	flag.IntVar(&cfg.WorldDepth, "depth", cfg.WorldDepth, "world depth in cells")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, "terrain generator (flat, hills)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "colour and terrain seed, 0 for time-based")
	flag.StringVar(&cfg.Traversal, "traversal", cfg.Traversal, "aim ray traversal (march, dda)")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	flag.Float64Var(&cfg.MoveSpeed, "speed", cfg.MoveSpeed, "movement per frame in cells")
	flag.Float64Var(&cfg.LookSensitivity, "sensitivity", cfg.LookSensitivity, "degrees per pointer pixel")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	// The terminal owns stdout while running, so early failures go to stderr.
	bootLog := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	store, err := storage.New(*dir, bootLog)
	if err != nil {
		bootLog.Error("open storage", "error", err)
		os.Exit(1)
	}

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	// Environment overrides apply to this run only and are never saved.
	if err := resolveConfig(cfg, store, explicit, !*writeConfig); err != nil {
		bootLog.Error("resolve config", "error", err)
		os.Exit(1)
	}

	if *writeConfig {
		if err := store.SaveConfig(cfg); err != nil {
			bootLog.Error("save config", "error", err)
			os.Exit(1)
		}
		bootLog.Info("config written", "path", store.ConfigPath())
		return
	}

	if err := run(cfg, *dir); err != nil {
		bootLog.Error("voxelbox", "error", err)
		os.Exit(1)
	}
}

// resolveConfig fills the fields of cfg not set by an explicit flag from
// config.json and, if withEnv, from VOXELBOX_* variables, then validates it.
func resolveConfig(cfg *config.Config, store *storage.Storage, explicit map[string]bool, withEnv bool) error {
	fromFile := config.DefaultConfig()
	if err := store.LoadConfig(fromFile); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if withEnv {
		if err := config.ApplyEnv(fromFile); err != nil {
			return fmt.Errorf("apply environment: %w", err)
		}
	}
	config.Merge(cfg, fromFile, explicit)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

func run(cfg *config.Config, dir string) error {
	level, err := cfg.Level()
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	logPath := cfg.LogFile
	if !filepath.IsAbs(logPath) {
		logPath = filepath.Join(dir, logPath)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))

	sb, err := sandbox.New(cfg, log)
	if err != nil {
		return fmt.Errorf("create sandbox: %w", err)
	}
	defer sb.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	t := term.New(screen, sb, cfg.FPS, cfg.CellPixels, log.With("component", "term"))
	if err := t.Run(ctx); err != nil {
		log.Error("terminal error", "error", err)
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}
