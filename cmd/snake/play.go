package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/audio/device"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagMute bool

// audioBuffer is the number of sound requests that may wait for the device.
const audioBuffer = 4

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls (configurable):
  Arrows, WASD, HJKL  - Steer
  Space               - Restart (also mid-game)
  ?                   - Toggle help
  Q/Ctrl+C            - Quit

Examples:
  snake play
  snake play --mute
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, logFile := logging.Open(cfg.Log, os.Stderr)
	defer logFile.Close()
	logger.Info("config loaded", "source", source.Path)
	for _, skipped := range source.Skipped {
		fmt.Fprintf(os.Stderr, "Warning: config skipped: %v\n", skipped)
		logger.Warn("config file skipped", "path", skipped.Path, "error", skipped.Err)
	}

	rt := core.DefaultConfig()
	rt.TickInterval = cfg.TickInterval
	rt.Seed = flagSeed

	// Get terminal size before the program takes over
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	effects, closeAudio := openAudio(ctx, cfg.Sounds, logger)
	defer closeAudio()

	sim := snake.NewSim(snake.DefaultBoard, rand.New(rand.NewSource(rt.Seed)))
	driver := loop.New(sim, effects, logger)
	logger.Info("game started", "seed", rt.Seed, "tick", rt.TickInterval)

	err = tui.Run(ctx, driver, tui.Options{
		Runtime: rt,
		Keys:    cfg.Keys,
		Theme:   cfg.Theme,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("game error: %w", err)
	}

	snap := driver.Snapshot()
	logger.Info("game ended", "score", snap.Score, "length", snap.Len())
	return nil
}

// openAudio connects the effect bank to the output device. Any failure
// leaves the game silent; it is never fatal.
func openAudio(ctx context.Context, sounds config.Sounds, logger *log.Logger) (audio.Effects, func()) {
	if flagMute || !sounds.Enabled {
		logger.Debug("sound effects muted")
		return audio.Nop{}, func() {}
	}

	backend, err := device.New(sounds.Volume)
	if err != nil {
		logger.Warn("sound effects disabled", "error", err)
		return audio.Nop{}, func() {}
	}

	bank := audio.LoadBank(backend, audio.Sources{
		Eat:      sounds.Eat,
		GameOver: sounds.GameOver,
	}, logger)
	dispatcher := audio.Async(ctx, bank, audioBuffer)

	return dispatcher, func() {
		dispatcher.Close()
		//nolint:errcheck // Best-effort release at exit
		bank.Close()
	}
}
