// Package audio defines the sound-effect collaborator of the game loop.
// Effects are fire-and-forget: callers never wait for playback, and a clip
// that failed to load is silently skipped.
package audio

import (
	"github.com/charmbracelet/log"
)

// Effects plays the game's sound effects.
type Effects interface {
	PlayEat()
	PlayGameOver()
}

// Clip is a loaded sound that can be replayed from its beginning.
type Clip interface {
	// Restart stops the clip if it is playing and plays it from the start.
	// It must not block on playback.
	Restart()
	Close() error
}

// Loader turns an asset path into a playable clip.
type Loader interface {
	Load(path string) (Clip, error)
}

// Sources names the asset file of each effect.
type Sources struct {
	Eat      string
	GameOver string
}

// Nop is a silent Effects implementation.
type Nop struct{}

func (Nop) PlayEat()      {}
func (Nop) PlayGameOver() {}

// Bank holds the loaded clips. A nil clip means that effect is disabled.
type Bank struct {
	eat      Clip
	gameOver Clip
}

// LoadBank loads both effects. A clip that fails to load is reported once
// through logger and disabled; the other effect keeps working.
func LoadBank(loader Loader, src Sources, logger *log.Logger) *Bank {
	return &Bank{
		eat:      loadClip(loader, "eat", src.Eat, logger),
		gameOver: loadClip(loader, "game_over", src.GameOver, logger),
	}
}

func loadClip(loader Loader, name, path string, logger *log.Logger) Clip {
	if path == "" {
		logger.Debug("sound effect not configured", "effect", name)
		return nil
	}
	clip, err := loader.Load(path)
	if err != nil {
		logger.Warn("sound effect disabled", "effect", name, "path", path, "error", err)
		return nil
	}
	logger.Debug("sound effect loaded", "effect", name, "path", path)
	return clip
}

// PlayEat restarts the eat clip.
func (b *Bank) PlayEat() {
	if b.eat != nil {
		b.eat.Restart()
	}
}

// PlayGameOver restarts the game over clip.
func (b *Bank) PlayGameOver() {
	if b.gameOver != nil {
		b.gameOver.Restart()
	}
}

// Enabled reports which effects have a loaded clip.
func (b *Bank) Enabled() (eat, gameOver bool) {
	return b.eat != nil, b.gameOver != nil
}

// Close releases every loaded clip.
func (b *Bank) Close() error {
	var firstErr error
	for _, c := range []Clip{b.eat, b.gameOver} {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
