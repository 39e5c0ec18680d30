// Package device plays sound effects on the local audio output through oto.
// WAV assets are decoded once into memory; every restart plays them from a
// fresh reader so playback never blocks the caller.
package device

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// Backend owns the process-wide oto context. Only one may exist per process.
type Backend struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
}

// New opens the default output device. Volume is clamped to [0, 1].
func New(volume float64) (*Backend, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatSignedInt16LE)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open output device: %w", err)
	}
	return &Backend{ctx: ctx, ready: ready, volume: core.ClampF(volume, 0, 1)}, nil
}

// Load decodes a WAV file into signed 16-bit stereo PCM at SampleRate.
func (b *Backend) Load(path string) (audio.Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}

	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("audio: %s: %w", path, errEmptyClip)
	}

	return &clip{backend: b, pcm: pcm}, nil
}

var errEmptyClip = errors.New("clip has no samples")

var _ audio.Loader = (*Backend)(nil)

type clip struct {
	backend *Backend
	pcm     []byte

	mu     sync.Mutex
	player oto.Player
}

// Restart stops the current playback, if any, and plays the clip from the start.
func (c *clip) Restart() {
	select {
	case <-c.backend.ready:
	default:
		return // device still warming up
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.player != nil {
		c.player.Pause()
		//nolint:errcheck // Best-effort release of the previous player
		c.player.Close()
	}

	p := c.backend.ctx.NewPlayer(bytes.NewReader(c.pcm))
	p.SetVolume(c.backend.volume)
	p.Play()
	c.player = p
}

// Close stops playback and releases the player.
func (c *clip) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.player == nil {
		return nil
	}
	err := c.player.Close()
	c.player = nil
	return err
}
