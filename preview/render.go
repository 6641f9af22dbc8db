// Package preview renders effects offscreen: to PNG files for the CLI and
// over HTTP for the preview server.
package preview

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/backdrop/canvas"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/effect"
	"github.com/lixenwraith/backdrop/input"
	"github.com/lixenwraith/backdrop/loop"
)

// ErrUnknownEffect is returned when a request names no known effect
var ErrUnknownEffect = effect.ErrUnknownEffect

// ErrBadSize is returned for frame dimensions outside [MinSide, MaxSide]
var ErrBadSize = errors.New("frame size out of range")

// Size limits accepted for offscreen frames
const (
	MinSide = 1
	MaxSide = 4096
)

// Request describes one offscreen render
type Request struct {
	Effect string
	Width  int
	Height int
	Frames int
	Seed   uint64

	// Clicks are applied before the first frame to effects that take pointer input
	Clicks [][2]float64
}

// Result summarises a finished render
type Result struct {
	Frames  uint64
	Spawned int
}

// Render simulates req.Frames frames and writes the last as PNG
// A virtual clock advances one frame interval per pump, so every pump renders
func Render(cfg *config.Config, req Request, w io.Writer) (Result, error) {
	if req.Width < MinSide || req.Width > MaxSide || req.Height < MinSide || req.Height > MaxSide {
		return Result{}, fmt.Errorf("%w: %dx%d", ErrBadSize, req.Width, req.Height)
	}
	if req.Frames < 1 {
		req.Frames = 1
	}

	var res Result
	scene, err := effect.New(req.Effect, cfg, req.Width, req.Height, effect.Options{
		Seed:    req.Seed,
		OnBurst: func(_, _ float64, n int) { res.Spawned += n },
	})
	if err != nil {
		return Result{}, err
	}

	if p, ok := scene.(input.PointerTarget); ok {
		for _, c := range req.Clicks {
			p.PointerMove(c[0], c[1])
			p.Click(c[0], c[1])
		}
	}

	surface := canvas.NewRasterSurface(req.Width, req.Height)
	defer surface.Close()

	fps := effect.TargetFPS(req.Effect, cfg)
	step := time.Second / 60
	if fps > 0 {
		step = time.Duration(float64(time.Second) / fps)
	}

	clock := loop.NewMockTimeProvider(time.Unix(0, 0))
	pump := loop.NewFramePump(clock)
	l := loop.New(pump, scene, surface, fps)
	h := l.Start()
	defer h.Stop()

	for range req.Frames {
		clock.Advance(step)
		pump.Pump()
	}
	res.Frames = l.Frames()

	if err := surface.EncodePNG(w); err != nil {
		return res, fmt.Errorf("encode png: %w", err)
	}
	return res, nil
}
