// Package host runs an effect full-screen in a terminal.
//
// One goroutine owns all effect state: it selects over the tcell event
// channel and a refresh ticker, so input handling, resizes and frame
// callbacks never interleave. PollEvent runs on a feeder goroutine that only
// forwards events.
package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/backdrop/audio"
	"github.com/lixenwraith/backdrop/canvas"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/effect"
	"github.com/lixenwraith/backdrop/input"
	"github.com/lixenwraith/backdrop/loop"
	"github.com/lixenwraith/backdrop/parameter"
)

// Options carries optional collaborators
type Options struct {
	// Clock drives frame timestamps; defaults to the monotonic clock
	Clock loop.TimeProvider
	// Sound plays the bloom chime; nil runs silently
	Sound *audio.SoundManager
}

// Host binds a tcell screen to the active effect
type Host struct {
	screen tcell.Screen
	cfg    *config.Config
	log    *zap.Logger
	sound  *audio.SoundManager

	surface *canvas.CellSurface
	bg      canvas.RGB
	pump    *loop.FramePump
	machine *input.Machine

	effectName string
	scene      effect.Scene
	loop       *loop.Loop
	handle     *loop.Handle
	adapter    *input.Adapter
	drawn      uint64
}

// New initialises the screen and starts the configured effect
func New(screen tcell.Screen, cfg *config.Config, log *zap.Logger, opts Options) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	bg, err := canvas.ParseHex(cfg.Terminal.Background)
	if err != nil {
		screen.Fini()
		return nil, fmt.Errorf("terminal background: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = loop.NewMonotonicTimeProvider()
	}

	machine := input.NewMachine(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			screen.Fini()
			return nil, fmt.Errorf("keymap: %w", err)
		}
		machine.SetKeyTable(input.MergeKeyTable(input.DefaultKeyTable(), override))
	}

	cols, rows := screen.Size()
	h := &Host{
		screen:  screen,
		cfg:     cfg,
		log:     log,
		sound:   opts.Sound,
		bg:      bg.RGB(),
		surface: canvas.NewCellSurface(cols, rows, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, bg.RGB()),
		pump:    loop.NewFramePump(clock),
		machine: machine,
	}

	if err := h.switchEffect(cfg.Terminal.Effect); err != nil {
		screen.Fini()
		return nil, err
	}
	return h, nil
}

// Effect returns the running effect name
func (h *Host) Effect() string {
	return h.effectName
}

// Surface exposes the cell surface the effect draws on
func (h *Host) Surface() *canvas.CellSurface {
	return h.surface
}

// switchEffect stops the current loop, which detaches its adapter, then
// builds and starts the named effect on the same surface
func (h *Host) switchEffect(name string) error {
	w, ht := h.surface.Size()
	scene, err := effect.New(name, h.cfg, w, ht, effect.Options{OnBurst: h.onBurst})
	if err != nil {
		return err
	}

	h.handle.Stop()

	h.surface.SetComposite(canvas.SourceOver)
	h.surface.Clear()

	h.effectName = name
	h.scene = scene
	h.machine.Reset()
	if x, y, ok := h.machine.Pointer(); ok {
		if p, ok := scene.(input.PointerTarget); ok {
			p.PointerMove(x, y)
		}
	}
	h.adapter = input.NewAdapter(h.machine, scene, h.surface)
	h.loop = loop.New(h.pump, scene, h.surface, effect.TargetFPS(name, h.cfg))
	h.handle = h.loop.Start()
	h.handle.OnStop(h.adapter.Detach)
	h.drawn = 0

	h.log.Info("effect started",
		zap.String("effect", name),
		zap.Int("width", w),
		zap.Int("height", ht),
		zap.Duration("frame_interval", h.loop.Interval()))
	return nil
}

func (h *Host) onBurst(x, y float64, spawned int) {
	h.log.Debug("burst", zap.Float64("x", x), zap.Float64("y", y), zap.Int("spawned", spawned))
	if h.sound == nil {
		return
	}
	w, _ := h.surface.Size()
	hue := h.cfg.Particles.HueStart
	if w > 0 {
		hue += h.cfg.Particles.HueRange * x / float64(w)
	}
	h.sound.PlayBloom(spawned, hue)
}

// HandleEvent routes one terminal event; returns false when the host should exit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		h.screen.Sync()
	}

	intent := h.adapter.Handle(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentNextEffect:
		next := effect.Next(h.effectName)
		if err := h.switchEffect(next); err != nil {
			h.log.Error("switch effect", zap.String("effect", next), zap.Error(err))
		}

	case input.IntentToggleSound:
		if h.sound == nil {
			h.log.Info("sound unavailable")
			break
		}
		h.log.Info("sound toggled", zap.Bool("muted", h.sound.ToggleMute()))

	case input.IntentResize:
		h.log.Debug("resize", zap.Int("width", intent.Width), zap.Int("height", intent.Height))
	}
	return true
}

// Tick pumps pending frame callbacks and presents the surface if a frame was drawn
func (h *Host) Tick() {
	h.pump.Pump()
	if frames := h.loop.Frames(); frames != h.drawn {
		h.drawn = frames
		h.blit()
	}
}

// blit copies every cell's colour to the screen background
func (h *Host) blit() {
	cols, rows := h.surface.Grid()
	cells := h.surface.Cells()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := cells[row*cols+col]
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			h.screen.SetContent(col, row, ' ', nil, style)
		}
	}
	h.screen.Show()
}

// ErrEffectPanic reports a panic raised inside an effect while running
var ErrEffectPanic = errors.New("effect panicked")

// Run processes events and frames until quit or ctx is cancelled
// A panic in an effect ends the run with ErrEffectPanic; Close still restores the screen
func (h *Host) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			h.log.Error("effect panicked",
				zap.String("effect", h.effectName),
				zap.Any("panic", r),
				zap.Stack("stack"))
			err = fmt.Errorf("%w: %s: %v", ErrEffectPanic, h.effectName, r)
		}
	}()

	ticker := time.NewTicker(parameter.RefreshInterval(h.cfg.Terminal.RefreshHz))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventBuffer)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.log.Info("host stopped", zap.Error(ctx.Err()))
			return nil

		case ev := <-eventChan:
			if !h.HandleEvent(ev) {
				h.log.Info("quit requested")
				return nil
			}

		case <-ticker.C:
			h.Tick()
		}
	}
}

// Close stops the effect and restores the terminal
func (h *Host) Close() {
	h.handle.Stop()
	h.screen.Fini()
}
