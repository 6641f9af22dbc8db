// Command backdrop runs the decorative canvas effects.
//
//	backdrop [-config file] run    [-effect name] [-sound]
//	backdrop [-config file] render [-effect name] [-o file] [-width n] [-height n] [-frames n] [-seed n] [-click x,y]
//	backdrop [-config file] serve  [-addr host:port]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lixenwraith/backdrop/audio"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/host"
	"github.com/lixenwraith/backdrop/preview"
)

const defaultLogFile = "logs/backdrop.log"

var errUsage = errors.New("usage: backdrop [-config file] run|render|serve [flags]")

func main() {
	// Panic Recovery: ensure terminal is reset even if an effect crashes
	defer func() {
		if r := recover(); r != nil {
			host.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBACKDROP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, os.Args[1:], os.Stdout)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "backdrop: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// execute parses global flags and dispatches the subcommand
func execute(ctx context.Context, args []string, stdout io.Writer) error {
	global := flag.NewFlagSet("backdrop", flag.ContinueOnError)
	configPath := global.String("config", "", "config file (.toml, .yaml, .yml)")
	if err := global.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	rest := global.Args()
	if len(rest) == 0 {
		return errUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	switch rest[0] {
	case "run":
		return runTerminal(ctx, cfg, rest[1:])
	case "render":
		return runRender(cfg, rest[1:], stdout)
	case "serve":
		return runServe(ctx, cfg, rest[1:])
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, rest[0])
}

func runTerminal(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	effectName := fs.String("effect", cfg.Terminal.Effect, "effect: "+strings.Join(config.Effects, ", "))
	sound := fs.Bool("sound", cfg.Audio.Enabled, "play a chime on each burst")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	cfg.Terminal.Effect = *effectName
	cfg.Audio.Enabled = *sound

	if err := cfg.Validate(); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("run needs an interactive terminal; use render or serve")
	}

	// Log to file so the screen is not corrupted
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaultLogFile
	}
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	var sm *audio.SoundManager
	if cfg.Audio.Enabled {
		sm = audio.NewSoundManager(cfg.Audio)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, effects run without sound
			log.Warn("audio initialization failed", zap.Error(err))
			sm = nil
		} else {
			defer sm.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	h, err := host.New(screen, cfg, log, host.Options{Sound: sm})
	if err != nil {
		return err
	}
	defer h.Close()

	return h.Run(ctx)
}

func runRender(cfg *config.Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	effectName := fs.String("effect", cfg.Terminal.Effect, "effect: "+strings.Join(config.Effects, ", "))
	out := fs.String("o", "", "output PNG file; stdout when empty")
	width := fs.Int("width", cfg.Preview.Width, "frame width in pixels")
	height := fs.Int("height", cfg.Preview.Height, "frame height in pixels")
	frames := fs.Int("frames", cfg.Preview.Frames, "frames to simulate before capture")
	seed := fs.Uint64("seed", 0, "random seed; 0 uses the configured seed")
	click := fs.String("click", "", "x,y of a click applied before the first frame")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	req := preview.Request{
		Effect: *effectName,
		Width:  *width,
		Height: *height,
		Frames: *frames,
		Seed:   *seed,
	}
	if *click != "" {
		x, y, err := parsePoint(*click)
		if err != nil {
			return fmt.Errorf("%w: -click: %v", errUsage, err)
		}
		req.Clicks = append(req.Clicks, [2]float64{x, y})
	}

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	res, err := preview.Render(cfg, req, w)
	if err != nil {
		return err
	}
	log.Info("rendered",
		zap.String("effect", req.Effect),
		zap.Uint64("frames", res.Frames),
		zap.Int("spawned", res.Spawned),
		zap.String("output", *out))
	return nil
}

func runServe(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", cfg.Preview.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	cfg.Preview.Addr = *addr

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	return preview.NewServer(cfg, log).ListenAndServe(ctx)
}

// parsePoint parses "x,y" into surface pixels
func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
