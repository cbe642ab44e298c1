// Package host adapts the cpu/machine/scheduler/video core to a real
// window, keyboard, and presentation surface via Ebitengine. It is
// grounded on the ebiten.Game shape: the same Update/Draw/Layout split
// and the same window-close detection used by Ebitengine-backed video
// outputs elsewhere in this family of emulators.
package host

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"github.com/spaceinvaders-go/invaders8080/internal/cpu"
	"github.com/spaceinvaders-go/invaders8080/internal/machine"
	"github.com/spaceinvaders-go/invaders8080/internal/romfile"
	"github.com/spaceinvaders-go/invaders8080/internal/scheduler"
	"github.com/spaceinvaders-go/invaders8080/internal/video"
)

// Warning reports a host-transient condition: the emulator keeps
// running in a blank/default state, but the operator should be told.
type Warning struct {
	Operation string
	Err       error
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%s: %v (continuing with default state)", w.Operation, w.Err)
}

func (w *Warning) Unwrap() error { return w.Err }

// Config is the single explicit configuration struct threaded from
// cmd/invaders down to the machine. No environment variables, no
// persisted state.
type Config struct {
	ROMPath      string
	Scale        int
	Fullscreen   bool
	ColorEnabled bool
	Port0Value   byte
}

// Game wires the CPU core, machine, scheduler, and video decoder behind
// an ebiten.Game. It is the only object that touches the ebiten API.
type Game struct {
	cfg Config

	mach  *machine.Machine
	core  *cpu.CPU
	sched *scheduler.Scheduler
	fb    *video.Framebuffer
	img   *ebiten.Image

	warning *Warning
	ctx     context.Context
}

// New constructs a Game from cfg. A missing or unreadable ROM is
// downgraded to a *Warning: the emulator still boots and runs NOPs out
// of zeroed memory.
func New(cfg Config) (*Game, *Warning) {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}

	mach := machine.New(machine.Config{Port0Value: cfg.Port0Value})

	var warning *Warning
	data, err := romfile.Load(cfg.ROMPath)
	if err != nil {
		warning = &Warning{Operation: "loading ROM " + cfg.ROMPath, Err: err}
	} else {
		mach.LoadROM(data)
	}

	core := cpu.New(mach, mach)
	sched := scheduler.New(core, scheduler.RealClock{})

	g := &Game{
		cfg:   cfg,
		mach:  mach,
		core:  core,
		sched: sched,
		fb:    video.NewFramebuffer(),
		ctx:   context.Background(),
	}

	sched.OnFrame = g.decodeFrame
	return g, warning
}

func (g *Game) decodeFrame() {
	video.Decode(g.mach.VRAM(), g.cfg.ColorEnabled, g.fb)
}

// Run starts the ebiten window and blocks until it closes or ctx is
// cancelled. It coordinates the ebiten run loop against cancellation via
// errgroup, running RunGame in its own goroutine and propagating the
// first real error (e.g. a window-creation failure) back to the caller
// instead of silently swallowing it.
func (g *Game) Run(ctx context.Context) error {
	grp, grpCtx := errgroup.WithContext(ctx)
	g.ctx = grpCtx

	ebiten.SetWindowSize(video.Width*g.cfg.Scale, video.Height*g.cfg.Scale)
	ebiten.SetWindowTitle("Space Invaders (8080)")
	ebiten.SetWindowResizable(true)
	if g.cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	grp.Go(func() error {
		return ebiten.RunGame(g)
	})

	return grp.Wait()
}
