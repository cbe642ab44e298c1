// Package scheduler drives the 8080 core at the right real-time rate: it
// computes a cycle budget from elapsed wall-clock time, steps the CPU
// until that budget is met, and injects the two per-frame half-frame
// interrupts (RST 1 mid-screen, RST 2 vblank) at the 60 Hz half-frame
// rate.
package scheduler

import "time"

const (
	cyclesPerMillisecond = 2000 // 2 MHz 8080
	halfFrame            = time.Second / 120
	frameInterval        = time.Second / 60
)

// CPU is the subset of internal/cpu.CPU the scheduler drives.
type CPU interface {
	Step() byte
	Interrupt(vector byte) byte
	INTEEnabled() bool
}

// Clock supplies wall-clock time. Kept as an interface so tests can
// inject a fake clock instead of real time.Now.
type Clock interface {
	Now() time.Time
}

// RealClock reads the real wall clock.
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time { return time.Now() }

// Scheduler holds the real-time pacing state: the last tick time, the
// next scheduled interrupt, which interrupt is pending, and the last
// frame-present time.
type Scheduler struct {
	cpu   CPU
	clock Clock

	// OnFrame is invoked, with no arguments, when interrupt 2 (vblank) is
	// delivered; the host decodes the framebuffer in it. Set by the host.
	OnFrame func()

	// Present is invoked at most once per ~16.667ms to ask the host to
	// show the latest framebuffer.
	Present func()

	started          bool
	lastTick         time.Time
	nextInterrupt    time.Time
	pendingInterrupt byte
	lastFramePresent time.Time
}

// New creates a scheduler driving cpu, using clock as its time source.
func New(cpu CPU, clock Clock) *Scheduler {
	return &Scheduler{cpu: cpu, clock: clock, pendingInterrupt: 1}
}

// Tick performs one iteration of the frame driver's loop: interrupt
// injection, cycle-budgeted CPU stepping, and frame presentation. It is
// safe to call at least once per display frame; calling it more often
// only tightens timing.
func (s *Scheduler) Tick(now time.Time) {
	if !s.started {
		s.started = true
		s.lastTick = now
		s.nextInterrupt = now.Add(halfFrame)
		s.pendingInterrupt = 1
		s.lastFramePresent = now
	}

	if s.cpu.INTEEnabled() && !now.Before(s.nextInterrupt) {
		vector := s.pendingInterrupt
		s.cpu.Interrupt(vector)
		if s.pendingInterrupt == 1 {
			s.pendingInterrupt = 2
		} else {
			s.pendingInterrupt = 1
			if s.OnFrame != nil {
				s.OnFrame()
			}
		}
		s.nextInterrupt = now.Add(halfFrame)
	}

	elapsed := now.Sub(s.lastTick)
	budget := cyclesPerMillisecond * elapsed.Milliseconds()
	var spent int64
	for spent < budget {
		spent += int64(s.cpu.Step())
	}

	if now.Sub(s.lastFramePresent) >= frameInterval {
		if s.Present != nil {
			s.Present()
		}
		s.lastFramePresent = now
	}

	s.lastTick = now
}
