package scheduler

import (
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakeCPU struct {
	inte        bool
	stepCalls   int
	interrupts  []byte
	cyclesEach  byte
}

func (f *fakeCPU) Step() byte {
	f.stepCalls++
	return f.cyclesEach
}

func (f *fakeCPU) Interrupt(vector byte) byte {
	if !f.inte {
		return 0
	}
	f.interrupts = append(f.interrupts, vector)
	return 11
}

func (f *fakeCPU) INTEEnabled() bool { return f.inte }

func TestSchedulerAlternatesInterrupts(t *testing.T) {
	cpu := &fakeCPU{inte: true, cyclesEach: 1}
	sched := New(cpu, nil)

	start := time.Unix(0, 0)
	sched.Tick(start)
	sched.Tick(start.Add(halfFrame))
	sched.Tick(start.Add(2 * halfFrame))

	if len(cpu.interrupts) != 2 {
		t.Fatalf("got %d interrupts, want 2", len(cpu.interrupts))
	}
	if cpu.interrupts[0] != 1 || cpu.interrupts[1] != 2 {
		t.Fatalf("interrupts = %v, want [1 2]", cpu.interrupts)
	}
}

func TestSchedulerCallsOnFrameAtVBlank(t *testing.T) {
	cpu := &fakeCPU{inte: true, cyclesEach: 1}
	sched := New(cpu, nil)

	frames := 0
	sched.OnFrame = func() { frames++ }

	start := time.Unix(0, 0)
	sched.Tick(start)
	sched.Tick(start.Add(halfFrame)) // RST 1, no frame yet
	if frames != 0 {
		t.Fatalf("OnFrame fired early: %d", frames)
	}
	sched.Tick(start.Add(2 * halfFrame)) // RST 2, vblank -> frame
	if frames != 1 {
		t.Fatalf("OnFrame did not fire on vblank transition: %d", frames)
	}
}

func TestSchedulerSkipsInterruptsWhenINTEClear(t *testing.T) {
	cpu := &fakeCPU{inte: false, cyclesEach: 1}
	sched := New(cpu, nil)

	start := time.Unix(0, 0)
	sched.Tick(start)
	sched.Tick(start.Add(10 * halfFrame))

	if len(cpu.interrupts) != 0 {
		t.Fatalf("got %d interrupts with INTE clear, want 0", len(cpu.interrupts))
	}
}

func TestSchedulerBudgetsCyclesFromElapsedTime(t *testing.T) {
	cpu := &fakeCPU{inte: false, cyclesEach: 10}
	sched := New(cpu, nil)

	start := time.Unix(0, 0)
	sched.Tick(start)
	sched.Tick(start.Add(5 * time.Millisecond))

	// budget = 2000 * 5 = 10000 cycles; 10 per step => at least 1000 steps.
	if cpu.stepCalls < 1000 {
		t.Fatalf("stepCalls = %d, want >= 1000", cpu.stepCalls)
	}
}

func TestSchedulerPresentsAtFrameInterval(t *testing.T) {
	cpu := &fakeCPU{inte: false, cyclesEach: 1}
	sched := New(cpu, nil)

	presents := 0
	sched.Present = func() { presents++ }

	start := time.Unix(0, 0)
	sched.Tick(start)
	sched.Tick(start.Add(5 * time.Millisecond))
	if presents != 0 {
		t.Fatalf("presented too early: %d", presents)
	}
	sched.Tick(start.Add(17 * time.Millisecond))
	if presents != 1 {
		t.Fatalf("did not present after frameInterval: %d", presents)
	}
}
