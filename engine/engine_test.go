package engine

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/profiler"
)

// fakeWindow runs a message loop that blocks until RequestClose.
type fakeWindow struct {
	width, height int
	onResize      func(width, height int)

	closeOnce sync.Once
	closeReq  chan struct{}
	closed    atomic.Bool
}

var _ Window = &fakeWindow{}

func newFakeWindow(width, height int) *fakeWindow {
	return &fakeWindow{width: width, height: height, closeReq: make(chan struct{})}
}

func (w *fakeWindow) SetResizeCallback(callback func(width, height int)) { w.onResize = callback }
func (w *fakeWindow) ProcessMessages()                                   { <-w.closeReq }
func (w *fakeWindow) RequestClose()                                      { w.closeOnce.Do(func() { close(w.closeReq) }) }
func (w *fakeWindow) Width() int                                         { return w.width }
func (w *fakeWindow) Height() int                                        { return w.height }

func (w *fakeWindow) Close() error {
	w.closed.Store(true)
	return nil
}

// runWithTimeout runs the engine and fails the test if Run does not return in time.
func runWithTimeout(t *testing.T, e Engine) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		e.Quit()
		t.Fatal("Run did not return after Quit")
	}
}

func TestEngine_ProfilerCountsTicksWithoutRenderCallback(t *testing.T) {
	const rate = 50
	e := NewEngine(
		WithTickRate(rate),
		WithProfiler(profiler.NewProfiler(profiler.WithLogging(false))),
	)

	ticks := 0
	e.SetTickCallback(func(dt float32) {
		ticks++
		if ticks == 15 {
			e.Quit()
		}
	})
	runWithTimeout(t, e)

	// An idle render loop would report hundreds of frames per second here.
	if got := e.Profiler().FPS(); got <= 0 || got > 5*rate {
		t.Errorf("FPS() = %v, want close to the %d Hz tick rate", got, rate)
	}
}

func TestEngine_ProfilerCountsRenderFrames(t *testing.T) {
	const limit = 100
	e := NewEngine(
		WithTickRate(10),
		WithRenderFrameLimit(limit),
		WithProfiler(profiler.NewProfiler(profiler.WithLogging(false))),
	)

	var frames atomic.Int32
	e.SetRenderCallback(func(dt float32) {
		if frames.Add(1) == 20 {
			e.Quit()
		}
	})
	runWithTimeout(t, e)

	if frames.Load() < 20 {
		t.Errorf("render callback ran %d times, want at least 20", frames.Load())
	}
	if got := e.Profiler().FPS(); got <= 0 || got > 2*limit {
		t.Errorf("FPS() = %v, want at most about the %d fps cap", got, limit)
	}
}

func TestEngine_WindowDrivesRun(t *testing.T) {
	win := newFakeWindow(1600, 800)
	cam := camera.NewCamera()
	e := NewEngine(WithWindow(win), WithCamera(cam))

	if got := cam.Aspect(); got != 2 {
		t.Errorf("initial aspect = %v, want 2", got)
	}

	win.onResize(900, 900)
	if got := cam.Aspect(); got != 1 {
		t.Errorf("aspect after resize = %v, want 1", got)
	}
	win.onResize(0, 0)
	if got := cam.Aspect(); got != 1 {
		t.Errorf("minimized window changed the aspect to %v", got)
	}

	ticked := make(chan struct{})
	var once sync.Once
	e.SetTickCallback(func(dt float32) {
		once.Do(func() { close(ticked) })
	})
	go func() {
		<-ticked
		e.Quit()
	}()
	runWithTimeout(t, e)

	if !win.closed.Load() {
		t.Error("Run did not close the window")
	}
	if e.Window() != win {
		t.Error("Window() did not return the configured window")
	}
}

func TestEngine_QuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	e.SetTickCallback(func(dt float32) {
		e.Quit()
		e.Quit()
	})
	runWithTimeout(t, e)
	e.Quit()
}
