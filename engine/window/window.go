package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-rig/common"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events.
	// Key repeat events are not forwarded.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(key common.KeyCode))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyUpCallback(callback func(key common.KeyCode))

	// SetMouseMoveCallback sets the callback for cursor movement.
	// While the cursor is captured the position is virtual and unbounded.
	//
	// Parameters:
	//   - callback: function receiving the cursor x, y position
	SetMouseMoveCallback(callback func(x, y float64))

	// SetFocusCallback sets the callback for focus changes.
	// Key releases that happen while unfocused are never reported, so held-key state should be
	// reset when focus is lost.
	//
	// Parameters:
	//   - callback: function receiving true when focused
	SetFocusCallback(callback func(focused bool))

	// SetCursorCaptured hides and locks the cursor to the window for unbounded mouse look.
	//
	// Parameters:
	//   - captured: true to capture, false to release
	SetCursorCaptured(captured bool)

	// SetCaptureCallback sets the callback fired after the cursor capture state changes.
	// The cursor jumps between its virtual and visible position on a change, so pointer tracking
	// should restart from a fresh baseline.
	//
	// Parameters:
	//   - callback: function receiving the new capture state
	SetCaptureCallback(callback func(captured bool))

	// CursorCaptured reports whether the cursor is captured.
	//
	// Returns:
	//   - bool: true if captured
	CursorCaptured() bool

	// SetTitle replaces the title bar text. Call it from the goroutine running ProcessMessages,
	// for example inside the update callback.
	//
	// Parameters:
	//   - title: the new title
	SetTitle(title string)

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the message loop to exit. Safe to call from any goroutine.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are the current framebuffer size in pixels.
	width  int
	height int

	// cursorCaptured is applied when the platform window is created and on each toggle.
	cursorCaptured bool

	// releaseKey toggles cursor capture. Pressing it while released closes the window.
	releaseKey common.KeyCode

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate    func()
	onResize    func(width, height int)
	onKeyDown   func(key common.KeyCode)
	onKeyUp     func(key common.KeyCode)
	onMouseMove func(x, y float64)
	onFocus     func(focused bool)
	onCapture   func(captured bool)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
//   - error: error if the platform window cannot be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:          "oxy-rig",
		maxWidth:       1600,
		maxHeight:      1200,
		minWidth:       600,
		minHeight:      200,
		width:          1280,
		height:         720,
		cursorCaptured: true,
		releaseKey:     common.KeyEsc,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(key common.KeyCode)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(key common.KeyCode)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float64)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SetFocusCallback(callback func(focused bool)) {
	w.onFocus = callback
}

func (w *engineWindow) SetCaptureCallback(callback func(captured bool)) {
	w.onCapture = callback
}

func (w *engineWindow) SetCursorCaptured(captured bool) {
	if captured == w.cursorCaptured {
		return
	}
	w.cursorCaptured = captured
	platformSetCursorCaptured(w, captured)
	if w.onCapture != nil {
		w.onCapture(captured)
	}
}

func (w *engineWindow) CursorCaptured() bool {
	return w.cursorCaptured
}

func (w *engineWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
