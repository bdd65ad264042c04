package core

import "time"

// Key is a logical simulation key. Physical bindings live in the platform layer.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyLeft
	KeyRight
	keyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// ParseKey maps a lowercase key name ("up", "left", "right") to a Key.
func ParseKey(name string) (Key, bool) {
	switch name {
	case "up":
		return KeyUp, true
	case "left":
		return KeyLeft, true
	case "right":
		return KeyRight, true
	}
	return KeyNone, false
}

func (k Key) valid() bool {
	return k > KeyNone && k < keyCount
}

// Input is the keyboard capability consumed by the simulation.
// It is sampled once per frame and does not change during a step.
type Input interface {
	// IsKeyDown reports whether the key is held this frame.
	IsKeyDown(k Key) bool
	// KeyReleased reports whether the key went from held to released this frame.
	KeyReleased(k Key) bool
}

// Action is a one-shot platform-level intent such as pause or restart.
// Actions never reach the simulation core.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Escape
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "None"
	}
}

// InputFrame is the complete input for one simulation tick: elapsed time,
// held and released keys, and platform actions.
type InputFrame struct {
	// Dt is the elapsed time for this frame in seconds.
	Dt float64

	// Actions maps one-shot actions to whether they were triggered this frame.
	Actions map[Action]bool

	down     [keyCount]bool
	released [keyCount]bool
}

var _ Input = InputFrame{}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Press marks a key as held.
func (f *InputFrame) Press(k Key) {
	if k.valid() {
		f.down[k] = true
		f.released[k] = false
	}
}

// Release marks a key as released this frame.
func (f *InputFrame) Release(k Key) {
	if k.valid() {
		f.down[k] = false
		f.released[k] = true
	}
}

// IsKeyDown implements Input.
func (f InputFrame) IsKeyDown(k Key) bool {
	return k.valid() && f.down[k]
}

// KeyReleased implements Input.
func (f InputFrame) KeyReleased(k Key) bool {
	return k.valid() && f.released[k]
}

// Clear resets actions and keys. Dt is left untouched.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.down = [keyCount]bool{}
	f.released = [keyCount]bool{}
}

// Clone creates a deep copy of the input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	clone.Actions = make(map[Action]bool, len(f.Actions))
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Default hold windows for KeyTracker. The first window covers the
// terminal's initial auto-repeat delay.
const (
	DefaultFirstHold  = 550 * time.Millisecond
	DefaultRepeatHold = 120 * time.Millisecond
)

// KeyTracker derives held and released key state from key-press events.
// Terminals report presses and auto-repeats but no key-up, so a key counts as
// held until no repeat arrives within its hold window.
type KeyTracker struct {
	firstHold  time.Duration
	repeatHold time.Duration

	lastPress [keyCount]time.Time
	repeating [keyCount]bool
	held      [keyCount]bool
}

// NewKeyTracker creates a tracker. Non-positive windows fall back to defaults.
func NewKeyTracker(firstHold, repeatHold time.Duration) *KeyTracker {
	if firstHold <= 0 {
		firstHold = DefaultFirstHold
	}
	if repeatHold <= 0 {
		repeatHold = DefaultRepeatHold
	}
	return &KeyTracker{firstHold: firstHold, repeatHold: repeatHold}
}

// Press records a press or auto-repeat of k at time now.
func (t *KeyTracker) Press(k Key, now time.Time) {
	if !k.valid() {
		return
	}
	t.repeating[k] = t.active(k, now)
	t.lastPress[k] = now
}

// Frame builds the input frame for a tick at time now.
func (t *KeyTracker) Frame(now time.Time, dt float64) InputFrame {
	f := NewInputFrame()
	f.Dt = dt
	for k := KeyNone + 1; k < keyCount; k++ {
		down := t.active(k, now)
		if down {
			f.Press(k)
		} else if t.held[k] {
			f.Release(k)
			t.repeating[k] = false
			t.lastPress[k] = time.Time{}
		}
		t.held[k] = down
	}
	return f
}

// Reset forgets all key state.
func (t *KeyTracker) Reset() {
	t.lastPress = [keyCount]time.Time{}
	t.repeating = [keyCount]bool{}
	t.held = [keyCount]bool{}
}

func (t *KeyTracker) active(k Key, now time.Time) bool {
	last := t.lastPress[k]
	if last.IsZero() {
		return false
	}
	window := t.firstHold
	if t.repeating[k] {
		window = t.repeatHold
	}
	return now.Sub(last) <= window
}
