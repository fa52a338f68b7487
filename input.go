package main

// ButtonMask is a bitmask of held mouse buttons, mirroring the reference
// renderer's SDL_GetRelativeMouseState bitmask.
type ButtonMask uint8

const (
	MouseButtonLeft ButtonMask = 1 << iota
	MouseButtonRight
)

func (m ButtonMask) has(b ButtonMask) bool { return m&b != 0 }

// InputSnapshot is the per-tick value injected into Camera.Update, per the
// re-architecture in spec §9: the camera no longer polls input itself, it
// consumes a value assembled once per frame by the window layer.
type InputSnapshot struct {
	MouseDX, MouseDY float32
	MouseButtons     ButtonMask
	Keys             KeyState
	DT               float32
}

// KeyState answers whether a named key is currently held. The window layer
// backs this with a MapKeyState copied from the keys its glfw key callback
// has recorded; tests back it with a plain MapKeyState.
type KeyState interface {
	Down(key Key) bool
}

// Key names the subset of keys the core cares about, independent of any
// windowing library's own key constants.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyLShift
	KeyQ
	KeyE
	KeyT
	KeyG
	KeyR

	// Hotkeys, triggered on key release rather than held state.
	KeyX
	KeyC
	KeyF
	KeyF4
	KeyF5
	KeyF6
	KeyF7
)

// MapKeyState is the trivial KeyState backed by a set of held keys —
// convenient for tests and for any input source that just wants to report
// "these keys are down this frame".
type MapKeyState map[Key]bool

func (m MapKeyState) Down(key Key) bool { return m[key] }
