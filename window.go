package main

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW event handling and GL context use must stay pinned to the
	// thread that created the window.
	runtime.LockOSThread()
}

// Window owns the glfw window, a single GL texture the color buffer is
// blitted into every frame, and the input state the callbacks accumulate
// between polls. The GPU here is a presentation surface only — every
// pixel in the texture was computed by the CPU rasterizer.
type Window struct {
	handle *glfw.Window
	width  int
	height int

	program    uint32
	vao        uint32
	texture    uint32
	uniformTex int32

	keys         map[Key]bool
	releasedKeys map[Key]bool
	mouseButtons ButtonMask
	lastMouseX   float64
	lastMouseY   float64
	mouseDX      float32
	mouseDY      float32
	firstMouse   bool
}

var keyMapping = map[glfw.Key]Key{
	glfw.KeyW:         KeyW,
	glfw.KeyA:         KeyA,
	glfw.KeyS:         KeyS,
	glfw.KeyD:         KeyD,
	glfw.KeyUp:        KeyUp,
	glfw.KeyDown:      KeyDown,
	glfw.KeyLeft:      KeyLeft,
	glfw.KeyRight:     KeyRight,
	glfw.KeySpace:     KeySpace,
	glfw.KeyLeftShift: KeyLShift,
	glfw.KeyQ:         KeyQ,
	glfw.KeyE:         KeyE,
	glfw.KeyT:         KeyT,
	glfw.KeyG:         KeyG,
	glfw.KeyR:         KeyR,
	glfw.KeyX:         KeyX,
	glfw.KeyC:         KeyC,
	glfw.KeyF:         KeyF,
	glfw.KeyF4:        KeyF4,
	glfw.KeyF5:        KeyF5,
	glfw.KeyF6:        KeyF6,
	glfw.KeyF7:        KeyF7,
}

const (
	hotkeyScreenshot   = KeyX
	hotkeyClearConsole = KeyC
	hotkeyToggleFPS    = KeyF
	hotkeyDepthBuffer  = KeyF4
	hotkeyRotation     = KeyF5
	hotkeyNormalMap    = KeyF6
	hotkeyShadingMode  = KeyF7
)

// NewWindow creates a windowed GL 4.1 core context of the given size and
// installs callbacks that accumulate raw input between Poll calls.
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	handle, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	handle.MakeContextCurrent()

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}

	w := &Window{
		handle:       handle,
		width:        width,
		height:       height,
		keys:         make(map[Key]bool),
		releasedKeys: make(map[Key]bool),
		firstMouse:   true,
	}

	if err := w.setupPresentation(); err != nil {
		return nil, err
	}

	handle.SetKeyCallback(w.keyCallback)
	handle.SetMouseButtonCallback(w.mouseButtonCallback)
	handle.SetCursorPosCallback(w.cursorPosCallback)

	return w, nil
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	mapped, ok := keyMapping[key]
	if !ok {
		return
	}
	w.keys[mapped] = action != glfw.Release
	if action == glfw.Release {
		w.releasedKeys[mapped] = true
	}
}

// consumeHotkey reports whether key was released since the last call, the
// edge-triggered analogue of the reference's SDL_KEYUP switch, and clears
// the flag once read.
func (w *Window) consumeHotkey(key Key) bool {
	if w.releasedKeys[key] {
		delete(w.releasedKeys, key)
		return true
	}
	return false
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	var mask ButtonMask
	switch button {
	case glfw.MouseButtonLeft:
		mask = MouseButtonLeft
	case glfw.MouseButtonRight:
		mask = MouseButtonRight
	default:
		return
	}

	if action == glfw.Release {
		w.mouseButtons &^= mask
	} else {
		w.mouseButtons |= mask
	}
}

func (w *Window) cursorPosCallback(_ *glfw.Window, x, y float64) {
	if w.firstMouse {
		w.lastMouseX, w.lastMouseY = x, y
		w.firstMouse = false
		return
	}
	w.mouseDX += float32(x - w.lastMouseX)
	w.mouseDY += float32(y - w.lastMouseY)
	w.lastMouseX, w.lastMouseY = x, y
}

// Snapshot builds this frame's InputSnapshot and resets the per-frame
// mouse delta accumulators, matching the reference's relative-mouse-state
// semantics (deltas reset to zero once consumed).
func (w *Window) Snapshot(dt float32) InputSnapshot {
	snap := InputSnapshot{
		MouseDX:      w.mouseDX,
		MouseDY:      w.mouseDY,
		MouseButtons: w.mouseButtons,
		Keys:         MapKeyState(copyKeys(w.keys)),
		DT:           dt,
	}
	w.mouseDX, w.mouseDY = 0, 0
	return snap
}

func copyKeys(src map[Key]bool) map[Key]bool {
	dst := make(map[Key]bool, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// ShouldClose reports whether the user has requested the window close.
func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

// PollEvents drains the OS event queue, invoking the installed callbacks.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Present uploads fb's packed color buffer to the GL texture and draws the
// fullscreen quad, then swaps buffers.
func (w *Window) Present(fb *FrameBuffer) {
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(fb.Width), int32(fb.Height), gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, gl.Ptr(fb.Color))

	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(w.program)
	gl.BindVertexArray(w.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.Uniform1i(w.uniformTex, 0)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	w.handle.SwapBuffers()
}

// Close tears down the GL context and terminates glfw.
func (w *Window) Close() {
	glfw.Terminate()
}

const presentVertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
out vec2 vUV;
void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    vUV = aUV;
}
` + "\x00"

const presentFragmentShader = `
#version 410 core
in vec2 vUV;
out vec4 fragColor;
uniform sampler2D screenTexture;
void main() {
    fragColor = texture(screenTexture, vUV);
}
` + "\x00"

// setupPresentation compiles the blit shader, uploads a static fullscreen
// quad, and allocates the texture Present writes into every frame.
func (w *Window) setupPresentation() error {
	program, err := newShaderProgram(presentVertexShader, presentFragmentShader)
	if err != nil {
		return err
	}
	w.program = program
	w.uniformTex = gl.GetUniformLocation(program, gl.Str("screenTexture\x00"))

	// Two triangles as a strip: pos.xy, uv.xy interleaved. UV.y is flipped
	// because the color buffer's row 0 is the top of the image while GL
	// texture coordinates have v=0 at the bottom.
	quad := []float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		-1, 1, 0, 0,
		1, 1, 1, 0,
	}

	var vbo uint32
	gl.GenVertexArrays(1, &w.vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(w.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.GenTextures(1, &w.texture)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w.width), int32(w.height), 0, gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return nil
}

func newShaderProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertex, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragment, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("link program: %s", string(log))
	}

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return 0, fmt.Errorf("compile shader: %s", string(log))
	}
	return shader, nil
}
