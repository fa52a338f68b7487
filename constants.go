package main

// Window / demo defaults, grounded on the original Renderer's main() and
// Camera defaults (640x480, 45 degree FOV, origin pulled back on Z).
const (
	WindowWidth  = 640
	WindowHeight = 480

	DefaultCameraFOV = 45.0
	DefaultCameraNear = 0.1
	DefaultCameraFar  = 100.0

	CameraMovementSpeed = 30.0 // units/sec
	CameraSensitivity   = 0.2  // degrees/pixel

	MeshRotationSpeed = 1.0 // radians/sec, toggled by F5

	ResourceDir = "Resources"
)

// Shading constants used by the per-pixel shader.
const (
	LightIntensity = 7.0
	ShaderShininess = 25.0
)

var (
	LightDirection = Vector3{X: 0.577, Y: -0.577, Z: 0.577}
	AmbientColor   = ColorRGB{R: 0.03, G: 0.03, B: 0.03}
)

// ShadingMode selects which terms of the pixel shader contribute to the
// final color.
type ShadingMode int

const (
	ShadingObservedArea ShadingMode = iota
	ShadingDiffused
	ShadingSpecular
	ShadingCombined
)

func (m ShadingMode) String() string {
	switch m {
	case ShadingObservedArea:
		return "ObservedArea"
	case ShadingDiffused:
		return "Diffused"
	case ShadingSpecular:
		return "Specular"
	case ShadingCombined:
		return "Combined"
	default:
		panic("ShadingMode.String: impossible shading mode")
	}
}

// Next cycles to the following shading mode, wrapping after Combined.
func (m ShadingMode) Next() ShadingMode {
	switch m {
	case ShadingObservedArea:
		return ShadingDiffused
	case ShadingDiffused:
		return ShadingSpecular
	case ShadingSpecular:
		return ShadingCombined
	case ShadingCombined:
		return ShadingObservedArea
	default:
		panic("ShadingMode.Next: impossible shading mode")
	}
}
