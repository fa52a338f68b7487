package main

import (
	"fmt"
	"os"

	"golang.org/x/image/bmp"
)

// Renderer owns the camera, the mesh, its textures and both frame buffers,
// and the toggle state the hotkeys flip, mirroring the reference Renderer
// class one-for-one.
type Renderer struct {
	width, height int

	camera *Camera
	mesh   *Mesh

	meshTranslation Matrix
	meshRotation    Matrix
	meshRotateAngle float32
	meshRotating    bool

	textures  MaterialTextures
	depthView bool
	normalMap bool
	mode      ShadingMode

	fb *FrameBuffer
}

// NewRenderer builds a renderer for the given mesh and textures, sized to
// width x height, with the camera placed at the reference demo's default
// origin and looking at the origin.
func NewRenderer(width, height int, mesh *Mesh, textures MaterialTextures) *Renderer {
	aspect := float32(width) / float32(height)
	camera := NewCamera(DefaultCameraFOV, Vector3{X: 0, Y: 5, Z: -64}, aspect, DefaultCameraNear, DefaultCameraFar)

	r := &Renderer{
		width:           width,
		height:          height,
		camera:          camera,
		mesh:            mesh,
		meshTranslation: CreateTranslation(Zero3),
		meshRotation:    CreateRotation(0, 0, 0),
		textures:        textures,
		normalMap:       true,
		mode:            ShadingCombined,
		fb:              NewFrameBuffer(width, height),
	}
	mesh.WorldMatrix = r.meshRotation.Multiply(r.meshTranslation)
	return r
}

// Update advances the camera and, if enabled, the mesh's rotation, then
// re-runs the vertex stage so Render has fresh screen-space attributes.
func (r *Renderer) Update(input InputSnapshot) {
	r.camera.Update(input)

	if r.meshRotating {
		r.meshRotateAngle += input.DT * MeshRotationSpeed
		r.meshRotation = CreateRotation(0, r.meshRotateAngle, 0)
		r.mesh.WorldMatrix = r.meshRotation.Multiply(r.meshTranslation)
	}

	TransformVertices(r.mesh, r.camera.ViewMatrix, r.camera.ProjectionMatrix, r.width, r.height)
}

// Render clears both buffers and rasterizes the mesh, returning the frame
// buffer ready for presentation.
func (r *Renderer) Render() *FrameBuffer {
	r.fb.Clear()
	RenderMesh(r.fb, r.mesh, r.textures, r.mode, r.normalMap, r.depthView)
	return r.fb
}

// ToggleDepthBuffer switches between shaded output and the depth
// visualization override.
func (r *Renderer) ToggleDepthBuffer() {
	r.depthView = !r.depthView
	fmt.Println("Depth buffer visualization:", onOff(r.depthView))
}

// ToggleRotation starts or stops the mesh's automatic spin.
func (r *Renderer) ToggleRotation() {
	r.meshRotating = !r.meshRotating
	fmt.Println("Mesh rotation:", onOff(r.meshRotating))
}

// ToggleNormalMap switches tangent-space normal mapping on or off.
func (r *Renderer) ToggleNormalMap() {
	r.normalMap = !r.normalMap
	fmt.Println("Normal map:", onOff(r.normalMap))
}

// CycleShadingMode advances to the next shading mode, wrapping after
// Combined.
func (r *Renderer) CycleShadingMode() {
	r.mode = r.mode.Next()
	fmt.Println("Shading mode:", r.mode)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// SaveScreenshot writes the current color buffer to path as a BMP image,
// matching Renderer::SaveBufferToImage.
func (r *Renderer) SaveScreenshot(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save screenshot: %w", err)
	}
	defer file.Close()

	img := frameBufferToImage(r.fb)
	if err := bmp.Encode(file, img); err != nil {
		return fmt.Errorf("save screenshot: %w", err)
	}
	return nil
}
