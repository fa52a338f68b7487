package main

import "github.com/chewxy/math32"

const toRadians = math32.Pi / 180

// Camera holds origin + orientation + FOV and derives the view and
// projection matrices. Derived fields are recomputed whenever a source
// field changes — see calculateViewMatrix/calculateProjectionMatrix.
type Camera struct {
	Origin      Vector3
	FOVAngle    float32 // degrees, clamped to [0,180]
	FOVValue    float32 // tan(fovAngle * pi/360)
	AspectRatio float32
	Near, Far   float32

	TotalPitch float32 // degrees
	TotalYaw   float32 // degrees

	Forward Vector3
	Up      Vector3
	Right   Vector3

	ViewMatrix       Matrix
	InvViewMatrix    Matrix
	ProjectionMatrix Matrix
}

// NewCamera constructs and initializes a camera in one call.
func NewCamera(fov float32, origin Vector3, aspectRatio, near, far float32) *Camera {
	c := &Camera{}
	c.Initialize(fov, origin, aspectRatio, near, far)
	return c
}

// Initialize sets the camera's source fields and rebuilds both matrices.
func (c *Camera) Initialize(fovAngle float32, origin Vector3, aspectRatio, near, far float32) {
	c.FOVAngle = fovAngle
	c.FOVValue = math32.Tan(fovAngle * toRadians / 2)
	c.Origin = origin
	c.AspectRatio = aspectRatio
	c.Near = near
	c.Far = far

	c.calculateViewMatrix()
	c.calculateProjectionMatrix()
}

// calculateViewMatrix rebuilds invViewMatrix/viewMatrix from origin/pitch/
// yaw and derives the forward/right/up basis. The forward.z negation
// reproduces the reference implementation's mirroring convention, which
// the rest of the basis derivation depends on to stay self-consistent.
func (c *Camera) calculateViewMatrix() {
	c.InvViewMatrix = CreateRotation(c.TotalPitch*toRadians, c.TotalYaw*toRadians, 0).Multiply(CreateTranslation(c.Origin))
	c.ViewMatrix = c.InvViewMatrix.Inverse()

	forward := c.ViewMatrix.TransformVector(UnitZ3.Negate()).Normalized()
	forward.Z *= -1
	c.Forward = forward

	c.Right = CrossV3(UnitY3, c.Forward).Normalized()
	c.Up = CrossV3(c.Forward, c.Right).Normalized()
}

func (c *Camera) calculateProjectionMatrix() {
	c.ProjectionMatrix = CreatePerspectiveFovLH(c.FOVValue, c.AspectRatio, c.Near, c.Far)
}

// Update advances the camera from one input snapshot, matching the
// reference Camera::Update exactly (mouse-button combinations, WASD/arrow
// movement, FOV hotkeys). Matrices are only rebuilt when something
// actually changed this frame.
func (c *Camera) Update(in InputSnapshot) {
	moveSpeed := float32(CameraMovementSpeed) * in.DT
	sensitivity := float32(CameraSensitivity)

	changed := false

	if in.MouseButtons != 0 {
		changed = true
		switch {
		case in.MouseButtons.has(MouseButtonLeft) && in.MouseButtons.has(MouseButtonRight):
			c.Origin.Y -= in.MouseDY * sensitivity
		case in.MouseButtons.has(MouseButtonRight):
			c.TotalPitch += in.MouseDY * sensitivity
			c.TotalYaw += in.MouseDX * sensitivity
		case in.MouseButtons.has(MouseButtonLeft):
			c.Origin = c.Origin.Sub(UnitZ3.Scale(in.MouseDY * sensitivity))
			c.TotalYaw += in.MouseDX * sensitivity
		}
	}

	keys := in.Keys
	anyKey := false
	if keys != nil {
		for _, k := range []Key{KeyW, KeyA, KeyS, KeyD, KeyUp, KeyDown, KeyLeft, KeyRight, KeySpace, KeyLShift, KeyQ, KeyE, KeyT, KeyG, KeyR} {
			if keys.Down(k) {
				anyKey = true
				break
			}
		}
	}

	if anyKey {
		changed = true
		if keys.Down(KeyW) || keys.Down(KeyUp) {
			c.Origin = c.Origin.Add(c.Forward.Scale(moveSpeed))
		}
		if keys.Down(KeyS) || keys.Down(KeyDown) {
			c.Origin = c.Origin.Sub(c.Forward.Scale(moveSpeed))
		}
		if keys.Down(KeyA) || keys.Down(KeyLeft) {
			c.Origin = c.Origin.Sub(c.Right.Scale(moveSpeed))
		}
		if keys.Down(KeyD) || keys.Down(KeyRight) {
			c.Origin = c.Origin.Add(c.Right.Scale(moveSpeed))
		}
		if keys.Down(KeySpace) || keys.Down(KeyE) {
			c.Origin = c.Origin.Add(UnitY3.Scale(moveSpeed))
		}
		if keys.Down(KeyLShift) || keys.Down(KeyQ) {
			c.Origin = c.Origin.Sub(UnitY3.Scale(moveSpeed))
		}

		switch {
		case keys.Down(KeyT):
			c.FOVAngle = clampf32(c.FOVAngle-1, 0, 180)
			c.FOVValue = math32.Tan(c.FOVAngle * toRadians / 2)
		case keys.Down(KeyG):
			c.FOVAngle = clampf32(c.FOVAngle+1, 0, 180)
			c.FOVValue = math32.Tan(c.FOVAngle * toRadians / 2)
		case keys.Down(KeyR):
			c.FOVAngle = 45
			c.FOVValue = math32.Tan(c.FOVAngle * toRadians / 2)
		}
	}

	if changed {
		c.calculateViewMatrix()
		c.calculateProjectionMatrix()
	}
}
