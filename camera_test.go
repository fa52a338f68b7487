package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraBasisIsOrthonormal(t *testing.T) {
	cam := NewCamera(45, Vector3{X: 0, Y: 5, Z: -64}, 4.0/3.0, 0.1, 100)

	assert.InDelta(t, 1, cam.Forward.Magnitude(), 1e-4)
	assert.InDelta(t, 1, cam.Right.Magnitude(), 1e-4)
	assert.InDelta(t, 1, cam.Up.Magnitude(), 1e-4)

	assert.InDelta(t, 0, DotV3(cam.Forward, cam.Right), 1e-4)
	assert.InDelta(t, 0, DotV3(cam.Forward, cam.Up), 1e-4)
	assert.InDelta(t, 0, DotV3(cam.Right, cam.Up), 1e-4)
}

func TestCameraUpdateMovesForwardOnW(t *testing.T) {
	cam := NewCamera(45, Zero3, 1, 0.1, 100)
	origin := cam.Origin

	cam.Update(InputSnapshot{
		Keys: MapKeyState{KeyW: true},
		DT:   1,
	})

	expected := origin.Add(cam.Forward.Scale(CameraMovementSpeed))
	assert.InDelta(t, expected.X, cam.Origin.X, 1e-3)
	assert.InDelta(t, expected.Y, cam.Origin.Y, 1e-3)
	assert.InDelta(t, expected.Z, cam.Origin.Z, 1e-3)
}

func TestCameraUpdateWithNoInputLeavesMatricesUnchanged(t *testing.T) {
	cam := NewCamera(45, Vector3{X: 1, Y: 2, Z: 3}, 1, 0.1, 100)
	before := cam.ViewMatrix

	cam.Update(InputSnapshot{Keys: MapKeyState{}, DT: 1})

	for r := 0; r < 4; r++ {
		assert.Equal(t, before.Row(r), cam.ViewMatrix.Row(r))
	}
}

func TestCameraFOVHotkeysClampToValidRange(t *testing.T) {
	cam := NewCamera(1, Zero3, 1, 0.1, 100)

	for i := 0; i < 10; i++ {
		cam.Update(InputSnapshot{Keys: MapKeyState{KeyT: true}, DT: 1})
	}
	assert.Equal(t, float32(0), cam.FOVAngle)

	cam.Update(InputSnapshot{Keys: MapKeyState{KeyR: true}, DT: 1})
	assert.Equal(t, float32(45), cam.FOVAngle)

	for i := 0; i < 200; i++ {
		cam.Update(InputSnapshot{Keys: MapKeyState{KeyG: true}, DT: 1})
	}
	assert.Equal(t, float32(180), cam.FOVAngle)
}

func TestCameraUpdateRightMouseOrbits(t *testing.T) {
	cam := NewCamera(45, Zero3, 1, 0.1, 100)
	cam.Update(InputSnapshot{
		MouseButtons: MouseButtonRight,
		MouseDX:      10,
		MouseDY:      5,
		DT:           1,
	})
	assert.NotEqual(t, float32(0), cam.TotalPitch)
	assert.NotEqual(t, float32(0), cam.TotalYaw)
}
