package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"time"
)

func main() {
	resourceDir := flag.String("resources", ResourceDir, "directory containing the OBJ and texture assets")
	width := flag.Int("width", WindowWidth, "window width in pixels")
	height := flag.Int("height", WindowHeight, "window height in pixels")
	vsync := flag.Bool("vsync", true, "enable vertical sync")
	flag.Parse()

	mesh, err := ParseOBJ(filepath.Join(*resourceDir, "vehicle.obj"))
	if err != nil {
		log.Fatalf("load mesh: %v", err)
	}

	textures := MaterialTextures{}
	textures.Diffuse = mustLoadTexture(filepath.Join(*resourceDir, "vehicle_diffuse.png"))
	textures.Normal = mustLoadTexture(filepath.Join(*resourceDir, "vehicle_normal.png"))
	textures.Gloss = mustLoadTexture(filepath.Join(*resourceDir, "vehicle_gloss.png"))
	textures.Specular = mustLoadTexture(filepath.Join(*resourceDir, "vehicle_specular.png"))

	win, err := NewWindow(*width, *height, "Rasterizer", *vsync)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	defer win.Close()

	renderer := NewRenderer(*width, *height, mesh, textures)

	showFPS := true
	clearConsole := false
	takeScreenshot := false

	printTimer := float32(0)
	frameCount := 0
	lastFrame := time.Now()

	for !win.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		win.PollEvents()

		if win.consumeHotkey(hotkeyScreenshot) {
			takeScreenshot = true
		}
		if win.consumeHotkey(hotkeyClearConsole) {
			clearConsole = !clearConsole
		}
		if win.consumeHotkey(hotkeyDepthBuffer) {
			renderer.ToggleDepthBuffer()
		}
		if win.consumeHotkey(hotkeyRotation) {
			renderer.ToggleRotation()
		}
		if win.consumeHotkey(hotkeyNormalMap) {
			renderer.ToggleNormalMap()
		}
		if win.consumeHotkey(hotkeyShadingMode) {
			renderer.CycleShadingMode()
		}
		if win.consumeHotkey(hotkeyToggleFPS) {
			showFPS = !showFPS
		}

		input := win.Snapshot(dt)
		renderer.Update(input)
		fb := renderer.Render()
		win.Present(fb)

		frameCount++
		if showFPS {
			printTimer += dt
			if printTimer >= 1 {
				printTimer = 0
				if clearConsole {
					fmt.Print("\x1B[2J\x1B[H")
				}
				fmt.Printf("dFPS: %d\n", frameCount)
				frameCount = 0
			}
		}

		if takeScreenshot {
			takeScreenshot = false
			if err := renderer.SaveScreenshot("Rasterizer_ColorBuffer.bmp"); err != nil {
				fmt.Println("Something went wrong. Screenshot not saved!", err)
			} else {
				fmt.Println("Screenshot saved!")
			}
		}
	}
}

func mustLoadTexture(path string) *Texture {
	tex, err := LoadTextureFromFile(path)
	if err != nil {
		log.Fatalf("load texture: %v", err)
	}
	return tex
}
