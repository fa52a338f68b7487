package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Texture is an image sampled read-only by the shader, its channels stored
// as normalized float32 ColorRGB values (alpha is dropped). Pixels are
// stored linearly, row-major, y*width+x.
type Texture struct {
	Width, Height int
	Pixels        []ColorRGB
}

// NewTexture allocates a texture of the given dimensions, pixels zeroed.
func NewTexture(width, height int) *Texture {
	return &Texture{Width: width, Height: height, Pixels: make([]ColorRGB, width*height)}
}

// NewTextureFromImage converts a decoded Go image into a Texture,
// normalizing 16-bit image.Image channels down to [0,1] float32 the way the
// reference Texture constructor converts from an SDL surface.
func NewTextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	tex := NewTexture(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			tex.Pixels[y*width+x] = ColorRGB{
				R: float32(r) / 65535,
				G: float32(g) / 65535,
				B: float32(b) / 65535,
			}
		}
	}
	return tex
}

// LoadTextureFromFile decodes an image file (PNG/JPEG) from disk into a
// Texture, matching the reference Texture::LoadFromFile / the teacher's
// LoadTextureFromFile.
func LoadTextureFromFile(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %q: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return NewTextureFromImage(img), nil
}

// Sample performs nearest-neighbor sampling at uv (spec §4: no filtering,
// no wrapping — the core only ever samples uv values already known to be
// in [0,1] because the rasterizer abandons a triangle at the first pixel
// whose interpolated uv falls outside that range, before shading runs).
// Coordinates that land outside the image are clamped to the edge texel.
func (t *Texture) Sample(uv Vector2) ColorRGB {
	x := int(uv.X * float32(t.Width))
	y := int(uv.Y * float32(t.Height))

	if x < 0 {
		x = 0
	} else if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

// GenerateCheckerboard builds a procedural checker texture of
// checkSize-pixel squares, c1 at (0,0) and alternating with c2.
func GenerateCheckerboard(width, height, checkSize int, c1, c2 ColorRGB) *Texture {
	tex := NewTexture(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/checkSize)+(y/checkSize))%2 == 0 {
				tex.Pixels[y*width+x] = c1
			} else {
				tex.Pixels[y*width+x] = c2
			}
		}
	}
	return tex
}

// GenerateSolid builds a single-color texture. The shader's fallbacks for a
// missing map do not use it; they are constants in ShadeVertex.
func GenerateSolid(width, height int, c ColorRGB) *Texture {
	tex := NewTexture(width, height)
	for i := range tex.Pixels {
		tex.Pixels[i] = c
	}
	return tex
}
