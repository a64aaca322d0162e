// Package display renders the Hack screen region (8,192 words, 512x256
// monochrome pixels) to an SDL2 window. spec.md explicitly leaves the
// renderer unspecified beyond its interface to the core ("a renderer
// consumes the ordered sequence of 8,192 words... between ticks"); this
// package supplies one concrete body for that collaborator, grounded on
// the teacher's vcs/vcs_main.go fastImage (poke pixel bytes directly into
// the SDL surface rather than going through image.Image's Set/Convert
// path on every pixel).
package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/nandgate/hack16/bitvec"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"
)

const (
	Width  = 512
	Height = 256

	wordsPerRow = Width / 16
)

// Renderer owns an SDL window mirroring the screen region of a
// mmu.Unit between ticks.
type Renderer struct {
	window  *sdl.Window
	surface *sdl.Surface
	scale   int
}

// NewRenderer opens an SDL window scale times the screen's native 512x256
// resolution.
func NewRenderer(scale int) (*Renderer, error) {
	if scale < 1 {
		scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("display: sdl init: %w", err)
	}
	window, err := sdl.CreateWindow("hack16", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(Width*scale), int32(Height*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("display: create window: %w", err)
	}
	surface, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("display: get surface: %w", err)
	}
	return &Renderer{window: window, surface: surface, scale: scale}, nil
}

// Close tears down the SDL window.
func (r *Renderer) Close() {
	r.window.Destroy()
	sdl.Quit()
}

// Draw paints the 8,192-word screen buffer onto the window. Bit order
// within a word is MSB-first, left to right; 32 consecutive words make up
// one 512-pixel row (spec.md §6's memory map leaves this layout to the
// renderer's discretion).
func (r *Renderer) Draw(words [1 << 13]bitvec.Word) error {
	img := toImage(words)
	dst := surfaceImage{surface: r.surface}
	if r.scale == 1 {
		draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	}
	return r.window.UpdateSurface()
}

// toImage renders the screen words into a 512x256 grayscale image whose
// pixels are 255 for a set bit and 0 for a clear one.
func toImage(words [1 << 13]bitvec.Word) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	for row := 0; row < Height; row++ {
		for wordInRow := 0; wordInRow < wordsPerRow; wordInRow++ {
			word := words[row*wordsPerRow+wordInRow]
			for bit := 0; bit < 16; bit++ {
				x := wordInRow*16 + bit
				v := uint8(0)
				if word[bit] {
					v = 255
				}
				img.SetGray(x, row, color.Gray{Y: v})
			}
		}
	}
	return img
}

// surfaceImage adapts an *sdl.Surface to draw.Image so the screen buffer
// can be blitted through the x/image/draw scaler, mirroring the role
// fastImage plays for the teacher's TIA output.
type surfaceImage struct {
	surface *sdl.Surface
}

func (s surfaceImage) ColorModel() color.Model { return s.surface.ColorModel() }
func (s surfaceImage) Bounds() image.Rectangle { return s.surface.Bounds() }
func (s surfaceImage) At(x, y int) color.Color { return s.surface.At(x, y) }

func (s surfaceImage) Set(x, y int, c color.Color) {
	i := int32(y)*s.surface.Pitch + int32(x)*int32(s.surface.Format.BytesPerPixel)
	data := s.surface.Pixels()
	r, g, b, a := c.RGBA()
	data[i+0] = byte(b >> 8)
	data[i+1] = byte(g >> 8)
	data[i+2] = byte(r >> 8)
	data[i+3] = byte(a >> 8)
}
