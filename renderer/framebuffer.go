package renderer

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/ndoll1998/FairPT/tracer"
)

// FrameBuffer holds the developed frame as an 8-bit RGBA image.
type FrameBuffer struct {
	width  uint32
	height uint32
	img    *image.RGBA
}

// NewFrameBuffer allocates a frame buffer for the given dimensions.
func NewFrameBuffer(width, height uint32) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, int(width), int(height))),
	}
}

// Width returns the frame width in pixels.
func (fb *FrameBuffer) Width() uint32 {
	return fb.width
}

// Height returns the frame height in pixels.
func (fb *FrameBuffer) Height() uint32 {
	return fb.height
}

// Image returns the developed frame.
func (fb *FrameBuffer) Image() image.Image {
	return fb.img
}

// Develop averages the contribution slots of every pixel, clamps the result
// to [0, 1] and applies gamma two before writing the 8-bit pixel values.
func (fb *FrameBuffer) Develop(records []tracer.ContributionRecord, spp uint32) {
	inv := 1.0 / float32(spp)
	for y := uint32(0); y < fb.height; y++ {
		for x := uint32(0); x < fb.width; x++ {
			var c [3]float32
			base := (y*fb.width + x) * spp
			for s := uint32(0); s < spp; s++ {
				col := records[base+s].Color
				c[0] += col[0]
				c[1] += col[1]
				c[2] += col[2]
			}
			var out [3]uint8
			for i := 0; i < 3; i++ {
				v := c[i] * inv
				if v < 0 {
					v = 0
				} else if v > 1 {
					v = 1
				}
				out[i] = uint8(float32(math.Sqrt(float64(v))) * 255)
			}
			fb.img.SetRGBA(int(x), int(y), color.RGBA{out[0], out[1], out[2], 255})
		}
	}
}

// Save encodes the frame to the given path, picking the image format from
// the file extension. PNG and BMP are supported.
func (fb *FrameBuffer) Save(path string) error {
	var encode func(f *os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, fb.img) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, fb.img) }
	default:
		return ErrUnsupportedFormat
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return encode(f)
}
