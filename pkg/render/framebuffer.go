package render

import "prism/pkg/geom"

// Framebuffer is an H*W*3 8-bit sRGB image, row-major, top-left origin
// (§6's render-call output contract). PNG encoding is the caller's concern.
type Framebuffer struct {
	Width, Height int
	Pix           []uint8
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

func (f *Framebuffer) Set(x, y int, c geom.Color) {
	r, g, b, _ := c.RGBA8()
	i := (y*f.Width + x) * 3
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = r, g, b
}

func (f *Framebuffer) At(x, y int) (r, g, b uint8) {
	i := (y*f.Width + x) * 3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// auxBuffer holds per-pixel depth and world-normal samples, populated only
// when outlines are enabled, and read by the edge-detection post-pass.
type auxBuffer struct {
	width, height int
	depth         []float64
	normal        []geom.Vec3
	hasHit        []bool
}

func newAuxBuffer(width, height int) *auxBuffer {
	return &auxBuffer{
		width: width, height: height,
		depth:  make([]float64, width*height),
		normal: make([]geom.Vec3, width*height),
		hasHit: make([]bool, width*height),
	}
}

func (a *auxBuffer) set(x, y int, depth float64, normal geom.Vec3, hit bool) {
	i := y*a.width + x
	a.depth[i], a.normal[i], a.hasHit[i] = depth, normal, hit
}

func (a *auxBuffer) get(x, y int) (depth float64, normal geom.Vec3, hit bool) {
	i := y*a.width + x
	return a.depth[i], a.normal[i], a.hasHit[i]
}
