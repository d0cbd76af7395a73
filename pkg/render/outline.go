package render

import (
	"math"

	"prism/pkg/scene"
)

var axial4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var corners4 = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// applyOutline runs the edge-detection post-pass (§4.7): depth+normal
// discontinuities against each neighbor accumulate into an edge strength,
// thresholded into a mask, dilated by thickness, then composited.
func applyOutline(fb *Framebuffer, aux *auxBuffer, cfg scene.Outline) {
	mask := detectEdges(aux, cfg)
	mask = dilate(mask, aux.width, aux.height, int(math.Floor(cfg.Thickness)))
	composite(fb, mask, cfg)
}

func detectEdges(aux *auxBuffer, cfg scene.Outline) []bool {
	mask := make([]bool, aux.width*aux.height)
	neighbors := axial4[:]
	if cfg.Use8Neighbors {
		neighbors = append(append([][2]int{}, axial4[:]...), corners4[:]...)
	}

	for y := 0; y < aux.height; y++ {
		for x := 0; x < aux.width; x++ {
			zi, ni, hiti := aux.get(x, y)
			if !hiti {
				continue
			}
			strength := 0.0
			for _, d := range neighbors {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= aux.width || ny < 0 || ny >= aux.height {
					continue
				}
				zj, nj, hitj := aux.get(nx, ny)
				if !hitj {
					continue
				}
				zDiff := math.Abs(zi - zj)
				nDiff := 1 - ni.Dot(nj)
				e := cfg.DepthWeight*zDiff + cfg.NormalWeight*nDiff
				if e > strength {
					strength = e
				}
			}
			if strength > cfg.Threshold {
				mask[y*aux.width+x] = true
			}
		}
	}
	return mask
}

// dilate grows the outline mask by radius pixels using a simple square
// structuring element, equivalent to repeated 1-pixel dilation.
func dilate(mask []bool, width, height, radius int) []bool {
	if radius <= 0 {
		return mask
	}
	out := make([]bool, len(mask))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y*width+x] {
				continue
			}
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					out[ny*width+nx] = true
				}
			}
		}
	}
	return out
}

func composite(fb *Framebuffer, mask []bool, cfg scene.Outline) {
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if mask[y*fb.Width+x] {
				fb.Set(x, y, cfg.Color)
			}
		}
	}
}
