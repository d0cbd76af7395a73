// Package material defines surface appearance: the Phong coefficient set
// and the tagged-variant texture types (grid, checkerboard) that modulate
// it at a hit point.
package material

import "prism/pkg/geom"

// Material is the Phong coefficient set a primitive owns.
type Material struct {
	Color        geom.Color
	Ambient      float64
	Diffuse      float64
	Specular     float64
	Shininess    float64
	Reflectivity float64 // 0 when absent; caller treats >0 as "has reflection"
	Texture      Texture // zero value (Kind == NoTexture) for a plain material
}

// TextureKind tags which variant a Texture holds.
type TextureKind int

const (
	NoTexture TextureKind = iota
	GridTexture
	CheckerboardTexture
)

// Texture is a tagged union over the two supported texture kinds. Exactly
// one of the Grid/Checkerboard fields is meaningful, selected by Kind.
type Texture struct {
	Kind TextureKind

	// Grid
	LineColor geom.Color
	LineWidth float64
	CellSize  float64

	// Checkerboard
	MaterialA *Material
	MaterialB *Material
}

// Effective resolves the material a shading point should use, given
// object-space surface coordinates (u,v). Grid and checkerboard are
// mutually exclusive per §4.3; a plain material (Kind == NoTexture) is
// returned unchanged.
func (m Material) Effective(u, v float64) Material {
	switch m.Texture.Kind {
	case GridTexture:
		return m.gridEffective(u, v)
	case CheckerboardTexture:
		return m.checkerEffective(u, v)
	default:
		return m
	}
}

func (m Material) gridEffective(u, v float64) Material {
	t := m.Texture
	if onGridLine(u, t.CellSize, t.LineWidth) || onGridLine(v, t.CellSize, t.LineWidth) {
		out := m
		out.Color = t.LineColor
		return out
	}
	return m
}

// onGridLine reports whether coordinate c lies within lineWidth/2 of a
// multiple of cellSize.
func onGridLine(c, cellSize, lineWidth float64) bool {
	if cellSize <= 0 {
		return false
	}
	m := mod(c, cellSize)
	dist := m
	if cellSize-m < dist {
		dist = cellSize - m
	}
	return dist <= lineWidth/2
}

func mod(a, m float64) float64 {
	r := a - float64(int(a/m))*m
	if r < 0 {
		r += m
	}
	return r
}

func (m Material) checkerEffective(u, v float64) Material {
	t := m.Texture
	fu, fv := floorInt(u), floorInt(v)
	if (fu+fv)%2 == 0 {
		if t.MaterialA != nil {
			return *t.MaterialA
		}
		return m
	}
	if t.MaterialB != nil {
		return *t.MaterialB
	}
	return m
}

func floorInt(x float64) int {
	i := int(x)
	if x < 0 && float64(i) != x {
		i--
	}
	return i
}
