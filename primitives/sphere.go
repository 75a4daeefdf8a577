package primitives

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/chewxy/math32"
)

// Sphere is a UV sphere with tessellation rings from pole to pole and twice as many segments around.
// The seam and the poles get duplicated vertices so texture coordinates don't wrap.
func Sphere(diameter float32, tessellation int) Geometry {

	if tessellation < 3 {
		tessellation = 3
	}

	stacks := tessellation
	slices := tessellation * 2
	radius := diameter / 2

	vertCount := (stacks + 1) * (slices + 1)
	g := Geometry{
		Name:      string(Shape_Sphere),
		Positions: make([]gglm.Vec3, 0, vertCount),
		Normals:   make([]gglm.Vec3, 0, vertCount),
		Tangents:  make([]gglm.Vec3, 0, vertCount),
		UV0s:      make([]gglm.Vec2, 0, vertCount),
		Indices:   make([]uint32, 0, stacks*slices*6),
	}

	for i := 0; i <= stacks; i++ {

		v := float32(i) / float32(stacks)
		lat := v*math32.Pi - math32.Pi/2
		sinLat, cosLat := math32.Sin(lat), math32.Cos(lat)

		// Pin the poles so each pole ring is exactly one point
		if i == 0 {
			sinLat, cosLat = -1, 0
		} else if i == stacks {
			sinLat, cosLat = 1, 0
		}

		for j := 0; j <= slices; j++ {

			u := float32(j) / float32(slices)
			lon := u * 2 * math32.Pi
			sinLon, cosLon := math32.Sin(lon), math32.Cos(lon)

			normal := vec3{cosLat * cosLon, sinLat, -cosLat * sinLon}
			tangent := vec3{-sinLon, 0, -cosLon}

			g.addVertex(normal.scale(radius), normal, tangent, u, 1-v)
		}
	}

	// Columns advance with longitude and rows with latitude, and for this
	// parameterization d/dlon x d/dlat points outwards
	stride := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {

			a := i*stride + j
			b := a + 1
			c := a + stride
			d := c + 1

			g.Indices = append(g.Indices, a, b, c, b, d, c)
		}
	}

	return g
}
