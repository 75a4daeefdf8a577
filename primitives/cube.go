package primitives

import "github.com/bloeys/gglm/gglm"

var cubeFaceNormals = [6]vec3{
	{0, 0, 1},
	{0, 0, -1},
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
}

// Cube is an axis aligned cube with edges of the given size. Every face has its
// own 4 vertices so normals stay flat.
func Cube(size float32) Geometry {

	g := Geometry{
		Name:      string(Shape_Cube),
		Positions: make([]gglm.Vec3, 0, 24),
		Normals:   make([]gglm.Vec3, 0, 24),
		Tangents:  make([]gglm.Vec3, 0, 24),
		UV0s:      make([]gglm.Vec2, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}

	halfSize := size / 2
	for _, n := range cubeFaceNormals {

		// side1 x side2 == n, which makes the face counter-clockwise from outside
		side1 := vec3{n[1], n[2], n[0]}
		side2 := n.cross(side1)

		base := uint32(len(g.Positions))
		g.addVertex(n.sub(side1).sub(side2).scale(halfSize), n, side1, 0, 1)
		g.addVertex(n.add(side1).sub(side2).scale(halfSize), n, side1, 1, 1)
		g.addVertex(n.add(side1).add(side2).scale(halfSize), n, side1, 1, 0)
		g.addVertex(n.sub(side1).add(side2).scale(halfSize), n, side1, 0, 0)

		g.Indices = append(g.Indices,
			base+0, base+1, base+2,
			base+0, base+2, base+3,
		)
	}

	return g
}
