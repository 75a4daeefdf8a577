// Package primitives generates the built-in shapes the renderer can draw without any asset files.
//
// All shapes are right-handed, +Y up, centered on the origin, and wind their
// front faces counter-clockwise.
package primitives

import (
	"fmt"
	"sort"

	"github.com/bloeys/gglm/gglm"
	"github.com/chewxy/math32"
)

type Shape string

const (
	Shape_Teapot Shape = "teapot"
	Shape_Cube   Shape = "cube"
	Shape_Sphere Shape = "sphere"
)

type Geometry struct {
	Name      string
	Positions []gglm.Vec3
	Normals   []gglm.Vec3
	Tangents  []gglm.Vec3
	UV0s      []gglm.Vec2
	Indices   []uint32
}

func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

// Bounds returns the axis aligned box enclosing all vertices
func (g *Geometry) Bounds() (min, max gglm.Vec3) {

	if len(g.Positions) == 0 {
		return min, max
	}

	min = g.Positions[0]
	max = g.Positions[0]
	for i := 1; i < len(g.Positions); i++ {
		for c := 0; c < 3; c++ {
			min.Data[c] = math32.Min(min.Data[c], g.Positions[i].Data[c])
			max.Data[c] = math32.Max(max.Data[c], g.Positions[i].Data[c])
		}
	}

	return min, max
}

func (g *Geometry) addVertex(pos, normal, tangent vec3, u, v float32) {
	g.Positions = append(g.Positions, pos.toGglm())
	g.Normals = append(g.Normals, normal.toGglm())
	g.Tangents = append(g.Tangents, tangent.toGglm())
	g.UV0s = append(g.UV0s, gglm.NewVec2(u, v))
}

type generator func(size float32, tessellation int) Geometry

var generators = map[Shape]generator{
	Shape_Teapot: Teapot,
	Shape_Cube: func(size float32, _ int) Geometry {
		return Cube(size)
	},
	Shape_Sphere: Sphere,
}

// Shapes lists the names accepted by New
func Shapes() []Shape {

	shapes := make([]Shape, 0, len(generators))
	for s := range generators {
		shapes = append(shapes, s)
	}

	sort.Slice(shapes, func(i, j int) bool { return shapes[i] < shapes[j] })
	return shapes
}

// New builds the named built-in shape. Size is the overall extent of the shape
// and tessellation controls how finely curved surfaces are subdivided.
func New(shape Shape, size float32, tessellation int) (Geometry, error) {

	gen, ok := generators[shape]
	if !ok {
		return Geometry{}, fmt.Errorf("unknown primitive '%s'. Known primitives: %v", shape, Shapes())
	}

	if size <= 0 {
		return Geometry{}, fmt.Errorf("primitive size must be positive, got %f", size)
	}

	if tessellation < 1 {
		return Geometry{}, fmt.Errorf("primitive tessellation must be at least 1, got %d", tessellation)
	}

	return gen(size, tessellation), nil
}

type vec3 [3]float32

func (a vec3) add(b vec3) vec3 {
	return vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a vec3) sub(b vec3) vec3 {
	return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a vec3) scale(s float32) vec3 {
	return vec3{a[0] * s, a[1] * s, a[2] * s}
}

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a vec3) length() float32 {
	return math32.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

func (a vec3) normalize() vec3 {

	l := a.length()
	if l == 0 {
		return a
	}

	return a.scale(1 / l)
}

func (a vec3) toGglm() gglm.Vec3 {
	return gglm.NewVec3(a[0], a[1], a[2])
}
