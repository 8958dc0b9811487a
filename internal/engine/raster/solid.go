package raster

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/wireframe/pkg/math"
)

// SolidKind selects a fixed wireframe topology.
type SolidKind int

const (
	Tetrahedron SolidKind = iota
	Hexahedron
	Octahedron
)

// Cube is the usual name for a hexahedron.
const Cube = Hexahedron

// Edge is a pair of vertex indices.
type Edge [2]int

// Topology is the constant vertex count and edge list of a solid kind.
type Topology struct {
	Vertices int
	Edges    []Edge
}

var (
	tetrahedronEdges = [6]Edge{
		{0, 1}, {1, 2}, {2, 0},
		{3, 0}, {3, 1}, {3, 2},
	}
	cubeEdges = [12]Edge{
		// Bottom face
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		// Verticals
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		// Top face
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
	}
	octahedronEdges = [12]Edge{
		// Equator
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		// Upper apex
		{4, 0}, {4, 1}, {4, 2}, {4, 3},
		// Lower apex
		{5, 0}, {5, 1}, {5, 2}, {5, 3},
	}
)

// Topology returns the fixed topology for k.
func (k SolidKind) Topology() Topology {
	switch k {
	case Tetrahedron:
		return Topology{Vertices: 4, Edges: tetrahedronEdges[:]}
	case Hexahedron:
		return Topology{Vertices: 8, Edges: cubeEdges[:]}
	case Octahedron:
		return Topology{Vertices: 6, Edges: octahedronEdges[:]}
	default:
		return Topology{}
	}
}

func (k SolidKind) String() string {
	switch k {
	case Tetrahedron:
		return "tetrahedron"
	case Hexahedron:
		return "cube"
	case Octahedron:
		return "octahedron"
	default:
		return fmt.Sprintf("SolidKind(%d)", int(k))
	}
}

// Solid is an instance of a solid kind. Only vertex positions vary between
// instances; edges always come from the kind's topology.
type Solid struct {
	Kind     SolidKind
	Vertices []math.Vec3
}

// Edges returns the edge list of the solid's kind.
func (s Solid) Edges() []Edge {
	return s.Kind.Topology().Edges
}

// Validate checks the vertex count against the topology.
func (s Solid) Validate() error {
	want := s.Kind.Topology().Vertices
	if want == 0 || len(s.Vertices) != want {
		return fmt.Errorf("%w: %s has %d vertices, want %d", ErrTopology, s.Kind, len(s.Vertices), want)
	}
	return nil
}

// Transform applies m to every vertex in place (w=1, no divide).
func (s *Solid) Transform(m math.Mat4) {
	for i, v := range s.Vertices {
		s.Vertices[i] = m.TransformVec3(v)
	}
}

const (
	unitTriangleCircumcenter    = 0.57735
	unitTetrahedronCircumradius = 0.6124
)

// NewTetrahedron builds a tetrahedron around center: a base triangle at
// center.Y - r and an apex at center.Y + r, where r is the circumradius.
func NewTetrahedron(center math.Vec3, side float32) Solid {
	circumcenter := unitTriangleCircumcenter * side
	r := unitTetrahedronCircumradius * side
	inradius := math32.Sqrt(3) * side / 6
	half := side / 2

	return Solid{
		Kind: Tetrahedron,
		Vertices: []math.Vec3{
			{X: center.X + half, Y: center.Y - r, Z: center.Z + inradius},
			{X: center.X, Y: center.Y - r, Z: center.Z - circumcenter},
			{X: center.X - half, Y: center.Y - r, Z: center.Z + inradius},
			{X: center.X, Y: center.Y + r, Z: center.Z},
		},
	}
}

// NewCube builds an axis-aligned cube of the given side around center.
func NewCube(center math.Vec3, side float32) Solid {
	h := side / 2
	corners := []math.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h},
		{X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h},
		{X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h},
		{X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	for i := range corners {
		corners[i] = corners[i].Add(center)
	}
	return Solid{Kind: Hexahedron, Vertices: corners}
}

// NewOctahedron builds an octahedron whose vertices lie side/sqrt(2) from
// center along each axis, giving edges of the given length.
func NewOctahedron(center math.Vec3, side float32) Solid {
	d := side / math32.Sqrt(2)
	return Solid{
		Kind: Octahedron,
		Vertices: []math.Vec3{
			center.Add(math.Vec3{X: d}),
			center.Add(math.Vec3{Z: d}),
			center.Add(math.Vec3{X: -d}),
			center.Add(math.Vec3{Z: -d}),
			center.Add(math.Vec3{Y: d}),
			center.Add(math.Vec3{Y: -d}),
		},
	}
}

// NewSolid builds a solid of kind k around center.
func NewSolid(k SolidKind, center math.Vec3, side float32) (Solid, error) {
	switch k {
	case Tetrahedron:
		return NewTetrahedron(center, side), nil
	case Hexahedron:
		return NewCube(center, side), nil
	case Octahedron:
		return NewOctahedron(center, side), nil
	default:
		return Solid{}, fmt.Errorf("%w: unknown kind %s", ErrTopology, k)
	}
}

// ParseSolidKind maps a name such as "cube" to its kind.
func ParseSolidKind(name string) (SolidKind, error) {
	switch name {
	case "tetrahedron":
		return Tetrahedron, nil
	case "cube", "hexahedron":
		return Hexahedron, nil
	case "octahedron":
		return Octahedron, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrTopology, name)
	}
}

// SolidPoints projects every vertex of s once, rasterizes each edge between
// the projected endpoints, and concatenates the lines in edge order. Edges
// reaching past MaxScreenCoord are clipped to it; edges with a non-finite
// endpoint are skipped.
func (p Projector) SolidPoints(s Solid) ([]Point, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	screen := make([]math.Vec2, len(s.Vertices))
	for i, v := range s.Vertices {
		screen[i] = p.Project(v).XY()
	}

	edges := s.Edges()
	lines := make([]Line, 0, len(edges))
	total := 0
	for _, e := range edges {
		line := segmentLine(screen[e[0]], screen[e[1]])
		if len(line) == 0 {
			continue
		}
		total += len(line)
		lines = append(lines, line)
	}

	points := make([]Point, 0, total)
	for _, line := range lines {
		points = append(points, line...)
	}
	return points, nil
}

// LinePoints projects a world-space segment, clips it to MaxScreenCoord and
// rasterizes it. A non-finite endpoint yields an empty, non-nil line.
func (p Projector) LinePoints(from, to math.Vec3) Line {
	return segmentLine(p.Project(from).XY(), p.Project(to).XY())
}

// TrianglePoints projects a world-space triangle and fills it.
func (p Projector) TrianglePoints(t Triangle) []Point {
	a := p.Project(t[0]).XY()
	b := p.Project(t[1]).XY()
	c := p.Project(t[2]).XY()
	return FillTriangle(a, b, c)
}

// TrianglePointsIn projects a world-space triangle and fills only the
// samples inside clip.
func (p Projector) TrianglePointsIn(t Triangle, clip Bounds) []Point {
	a := p.Project(t[0]).XY()
	b := p.Project(t[1]).XY()
	c := p.Project(t[2]).XY()
	return FillTriangleIn(a, b, c, clip)
}
