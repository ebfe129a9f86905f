package mesh

// boxFace describes one side of a box: its outward normal and the two axes
// spanning it, chosen so that corners wind counter-clockwise seen from outside.
type boxFace struct {
	normal [3]float32
	u, v   [3]float32
}

var boxFaces = [6]boxFace{
	{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},  // +X
	{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},  // -X
	{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},  // +Y
	{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},  // -Y
	{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},   // +Z
	{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}}, // -Z
}

// Box builds a box of the given width (X), height (Y) and depth (Z) centred on
// the origin. Each face has its own four vertices so normals stay flat.
func Box(name string, width, height, depth float32) *Mesh {
	half := [3]float32{width / 2, height / 2, depth / 2}

	m := &Mesh{
		Name:     name,
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
		Bounds: Bounds{
			Min: [3]float32{-half[0], -half[1], -half[2]},
			Max: half,
		},
	}

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range boxFaces {
		base := uint32(len(m.Vertices))
		for i, c := range corners {
			var p [3]float32
			for axis := 0; axis < 3; axis++ {
				p[axis] = (f.normal[axis] + f.u[axis]*c[0] + f.v[axis]*c[1]) * half[axis]
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: p,
				Normal:   f.normal,
				TexCoord: uvs[i],
			})
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return m
}

// Cube builds a box with equal sides.
func Cube(name string, size float32) *Mesh {
	return Box(name, size, size, size)
}
