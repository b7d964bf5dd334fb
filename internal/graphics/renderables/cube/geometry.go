package cube

// Positions holds the 8 corners of a 2x2x2 cube centred on the origin,
// 3 floats per corner. Corner i has x = bit 2, y = bit 1, z = bit 0.
var Positions = []float32{
	-1.0, -1.0, -1.0,
	-1.0, -1.0, 1.0,
	-1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0,
	1.0, -1.0, -1.0,
	1.0, -1.0, 1.0,
	1.0, 1.0, -1.0,
	1.0, 1.0, 1.0,
}

// Colors gives each corner its own RGBA hue, 4 floats per corner.
var Colors = []float32{
	0.0, 0.0, 0.0, 1.0,
	0.0, 0.0, 1.0, 1.0,
	0.0, 1.0, 0.0, 1.0,
	0.0, 1.0, 1.0, 1.0,
	1.0, 0.0, 0.0, 1.0,
	1.0, 0.0, 1.0, 1.0,
	1.0, 1.0, 0.0, 1.0,
	1.0, 1.0, 1.0, 1.0,
}

// Indices lists 12 counter-clockwise triangles, two per face.
var Indices = []uint16{
	0, 1, 2, // -x
	1, 3, 2,

	4, 6, 5, // +x
	5, 6, 7,

	0, 5, 1, // -y
	0, 4, 5,

	2, 7, 6, // +y
	2, 3, 7,

	0, 6, 4, // -z
	0, 2, 6,

	1, 7, 3, // +z
	1, 5, 7,
}

const (
	positionSize = 3
	colorSize    = 4
)
