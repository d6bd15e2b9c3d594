package cube

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Cube is an axis-aligned multi-dimensional box described by its lower-left
// and upper-right corners. The zero value is a valid zero-dimensional cube.
//
// Cube values compare by coordinates, not identity: use Equal, not ==.
type Cube struct {
	lowerLeft  []float64
	upperRight []float64
}

// New creates a cube from its two corner coordinate sequences. The slices
// are stored as-is, without copying; callers hand over ownership and must
// not mutate them afterwards.
//
// Returns a *FormatError when the two sequences have different lengths.
// This is the only failure mode, and validation happens exactly once:
// a successfully constructed Cube can never become dimension-inconsistent.
func New(lowerLeft, upperRight []float64) (Cube, error) {
	if len(lowerLeft) != len(upperRight) {
		return Cube{}, newFormatError(lowerLeft, upperRight)
	}
	return Cube{lowerLeft: lowerLeft, upperRight: upperRight}, nil
}

// NewPoint creates a degenerate cube whose corners are both coords.
// It cannot fail: both corners share the same sequence.
func NewPoint(coords []float64) Cube {
	return Cube{lowerLeft: coords, upperRight: coords}
}

// Point is a variadic convenience form of NewPoint.
func Point(coords ...float64) Cube {
	return NewPoint(coords)
}

// Dimensions returns the number of coordinate axes.
func (c Cube) Dimensions() int {
	return len(c.lowerLeft)
}

// LowerLeft returns the lower-left corner coordinates. The slice is the
// cube's own state, exposed for re-encoding; callers must not modify it.
func (c Cube) LowerLeft() []float64 {
	return c.lowerLeft
}

// UpperRight returns the upper-right corner coordinates. The slice is the
// cube's own state, exposed for re-encoding; callers must not modify it.
func (c Cube) UpperRight() []float64 {
	return c.upperRight
}

// IsPoint reports whether both corners describe the same coordinate.
// Corners built by NewPoint share a backing array and short-circuit;
// independently supplied corners are compared element-wise.
func (c Cube) IsPoint() bool {
	if sameSlice(c.lowerLeft, c.upperRight) {
		return true
	}
	return equalCoords(c.lowerLeft, c.upperRight)
}

// Equal reports whether two cubes have element-wise identical corners.
// Cubes of different dimension counts are unequal; Equal never fails.
func (c Cube) Equal(other Cube) bool {
	if sameSlice(c.lowerLeft, other.lowerLeft) && sameSlice(c.upperRight, other.upperRight) {
		return true
	}
	return equalCoords(c.lowerLeft, other.lowerLeft) && equalCoords(c.upperRight, other.upperRight)
}

// Hash returns a hash consistent with Equal: it combines every
// (lowerLeft[i], upperRight[i]) pair in dimension order, so equal cubes
// always hash identically. Negative zero hashes as positive zero, matching
// float equality.
func (c Cube) Hash() uint64 {
	h := fnv.New64a()
	var buf [16]byte
	for i := range c.lowerLeft {
		binary.BigEndian.PutUint64(buf[:8], coordBits(c.lowerLeft[i]))
		binary.BigEndian.PutUint64(buf[8:], coordBits(c.upperRight[i]))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// sameSlice reports whether two slices share length and backing array.
// A shortcut only: callers follow up with an element-wise comparison.
func sameSlice(a, b []float64) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}

func equalCoords(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func coordBits(f float64) uint64 {
	if f == 0 {
		// -0.0 == 0.0, so both must produce the same bits.
		f = 0
	}
	return math.Float64bits(f)
}
