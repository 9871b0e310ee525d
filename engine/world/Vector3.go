package world

import (
	"fmt"
	"math"
)

// Coord is the type of world coordinates (x, y, z)
type Coord float32

// Vector3 is type of object position
type Vector3 struct {
	X Coord
	Y Coord
	Z Coord
}

func (p Vector3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
}

// DistanceTo calculates distance between two positions
func (p Vector3) DistanceTo(o Vector3) Coord {
	dx := p.X - o.X
	dy := p.Y - o.Y
	dz := p.Z - o.Z
	return Coord(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

// Seed derives an integer seed from the position: ceil(x*z + y*10000).
//
// The product is computed in single precision, as the world stores it. The
// result is widened to 64 bits so distant positions keep distinct seeds;
// values beyond the int64 range saturate and NaN gives 0.
func (p Vector3) Seed() int64 {
	v := math.Ceil(float64(float32(p.X*p.Z + p.Y*10000)))
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}
