// Package geometry provides the pure geometric primitives used by bond and
// interaction detection: Euclidean distance, the angle at a vertex, and the
// signed dihedral (torsion) angle.  All functions are stateless and operate
// on Å coordinates.
package geometry

import (
	"math"

	"github.com/xtalgeom/nciscan/pkg/errors"
)

// Vec3 is a Cartesian point or displacement in Å.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product v·w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v×w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Distance returns the Euclidean distance between points a and b.
// It is symmetric, non-negative, and zero iff the positions coincide.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Norm()
}

// AngleRad returns the angle (radians) at vertex between the rays
// vertex→a and vertex→b.  The cosine is clamped to [-1, 1] before the
// arccosine to guard floating-point overshoot, so the result always lies in
// [0, π].
//
// A zero-length ray has no direction, which is distinct from a 0° angle, so
// it is an error rather than a silent zero.
func AngleRad(a, vertex, b Vec3) (float64, error) {
	va := a.Sub(vertex)
	vb := b.Sub(vertex)

	magA := va.Norm()
	magB := vb.Norm()
	if magA == 0 || magB == 0 {
		return 0, errors.New(errors.CodeDegenerateVector, "angle undefined for zero-length ray")
	}

	cos := va.Dot(vb) / (magA * magB)
	cos = math.Max(-1.0, math.Min(1.0, cos))
	return math.Acos(cos), nil
}

// Angle is AngleRad converted to degrees.
func Angle(a, vertex, b Vec3) (float64, error) {
	rad, err := AngleRad(a, vertex, b)
	if err != nil {
		return 0, err
	}
	return rad * 180.0 / math.Pi, nil
}

// DihedralRad returns the signed torsion angle (radians) about the b–c axis
// for the atom sequence a–b–c–d, using the standard two-normal atan2 method.
//
// When either plane normal has zero length (three collinear points) the
// torsion is undefined; 0.0 is returned as a documented simplification
// instead of an error.
func DihedralRad(a, b, c, d Vec3) float64 {
	b1 := a.Sub(b)
	b2 := c.Sub(b)
	b3 := d.Sub(c)

	n1 := b1.Cross(b2)
	n2 := b2.Cross(b3)

	n1Mag := n1.Norm()
	n2Mag := n2.Norm()
	if n1Mag == 0 || n2Mag == 0 {
		return 0.0
	}

	n1 = n1.Scale(1 / n1Mag)
	n2 = n2.Scale(1 / n2Mag)

	// m1 is perpendicular to n1 within the first plane; its projection on n2
	// supplies the sign of the torsion.
	m1 := n1.Cross(b2.Scale(1 / b2.Norm()))

	x := n1.Dot(n2)
	y := m1.Dot(n2)
	return math.Atan2(y, x)
}

// Dihedral is DihedralRad converted to degrees.
func Dihedral(a, b, c, d Vec3) float64 {
	return DihedralRad(a, b, c, d) * 180.0 / math.Pi
}
