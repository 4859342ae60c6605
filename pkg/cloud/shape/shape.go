// Package shape defines cloud silhouettes.
//
// A [Profile] maps an angle in radians to a multiplier applied to the
// nominal circular search radius. The radial point generator in package
// cloud calls Factor once per candidate point, so profiles must be pure and
// cheap. [Circle] is special-cased by callers: when [IsCircle] reports true
// the factor is assumed to be 1 and Factor is never called.
//
// Built-in profiles come in three flavours:
//
//   - analytic polygons and curves (cardioid, square, triangles, pentagon, star)
//   - sampled silhouettes backed by a [Table] (hexagon, hyperbolic, ...)
//   - user supplied: [Func] for Go callers, [Expr] for JavaScript expressions
package shape

import (
	"math"
	"slices"
	"sort"
)

// Profile scales the cloud radius at angle theta.
type Profile interface {
	Factor(theta float64) float64
}

// Func adapts an ordinary function to the Profile interface.
type Func func(theta float64) float64

// Factor calls f with theta wrapped into [0, 2π).
func (f Func) Factor(theta float64) float64 { return f(Wrap(theta)) }

// Circle is the uniform profile.
type Circle struct{}

// Factor always returns 1.
func (Circle) Factor(float64) float64 { return 1 }

// IsCircle reports whether p is nil or the uniform circle.
func IsCircle(p Profile) bool {
	if p == nil {
		return true
	}
	_, ok := p.(Circle)
	return ok
}

// Wrap maps theta into [0, 2π).
func Wrap(theta float64) float64 {
	const turn = 2 * math.Pi
	theta = math.Mod(theta, turn)
	if theta < 0 {
		theta += turn
	}
	return theta
}

// Table is a silhouette sampled at evenly spaced angles.
type Table struct {
	Max     float64
	Samples []uint16
}

// Factor returns the sample at floor(theta / 2π * len) divided by Max.
func (t Table) Factor(theta float64) float64 {
	n := len(t.Samples)
	if n == 0 || t.Max == 0 {
		return 1
	}
	i := int(Wrap(theta) / (2 * math.Pi) * float64(n))
	if i >= n {
		i = n - 1
	}
	return float64(t.Samples[i]) / t.Max
}

// polygon returns the polar equation r = 1/(cos t' + m sin t') with
// t' = (theta + phase) mod (2π / sides).
func polygon(sides int, m, phase float64) Func {
	sector := 2 * math.Pi / float64(sides)
	return func(theta float64) float64 {
		t := math.Mod(theta+phase, sector)
		return 1 / (math.Cos(t) + m*math.Sin(t))
	}
}

func cardioid(theta float64) float64 {
	return 1 - math.Sin(theta)
}

func star(theta float64) float64 {
	const (
		phase = 0.955
		m     = 3.07768
	)
	half := 2 * math.Pi / 10
	t := math.Mod(theta+phase, half)
	if math.Mod(theta+phase, 2*math.Pi/5)-half >= 0 {
		return 1 / (math.Cos(half-t) + m*math.Sin(half-t))
	}
	return 1 / (math.Cos(t) + m*math.Sin(t))
}

// Shape names accepted by Lookup.
const (
	NameCircle          = "circle"
	NameCardioid        = "cardioid"
	NameDiamond         = "diamond"
	NameSquare          = "square"
	NameTriangleForward = "triangle-forward"
	NameTriangle        = "triangle"
	NameTriangleUpright = "triangle-upright"
	NamePentagon        = "pentagon"
	NameStar            = "star"
	NameHexagon         = "hexagon"
	NameHyperbolic      = "hyperbolic"
	NameSicklecell      = "sicklecell"
	NameDroplet         = "droplet"
	NameBrain           = "brain"
)

var builtins = map[string]Profile{
	NameCircle:          Circle{},
	NameCardioid:        Func(cardioid),
	NameDiamond:         polygon(4, 1, 0),
	NameSquare:          polygon(4, 1, 0),
	NameTriangleForward: polygon(3, math.Sqrt(3), 0),
	NameTriangle:        polygon(3, math.Sqrt(3), math.Pi*3/2),
	NameTriangleUpright: polygon(3, math.Sqrt(3), math.Pi*3/2),
	NamePentagon:        polygon(5, 0.726543, 0.955),
	NameStar:            Func(star),
	NameHexagon:         hexagonTable,
	NameHyperbolic:      hyperbolicTable,
	NameSicklecell:      sicklecellTable,
	NameDroplet:         dropletTable,
	NameBrain:           brainTable,
}

// Lookup returns the built-in profile registered under name.
// The empty name resolves to the circle.
func Lookup(name string) (Profile, bool) {
	if name == "" {
		return Circle{}, true
	}
	p, ok := builtins[name]
	return p, ok
}

// Names lists the built-in profile names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsSampled reports whether the named profile is backed by a sample table.
func IsSampled(name string) bool {
	return slices.Contains([]string{NameHexagon, NameHyperbolic, NameSicklecell, NameDroplet, NameBrain}, name)
}
