package motion

import (
	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/player"
)

// Response selects what happens to velocities when two players touch.
// Overlap is always removed by moving both players apart.
type Response int

const (
	ResponsePositional Response = iota // velocities untouched
	ResponseElastic                    // mass-weighted bounce along the contact normal
)

func (r Response) String() string {
	switch r {
	case ResponsePositional:
		return "positional"
	case ResponseElastic:
		return "elastic"
	default:
		return "unknown"
	}
}

// ParseResponse maps a config value to a Response, defaulting to positional.
func ParseResponse(s string) Response {
	if s == "elastic" {
		return ResponseElastic
	}
	return ResponsePositional
}

// fallbackNormal separates two players sitting exactly on top of each other.
var fallbackNormal = geometry.Vector{X: 1, Y: 0}

// Resolve pushes every overlapping pair apart by half the overlap each along
// the line between their centers. It works in place on players, which must
// be a buffer owned by the caller, visiting pairs i<j once. Overlaps created
// by a later push are left for the next frame.
func (t Tuning) Resolve(players []player.Player) {
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			a, b := players[i], players[j]
			offset := b.Position.Minus(a.Position)
			distance := offset.Magnitude()
			reach := a.Radius + b.Radius
			if distance >= reach {
				continue
			}

			normal := fallbackNormal
			if distance > 0 {
				normal = offset.Scale(1 / distance)
			}
			push := normal.Scale((reach - distance) / 2)
			a.Position = a.Position.Minus(push)
			b.Position = b.Position.Add(push)

			if t.Response == ResponseElastic {
				a.Velocity, b.Velocity = bounce(a, b, normal)
			}
			players[i], players[j] = a, b
		}
	}
}

// bounce exchanges momentum along normal for a perfectly elastic collision.
// Players already moving apart are left alone.
func bounce(a, b player.Player, normal geometry.Vector) (geometry.Vector, geometry.Vector) {
	va := a.Velocity.DotProduct(normal)
	vb := b.Velocity.DotProduct(normal)
	if va-vb <= 0 {
		return a.Velocity, b.Velocity
	}
	total := a.Mass + b.Mass
	if total <= 0 {
		return a.Velocity, b.Velocity
	}
	na := (va*(a.Mass-b.Mass) + 2*b.Mass*vb) / total
	nb := (vb*(b.Mass-a.Mass) + 2*a.Mass*va) / total
	return a.Velocity.Add(normal.Scale(na - va)), b.Velocity.Add(normal.Scale(nb - vb))
}
