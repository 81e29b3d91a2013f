package kinematics

import "math"

// Params holds the initial conditions of a vertical throw.
// Y0 is in metres, V0 in m/s (positive is upward), G in m/s^2.
type Params struct {
	Y0 float64
	V0 float64
	G  float64
}

// Validate reports inputs outside the modeled domain. The engine functions
// never call it; callers that want strict checking do.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"y0", p.Y0}, {"v0", p.V0}, {"g", p.G}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ParamError{Name: f.name, Value: f.v, Wrapped: ErrNotFinite}
		}
	}
	if p.G < 0 {
		return &ParamError{Name: "g", Value: p.G, Wrapped: ErrNegativeGravity}
	}
	return nil
}

func (p Params) MaxHeight() float64           { return MaximumHeight(p.Y0, p.V0, p.G) }
func (p Params) ApexTime() float64            { return TimeToApex(p.V0, p.G) }
func (p Params) VelocityAt(t float64) float64 { return VelocityAt(p.V0, p.G, t) }
func (p Params) HeightAt(t float64) float64   { return HeightAt(p.Y0, p.V0, p.G, t) }
func (p Params) Flight() Flight               { return TimeOfFlight(p.Y0, p.V0, p.G) }

// WithGravity returns a copy of p under a different gravity.
func (p Params) WithGravity(g float64) Params {
	p.G = g
	return p
}

// Summary bundles the derived quantities of one throw.
type Summary struct {
	Params    Params
	MaxHeight float64
	ApexTime  float64
	Flight    Flight
}

func (p Params) Summarize() Summary {
	return Summary{
		Params:    p,
		MaxHeight: p.MaxHeight(),
		ApexTime:  p.ApexTime(),
		Flight:    p.Flight(),
	}
}
