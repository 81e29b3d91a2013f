package kinematics

import "math"

// MaximumHeight returns the highest point of the trajectory. An object
// launched downward or at rest never rises, so the start height is returned.
// With no gravity and an upward launch the rise is unbounded (+Inf).
func MaximumHeight(y0, v0, g float64) float64 {
	if v0 <= 0 {
		return y0
	}
	if g == 0 {
		return math.Inf(1)
	}
	return y0 + (v0*v0)/(2*g)
}

// TimeToApex returns the time at which vertical velocity reaches zero.
func TimeToApex(v0, g float64) float64 {
	if v0 <= 0 {
		return 0
	}
	if g == 0 {
		return math.Inf(1)
	}
	return v0 / g
}

// VelocityAt returns v(t) = v0 - g*t.
func VelocityAt(v0, g, t float64) float64 {
	return v0 - g*t
}

// HeightAt returns y(t) = y0 + v0*t - g*t^2/2.
func HeightAt(y0, v0, g, t float64) float64 {
	return y0 + v0*t - 0.5*g*t*t
}

// TimeOfFlight returns the time at which the object returns to y = 0.
func TimeOfFlight(y0, v0, g float64) Flight {
	if g == 0 {
		if v0 == 0 {
			return Unbounded()
		}
		if y0 > 0 {
			return Finite(math.Abs(y0 / v0))
		}
		// already at or below ground
		return Finite(0)
	}

	// 0.5*g*t^2 - v0*t - y0 = 0, written as a*t^2 + b*t + c = 0
	a := -0.5 * g
	b := v0
	c := y0

	disc := b*b - 4*a*c
	// Unreachable for g > 0 and y0 >= 0; kept for callers passing y0 < 0.
	if disc < 0 {
		return Unbounded()
	}

	sq := math.Sqrt(disc)
	roots := [2]float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}

	best, found := 0.0, false
	for _, t := range roots {
		if t < 0 {
			continue
		}
		if !found || t > best {
			best, found = t, true
		}
	}
	if !found {
		return Unbounded()
	}
	if best == 0 {
		best = 0 // normalise -0
	}
	return Finite(best)
}
