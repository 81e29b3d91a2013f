package kinematics

// Comparison holds the same throw evaluated under two bodies.
type Comparison struct {
	A, B       Body
	SumA, SumB Summary
}

func Compare(y0, v0 float64, a, b Body) Comparison {
	return Comparison{
		A:    a,
		B:    b,
		SumA: a.Params(y0, v0).Summarize(),
		SumB: b.Params(y0, v0).Summarize(),
	}
}

// HeightDelta is the percentage change of maximum height from A to B.
// ok is false when A's maximum height is not positive.
func (c Comparison) HeightDelta() (pct float64, ok bool) {
	return percent(c.SumA.MaxHeight, c.SumB.MaxHeight)
}

// ApexDelta is the percentage change of time to apex from A to B.
func (c Comparison) ApexDelta() (pct float64, ok bool) {
	return percent(c.SumA.ApexTime, c.SumB.ApexTime)
}

// FlightDelta is the percentage change of time of flight from A to B, only
// defined when both flights are finite.
func (c Comparison) FlightDelta() (pct float64, ok bool) {
	if !c.SumA.Flight.IsFinite() || !c.SumB.Flight.IsFinite() {
		return 0, false
	}
	return percent(c.SumA.Flight.Value, c.SumB.Flight.Value)
}

func percent(base, v float64) (float64, bool) {
	if base <= 0 {
		return 0, false
	}
	return (v - base) / base * 100, true
}

// Regime classifies a gravity against a reference.
type Regime int

const (
	Weaker Regime = iota - 1
	Equal
	Stronger
)

func (r Regime) String() string {
	switch r {
	case Weaker:
		return "weaker"
	case Stronger:
		return "stronger"
	default:
		return "equal"
	}
}

func Relative(g, reference float64) Regime {
	switch {
	case g < reference:
		return Weaker
	case g > reference:
		return Stronger
	default:
		return Equal
	}
}
