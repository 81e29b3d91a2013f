package kinematics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vthrow/internal/kinematics"
)

const tol = 1e-9

var _ = Describe("MaximumHeight and TimeToApex", func() {
	DescribeTable("non-rising launches stay at the start height",
		func(y0, v0, g float64) {
			Expect(kinematics.MaximumHeight(y0, v0, g)).To(Equal(y0))
			Expect(kinematics.TimeToApex(v0, g)).To(BeZero())
		},
		Entry("at rest on earth", 10.0, 0.0, 9.8),
		Entry("thrown down on earth", 5.0, -3.0, 9.8),
		Entry("thrown down on the moon", 0.0, -12.5, 1.625),
		Entry("at rest without gravity", 7.0, 0.0, 0.0),
		Entry("thrown down without gravity", 7.0, -1.0, 0.0),
	)

	It("uses y0 + v0²/2g for upward launches", func() {
		for _, g := range []float64{1.625, 3.71, 9.8, 24.79} {
			Expect(kinematics.MaximumHeight(3, 12, g)).To(BeNumerically("~", 3+144/(2*g), tol))
			Expect(kinematics.TimeToApex(12, g)).To(BeNumerically("~", 12/g, tol))
		}
	})

	It("rises without bound when there is no gravity", func() {
		Expect(math.IsInf(kinematics.MaximumHeight(0, 5, 0), 1)).To(BeTrue())
		Expect(math.IsInf(kinematics.TimeToApex(5, 0), 1)).To(BeTrue())
	})

	It("reaches the maximum height exactly at the apex", func() {
		for _, p := range []kinematics.Params{
			{Y0: 0, V0: 19.6, G: 9.8},
			{Y0: 12, V0: 3, G: 1.625},
			{Y0: 100, V0: 0.5, G: 24.79},
		} {
			apex := p.ApexTime()
			Expect(p.HeightAt(apex)).To(BeNumerically("~", p.MaxHeight(), 1e-9))
			Expect(p.VelocityAt(apex)).To(BeNumerically("~", 0, 1e-12))
		}
	})

	It("grows strictly as gravity weakens", func() {
		prevH, prevT := 0.0, 0.0
		for _, g := range []float64{24.79, 9.8, 3.71, 1.625, 0.5} {
			h := kinematics.MaximumHeight(2, 10, g)
			t := kinematics.TimeToApex(10, g)
			Expect(h).To(BeNumerically(">", prevH))
			Expect(t).To(BeNumerically(">", prevT))
			prevH, prevT = h, t
		}
	})
})

var _ = Describe("VelocityAt and HeightAt", func() {
	It("evaluates the linear velocity law", func() {
		Expect(kinematics.VelocityAt(10, 9.8, 0)).To(Equal(10.0))
		Expect(kinematics.VelocityAt(10, 9.8, 2)).To(BeNumerically("~", -9.6, tol))
		Expect(kinematics.VelocityAt(-4, 0, 100)).To(Equal(-4.0))
	})

	It("evaluates the quadratic height law", func() {
		Expect(kinematics.HeightAt(5, 0, 9.8, 0)).To(Equal(5.0))
		Expect(kinematics.HeightAt(0, 19.6, 9.8, 1)).To(BeNumerically("~", 14.7, tol))
		Expect(kinematics.HeightAt(10, 2, 0, 3)).To(Equal(16.0))
	})
})

var _ = Describe("TimeOfFlight", func() {
	DescribeTable("degenerate and concrete cases",
		func(y0, v0, g float64, want kinematics.Flight) {
			got := kinematics.TimeOfFlight(y0, v0, g)
			Expect(got.Unbounded).To(Equal(want.Unbounded))
			if want.IsFinite() {
				Expect(got.Value).To(BeNumerically("~", want.Value, tol))
			}
		},
		Entry("already on the ground", 0.0, 0.0, 9.8, kinematics.Finite(0)),
		Entry("floating with no motion", 10.0, 0.0, 0.0, kinematics.Unbounded()),
		Entry("moving up from the ground without gravity", 0.0, 5.0, 0.0, kinematics.Finite(0)),
		Entry("moving down from the ground without gravity", 0.0, -5.0, 0.0, kinematics.Finite(0)),
		Entry("uniform fall without gravity", 10.0, -2.0, 0.0, kinematics.Finite(5)),
		Entry("uniform rise without gravity uses |y0/v0|", 10.0, 2.0, 0.0, kinematics.Finite(5)),
		Entry("symmetric rise and fall", 0.0, 19.6, 9.8, kinematics.Finite(4)),
		Entry("drop from rest", 19.6, 0.0, 9.8, kinematics.Finite(2)),
		Entry("no real root below ground", -10.0, 0.0, 9.8, kinematics.Unbounded()),
		Entry("both roots negative below ground", -1.0, -10.0, 9.8, kinematics.Unbounded()),
	)

	It("keeps the later crossing when starting below ground", func() {
		// y(t) = -1 + 10t - 4.9t², crosses 0 twice while rising and falling
		f := kinematics.TimeOfFlight(-1, 10, 9.8)
		Expect(f.IsFinite()).To(BeTrue())
		Expect(f.Value).To(BeNumerically(">", 10/9.8))
		Expect(kinematics.HeightAt(-1, 10, 9.8, f.Value)).To(BeNumerically("~", 0, 1e-9))
	})

	It("lands at height zero whenever the flight is finite", func() {
		for _, p := range []kinematics.Params{
			{Y0: 0, V0: 19.6, G: 9.8},
			{Y0: 35, V0: 4, G: 9.8},
			{Y0: 35, V0: -4, G: 9.8},
			{Y0: 2, V0: 30, G: 1.625},
			{Y0: 1000, V0: 0, G: 3.71},
		} {
			f := p.Flight()
			Expect(f.IsFinite()).To(BeTrue())
			Expect(f.Value).To(BeNumerically(">=", 0))
			Expect(p.HeightAt(f.Value)).To(BeNumerically("~", 0, 1e-6))
		}
	})

	It("never reports negative zero", func() {
		f := kinematics.TimeOfFlight(0, 0, 9.8)
		Expect(math.Signbit(f.Value)).To(BeFalse())
	})
})

var _ = Describe("Summary", func() {
	It("matches the earth reference throw", func() {
		s := kinematics.Earth.Params(0, 19.6).Summarize()
		Expect(s.MaxHeight).To(BeNumerically("~", 19.6, tol))
		Expect(s.ApexTime).To(BeNumerically("~", 2.0, tol))
		Expect(s.Flight.IsFinite()).To(BeTrue())
		Expect(s.Flight.Value).To(BeNumerically("~", 4.0, tol))
	})

	It("matches the moon reference throw", func() {
		s := kinematics.Moon.Params(0, 19.6).Summarize()
		Expect(s.MaxHeight).To(BeNumerically("~", 19.6*19.6/(2*kinematics.MoonGravity), tol))
		Expect(s.MaxHeight).To(BeNumerically("~", 118.20, 0.01))
		Expect(s.ApexTime).To(BeNumerically("~", 19.6/kinematics.MoonGravity, tol))
	})
})
