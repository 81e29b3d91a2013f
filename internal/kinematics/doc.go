// Package kinematics provides closed-form vertical projectile motion under
// constant gravity.
//
// Every function is pure and total for non-negative gravity. Degenerate
// inputs (zero velocity, zero gravity, no real root) resolve to 0 or to an
// unbounded [Flight] instead of an error:
//
//   - [MaximumHeight]: peak height reached
//   - [TimeToApex]: time until vertical velocity is zero
//   - [VelocityAt], [HeightAt]: state at a given time
//   - [TimeOfFlight]: first return to the ground
//
// # Example
//
//	p := kinematics.Params{Y0: 0, V0: 19.6, G: kinematics.Earth.Gravity}
//	s := p.Summarize()
//	fmt.Println(s.MaxHeight, s.ApexTime, s.Flight)
//
// [Compare] contrasts two gravity regimes, usually [Earth] and [Moon].
package kinematics
