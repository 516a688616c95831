// Package planet derives the physical character of an accreted body.
//
// 🚀 What lives here?
//
//	A Planet starts as raw accretion output (orbit plus dust/gas mass
//	split) and Evaluate fills in everything else:
//	  • Orbital period, periapsis/apoapsis, orbital dominance, day
//	    length with spin-resonance detection
//	  • Gaseous vs. rocky determination, with hydrogen/helium escape
//	    for failed gas dwarfs (Fogg 1985)
//	  • Iterative surface-condition convergence: albedo, hydrosphere,
//	    cloud and ice coverage, greenhouse temperature rise
//	  • Atmospheric composition from a 13-species gas table
//	    (Burrows 2006, inspired partial pressures from Dole 1969)
//	  • Earth Similarity Index and final type classification
//
// ✨ Guarantees:
//   - Evaluate is one-shot and idempotent: the second call is a no-op.
//   - Deterministic for a fixed random source; convergence shortfalls
//     surface through the Diagnostics callback, never as errors.
//   - The surface loop runs at most 25 iterations.
//
// ⚙️ Usage:
//
//	p := planet.New(1.0, 0.0167, 3.0e-6, 5.0e-9)
//	if err := p.Evaluate(st, 3, planet.DefaultOptions(), rng); err != nil { ... }
//	fmt.Println(p.Type, p.ESI)
package planet
