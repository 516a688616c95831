// Package star models the central star of a generated planetary system.
//
// 🚀 What lives here?
//
//	A main-sequence star is identified by its classification (O through M)
//	and an integer subtype [0, 9].  Everything else (temperature,
//	luminosity, radius, mass, age, and the nested distance zones the
//	accretion engine consumes) derives from a catalog lookup:
//	  • Ecosphere radius and habitable zone (Fogg 1985)
//	  • Snow line, dust zone, protoplanet zone (Dole 1969)
//	  • Material Zones I-III with continuous blending across the
//	    transition regions (Pollard 1979)
//
// ✨ Guarantees:
//   - Evaluate is one-shot and idempotent: the second call is a no-op.
//   - A zero Star evaluates as Sol (G2V).
//   - Accretion results are best within F5V to K9V; hotter and cooler
//     stars are accepted but produce degenerate disks at the extremes.
//
// ⚙️ Usage:
//
//	s, err := star.New(star.ClassG, 2)   // G2V
//	if err != nil { ... }
//	s.Evaluate(randx.New(1))
//	fmt.Println(s.Type, s.Ecosphere)     // G2V 1.011...
package star
