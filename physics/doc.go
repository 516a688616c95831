// Package physics is the stateless equation library underpinning the
// accretion simulation: closed-form astrophysical formulas plus the
// physical constants they share.
//
// 🚀 What lives here?
//
//	Every formula that depends only on its arguments: no disk state,
//	no RNG, no star object.
//	  • Mass-luminosity relation for main-sequence stars
//	  • Critical mass limit for gas accretion (Fogg 1985, eq. 12)
//	  • Kothari radius for rocky and gaseous bodies (Kothari 1936, eq. 23)
//	  • Escape / RMS velocities, gas retention lifetime
//	  • Minimum retained molecular weight (bracket + binary search)
//	  • Orbital period, volume density, orbital dominance (Margot Π)
//	  • Lerp / InverseLerp / Clamp interpolation helpers
//
// ✨ Guarantees:
//   - Pure functions: identical inputs ⇒ identical outputs, always.
//   - No allocations, no error returns; domain errors are the caller's
//     concern (inputs are documented with their valid units and ranges).
//
// Units follow the classic accrete conventions: stellar masses in Solar
// masses, planetary radii in km, semi-major axes in AU, velocities in m/s,
// temperatures in Kelvin, pressures in millibars unless noted.
package physics
