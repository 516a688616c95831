// Package accretion implements the dust-disk accretion engine at the heart
// of planetary-system generation (Dole 1969, as refined by Fogg 1985).
//
// 🚀 How it works:
//
//	The nebular disk starts as a single band of dust and gas spanning the
//	star's dust zone.  Protoplanet seeds are injected one at a time; each
//	seed sweeps the bands its orbit perturbs, growing until its fractional
//	mass gain per pass drops below 0.01%.  Swept regions are reclassified
//	by splitting bands at the sweep boundaries, then adjacent bands with
//	identical contents are merged back together.  A grown protoplanet
//	either coalesces with an existing planet whose effect limits it
//	overlaps (the merged body re-sweeps the disk at its combined orbit)
//	or joins the planet list in semi-major-axis order.  Seeding repeats
//	until no dust-bearing band overlaps the planet-forming zone.
//
// ✨ Key features:
//   - Serial accretion (Generate): each seed fully accretes before the next.
//   - Round-robin accretion (GenerateBatch): a cohort of seeds each sweeps
//     once per cycle until all stall, then remnant dust is swept serially.
//   - Three seeding strategies: explicit orbits, a randomized Blagg/Bode
//     ladder anchored on the ecosphere, or fully random placement.
//   - Deterministic: all randomness flows through the injected randx.Source.
//
// The engine produces bare Planetesimals (orbit + mass decomposition);
// turning them into fully evaluated planets is the planet package's job.
//
// Performance: a generation run is O(P·B) for P protoplanets and B dust
// bands; B stays small because cleared bands merge aggressively.
package accretion
