// Package randx centralizes deterministic random generation for the
// accretion simulation.
//
// Goals:
//   - Determinism: same seed ⇒ identical planetary systems across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; draws never leave their documented ranges.
//
// Every draw law the simulation needs lives here: the accrete eccentricity
// law, bounded uniform scatter around a center value, Gaussian scatter,
// axial-tilt selection, and full-circle angle draws. Components receive a
// *Source explicitly; there is no package-level generator.
//
// Concurrency:
//   - Source is NOT goroutine-safe. Do not share a *Source across goroutines.
//   - Use Derive to create independent streams for concurrent generations.
package randx
