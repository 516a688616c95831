// Package accrete is a procedural planetary-system generator built on the
// classic dust-accretion model: seed a protoplanetary disk, grow bodies by
// sweeping dust and gas, collide and coalesce them, then evaluate every
// survivor into a finished planet.
//
// 🚀 What is accrete?
//
//	A deterministic, seed-driven simulation library that brings together:
//		• Star model: spectral catalog (O3V..M9V), luminosity, ecosphere & zones
//		• Accretion: dust-band bookkeeping, serial & round-robin growth modes
//		• Seeding: random, explicit orbits, or a randomized Blagg/Bode ladder
//		• Collisions: orbit-crossing detection and mass-conserving coalescence
//		• Evaluation: geometry, day length, greenhouse-converged surfaces
//		• Atmospheres: per-gas retention and composition synthesis
//		• Habitability: Earth Similarity Index scoring
//
// ✨ Why choose accrete?
//
//   - Reproducible: one seed fully determines the generated system
//   - Self-contained: no global state, safe for concurrent generations
//   - Tunable: every disk and evaluation knob exposed through one Config
//   - Pure Go: no cgo
//
// Under the hood, everything is organized under focused subpackages:
//
//	physics/    — shared constants and the accrete equation set
//	randx/      — deterministic random streams and domain-shaped draws
//	star/       — spectral catalog, stellar traits, zone geometry
//	accretion/  — the dust disk and the protoplanet growth loops
//	planet/     — per-body evaluation, surfaces, atmospheres, ESI
//	system/     — configuration and the end-to-end pipeline
//	cmd/accrete — demo CLI printing generated systems as tables
//
// Quick start:
//
//	cfg := system.DefaultConfig()
//	cfg.Seed = 42
//	cfg.ComputeGases = true
//	sys, err := system.Generate(cfg)
//
// Dive into the subpackage docs for the model details and the knobs each
// stage exposes.
//
//	go get github.com/katalvlaran/accrete
package accrete
