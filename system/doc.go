// Package system assembles the full generation pipeline: it resolves a
// configuration into a star, runs the accretion disk, and evaluates every
// surviving body into a finished planetary system.
//
// 🚀 What the package delivers
//
//   - Config: every knob of a generation run in one struct, with
//     DefaultConfig supplying the classic constants and Generate
//     sanitizing whatever the caller hands it.
//   - System: the finished product. An evaluated star, the planet list in
//     ascending orbital order, and the seed that produced it all.
//   - Generate: one call from configuration to system.
//
// ✨ Guarantees
//
//   - Deterministic: equal Config values (with a non-zero Seed) produce
//     bit-identical systems. A zero Seed draws one from the wall clock,
//     and the drawn value is recorded in System.Seed so any run can be
//     replayed exactly.
//   - Ordered: System.Planets is sorted by ascending semi-major axis.
//   - Self-contained: no global state; concurrent Generate calls with
//     separate Configs are safe.
//
// ⚙️ Typical usage
//
//	cfg := system.DefaultConfig()
//	cfg.Seed = 42
//	cfg.ComputeGases = true
//	sys, err := system.Generate(cfg)
//	if err != nil { ... }
//	for _, p := range sys.Planets {
//		fmt.Println(p.Name, p.Type)
//	}
package system
