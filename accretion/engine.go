package accretion

import (
	"fmt"

	"github.com/katalvlaran/accrete/physics"
	"github.com/katalvlaran/accrete/randx"
	"github.com/katalvlaran/accrete/star"
)

// Engine owns the dust-band partition and the in-progress planet list for
// exactly one generation run. It is not safe for concurrent use; run
// parallel generations with separate Engines and derived RNG streams.
type Engine struct {
	opts Options
	rng  *randx.Source

	stellarMass       float64
	stellarLuminosity float64
	ecosphere         float64
	dustZone          star.Bounds
	protoplanetZone   star.Bounds

	bands       []Band
	dustRemains bool

	planets      []Planetesimal
	protoplanets int
}

// NewEngine builds an accretion engine around an evaluated star.
// The Options are sanitized: cloud eccentricity clamps to [0, 0.9], a
// negative dust density clamps to zero (an empty disk), and a non-positive
// seed mass or protoplanet count falls back to the default.
func NewEngine(st *star.Star, opts Options, rng *randx.Source) (*Engine, error) {
	if st == nil || !st.Evaluated() {
		return nil, ErrStarNotEvaluated
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	opts.CloudEccentricity = physics.Clamp(opts.CloudEccentricity, 0.0, 0.9)
	if opts.DustDensity < 0.0 {
		opts.DustDensity = 0.0
	}
	if opts.SeedMass <= 0.0 {
		opts.SeedMass = DefaultSeedMass
	}
	if opts.ProtoplanetCount <= 0 {
		opts.ProtoplanetCount = 20
	}

	return &Engine{
		opts:              opts,
		rng:               rng,
		stellarMass:       st.Mass,
		stellarLuminosity: st.Luminosity,
		ecosphere:         st.Ecosphere,
		dustZone:          st.DustZone,
		protoplanetZone:   st.ProtoplanetZone,
	}, nil
}

// Protoplanets reports how many protoplanets grew beyond seed mass during
// the run. This may exceed the final planet count because of mergers.
func (e *Engine) Protoplanets() int { return e.protoplanets }

// Bands exposes a copy of the current dust-band partition, mainly for
// inspection and tests.
func (e *Engine) Bands() []Band {
	out := make([]Band, len(e.bands))
	copy(out, e.bands)

	return out
}

// DustRemains reports whether any dust-bearing band still overlaps the
// planet-forming zone.
func (e *Engine) DustRemains() bool { return e.dustRemains }

// reset initializes the disk to a single dust+gas band spanning the star's
// dust zone.
func (e *Engine) reset() {
	e.bands = e.bands[:0]
	e.bands = append(e.bands, Band{
		Inner: e.dustZone.Inner,
		Outer: e.dustZone.Outer,
		Dust:  true,
		Gas:   true,
	})
	// A zero-density disk holds no collectible dust anywhere.
	e.dustRemains = e.opts.DustDensity > 0.0
	e.planets = nil
	e.protoplanets = 0
}

// maxSeedInjections bounds the outer seeding loops against pathological
// configurations where sweeps stop clearing dust.
const maxSeedInjections = 100000

// seedList resolves the configured seeding strategy: explicit seeds win,
// then the Bode ladder, otherwise nil (pure random seeding).
// Explicit seeds with an illegal eccentricity get a random draw instead.
func (e *Engine) seedList() []Seed {
	if len(e.opts.Seeds) > 0 {
		seeds := make([]Seed, len(e.opts.Seeds))
		copy(seeds, e.opts.Seeds)
		for i := range seeds {
			if seeds[i].Eccentricity < 0.0 || seeds[i].Eccentricity > 0.9 {
				seeds[i].Eccentricity = e.rng.Eccentricity()
			}
		}

		return seeds
	}
	if e.opts.BodeSeeds {
		return e.bodeSeeds()
	}

	return nil
}

// newSeedling wraps a Seed into an accretion-ready protoplanet.
func (e *Engine) newSeedling(s Seed) protoplanet {
	return protoplanet{
		sma:          s.SMA,
		eccentricity: s.Eccentricity,
		mass:         e.opts.SeedMass,
		dustMass:     e.opts.SeedMass,
		active:       true,
	}
}

// randomSeed places a protoplanet uniformly within the planet-forming zone.
func (e *Engine) randomSeed() Seed {
	return Seed{
		SMA:          e.rng.Uniform(e.protoplanetZone.Inner, e.protoplanetZone.Outer),
		Eccentricity: e.rng.Eccentricity(),
	}
}

// Generate runs serial accretion: each seed fully accretes before the next
// one is injected, then random seeds consume whatever dust remains.
// The returned planet list is ordered by ascending semi-major axis and is
// owned by the caller; the Engine does not touch it again.
func (e *Engine) Generate() []Planetesimal {
	e.reset()

	for _, s := range e.seedList() {
		if e.protoplanetZone.Contains(s.SMA) && e.dustRemains {
			pp := e.newSeedling(s)
			e.accrete(&pp)
		} else if !e.protoplanetZone.Contains(s.SMA) {
			e.diag("Discarded protoplanet at SMA %.3f: outside of protoplanet zone\n", s.SMA)
		}
	}

	for budget := 0; e.dustRemains; budget++ {
		if budget >= maxSeedInjections {
			e.diag("Seed budget exhausted with dust remaining; stopping accretion\n")
			break
		}
		pp := e.newSeedling(e.randomSeed())
		e.accrete(&pp)
	}

	planets := e.planets
	e.planets = nil

	return planets
}

// GenerateBatch runs round-robin accretion: the whole seed cohort sweeps
// one pass per cycle until every member stalls, the grown ones coalesce,
// and serial accretion mops up any remaining dust.
func (e *Engine) GenerateBatch() []Planetesimal {
	e.reset()

	cohort := make([]protoplanet, 0, e.opts.ProtoplanetCount)
	for _, s := range e.seedList() {
		if e.protoplanetZone.Contains(s.SMA) {
			cohort = append(cohort, e.newSeedling(s))
		} else {
			e.diag("Discarded protoplanet at SMA %.3f: outside of protoplanet zone\n", s.SMA)
		}
	}
	for i := 0; i < e.opts.ProtoplanetCount; i++ {
		cohort = append(cohort, e.newSeedling(e.randomSeed()))
	}

	anyAccrued := true
	for anyAccrued {
		anyAccrued = false
		for i := range cohort {
			if cohort[i].active && e.accreteStep(&cohort[i]) {
				anyAccrued = true
			}
		}
	}

	for i := range cohort {
		if cohort[i].mass > e.opts.SeedMass {
			e.protoplanets++
			e.coalesce(cohort[i])
		}
	}

	for budget := 0; e.dustRemains; budget++ {
		if budget >= maxSeedInjections {
			e.diag("Seed budget exhausted with dust remaining; stopping accretion\n")
			break
		}
		pp := e.newSeedling(e.randomSeed())
		e.accrete(&pp)
	}

	planets := e.planets
	e.planets = nil

	return planets
}

// diag emits through the configured diagnostics sink, if any.
func (e *Engine) diag(format string, args ...any) {
	if e.opts.Diagnostics != nil {
		e.opts.Diagnostics(fmt.Sprintf(format, args...))
	}
}
