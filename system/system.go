package system

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/accrete/accretion"
	"github.com/katalvlaran/accrete/physics"
	"github.com/katalvlaran/accrete/planet"
	"github.com/katalvlaran/accrete/randx"
	"github.com/katalvlaran/accrete/star"
)

// Random stellar mass range, in Solar masses, used when the configuration
// leaves the mass unset. Narrower than the catalog so the habitable zone
// stays in reach of the dust disk.
const (
	randomMassLower = 0.6
	randomMassUpper = 1.3
)

// sanitize folds the angular knobs positive and clamps the rest into their
// documented ranges. The accretion engine re-checks its own knobs, so only
// the system-level ones are handled here.
func (c *Config) sanitize() {
	c.InclinationMean = foldDegrees(math.Abs(c.InclinationMean))
	c.InclinationStdDev = math.Abs(c.InclinationStdDev)
	c.DensityVariation = physics.Clamp(c.DensityVariation, 0.0, 0.1)
}

// foldDegrees reduces an angle below 180° by repeated subtraction,
// preserving the legacy folding behavior rather than taking a modulus.
func foldDegrees(deg float64) float64 {
	for deg >= 180.0 {
		deg -= 180.0
	}

	return deg
}

// timeSeed draws a non-zero seed from the wall clock, run through the
// SplitMix64 finalizer so near-simultaneous calls still diverge.
func timeSeed() int64 {
	x := uint64(time.Now().UnixNano())
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 0x9e3779b97f4a7c15
	}

	return int64(x)
}

// resolveStar builds and evaluates the star the configuration asks for.
func resolveStar(cfg Config, rng *randx.Source) *star.Star {
	mass := cfg.StellarMass
	if mass <= 0.0 {
		mass = rng.Uniform(randomMassLower, randomMassUpper)
	}

	t := star.TypeForMass(mass)
	st, _ := star.New(t.Class, t.Subtype)
	st.Age = cfg.StellarAge
	st.Evaluate(rng)

	return st
}

// romanNumerals covers more bodies than any disk produces in practice;
// overflow falls back to the plain number.
var romanNumerals = [...]string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX",
	"XXI", "XXII", "XXIII", "XXIV", "XXV", "XXVI", "XXVII", "XXVIII", "XXIX", "XXX",
}

func bodyName(st *star.Star, number int) string {
	if number >= 1 && number <= len(romanNumerals) {
		return fmt.Sprintf("%s %s", st.Type, romanNumerals[number-1])
	}

	return fmt.Sprintf("%s %d", st.Type, number)
}

// Generate runs the full pipeline: star resolution, disk accretion, and
// per-body evaluation. It returns an error only when the random source or
// star wiring fails; bad configuration values clamp instead.
func Generate(cfg Config) (*System, error) {
	cfg.sanitize()

	seed := cfg.Seed
	if seed == 0 {
		seed = timeSeed()
	}
	rng := randx.New(seed)

	st := resolveStar(cfg, rng)

	engine, err := accretion.NewEngine(st, accretion.Options{
		CloudEccentricity: cfg.CloudEccentricity,
		DustDensity:       cfg.DustDensity,
		SeedMass:          cfg.SeedMass,
		Seeds:             cfg.Seeds,
		BodeSeeds:         cfg.BodeSeeds,
		ProtoplanetCount:  cfg.ProtoplanetCount,
		Diagnostics:       cfg.Diagnostics,
	}, rng)
	if err != nil {
		return nil, err
	}

	var bodies []accretion.Planetesimal
	if cfg.Batch {
		bodies = engine.GenerateBatch()
	} else {
		bodies = engine.Generate()
	}

	sys := &System{
		Seed:         seed,
		Star:         st,
		Planets:      make([]*planet.Planet, 0, len(bodies)),
		Protoplanets: engine.Protoplanets(),
	}

	opts := planet.Options{
		ComputeGases:     cfg.ComputeGases,
		RandomAxialTilt:  cfg.RandomAxialTilt,
		DensityVariation: cfg.DensityVariation,
		Diagnostics:      cfg.Diagnostics,
	}

	for i, b := range bodies {
		p := planet.New(b.SMA, b.Eccentricity, b.DustMass, b.GasMass)
		p.Name = bodyName(st, i+1)

		p.Inclination = foldDegrees(math.Abs(
			rng.Near(cfg.InclinationMean, 3.0*cfg.InclinationStdDev)))
		p.LongitudeAscendingNode = rng.TwoPi()
		p.ArgumentOfPeriapsis = rng.TwoPi()
		p.MeanAnomaly = rng.TwoPi()

		if err := p.Evaluate(st, i+1, opts, rng); err != nil {
			return nil, err
		}
		sys.Planets = append(sys.Planets, p)
	}

	return sys, nil
}
