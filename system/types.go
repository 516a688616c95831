package system

import (
	"github.com/katalvlaran/accrete/accretion"
	"github.com/katalvlaran/accrete/planet"
	"github.com/katalvlaran/accrete/star"
)

// Defaults for the orbital-inclination draw, in degrees. The mean matches
// the solar system's spread of inclinations against the invariable plane.
const (
	DefaultInclinationMean   = 5.57
	DefaultInclinationStdDev = 1.23
)

// DefaultDensityVariation is the default fractional scatter applied to
// planetary radii during evaluation.
const DefaultDensityVariation = 0.025

// Config collects every knob of a generation run. The zero value is not
// usable directly; start from DefaultConfig. Generate sanitizes the
// struct, so out-of-range values clamp rather than fail.
type Config struct {
	// Seed drives all randomness. Zero draws a seed from the wall clock;
	// the value actually used is recorded in System.Seed either way.
	Seed int64

	// StellarMass selects the star, in Solar masses, resolved to the
	// nearest catalog spectral type. Zero or negative draws a random mass
	// in [0.6, 1.3]; values outside the catalog range clamp to it.
	StellarMass float64

	// StellarAge presets the star's age in years. Zero lets the star pick
	// one from its lifespan.
	StellarAge float64

	// CloudEccentricity is the mean eccentricity of nebular dust,
	// clamped to [0, 0.9].
	CloudEccentricity float64

	// DustDensity is the dust-density law coefficient, in Solar masses
	// per cubic AU. Negative clamps to zero, yielding an empty disk.
	DustDensity float64

	// SeedMass is the injected protoplanet seed mass, in Solar masses.
	// Zero or negative falls back to the accretion default.
	SeedMass float64

	// DensityVariation scatters planetary radii by up to this fraction,
	// clamped to [0, 0.1].
	DensityVariation float64

	// InclinationMean and InclinationStdDev shape the per-planet orbital
	// inclination draw, in degrees. Negative values are folded positive.
	InclinationMean   float64
	InclinationStdDev float64

	// Seeds places protoplanets at explicit orbits before any random
	// seeding. Takes priority over BodeSeeds when non-empty.
	Seeds []accretion.Seed

	// BodeSeeds seeds the disk along a randomized Blagg/Bode ladder.
	BodeSeeds bool

	// Batch switches to round-robin accretion with a cohort of
	// ProtoplanetCount seeds grown in lockstep.
	Batch bool

	// ProtoplanetCount is the batch cohort size. Zero selects the
	// default of 20.
	ProtoplanetCount int

	// ComputeGases enables atmospheric composition synthesis for
	// promising rocky bodies.
	ComputeGases bool

	// RandomAxialTilt draws a randomized axial tilt per body.
	RandomAxialTilt bool

	// Diagnostics receives newline-terminated narration of collisions,
	// demotions, and invariant repairs. Nil means silent.
	Diagnostics func(string)
}

// DefaultConfig returns the classic generation constants.
func DefaultConfig() Config {
	return Config{
		CloudEccentricity: accretion.DefaultCloudEccentricity,
		DustDensity:       accretion.DefaultDustDensity,
		SeedMass:          accretion.DefaultSeedMass,
		DensityVariation:  DefaultDensityVariation,
		InclinationMean:   DefaultInclinationMean,
		InclinationStdDev: DefaultInclinationStdDev,
		ProtoplanetCount:  20,
	}
}

// System is one generated planetary system.
type System struct {
	// Seed is the seed that produced this system, after zero-substitution.
	// Feeding it back through Config.Seed replays the run exactly.
	Seed int64

	// Star is the evaluated central star.
	Star *star.Star

	// Planets is the evaluated planet list, ascending by semi-major axis.
	Planets []*planet.Planet

	// Protoplanets counts the seeds that grew past injection mass during
	// accretion; mergers make it an upper bound on len(Planets).
	Protoplanets int
}
