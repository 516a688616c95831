package accretion

import "errors"

// ErrStarNotEvaluated is returned when an Engine is built around a star
// whose derived zones have not been computed yet.
var ErrStarNotEvaluated = errors.New("accretion: star must be evaluated before accretion")

// ErrNilRNG is returned when an Engine is built without a random source.
var ErrNilRNG = errors.New("accretion: nil random source")

// Defaults for the nebular-disk knobs.
const (
	// DefaultCloudEccentricity is the mean eccentricity of nebular dust
	// particles (Dole 1969 used 0.25; later implementations settled on 0.2).
	DefaultCloudEccentricity = 0.2

	// DefaultDustDensity is A in Dole's dust-density law, in Solar masses
	// per cubic AU.
	DefaultDustDensity = 2.0e-3

	// DefaultSeedMass is the initial mass of an injected protoplanet seed,
	// in Solar masses.
	DefaultSeedMass = 1.0e-15
)

// Band is one annulus of the nebular disk. The disk is a sorted,
// contiguous, non-overlapping partition of the star's dust zone; adjacent
// bands with identical flags are always merged after a mutation.
type Band struct {
	Inner float64 // inner edge, AU
	Outer float64 // outer edge, AU
	Dust  bool    // dust available for accretion
	Gas   bool    // gas available for accretion
}

// Seed requests a protoplanet injection at a specific orbit.
// An eccentricity outside [0, 0.9] is replaced with a random draw; a
// semi-major axis outside the star's protoplanet zone skips the seed.
type Seed struct {
	SMA          float64
	Eccentricity float64
}

// Planetesimal is an accreted body: the orbit it settled on and its mass
// split into the dust and gas components it swept up. Masses are in Solar
// masses.
type Planetesimal struct {
	SMA          float64
	Eccentricity float64
	DustMass     float64
	GasMass      float64
}

// Mass returns the total mass, in Solar masses.
func (p Planetesimal) Mass() float64 { return p.DustMass + p.GasMass }

// Options configures one accretion run.
type Options struct {
	// CloudEccentricity is the mean eccentricity of nebular dust, clamped
	// to [0, 0.9]. Start from DefaultOptions for the classic 0.2.
	CloudEccentricity float64

	// DustDensity is Dole's A constant, in Solar masses per cubic AU.
	// Negative values clamp to zero; a zero density yields an empty disk
	// that never produces a planet.
	DustDensity float64

	// SeedMass is the injected protoplanet seed mass, in Solar masses.
	// Zero or negative falls back to the default.
	SeedMass float64

	// Seeds places protoplanets at explicit orbits before random seeding.
	// Takes priority over BodeSeeds when non-empty.
	Seeds []Seed

	// BodeSeeds seeds the disk along a randomized Blagg/Bode ladder.
	BodeSeeds bool

	// ProtoplanetCount is the cohort size for GenerateBatch, in addition
	// to explicit or Bode seeds. Zero selects the default of 20.
	ProtoplanetCount int

	// Diagnostics receives newline-terminated narration of collisions and
	// invariant repairs. Nil means silent.
	Diagnostics func(string)
}

// DefaultOptions returns the classic accretion constants.
func DefaultOptions() Options {
	return Options{
		CloudEccentricity: DefaultCloudEccentricity,
		DustDensity:       DefaultDustDensity,
		SeedMass:          DefaultSeedMass,
		ProtoplanetCount:  20,
	}
}

// protoplanet carries the transient state of one body during accretion.
type protoplanet struct {
	sma          float64
	eccentricity float64
	mass         float64 // total, Solar masses
	dustMass     float64
	gasMass      float64

	criticalMass float64 // gas-capture threshold for this orbit
	rInner       float64 // inner effect limit, AU
	rOuter       float64 // outer effect limit, AU

	active bool // still collecting dust (round-robin mode)
}
