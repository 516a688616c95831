package planet

import (
	"errors"

	"github.com/katalvlaran/accrete/star"
)

// ErrStarNotEvaluated is returned when Evaluate runs against a star whose
// derived zones have not been computed yet.
var ErrStarNotEvaluated = errors.New("planet: star must be evaluated before planets")

// ErrNilRNG is returned when Evaluate runs without a random source.
var ErrNilRNG = errors.New("planet: nil random source")

// PlanetType is the final classification of an evaluated body.
type PlanetType int

const (
	TypeUnknown PlanetType = iota
	TypeRocky
	TypeAsteroidBelt
	TypeDwarfPlanet
	TypeIcePlanet
	TypeTerrestrial
	TypeOcean
	TypeGaseous
	TypeIceGiant
	TypeGasGiant
	TypeBrownDwarf
)

// String implements fmt.Stringer.
func (t PlanetType) String() string {
	switch t {
	case TypeRocky:
		return "Rocky"
	case TypeAsteroidBelt:
		return "AsteroidBelt"
	case TypeDwarfPlanet:
		return "DwarfPlanet"
	case TypeIcePlanet:
		return "IcePlanet"
	case TypeTerrestrial:
		return "Terrestrial"
	case TypeOcean:
		return "Ocean"
	case TypeGaseous:
		return "Gaseous"
	case TypeIceGiant:
		return "IceGiant"
	case TypeGasGiant:
		return "GasGiant"
	case TypeBrownDwarf:
		return "BrownDwarf"
	default:
		return "Unknown"
	}
}

// Gas identifies one species of the atmospheric gas table.
type Gas int

const (
	Hydrogen Gas = iota
	Helium
	Nitrogen
	Oxygen
	Neon
	Argon
	Krypton
	Xenon
	Ammonia
	Water
	CarbonDioxide
	Ozone
	Methane
)

// String implements fmt.Stringer.
func (g Gas) String() string {
	switch g {
	case Hydrogen:
		return "Hydrogen"
	case Helium:
		return "Helium"
	case Nitrogen:
		return "Nitrogen"
	case Oxygen:
		return "Oxygen"
	case Neon:
		return "Neon"
	case Argon:
		return "Argon"
	case Krypton:
		return "Krypton"
	case Xenon:
		return "Xenon"
	case Ammonia:
		return "Ammonia"
	case Water:
		return "Water Vapor"
	case CarbonDioxide:
		return "Carbon Dioxide"
	case Ozone:
		return "Ozone"
	case Methane:
		return "Methane"
	default:
		return "Unknown"
	}
}

// AtmosphereComponent is one species of a synthesized atmosphere and its
// normalized share of the total, in [0, 1].
type AtmosphereComponent struct {
	Gas      Gas
	Fraction float64
}

// Options configures planet evaluation.
type Options struct {
	// ComputeGases enables atmospheric composition synthesis for rocky
	// bodies whose preliminary Earth similarity exceeds 0.50.
	ComputeGases bool

	// RandomAxialTilt draws a randomized axial tilt per body; when false,
	// every body has zero tilt.
	RandomAxialTilt bool

	// DensityVariation scatters the Kothari radius by up to this fraction,
	// clamped to [0, 0.1].
	DensityVariation float64

	// Diagnostics receives newline-terminated narration of demotions and
	// convergence shortfalls. Nil means silent.
	Diagnostics func(string)
}

// DefaultOptions returns the evaluation defaults.
func DefaultOptions() Options {
	return Options{DensityVariation: 0.025}
}

// Planet is one fully-evaluated body of a generated system.
// Masses are in Solar masses, distances in AU, temperatures in Kelvin.
type Planet struct {
	Name   string
	Number int

	// Keplerian elements. Angles are degrees for tilt and inclination,
	// radians for the epoch elements.
	SMA                    float64
	Eccentricity           float64
	Inclination            float64
	LongitudeAscendingNode float64
	ArgumentOfPeriapsis    float64
	MeanAnomaly            float64

	TotalMass float64
	DustMass  float64
	GasMass   float64

	Type             PlanetType
	Zone             star.OrbitalZone
	OrbitalPeriod    float64 // Earth days
	Day              float64 // hours
	Resonant         bool
	SpinResonance    float64
	OrbitalDominance float64
	Periapsis        float64
	Apoapsis         float64

	Radius              float64 // km
	Density             float64 // g/cc
	AxialTilt           float64 // degrees
	EscapeVelocity      float64 // m/s
	SurfaceAcceleration float64 // m/s²

	RMSVelocity          float64 // m/s, molecular nitrogen at the exosphere
	MinMolecularWeight   float64 // amu
	RunawayGreenhouse    bool
	SurfacePressure      float64 // mb
	VolatileGasInventory float64
	Atmosphere           []AtmosphereComponent

	Albedo                 float64
	ExosphereTemperature   float64
	BoilingPoint           float64
	MeanSurfaceTemperature float64
	HighTemperature        float64 // day-time
	LowTemperature         float64 // night-time
	MaxTemperature         float64 // summer day
	MinTemperature         float64 // winter night

	Hydrosphere   float64
	IceCoverage   float64
	CloudCoverage float64
	ESI           float64

	evaluated bool
}

// New builds an unevaluated planet from accretion output.
func New(sma, eccentricity, dustMass, gasMass float64) *Planet {
	return &Planet{
		SMA:          sma,
		Eccentricity: eccentricity,
		DustMass:     dustMass,
		GasMass:      gasMass,
		TotalMass:    dustMass + gasMass,
	}
}

// Evaluated reports whether Evaluate has completed for this body.
func (p *Planet) Evaluated() bool { return p.evaluated }

// IsGaseous reports whether the body carries a primary gas envelope.
func (p *Planet) IsGaseous() bool {
	switch p.Type {
	case TypeGaseous, TypeIceGiant, TypeGasGiant, TypeBrownDwarf:
		return true
	default:
		return false
	}
}
