package star

import (
	"math"

	"github.com/katalvlaran/accrete/physics"
	"github.com/katalvlaran/accrete/randx"
)

// Age limits for system generation, in years. Shorter-lived stars clamp
// below the maximum.
const (
	MinimumStellarAge = 1.0e9
	MaximumStellarAge = 6.0e9
)

// Star describes the central star of a planetary system.
//
// Identity is the spectral Type (and optionally a preset Age); every other
// field is derived by Evaluate and must be treated as read-only afterwards.
// The zero value evaluates as Sol (G2V).
type Star struct {
	// Type is the spectral classification, settable before Evaluate.
	Type Type

	// Age is the stellar age in years. Zero means "pick one": Evaluate
	// draws uniformly between 25% and 75% of the star's capped lifespan.
	// Preset values are clamped to the valid range.
	Age float64

	// Derived traits, populated by Evaluate.
	Temperature float64 // surface temperature, Kelvin
	Luminosity  float64 // Sol = 1.0
	Radius      float64 // Solar radii
	Mass        float64 // Solar masses

	Ecosphere float64 // ideal distance for an Earth-like planet, AU
	SnowLine  float64 // minimum distance where water ice survives vacuum, AU

	HabitableZone   Bounds // AU
	DustZone        Bounds // where nebular dust may settle, AU
	ProtoplanetZone Bounds // where protoplanets may accrete, AU

	// Material zones I-III (Pollard 1979): overlapping composition bands.
	zone1, zone2, zone3 Bounds

	evaluated bool
}

// New returns an unevaluated star of the given spectral type.
func New(class Classification, subtype int) (*Star, error) {
	if subtype < 0 || subtype > 9 {
		return nil, ErrBadSubtype
	}
	if class == ClassO && subtype < 3 {
		return nil, ErrBadSubtype
	}

	return &Star{Type: Type{Class: class, Subtype: subtype}}, nil
}

// Evaluate derives the star's traits from the spectral catalog. The first
// call resolves everything; subsequent calls are no-ops, so the derived
// fields are stable for the lifetime of the Star.
//
// rng is consumed only when Age is unset; passing nil selects the midpoint
// of the valid age range instead of a random draw.
func (s *Star) Evaluate(rng *randx.Source) {
	if s.evaluated {
		return
	}
	s.evaluated = true

	// A zero Type reads as Sol rather than the cloned O0V catalog row.
	if (s.Type == Type{}) {
		s.Type = Type{Class: ClassG, Subtype: 2}
	}

	entry := lookup(s.Type)
	s.Temperature = math.Pow(10.0, entry.logT)
	s.Luminosity = math.Pow(10.0, entry.logL)
	s.Radius = entry.radius
	s.Mass = entry.mass

	lifespan := 1.0e10 * (s.Mass / s.Luminosity)
	maxAge := math.Min(MaximumStellarAge, lifespan)
	if s.Age == 0.0 {
		if rng != nil {
			s.Age = rng.Uniform(0.25*maxAge, 0.75*maxAge)
		} else {
			s.Age = 0.5 * maxAge
		}
	}
	s.Age = physics.Clamp(s.Age, MinimumStellarAge, maxAge)

	sqrtLum := math.Sqrt(s.Luminosity)
	curtMass := math.Cbrt(s.Mass)

	s.Ecosphere = sqrtLum
	s.SnowLine = 5.0 * sqrtLum
	s.HabitableZone = Bounds{Inner: 0.95 * sqrtLum, Outer: 1.37 * sqrtLum}
	s.DustZone = Bounds{Inner: 0.0, Outer: 200.0 * curtMass}
	s.ProtoplanetZone = Bounds{Inner: 0.3 * curtMass, Outer: 50.0 * curtMass}

	s.zone1 = Bounds{Inner: 0.0, Outer: 5.0 * sqrtLum}
	s.zone2 = Bounds{Inner: 4.0 * sqrtLum, Outer: 16.0 * sqrtLum}
	s.zone3 = Bounds{Inner: 14.0 * sqrtLum, Outer: 200.0 * sqrtLum}
}

// Evaluated reports whether Evaluate has run.
func (s *Star) Evaluated() bool { return s.evaluated }

// MaterialZone classifies a distance from the star into the three zones of
// protoplanetary material, as a continuous value in [1, 3].
//
// Zone I contains only heavier elements; Zone II adds volatile ices, H2 and
// He; Zone III keeps the ices but loses the light gases. Fractional results
// indicate a position inside a transition region, blended linearly so
// composition-derived quantities stay continuous.
func (s *Star) MaterialZone(sma float64) float64 {
	switch {
	case sma < s.zone2.Inner:
		return 1.0
	case sma < s.zone1.Outer:
		return 1.0 + physics.InverseLerp(sma, s.zone2.Inner, s.zone1.Outer)
	case sma < s.zone3.Inner:
		return 2.0
	default:
		return 2.0 + physics.InverseLerp(sma, s.zone3.Inner, s.zone2.Outer)
	}
}

// OrbitalZoneAt classifies a distance into the broad orbital zones used
// for reporting. Unrelated to MaterialZone.
func (s *Star) OrbitalZoneAt(sma float64) OrbitalZone {
	switch {
	case sma < s.HabitableZone.Inner:
		return ZoneInner
	case sma < s.HabitableZone.Outer:
		return ZoneHabitable
	case sma < s.SnowLine:
		return ZoneMiddle
	default:
		return ZoneOuter
	}
}
