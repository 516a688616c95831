package planet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/accrete/physics"
	"github.com/katalvlaran/accrete/planet"
	"github.com/katalvlaran/accrete/randx"
	"github.com/katalvlaran/accrete/star"
)

// earthMass converts Earth masses to Solar masses.
func earthMass(m float64) float64 { return m / physics.SolarMassToEarthMass }

// jovianMass converts Jovian masses to Solar masses.
func jovianMass(m float64) float64 { return m / physics.SolarMassToJovianMass }

// sunLike returns an evaluated G2V star.
func sunLike(t *testing.T) *star.Star {
	t.Helper()

	st, err := star.New(star.ClassG, 2)
	require.NoError(t, err)
	st.Evaluate(randx.New(1))

	return st
}

// TestEvaluate_Errors verifies the evaluator rejects an unevaluated star
// and a nil random source.
func TestEvaluate_Errors(t *testing.T) {
	raw, err := star.New(star.ClassG, 2)
	require.NoError(t, err)

	p := planet.New(1.0, 0.0167, earthMass(1.0), 0.0)
	assert.ErrorIs(t, p.Evaluate(raw, 1, planet.DefaultOptions(), randx.New(1)), planet.ErrStarNotEvaluated)
	assert.ErrorIs(t, p.Evaluate(sunLike(t), 1, planet.DefaultOptions(), nil), planet.ErrNilRNG)
	assert.False(t, p.Evaluated())
}

// TestEvaluate_Idempotent verifies a second Evaluate call changes nothing.
func TestEvaluate_Idempotent(t *testing.T) {
	st := sunLike(t)
	p := planet.New(1.0, 0.0167, earthMass(1.0), 0.0)

	require.NoError(t, p.Evaluate(st, 1, planet.DefaultOptions(), randx.New(3)))
	snapshot := *p

	require.NoError(t, p.Evaluate(st, 1, planet.DefaultOptions(), randx.New(99)))
	assert.Equal(t, snapshot, *p)
}

// TestEvaluate_SolLike verifies an Earth-mass body at 1 AU around a G2V
// star evaluates to a habitable world: terrestrial or ocean type, a
// temperate surface, a breathable-order atmosphere, and a high Earth
// similarity.
func TestEvaluate_SolLike(t *testing.T) {
	st := sunLike(t)
	p := planet.New(1.0, 0.0167, earthMass(1.0), 0.0)

	opts := planet.Options{ComputeGases: true, RandomAxialTilt: true, DensityVariation: 0.025}
	require.NoError(t, p.Evaluate(st, 3, opts, randx.New(7)))

	assert.Contains(t, []planet.PlanetType{planet.TypeTerrestrial, planet.TypeOcean}, p.Type)
	assert.False(t, p.IsGaseous())

	assert.InDelta(t, 6378.0, p.Radius, 400.0)
	assert.InDelta(t, 5.5, p.Density, 1.0)
	assert.InDelta(t, 365.26, p.OrbitalPeriod, 1.0)
	assert.Greater(t, p.MeanSurfaceTemperature, 260.0)
	assert.Less(t, p.MeanSurfaceTemperature, 330.0)
	assert.Greater(t, p.SurfacePressure, 100.0)
	assert.Less(t, p.SurfacePressure, 5000.0)
	assert.Greater(t, p.Hydrosphere, 0.05)
	assert.Greater(t, p.OrbitalDominance, 1.0)

	assert.Greater(t, p.ESI, 0.9)
	assert.LessOrEqual(t, p.ESI, 1.0)

	require.NotEmpty(t, p.Atmosphere)
	sum := 0.0
	hasNitrogen := false
	for i, c := range p.Atmosphere {
		sum += c.Fraction
		hasNitrogen = hasNitrogen || c.Gas == planet.Nitrogen
		if i > 0 {
			assert.GreaterOrEqual(t, p.Atmosphere[i-1].Fraction, c.Fraction)
		}
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.True(t, hasNitrogen)
}

// TestEvaluate_TemperatureEnvelope verifies the derived temperature range
// is ordered min <= low <= high <= max.
func TestEvaluate_TemperatureEnvelope(t *testing.T) {
	st := sunLike(t)
	p := planet.New(1.0, 0.0167, earthMass(1.0), 0.0)
	require.NoError(t, p.Evaluate(st, 1, planet.DefaultOptions(), randx.New(5)))

	assert.LessOrEqual(t, p.MinTemperature, p.LowTemperature)
	assert.LessOrEqual(t, p.LowTemperature, p.HighTemperature)
	assert.LessOrEqual(t, p.HighTemperature, p.MaxTemperature)
}

// TestEvaluate_GasGiant verifies a Jupiter-like body sub-classifies as a
// gas giant with zero Earth similarity.
func TestEvaluate_GasGiant(t *testing.T) {
	st := sunLike(t)
	p := planet.New(5.2, 0.048, earthMass(20.0), earthMass(298.0))

	require.NoError(t, p.Evaluate(st, 5, planet.DefaultOptions(), randx.New(11)))

	assert.Equal(t, planet.TypeGasGiant, p.Type)
	assert.True(t, p.IsGaseous())
	assert.Zero(t, p.ESI)
	assert.Greater(t, p.Albedo, 0.0)
	assert.LessOrEqual(t, p.MinMolecularWeight, 4.0)
}

// TestEvaluate_BrownDwarf verifies a body above 13 Jovian masses
// classifies as a brown dwarf.
func TestEvaluate_BrownDwarf(t *testing.T) {
	st := sunLike(t)
	p := planet.New(8.0, 0.05, earthMass(50.0), jovianMass(15.0))

	require.NoError(t, p.Evaluate(st, 6, planet.DefaultOptions(), randx.New(13)))

	assert.Equal(t, planet.TypeBrownDwarf, p.Type)
}

// TestEvaluate_IceGiant verifies a Neptune-like body stays below the gas
// giant transition.
func TestEvaluate_IceGiant(t *testing.T) {
	st := sunLike(t)
	p := planet.New(19.2, 0.047, earthMass(13.0), earthMass(4.0))

	require.NoError(t, p.Evaluate(st, 7, planet.DefaultOptions(), randx.New(17)))

	assert.Equal(t, planet.TypeIceGiant, p.Type)
}

// TestEvaluate_AsteroidBelt verifies a tiny airless body classifies as an
// asteroid belt.
func TestEvaluate_AsteroidBelt(t *testing.T) {
	st := sunLike(t)
	p := planet.New(2.7, 0.1, earthMass(0.0005), 0.0)

	require.NoError(t, p.Evaluate(st, 4, planet.DefaultOptions(), randx.New(19)))

	assert.Equal(t, planet.TypeAsteroidBelt, p.Type)
	assert.Less(t, p.SurfacePressure, 1.0)
	assert.Zero(t, p.ESI)
}

// TestEvaluate_DwarfPlanet verifies a Pluto-like body that has not cleared
// its orbit classifies as a dwarf planet.
func TestEvaluate_DwarfPlanet(t *testing.T) {
	st := sunLike(t)
	p := planet.New(39.5, 0.25, earthMass(0.0022), 0.0)

	require.NoError(t, p.Evaluate(st, 9, planet.DefaultOptions(), randx.New(23)))

	assert.Equal(t, planet.TypeDwarfPlanet, p.Type)
	assert.Less(t, p.OrbitalDominance, 1.0)
}

// TestEvaluate_ResonantDay verifies a close-in eccentric body with a day
// longer than its year picks up spin resonance.
func TestEvaluate_ResonantDay(t *testing.T) {
	st := sunLike(t)
	p := planet.New(0.05, 0.2, earthMass(0.8), 0.0)

	require.NoError(t, p.Evaluate(st, 1, planet.DefaultOptions(), randx.New(29)))

	if p.Resonant {
		assert.InDelta(t, (1.0-p.Eccentricity)/(1.0+p.Eccentricity), p.SpinResonance, 1e-12)
		assert.InDelta(t, p.SpinResonance*p.OrbitalPeriod*physics.HoursPerDay, p.Day, 1e-6)
	}
}

// TestPlanetType_String spot-checks the classification names.
func TestPlanetType_String(t *testing.T) {
	assert.Equal(t, "GasGiant", planet.TypeGasGiant.String())
	assert.Equal(t, "DwarfPlanet", planet.TypeDwarfPlanet.String())
	assert.Equal(t, "Unknown", planet.TypeUnknown.String())
}

// TestGas_String spot-checks gas names.
func TestGas_String(t *testing.T) {
	assert.Equal(t, "Nitrogen", planet.Nitrogen.String())
	assert.Equal(t, "Carbon Dioxide", planet.CarbonDioxide.String())
	assert.Equal(t, "Water Vapor", planet.Water.String())
}
