package system_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/accrete/accretion"
	"github.com/katalvlaran/accrete/planet"
	"github.com/katalvlaran/accrete/star"
	"github.com/katalvlaran/accrete/system"
)

// seededConfig returns a deterministic baseline configuration.
func seededConfig(seed int64) system.Config {
	cfg := system.DefaultConfig()
	cfg.Seed = seed
	cfg.StellarMass = 1.0

	return cfg
}

// TestDefaultConfig verifies the classic constants.
func TestDefaultConfig(t *testing.T) {
	cfg := system.DefaultConfig()

	assert.Zero(t, cfg.Seed)
	assert.Zero(t, cfg.StellarMass)
	assert.Equal(t, accretion.DefaultCloudEccentricity, cfg.CloudEccentricity)
	assert.Equal(t, accretion.DefaultDustDensity, cfg.DustDensity)
	assert.Equal(t, accretion.DefaultSeedMass, cfg.SeedMass)
	assert.Equal(t, system.DefaultDensityVariation, cfg.DensityVariation)
	assert.Equal(t, system.DefaultInclinationMean, cfg.InclinationMean)
	assert.Equal(t, system.DefaultInclinationStdDev, cfg.InclinationStdDev)
	assert.Equal(t, 20, cfg.ProtoplanetCount)
	assert.False(t, cfg.Batch)
	assert.False(t, cfg.BodeSeeds)
	assert.False(t, cfg.ComputeGases)
}

// TestGenerate_Basics verifies a seeded run yields an evaluated star and a
// non-empty, ordered, fully-evaluated planet list.
func TestGenerate_Basics(t *testing.T) {
	sys, err := system.Generate(seededConfig(42))
	require.NoError(t, err)

	assert.Equal(t, int64(42), sys.Seed)
	require.NotNil(t, sys.Star)
	assert.True(t, sys.Star.Evaluated())
	require.NotEmpty(t, sys.Planets)
	assert.GreaterOrEqual(t, sys.Protoplanets, len(sys.Planets))

	for i, p := range sys.Planets {
		assert.True(t, p.Evaluated())
		assert.NotEqual(t, planet.TypeUnknown, p.Type)
		assert.NotEmpty(t, p.Name)
		assert.Equal(t, i+1, p.Number)
		if i > 0 {
			assert.Greater(t, p.SMA, sys.Planets[i-1].SMA)
		}
	}
}

// TestGenerate_Deterministic verifies equal seeds replay bit-identical
// systems.
func TestGenerate_Deterministic(t *testing.T) {
	first, err := system.Generate(seededConfig(1234))
	require.NoError(t, err)
	second, err := system.Generate(seededConfig(1234))
	require.NoError(t, err)

	require.Equal(t, len(first.Planets), len(second.Planets))
	for i := range first.Planets {
		assert.Equal(t, *first.Planets[i], *second.Planets[i])
	}
}

// TestGenerate_ZeroSeedRecorded verifies a zero seed is replaced with a
// drawn one that replays the same system when fed back in.
func TestGenerate_ZeroSeedRecorded(t *testing.T) {
	cfg := seededConfig(0)
	sys, err := system.Generate(cfg)
	require.NoError(t, err)
	require.NotZero(t, sys.Seed)

	cfg.Seed = sys.Seed
	replay, err := system.Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, sys.Seed, replay.Seed)
	require.Equal(t, len(sys.Planets), len(replay.Planets))
	for i := range sys.Planets {
		assert.Equal(t, *sys.Planets[i], *replay.Planets[i])
	}
}

// TestGenerate_StellarMassResolution verifies clamping to the catalog
// range and the random draw for an unset mass.
func TestGenerate_StellarMassResolution(t *testing.T) {
	cfg := seededConfig(7)
	cfg.StellarMass = 50.0
	heavy, err := system.Generate(cfg)
	require.NoError(t, err)
	assert.InDelta(t, star.TypeForMassBounds.Outer, heavy.Star.Mass, 1e-9)

	cfg.StellarMass = 0.01
	light, err := system.Generate(cfg)
	require.NoError(t, err)
	assert.InDelta(t, star.TypeForMassBounds.Inner, light.Star.Mass, 1e-9)

	cfg.StellarMass = 0.0
	random, err := system.Generate(cfg)
	require.NoError(t, err)
	assert.True(t, star.TypeForMassBounds.Contains(random.Star.Mass))
}

// TestGenerate_OrbitalElements verifies the per-planet element draws land
// in their documented ranges.
func TestGenerate_OrbitalElements(t *testing.T) {
	sys, err := system.Generate(seededConfig(99))
	require.NoError(t, err)
	require.NotEmpty(t, sys.Planets)

	for _, p := range sys.Planets {
		assert.GreaterOrEqual(t, p.Inclination, 0.0)
		assert.Less(t, p.Inclination, 180.0)
		assert.GreaterOrEqual(t, p.LongitudeAscendingNode, 0.0)
		assert.Less(t, p.LongitudeAscendingNode, 2.0*math.Pi)
		assert.GreaterOrEqual(t, p.ArgumentOfPeriapsis, 0.0)
		assert.Less(t, p.ArgumentOfPeriapsis, 2.0*math.Pi)
		assert.GreaterOrEqual(t, p.MeanAnomaly, 0.0)
		assert.Less(t, p.MeanAnomaly, 2.0*math.Pi)
	}
}

// TestGenerate_Batch verifies the round-robin mode is deterministic and
// produces an ordered system.
func TestGenerate_Batch(t *testing.T) {
	cfg := seededConfig(314)
	cfg.Batch = true

	first, err := system.Generate(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, first.Planets)
	for i := 1; i < len(first.Planets); i++ {
		assert.Greater(t, first.Planets[i].SMA, first.Planets[i-1].SMA)
	}

	second, err := system.Generate(cfg)
	require.NoError(t, err)
	require.Equal(t, len(first.Planets), len(second.Planets))
	for i := range first.Planets {
		assert.Equal(t, *first.Planets[i], *second.Planets[i])
	}
}

// TestGenerate_EmptyDisk verifies a negative dust density clamps to an
// empty disk that yields no planets.
func TestGenerate_EmptyDisk(t *testing.T) {
	cfg := seededConfig(5)
	cfg.DustDensity = -1.0

	sys, err := system.Generate(cfg)
	require.NoError(t, err)
	assert.Empty(t, sys.Planets)
	assert.Zero(t, sys.Protoplanets)
}

// TestGenerate_ExplicitSeeds verifies explicit orbits survive into the
// planet list near where they were requested.
func TestGenerate_ExplicitSeeds(t *testing.T) {
	cfg := seededConfig(21)
	cfg.Seeds = []accretion.Seed{{SMA: 1.0, Eccentricity: 0.05}}

	sys, err := system.Generate(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, sys.Planets)

	closest := math.Inf(1)
	for _, p := range sys.Planets {
		if d := math.Abs(p.SMA - 1.0); d < closest {
			closest = d
		}
	}
	assert.Less(t, closest, 1.0)
}
