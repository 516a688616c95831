package star_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/accrete/randx"
	"github.com/katalvlaran/accrete/star"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSol returns an evaluated G2V star with a deterministic age draw.
func newSol(t *testing.T) *star.Star {
	t.Helper()
	s, err := star.New(star.ClassG, 2)
	require.NoError(t, err)
	s.Evaluate(randx.New(1))

	return s
}

// TestNew_SubtypeValidation verifies subtype bounds, including the O-class
// restriction to subtypes 3-9.
func TestNew_SubtypeValidation(t *testing.T) {
	_, err := star.New(star.ClassG, -1)
	assert.ErrorIs(t, err, star.ErrBadSubtype)

	_, err = star.New(star.ClassG, 10)
	assert.ErrorIs(t, err, star.ErrBadSubtype)

	_, err = star.New(star.ClassO, 2)
	assert.ErrorIs(t, err, star.ErrBadSubtype, "O0V-O2V are not constructible")

	_, err = star.New(star.ClassO, 3)
	assert.NoError(t, err, "O3V is the hottest constructible type")
}

// TestEvaluate_SolAnchors verifies the derived traits of a G2V star against
// the catalog and the zone formulas.
func TestEvaluate_SolAnchors(t *testing.T) {
	s := newSol(t)

	assert.InDelta(t, 1.0, s.Mass, 1e-9, "G2V is one Solar mass")
	assert.InDelta(t, math.Pow(10, 0.01), s.Luminosity, 1e-9, "luminosity from catalog logL")
	assert.InDelta(t, math.Pow(10, 3.761), s.Temperature, 0.5, "temperature from catalog logT")

	sqrtLum := math.Sqrt(s.Luminosity)
	assert.InDelta(t, sqrtLum, s.Ecosphere, 1e-12, "ecosphere is sqrt(L)")
	assert.InDelta(t, 5.0*sqrtLum, s.SnowLine, 1e-12, "snow line is 5*sqrt(L)")
	assert.InDelta(t, 0.95*sqrtLum, s.HabitableZone.Inner, 1e-12)
	assert.InDelta(t, 1.37*sqrtLum, s.HabitableZone.Outer, 1e-12)

	assert.Equal(t, 0.0, s.DustZone.Inner, "dust zone starts at the star")
	assert.InDelta(t, 200.0, s.DustZone.Outer, 1e-9, "dust zone spans 200 AU for one Solar mass")
	assert.InDelta(t, 0.3, s.ProtoplanetZone.Inner, 1e-9)
	assert.InDelta(t, 50.0, s.ProtoplanetZone.Outer, 1e-9)
}

// TestEvaluate_AgeWithinBounds verifies the random age draw respects the
// 25%-75% lifespan window and the global floor.
func TestEvaluate_AgeWithinBounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s, err := star.New(star.ClassK, 5)
		require.NoError(t, err)
		s.Evaluate(randx.New(seed))

		require.GreaterOrEqual(t, s.Age, star.MinimumStellarAge, "seed %d", seed)
		require.LessOrEqual(t, s.Age, 0.75*star.MaximumStellarAge, "seed %d", seed)
	}
}

// TestEvaluate_PresetAgeClamped verifies preset ages clamp into range
// instead of being redrawn.
func TestEvaluate_PresetAgeClamped(t *testing.T) {
	s, err := star.New(star.ClassG, 2)
	require.NoError(t, err)
	s.Age = 9.9e9
	s.Evaluate(randx.New(1))

	assert.LessOrEqual(t, s.Age, star.MaximumStellarAge, "over-age must clamp to the maximum")

	s2, err := star.New(star.ClassG, 2)
	require.NoError(t, err)
	s2.Age = 1.0e8
	s2.Evaluate(randx.New(1))

	assert.Equal(t, star.MinimumStellarAge, s2.Age, "under-age must clamp to the floor")
}

// TestEvaluate_Idempotent verifies a second Evaluate call changes nothing
// even with a different RNG.
func TestEvaluate_Idempotent(t *testing.T) {
	s := newSol(t)
	before := *s

	s.Evaluate(randx.New(999))
	assert.Equal(t, before, *s, "re-evaluation must be a no-op")
}

// TestMaterialZone_Profile verifies the piecewise zone classification:
// flat plateaus at 1 and 2, linear blends across the overlaps, clamped at 3.
func TestMaterialZone_Profile(t *testing.T) {
	s := newSol(t)
	sqrtLum := math.Sqrt(s.Luminosity)

	assert.Equal(t, 1.0, s.MaterialZone(1.0), "inside Zone I")
	assert.Equal(t, 1.0, s.MaterialZone(3.9*sqrtLum), "just inside Zone I")

	blend := s.MaterialZone(4.5 * sqrtLum)
	assert.Greater(t, blend, 1.0, "transition region blends above 1")
	assert.Less(t, blend, 2.0, "transition region blends below 2")
	assert.InDelta(t, 1.5, blend, 1e-9, "midpoint of the I/II overlap")

	assert.Equal(t, 2.0, s.MaterialZone(10.0*sqrtLum), "inside Zone II")
	assert.InDelta(t, 2.5, s.MaterialZone(15.0*sqrtLum), 1e-9, "midpoint of the II/III overlap")
	assert.Equal(t, 3.0, s.MaterialZone(100.0*sqrtLum), "deep in Zone III clamps at 3")
}

// TestMaterialZone_Continuity samples across both transitions and verifies
// the classification never jumps.
func TestMaterialZone_Continuity(t *testing.T) {
	s := newSol(t)

	prev := s.MaterialZone(0.1)
	for r := 0.1; r < 40.0; r += 0.01 {
		cur := s.MaterialZone(r)
		require.GreaterOrEqual(t, cur, prev-1e-9, "zone value must be non-decreasing at %g AU", r)
		require.Less(t, cur-prev, 0.05, "zone value must move smoothly at %g AU", r)
		prev = cur
	}
}

// TestOrbitalZoneAt_Ordering verifies the broad zone classification brackets.
func TestOrbitalZoneAt_Ordering(t *testing.T) {
	s := newSol(t)

	assert.Equal(t, star.ZoneInner, s.OrbitalZoneAt(0.3))
	assert.Equal(t, star.ZoneHabitable, s.OrbitalZoneAt(1.0))
	assert.Equal(t, star.ZoneMiddle, s.OrbitalZoneAt(3.0))
	assert.Equal(t, star.ZoneOuter, s.OrbitalZoneAt(20.0))
}

// TestZeroStar_EvaluatesAsSol verifies the zero value defaults to G2V.
func TestZeroStar_EvaluatesAsSol(t *testing.T) {
	var s star.Star
	s.Evaluate(nil)

	assert.Equal(t, "G2V", s.Type.String())
	assert.InDelta(t, 1.0, s.Mass, 1e-9)
}
