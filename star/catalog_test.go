package star_test

import (
	"testing"

	"github.com/katalvlaran/accrete/star"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTypeForMass_Anchors verifies the reverse lookup at known catalog rows.
func TestTypeForMass_Anchors(t *testing.T) {
	assert.Equal(t, "G2V", star.TypeForMass(1.0).String(), "one Solar mass is a G2V")
	assert.Equal(t, "M0V", star.TypeForMass(0.57).String(), "lower bound resolves to M0V")
	assert.Equal(t, "A0V", star.TypeForMass(2.18).String(), "upper bound resolves to A0V")
}

// TestTypeForMass_Clamps verifies out-of-range masses clamp to the
// supported bounds rather than resolving to O/B giants or late M dwarfs.
func TestTypeForMass_Clamps(t *testing.T) {
	assert.Equal(t, "M0V", star.TypeForMass(0.1).String(), "tiny masses clamp low")
	assert.Equal(t, "A0V", star.TypeForMass(50.0).String(), "huge masses clamp high")
}

// TestTypeForMass_NearestMass verifies the resolved type's catalog mass is
// within the largest gap of the scanned range for every input mass.
func TestTypeForMass_NearestMass(t *testing.T) {
	for m := 0.57; m <= 2.18; m += 0.01 {
		resolved := star.TypeForMass(m)
		s, err := star.New(resolved.Class, resolved.Subtype)
		require.NoError(t, err)
		s.Evaluate(nil)

		// 0.13 Solar masses is the widest inter-row gap (A0V to A1V).
		assert.InDelta(t, m, s.Mass, 0.07, "resolved mass must be close to the request at %.2f", m)
	}
}
