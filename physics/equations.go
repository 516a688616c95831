package physics

import "math"

// Kothari structural constants (Kothari 1936, via Fogg 1985 eq. 9).
const (
	kothariA1 = 6.485e12
	kothariA2 = 4.0032e-8
	kothariB  = 5.71e12
)

// criticalLimitB is the proportionality constant of Fogg 1985 eq. 12.
const criticalLimitB = 1.2e-5

// Clamp limits value to the closed interval [lower, upper].
func Clamp(value, lower, upper float64) float64 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}

	return value
}

// Lerp interpolates linearly between lower and upper. The interpolant is
// clamped to [0, 1], so the result never leaves [lower, upper].
func Lerp(interpolant, lower, upper float64) float64 {
	if interpolant <= 0 {
		return lower
	}
	if interpolant >= 1 {
		return upper
	}

	return lower + (upper-lower)*interpolant
}

// InverseLerp returns the interpolant in [0, 1] that Lerp would need to map
// lower..upper onto value. Values outside the range clamp to 0 or 1.
func InverseLerp(value, lower, upper float64) float64 {
	if value <= lower {
		return 0
	}
	if value >= upper {
		return 1
	}

	return (value - lower) / (upper - lower)
}

// Luminosity returns the luminosity of a main-sequence star of the given
// mass (Sol = 1.0 for both axes). The exponent is a piecewise-linear fit to
// the empirical mass-luminosity relation.
func Luminosity(stellarMass float64) float64 {
	var n float64
	if stellarMass < 1.0 {
		n = 1.75*(stellarMass-0.1) + 3.325
	} else {
		n = 0.5*(2.0-stellarMass) + 4.4
	}

	return math.Pow(stellarMass, n)
}

// CriticalLimit returns the mass, in Solar masses, above which a protoplanet
// on the given orbit begins capturing nebular gas (Fogg 1985 eq. 12).
// Luminosity is in Solar units; sma in AU.
func CriticalLimit(sma, eccentricity, stellarLuminosity float64) float64 {
	perihelion := sma - sma*eccentricity

	return criticalLimitB * math.Pow(perihelion*math.Sqrt(stellarLuminosity), -0.75)
}

// KothariRadius returns the equatorial radius, in km, of a body of the given
// mass (Solar masses). materialZone selects the dominant dust composition
// (see star.MaterialZone): fractional values blend the atomic weight and
// number across zone boundaries so the radius has no discontinuities.
func KothariRadius(mass float64, forGasGiant bool, materialZone float64) float64 {
	// Composition by zone: [rocky Z1, rocky Z2, rocky Z3, gas Z1, gas Z2, gas Z3].
	// Gas-giant Zone 1 values are cloned from Zone 2 so close-in giants do
	// not collapse to implausible densities.
	atomicWeight := [6]float64{15.0, 10.0, 10.0, 9.5, 2.47, 7.0}
	atomicNumber := [6]float64{8.0, 5.0, 5.0, 4.5, 2.0, 4.0}

	zoneIndex := 0
	if materialZone >= 2.0 {
		zoneIndex = 1
	}
	interpolant := materialZone - math.Floor(materialZone)
	if forGasGiant {
		zoneIndex += 3
	}

	a := Lerp(interpolant, atomicWeight[zoneIndex], atomicWeight[zoneIndex+1])
	z := Lerp(interpolant, atomicNumber[zoneIndex], atomicNumber[zoneIndex+1])

	radius := (2.0 * kothariB * math.Cbrt(SolarMassInGrams)) / (kothariA1 * math.Cbrt(a*z))

	denominator := kothariA2 * math.Pow(a, 4.0/3.0) * math.Pow(SolarMassInGrams, 2.0/3.0)
	denominator *= math.Pow(mass, 2.0/3.0)
	denominator /= kothariA1 * (z * z)
	denominator += 1.0

	radius /= denominator

	return radius * math.Cbrt(mass) * KmPerCm
}

// EscapeVelocity returns the escape velocity, in m/s, of a body of the given
// mass (Solar masses) and radius (km).
func EscapeVelocity(mass, radius float64) float64 {
	return MPerCm * math.Sqrt(2.0*GravityConstant*mass*SolarMassInGrams/(radius*CmPerKm))
}

// RMSVelocity returns the root-mean-square thermal velocity, in m/s, of a
// molecule of the given weight at the given exosphere temperature.
func RMSVelocity(molecularWeight, exosphereTemperature float64) float64 {
	return math.Sqrt(3.0 * MolarGasConstant * exosphereTemperature / molecularWeight)
}

// MolecularLimit returns the heaviest molecular weight whose RMS velocity
// reaches escapeVelocity/GasRetentionThreshold, i.e. the lightest molecule
// a body can just barely hold (Dole 1969).
func MolecularLimit(escapeVelocity, exosphereTemperature float64) float64 {
	v := escapeVelocity / GasRetentionThreshold

	return 3.0 * MolarGasConstant * exosphereTemperature / (v * v)
}

// GasLife estimates how long, in years, a body retains a gas of the given
// molecular weight before Jeans escape depletes it (Fogg 1985 eq. 17).
// surfaceAcceleration is in m/s²; radius in km.
func GasLife(molecularWeight, exosphereTemperature, surfaceAcceleration, radius float64) float64 {
	v := RMSVelocity(molecularWeight, exosphereTemperature) * CmPerM
	g := surfaceAcceleration * CmPerM
	r := radius * CmPerKm

	t := (math.Pow(v, 3.0) / (2.0 * g * g * r)) * math.Exp((3.0*g*r)/(v*v))

	return t * YearsPerSecond
}

// MinimumMolecularWeight returns the lightest molecular weight the body
// retains over the star's age: the weight whose GasLife equals goalAgeYears,
// located by doubling/halving to bracket and refined by binary search until
// the bracket narrows to 0.1 amu.
func MinimumMolecularWeight(escapeVelocity, exosphereTemperature, surfaceAcceleration, radius, goalAgeYears float64) float64 {
	molecularMass := MolecularLimit(escapeVelocity, exosphereTemperature)
	previousMass := molecularMass

	gasLife := GasLife(molecularMass, exosphereTemperature, surfaceAcceleration, radius)

	if gasLife > goalAgeYears {
		// Retention is high at the starting weight; lighter molecules are
		// retained too, so walk down to bracket the boundary.
		for gasLife > goalAgeYears {
			previousMass = molecularMass
			molecularMass *= 0.5
			gasLife = GasLife(molecularMass, exosphereTemperature, surfaceAcceleration, radius)
		}
	} else {
		for gasLife < goalAgeYears {
			previousMass = molecularMass
			molecularMass *= 2.0
			gasLife = GasLife(molecularMass, exosphereTemperature, surfaceAcceleration, radius)
		}
		// Keep molecularMass as the lower endpoint for the search below.
		previousMass, molecularMass = molecularMass, previousMass
	}

	for previousMass-molecularMass > 0.1 {
		midMass := (previousMass + molecularMass) * 0.5
		gasLife = GasLife(midMass, exosphereTemperature, surfaceAcceleration, radius)

		if gasLife < goalAgeYears {
			molecularMass = midMass
		} else {
			previousMass = midMass
		}
	}

	return (previousMass + molecularMass) * 0.5
}

// Period returns the orbital period, in Earth days, of two bodies separated
// by distance AU with masses in Solar masses.
func Period(distance, mass1, mass2 float64) float64 {
	periodYears := math.Sqrt((distance * distance * distance) / (mass1 + mass2))

	return periodYears * DaysPerYear
}

// VolumeDensity returns the bulk density, in g/cc, of a body of the given
// mass (Solar masses) and radius (km).
func VolumeDensity(mass, radius float64) float64 {
	r := radius * CmPerKm
	volume := (4.0 * math.Pi * r * r * r) / 3.0

	return mass * SolarMassInGrams / volume
}

// OrbitalDominance returns Margot's discriminant Π for a body of the given
// mass (Solar masses) at sma AU. Values above 1 indicate the body clears
// its orbital neighborhood; Earth scores ≈810, Ceres ≈0.04.
func OrbitalDominance(mass, sma float64) float64 {
	const k = 807.0

	return k * mass * SolarMassToEarthMass * math.Pow(sma, -9.0/8.0)
}
