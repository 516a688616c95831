package planet

import (
	"fmt"
	"math"

	"github.com/katalvlaran/accrete/physics"
	"github.com/katalvlaran/accrete/randx"
	"github.com/katalvlaran/accrete/star"
)

// Classification thresholds (Chen et al. 2017 mass cutoffs; the gas and
// ice fraction limits come from Burrows 2006).
const (
	// gaseousPlanetThreshold is the minimum gas mass fraction for a body to
	// count as gas-retaining.
	gaseousPlanetThreshold = 0.05

	// icePlanetThreshold is the gas mass fraction above which a rocky body
	// is treated as a failed gas dwarf and sheds hydrogen and helium.
	icePlanetThreshold = 0.000001

	// dayLengthJ is Fogg's empirical constant for the base angular
	// velocity of a newly formed body, via Dole 1964 eq. 12.
	dayLengthJ = 1.46e-19

	// threeSigmaAlbedoGasGiant spreads the gas-giant albedo draw around
	// the solar-system mean.
	threeSigmaAlbedoGasGiant = 0.1185
)

// SurfaceGravity returns the surface acceleration in multiples of Earth
// gravity.
func (p *Planet) SurfaceGravity() float64 {
	return p.SurfaceAcceleration * physics.AccelerationInGees
}

// deriveMassValues fills the radius and everything downstream of it for
// the current total mass. radiusScatter perturbs the Kothari radius to
// model compositional variation.
func (p *Planet) deriveMassValues(forGasGiant bool, st *star.Star, radiusScatter float64) {
	p.Radius = physics.KothariRadius(p.TotalMass, forGasGiant, st.MaterialZone(p.SMA)) * radiusScatter
	p.EscapeVelocity = physics.EscapeVelocity(p.TotalMass, p.Radius)
	p.SurfaceAcceleration = physics.GravityConstant * (p.TotalMass * physics.SolarMassInGrams) /
		math.Pow(p.Radius*physics.CmPerKm, 2.0) * physics.MPerCm
	p.MinMolecularWeight = physics.MinimumMolecularWeight(
		p.EscapeVelocity, p.ExosphereTemperature, p.SurfaceAcceleration, p.Radius, st.Age)
}

// calculateDayLength solves for the rotation rate from the tidal-bulge
// base velocity and the star's braking torque over its age, then detects
// spin-orbit resonance for bodies whose day would exceed their year.
func (p *Planet) calculateDayLength(st *star.Star) {
	massGrams := p.TotalMass * physics.SolarMassInGrams
	yearHours := p.OrbitalPeriod * physics.HoursPerDay

	k2 := 0.33
	if p.Type == TypeGaseous {
		k2 = 0.24
	}
	baseAngularVelocity := math.Sqrt(2.0 * dayLengthJ * massGrams /
		(k2 * math.Pow(p.Radius*physics.CmPerKm, 2.0)))

	// Rotational braking from the star, scaled from the measured change in
	// Earth's angular velocity (Goldreich and Soter 1966).
	deltaAngularVelocity := physics.ChangeInEarthAngularVelocity *
		(p.Density / physics.EarthDensity) *
		(p.Radius / physics.EarthRadiusKm) *
		(physics.EarthMassInGrams / massGrams) *
		math.Pow(st.Mass, 2.0) *
		(1.0 / math.Pow(p.SMA, 6.0))
	angularVelocity := baseAngularVelocity + deltaAngularVelocity*st.Age

	if angularVelocity <= 0.0 {
		p.Day = yearHours
	} else {
		p.Day = physics.RadiansPerCircle / (physics.SecondsPerHour * angularVelocity)
	}

	p.SpinResonance = 0.0
	if p.Day >= yearHours {
		p.Resonant = true
		if p.Eccentricity > 0.1 {
			p.SpinResonance = (1.0 - p.Eccentricity) / (1.0 + p.Eccentricity)
		} else {
			p.SpinResonance = 1.0
		}

		p.Day = p.SpinResonance * yearHours
	}
}

// calculateEarthSimilarity scores the body against Earth across radius,
// density, escape velocity, surface temperature, and, when an atmosphere
// has been synthesized, oxygen partial pressure. Weights from the PHL
// Earth Similarity Index formulation.
func (p *Planet) calculateEarthSimilarity() float64 {
	if p.IsGaseous() || p.Type == TypeAsteroidBelt {
		return 0.0
	}

	weightCount := 4.0
	if len(p.Atmosphere) > 0 {
		weightCount = 5.0
	}

	const radiusWeight = 0.57
	radiusRating := math.Pow(
		1.0-math.Abs(p.Radius-physics.EarthRadiusKm)/(p.Radius+physics.EarthRadiusKm),
		radiusWeight/weightCount)

	const densityWeight = 1.07
	densityRating := math.Pow(
		1.0-math.Abs(p.Density-physics.EarthDensity)/(p.Density+physics.EarthDensity),
		densityWeight/weightCount)

	const escapeVelocityWeight = 0.70
	escapeVelocityRating := math.Pow(
		1.0-math.Abs(p.EscapeVelocity-physics.EarthEscapeVelocity)/(p.EscapeVelocity+physics.EarthEscapeVelocity),
		escapeVelocityWeight/weightCount)

	const temperatureWeight = 5.58
	surfaceTempRating := math.Pow(
		1.0-math.Abs(p.MeanSurfaceTemperature-physics.EarthAverageTemperature)/(p.MeanSurfaceTemperature+physics.EarthAverageTemperature),
		temperatureWeight/weightCount)

	oxygenRating := 1.0
	if len(p.Atmosphere) > 0 {
		var o2Fraction float64
		for _, c := range p.Atmosphere {
			if c.Gas == Oxygen {
				o2Fraction = c.Fraction
				break
			}
		}

		const ppoWeight = 2.5
		ppo := p.SurfacePressure * o2Fraction
		oxygenRating = math.Pow(
			1.0-math.Abs(ppo-physics.EarthPartialPressureOxygen)/(ppo+physics.EarthPartialPressureOxygen),
			ppoWeight/weightCount)
	}

	return radiusRating * densityRating * escapeVelocityRating * surfaceTempRating * oxygenRating
}

// Evaluate derives the full physical character of the body: mass-derived
// geometry, gaseous or rocky determination, day length, surface
// conditions, optional atmosphere, Earth similarity, and the final type.
// It must run after the star has been evaluated and is a no-op on a body
// already evaluated.
func (p *Planet) Evaluate(st *star.Star, number int, opts Options, rng *randx.Source) error {
	if p.evaluated {
		return nil
	}
	if st == nil || !st.Evaluated() {
		return ErrStarNotEvaluated
	}
	if rng == nil {
		return ErrNilRNG
	}

	opts.DensityVariation = physics.Clamp(opts.DensityVariation, 0.0, 0.1)
	diag := func(format string, args ...any) {
		if opts.Diagnostics != nil {
			opts.Diagnostics(fmt.Sprintf(format, args...))
		}
	}

	p.Number = number
	p.OrbitalPeriod = physics.Period(p.SMA, p.TotalMass, st.Mass)
	p.Periapsis = p.SMA * (1.0 - p.Eccentricity)
	p.Apoapsis = p.SMA * (1.0 + p.Eccentricity)
	p.OrbitalDominance = physics.OrbitalDominance(p.TotalMass, p.SMA)
	p.Zone = st.OrbitalZoneAt(p.SMA)

	if opts.RandomAxialTilt {
		p.AxialTilt = rng.Tilt(p.SMA, physics.EarthAxialTilt)
	} else {
		p.AxialTilt = 0.0
	}

	ecosphereRatio := p.SMA / st.Ecosphere
	p.ExosphereTemperature = physics.EarthExosphereTemperature / (ecosphereRatio * ecosphereRatio)
	p.RMSVelocity = physics.RMSVelocity(physics.WeightMolecularNitrogen, p.ExosphereTemperature)

	radiusScatter := rng.About(1.0, opts.DensityVariation)
	criticalMass := physics.CriticalLimit(p.SMA, p.Eccentricity, st.Luminosity)

	if p.DustMass > criticalMass && p.GasMass/p.TotalMass > gaseousPlanetThreshold {
		// Looks like a successful gas giant; verify it can hold helium.
		p.deriveMassValues(true, st, radiusScatter)

		retainsEnvelope := p.MinMolecularWeight <= 4.0
		massiveEnough := p.TotalMass > physics.RockyTransition
		if retainsEnvelope && massiveEnough {
			p.Type = TypeGaseous
		} else {
			p.Type = TypeRocky
			diag("Gaseous planet %d demoted to rocky: retention %t, mass %t\n",
				number, retainsEnvelope, massiveEnough)
		}
	} else {
		p.Type = TypeRocky
	}

	if p.Type == TypeRocky {
		p.deriveMassValues(false, st, radiusScatter)

		if p.GasMass/p.TotalMass > icePlanetThreshold && p.TotalMass > physics.RockyTransition {
			// Failed gas dwarf: shed hydrogen and helium over the star's
			// age, then re-test for a surviving envelope.
			diag("Planet %d re-evaluated as gas dwarf, gas ratio %.3f\n",
				number, p.GasMass/p.TotalMass)

			lostMass := false

			h2Mass := p.GasMass * 0.85
			h2Life := physics.GasLife(physics.WeightMolecularHydrogen,
				p.ExosphereTemperature, p.SurfaceAcceleration, p.Radius)
			if h2Life < st.Age {
				h2Loss := (1.0 - 1.0/math.Exp(st.Age/h2Life)) * h2Mass
				p.GasMass -= h2Loss
				p.TotalMass -= h2Loss
				lostMass = true
			}

			heMass := math.Max(0.0, p.GasMass-h2Mass) * 0.999
			heLife := physics.GasLife(physics.WeightHelium,
				p.ExosphereTemperature, p.SurfaceAcceleration, p.Radius)
			if heLife < st.Age {
				heLoss := (1.0 - 1.0/math.Exp(st.Age/heLife)) * heMass
				p.GasMass -= heLoss
				p.TotalMass -= heLoss
				lostMass = true
			}

			if lostMass {
				p.deriveMassValues(false, st, radiusScatter)
			}

			p.RunawayGreenhouse = p.effectiveTemperature(st.Ecosphere, greenhouseTriggerAlbedo) >
				physics.FreezingPointWater
			p.calculateSurfacePressure(st, rng)

			if p.SurfacePressure > 6000.0 && p.MinMolecularWeight <= 2.0 {
				// Holds hydrogen under a crushing atmosphere after all.
				p.Type = TypeGaseous
				p.RunawayGreenhouse = false
				diag("Planet %d re-promoted to gaseous\n", number)
			}
		}
	}

	p.Density = physics.VolumeDensity(p.TotalMass, p.Radius)
	p.calculateDayLength(st)

	if p.Type == TypeGaseous {
		p.classifyGaseous(rng, diag)
	} else {
		p.evaluateRockySurface(st, opts, rng, diag)
	}

	p.evaluated = true

	return nil
}

// classifyGaseous sub-classifies a gas-retaining body by Jovian mass
// (Chen et al. 2017 cutoffs).
func (p *Planet) classifyGaseous(rng *randx.Source, diag func(string, ...any)) {
	jovianMass := p.TotalMass * physics.SolarMassToJovianMass

	switch {
	case jovianMass > physics.BrownDwarfTransition:
		p.Type = TypeBrownDwarf
	case jovianMass > physics.IceGiantTransition:
		p.Type = TypeGasGiant
	default:
		p.Type = TypeIceGiant
		if p.TotalMass < physics.RockyTransition {
			diag("Ice giant found below the rocky transition, M(Earth) = %.2f\n",
				p.TotalMass*physics.SolarMassToEarthMass)
		}
	}

	p.Albedo = rng.Near(physics.AlbedoGasGiant, threeSigmaAlbedoGasGiant)
	p.ESI = 0.0
}

// evaluateRockySurface runs the greenhouse pre-check, the surface
// convergence loop, optional atmosphere synthesis, and the final rocky
// classification.
func (p *Planet) evaluateRockySurface(st *star.Star, opts Options, rng *randx.Source, diag func(string, ...any)) {
	// Runaway greenhouse when water never condenses out of the initial
	// atmosphere. The trigger albedo was chosen to match the legacy
	// orbital-zone test.
	p.RunawayGreenhouse = p.effectiveTemperature(st.Ecosphere, greenhouseTriggerAlbedo) >
		physics.FreezingPointWater

	p.calculateSurfacePressure(st, rng)
	p.iterateSurfaceConditions(st, rng, diag)

	p.ESI = p.calculateEarthSimilarity()
	if opts.ComputeGases && p.ESI > 0.50 &&
		p.MaxTemperature >= physics.FreezingPointWater &&
		p.MinTemperature <= p.BoilingPoint {
		p.synthesizeAtmosphere(st.Age)
		p.ESI = p.calculateEarthSimilarity()
	}

	massInEarths := p.TotalMass * physics.SolarMassToEarthMass
	switch {
	case p.SurfacePressure < 1.0 && massInEarths < physics.AsteroidMassLimit:
		p.Type = TypeAsteroidBelt
		p.ESI = 0.0
	case p.OrbitalDominance < 1.0:
		p.Type = TypeDwarfPlanet
	case p.Hydrosphere > 0.95:
		p.Type = TypeOcean
	case p.IceCoverage > 0.95 || p.MeanSurfaceTemperature < physics.FreezingPointWater:
		p.Type = TypeIcePlanet
	case p.Hydrosphere > 0.05:
		p.Type = TypeTerrestrial
	default:
		p.Type = TypeRocky
	}
}
