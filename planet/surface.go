package planet

import (
	"math"

	"github.com/katalvlaran/accrete/physics"
	"github.com/katalvlaran/accrete/randx"
	"github.com/katalvlaran/accrete/star"
)

// Surface-model tunings carried over from Burke 1985 / Burrows 2006.
const (
	// cloudCoverageFactor is the surface area on Earth, in km², covered by
	// one kilogram of cloud.
	cloudCoverageFactor = 1.839e-8

	// earthConvectionFactor tunes the greenhouse rise to match Earth.
	earthConvectionFactor = 0.43

	// greenhouseTriggerAlbedo is the albedo used for the runaway-greenhouse
	// pre-check, chosen so the boundary matches the legacy zone test.
	greenhouseTriggerAlbedo = 0.20

	// q2x36 appears in Hart's water-vapor equation.
	q2x36 = 0.0698

	// maxConvergenceIterations bounds the surface-condition loop.
	maxConvergenceIterations = 25
)

// lim squashes its argument smoothly into (-1, 1).
func lim(x float64) float64 {
	return x / math.Sqrt(math.Sqrt(1.0+x*x*x*x))
}

// soft interpolates v into the envelope [min, max] with smoothed edges.
func soft(v, max, min float64) float64 {
	dv := v - min
	dm := max - min

	return (lim(2.0*dv/dm-1.0)+1.0)*0.5*dm + min
}

// effectiveTemperature returns the black-body surface temperature, in
// Kelvin, at the given albedo (Fogg 1985 eq. 19).
func (p *Planet) effectiveTemperature(ecosphere, albedo float64) float64 {
	return math.Sqrt(ecosphere/p.SMA) *
		math.Pow((1.0-albedo)/(1.0-physics.AlbedoEarth), 0.25) *
		physics.EarthEffectiveTemperature
}

// greenhouseRise returns the temperature increase, in Kelvin, produced by
// the greenhouse effect (Fogg's eq. 20, exponent retuned to match Venus).
func (p *Planet) greenhouseRise(effectiveTemp float64) float64 {
	opticalDepth := opacity(p.MinMolecularWeight, p.SurfacePressure)
	convectionFactor := earthConvectionFactor * math.Pow(p.SurfacePressure*physics.AtmPerMb, 0.4)

	return math.Max(0.0,
		(math.Pow(1.0+0.75*opticalDepth, 0.25)-1.0)*effectiveTemp*convectionFactor)
}

// volatileInventory returns the unitless volatile abundance driving surface
// pressure and hydrosphere coverage (Fogg's eq. 17). Zero when the body
// cannot hold molecular nitrogen.
func (p *Planet) volatileInventory(st *star.Star, rng *randx.Source) float64 {
	if p.EscapeVelocity/p.RMSVelocity < physics.GasRetentionThreshold {
		return 0.0
	}

	// Proportion constants by material zone, blended across transitions.
	zone := st.MaterialZone(p.SMA)
	var proportionConstant float64
	if zone < 2.0 {
		proportionConstant = physics.Lerp(zone-1.0, 100000.0, 75000.0)
	} else {
		proportionConstant = physics.Lerp(zone-2.0, 75000.0, 250.0)
	}

	massInEarths := p.TotalMass * physics.SolarMassToEarthMass
	center := proportionConstant * massInEarths / st.Mass

	if p.RunawayGreenhouse || p.GasMass/p.TotalMass > icePlanetThreshold {
		return rng.About(center, 0.2)
	}

	return rng.About(center/100.0, 0.2)
}

// calculateSurfacePressure refreshes the volatile inventory, surface
// pressure (mb), and the boiling point of water.
func (p *Planet) calculateSurfacePressure(st *star.Star, rng *randx.Source) {
	p.VolatileGasInventory = p.volatileInventory(st, rng)
	if p.VolatileGasInventory <= 0.0 {
		p.SurfacePressure = 0.0
		p.BoilingPoint = 0.0

		return
	}

	radiusRatio := physics.EarthRadiusKm / p.Radius
	p.SurfacePressure = p.VolatileGasInventory * p.SurfaceGravity() *
		physics.EarthSurfacePressure * physics.BarPerMillibar /
		(radiusRatio * radiusRatio)
	p.BoilingPoint = waterBoilingPoint(p.SurfacePressure)
}

// calculateAlbedo mixes the albedos of water, ice, rock, and cloud by
// their surface fractions, each draw randomized near its published mean.
func (p *Planet) calculateAlbedo(rng *randx.Source) float64 {
	waterFraction := p.Hydrosphere
	iceFraction := p.IceCoverage
	// The remainder can dip slightly negative from accumulated rounding.
	rockFraction := math.Max(0.0, 1.0-waterFraction-iceFraction)

	components := 0.0
	if waterFraction > 0.0 {
		components++
	}
	if iceFraction > 0.0 {
		components++
	}
	if rockFraction > 0.0 {
		components++
	}

	cloudAdjustment := p.CloudCoverage / components
	waterFraction = math.Max(0.0, waterFraction-cloudAdjustment)
	iceFraction = math.Max(0.0, iceFraction-cloudAdjustment)
	rockFraction = math.Max(0.0, rockFraction-cloudAdjustment)

	airless := p.SurfacePressure == 0.0

	var waterAlbedo, iceAlbedo, rockAlbedo, cloudAlbedo float64
	if airless {
		iceAlbedo = iceFraction * rng.Near(physics.AlbedoIceAirless, physics.AlbedoIceAirless*0.4)
		rockAlbedo = rockFraction * rng.Near(physics.AlbedoRockAirless, physics.AlbedoRockAirless*0.3)
	} else {
		waterAlbedo = waterFraction * rng.Near(physics.AlbedoWater, physics.AlbedoWater*0.2)
		iceAlbedo = iceFraction * rng.Near(physics.AlbedoIce, physics.AlbedoIce*0.1)
		rockAlbedo = rockFraction * rng.Near(physics.AlbedoRock, physics.AlbedoRock*0.1)
		cloudAlbedo = p.CloudCoverage * rng.Near(physics.AlbedoCloud, physics.AlbedoCloud*0.2)
	}

	return waterAlbedo + iceAlbedo + rockAlbedo + cloudAlbedo
}

// setTemperatureRange derives the high/low and max/min surface temperature
// envelope from the mean temperature, day length, pressure, axial tilt,
// and eccentricity.
func (p *Planet) setTemperatureRange() {
	maxT := p.MeanSurfaceTemperature + math.Sqrt(p.MeanSurfaceTemperature)*10.0
	minT := p.MeanSurfaceTemperature / math.Sqrt(p.Day+physics.HoursPerDay)

	pressmod := 1.0 / math.Sqrt(1.0+20.0*p.SurfacePressure*physics.BarPerMillibar)
	ppmod := 1.0 / math.Sqrt(10.0+5.0*p.SurfacePressure*physics.BarPerMillibar)
	tiltmod := math.Abs(math.Cos(p.AxialTilt*math.Pi/180.0) * math.Pow(1.0+p.Eccentricity, 2.0))
	daymod := 1.0 / (200.0/p.Day + 1.0)

	mh := math.Pow(1.0+daymod, pressmod)
	ml := math.Pow(1.0-daymod, pressmod)

	hi := mh * p.MeanSurfaceTemperature
	lo := math.Max(minT, ml*p.MeanSurfaceTemperature)
	sh := hi + math.Pow((100.0+hi)*tiltmod, math.Sqrt(ppmod))
	wl := math.Max(0.0, lo-math.Pow((150.0+lo)*tiltmod, math.Sqrt(ppmod)))

	p.HighTemperature = soft(hi, maxT, minT)
	p.LowTemperature = soft(lo, maxT, minT)
	p.MaxTemperature = soft(sh, maxT, minT)
	p.MinTemperature = soft(wl, maxT, minT)
}

// updateSurfaceConditions runs one pass of the surface model. The first
// pass (initialize) assigns computed values outright; later passes blend
// them 1/3 new, 2/3 old so the iteration settles instead of oscillating.
func (p *Planet) updateSurfaceConditions(initialize bool, st *star.Star, rng *randx.Source) {
	if initialize {
		p.Albedo = physics.AlbedoEarth

		effectiveTemp := p.effectiveTemperature(st.Ecosphere, p.Albedo)
		p.MeanSurfaceTemperature = effectiveTemp + p.greenhouseRise(effectiveTemp)
		p.setTemperatureRange()
	}

	if p.RunawayGreenhouse && p.MaxTemperature < p.BoilingPoint {
		// Too cool to sustain a runaway greenhouse after all.
		p.RunawayGreenhouse = false
		p.calculateSurfacePressure(st, rng)
	}

	// Fraction of the surface covered with water (Fogg's eq. 22).
	newHydrosphere := math.Min(1.0,
		physics.EarthHydrosphere*p.VolatileGasInventory/1000.0*
			math.Pow(physics.EarthRadiusKm/p.Radius, 2.0))

	// Cloud cover from the water-vapor budget (Fogg's eq. 23, Hart's
	// eq. 3). Zero when the retained molecular floor excludes water vapor.
	var newCloudCover float64
	if p.MinMolecularWeight <= physics.WeightWaterVapor {
		surfaceArea := 4.0 * math.Pi * p.Radius * p.Radius
		hydroMass := newHydrosphere * surfaceArea * physics.EarthWaterMassPerKm2
		waterVapor := 0.00000001 * hydroMass *
			math.Exp(q2x36*(p.MeanSurfaceTemperature-physics.EarthAverageTemperature))

		newCloudCover = math.Min(1.0, cloudCoverageFactor*waterVapor/surfaceArea)
	}

	// Ice cover (Fogg's eq. 24, constant retuned from 70 to 90 to match
	// Earth's 1.6% coverage).
	newIceCover := math.Min(1.5*newHydrosphere,
		math.Pow((328.0-p.MeanSurfaceTemperature)/90.0, 5.0))
	newIceCover = physics.Clamp(newIceCover, 0.0, 1.0)

	if newHydrosphere+newIceCover > 1.0 {
		newHydrosphere = 1.0 - newIceCover
	}

	if p.RunawayGreenhouse && p.SurfacePressure > 0.0 {
		p.CloudCoverage = 1.0
	}

	tidallyLocked := int(p.Day) == int(p.OrbitalPeriod*physics.HoursPerDay) || p.Resonant
	if p.HighTemperature >= p.BoilingPoint && !initialize && !tidallyLocked {
		// Boil-off.
		p.Hydrosphere = 0.0
		newHydrosphere = 0.0
		if p.MinMolecularWeight > physics.WeightWaterVapor {
			p.CloudCoverage = 0.0
		} else {
			p.CloudCoverage = 1.0
		}
	}

	if p.MeanSurfaceTemperature < physics.FreezingPointWater-3.0 {
		// Frozen.
		p.Hydrosphere = 0.0
		newHydrosphere = 0.0
	}

	if initialize {
		p.Hydrosphere = newHydrosphere
		p.CloudCoverage = newCloudCover
		p.IceCoverage = newIceCover
	} else {
		p.Hydrosphere = (2.0*p.Hydrosphere + newHydrosphere) / 3.0
		p.CloudCoverage = (2.0*p.CloudCoverage + newCloudCover) / 3.0
		p.IceCoverage = (2.0*p.IceCoverage + newIceCover) / 3.0

		if p.Hydrosphere+p.IceCoverage > 1.0 {
			p.Hydrosphere = 1.0 - p.IceCoverage
		}
	}

	newAlbedo := p.calculateAlbedo(rng)
	if initialize {
		p.Albedo = newAlbedo
	} else {
		p.Albedo = (2.0*p.Albedo + newAlbedo) / 3.0
	}

	effectiveTemp := p.effectiveTemperature(st.Ecosphere, p.Albedo)
	newSurfaceTemp := effectiveTemp + p.greenhouseRise(effectiveTemp)
	if initialize {
		p.MeanSurfaceTemperature = newSurfaceTemp
	} else {
		p.MeanSurfaceTemperature = (2.0*p.MeanSurfaceTemperature + newSurfaceTemp) / 3.0
	}

	p.setTemperatureRange()
}

// iterateSurfaceConditions drives the surface model to convergence:
// repeated passes until the mean surface temperature moves less than
// 0.25 K, bounded at 25 iterations. Non-convergence is reported through
// diag and the last computed values stand.
func (p *Planet) iterateSurfaceConditions(st *star.Star, rng *randx.Source, diag func(string, ...any)) {
	p.updateSurfaceConditions(true, st, rng)

	var deltaT float64
	for i := 0; i < maxConvergenceIterations; i++ {
		previous := p.MeanSurfaceTemperature
		p.updateSurfaceConditions(false, st, rng)

		deltaT = math.Abs(previous - p.MeanSurfaceTemperature)
		if deltaT < 0.25 {
			return
		}
	}

	diag("Surface conditions failed to converge in %d iterations; last delta was %f\n",
		maxConvergenceIterations, deltaT)
}
