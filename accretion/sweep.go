package accretion

import (
	"math"

	"github.com/katalvlaran/accrete/physics"
)

// Dust-density law constants (Dole 1969). A (the base density) is
// configurable; Alpha and N shape where the density peaks.  The equation is
// extremely sensitive to these values and degenerate disks are common if
// they move far from the classic settings.
const (
	densityAlpha = 5.0
	densityN     = 3.0
)

// gasDustRatio is K in Dole's gas-density split.
const gasDustRatio = 50.0

// effectLimitScalar is "reduced mass" in the original accrete papers: a
// softening factor in [0, 1) that widens a protoplanet's gravitational
// reach as it grows.
func effectLimitScalar(mass float64) float64 {
	return math.Pow(mass/(1.0+mass), 1.0/4.0)
}

// effectLimits returns the inner and outer bounds, in AU, of the disk
// region a body on the given orbit perturbs.
func (e *Engine) effectLimits(sma, ecc, mass float64) (float64, float64) {
	scalar := effectLimitScalar(mass)
	inner := sma * (1.0 - ecc) * (1.0 - scalar) / (1.0 + e.opts.CloudEccentricity)
	outer := sma * (1.0 + ecc) * (1.0 + scalar) / (1.0 - e.opts.CloudEccentricity)

	return inner, outer
}

// dustDensity is Dole's density law at the protoplanet's orbit, in Solar
// masses per cubic AU.
func (e *Engine) dustDensity(sma float64) float64 {
	return e.opts.DustDensity * math.Sqrt(e.stellarMass) *
		math.Exp(-densityAlpha*math.Pow(sma, 1.0/densityN))
}

// collectDust sweeps every band intersecting the protoplanet's effect
// range and returns the total, dust, and gas masses collected for a body
// of mass lastMass. Bands are visited in ascending order; the partition is
// not mutated here.
func (e *Engine) collectDust(lastMass float64, pp *protoplanet) (total, dust, gas float64) {
	density := e.dustDensity(pp.sma)

	for i := range e.bands {
		band := &e.bands[i]
		if band.Outer <= pp.rInner || band.Inner >= pp.rOuter {
			continue
		}

		bandDensity := 0.0
		if band.Dust {
			bandDensity = density
		}

		var massDensity, gasDensity float64
		if lastMass < pp.criticalMass || !band.Gas {
			massDensity = bandDensity
		} else {
			// Above the critical mass the body captures nebular gas too.
			massDensity = gasDustRatio * bandDensity /
				(1.0 + math.Sqrt(pp.criticalMass/lastMass)*(gasDustRatio-1.0))
			gasDensity = massDensity - bandDensity
			if gasDensity < 0.0 {
				e.diag("Negative gas density at %.3f AU; clamping to zero\n", pp.sma)
				gasDensity = 0.0
			}
		}

		bandWidth := pp.rOuter - pp.rInner
		outerClip := math.Max(0.0, pp.rOuter-band.Outer)
		innerClip := math.Max(0.0, band.Inner-pp.rInner)
		width := bandWidth - outerClip - innerClip

		area := 4.0 * math.Pi * pp.sma * pp.sma * effectLimitScalar(lastMass) *
			(1.0 - pp.eccentricity*(outerClip-innerClip)/bandWidth)
		volume := area * width

		bandMass := volume * massDensity
		bandGas := volume * gasDensity
		bandDust := bandMass - bandGas
		if bandDust < 0.0 {
			e.diag("Negative dust mass at %.3f AU; clamping to zero\n", pp.sma)
			bandDust = 0.0
		}

		total += bandMass
		dust += bandDust
		gas += bandGas
	}

	return total, dust, gas
}

// accrete grows a protoplanet to completion: it sweeps the disk until the
// fractional mass gain per pass drops below 0.01%, commits the swept mass
// to the dust lanes, and hands bodies that grew beyond seed mass to the
// coalescence resolver.
func (e *Engine) accrete(pp *protoplanet) {
	pp.criticalMass = physics.CriticalLimit(pp.sma, pp.eccentricity, e.stellarLuminosity)

	var addedMass, addedDust, addedGas float64
	for {
		pp.rInner, pp.rOuter = e.effectLimits(pp.sma, pp.eccentricity, pp.mass+addedMass)

		oldMass := addedMass
		addedMass, addedDust, addedGas = e.collectDust(pp.mass+addedMass, pp)

		if addedMass <= 0.0 || (addedMass-oldMass) < 0.0001*oldMass {
			break
		}
	}

	if addedMass > 0.0 {
		pp.mass += addedMass
		pp.dustMass += addedDust
		pp.gasMass += addedGas

		pp.rInner, pp.rOuter = e.effectLimits(pp.sma, pp.eccentricity, pp.mass)
		e.updateDustLanes(pp)
	}

	if pp.mass > e.opts.SeedMass {
		e.protoplanets++
		e.coalesce(*pp)
	}
}

// accreteStep performs a single sweep for round-robin accretion.
// It deactivates the protoplanet and returns false once a pass collects
// nothing.
func (e *Engine) accreteStep(pp *protoplanet) bool {
	pp.criticalMass = physics.CriticalLimit(pp.sma, pp.eccentricity, e.stellarLuminosity)
	pp.rInner, pp.rOuter = e.effectLimits(pp.sma, pp.eccentricity, pp.mass)

	addedMass, addedDust, addedGas := e.collectDust(pp.mass, pp)
	if addedMass <= 0.0 {
		pp.active = false

		return false
	}

	pp.mass += addedMass
	pp.dustMass += addedDust
	pp.gasMass += addedGas

	pp.rInner, pp.rOuter = e.effectLimits(pp.sma, pp.eccentricity, pp.mass)
	e.updateDustLanes(pp)

	return true
}
