package planet

import (
	"math"
	"sort"

	"github.com/katalvlaran/accrete/physics"
)

// chemical is one row of the atmospheric gas table.
type chemical struct {
	gas          Gas
	atomicWeight float64 // amu
	meltingPoint float64 // K
	boilingPoint float64 // K, at 1 atm
	density      float64 // g/cc
	abundE       float64 // abundance on Earth
	abundS       float64 // abundance in the solar system
	reactivity   float64
	maxIPP       float64 // maximum inspired partial pressure, mb
}

// gasTable holds the atmospheric species, from Burrows 2006.
// Max IPP values come from Dole 1969.
var gasTable = [...]chemical{
	{Hydrogen, 1.0079, 14.06, 20.40, 8.99e-05, 0.00125893, 27925.4, 1.0, 0.0},
	{Helium, 4.0026, 3.46, 4.20, 0.0001787, 7.94328e-09, 2722.7, 0.0, 61000.0 * physics.MbPerMmhg},
	{Nitrogen, 14.0067, 63.34, 77.40, 0.0012506, 1.99526e-05, 3.13329, 0.0, 2330.0 * physics.MbPerMmhg},
	{Oxygen, 15.9994, 54.80, 90.20, 0.001429, 0.501187, 23.8232, 10.0, 400.0 * physics.MbPerMmhg},
	{Neon, 20.17, 24.53, 27.10, 0.0009, 5.01187e-09, 3.4435e-5, 0.0, 3900.0 * physics.MbPerMmhg},
	{Argon, 39.948, 84.00, 87.30, 0.0017824, 3.16228e-06, 0.100925, 0.0, 1220.0 * physics.MbPerMmhg},
	{Krypton, 83.8, 116.60, 119.70, 0.003708, 1e-10, 4.4978e-05, 0.0, 350.0 * physics.MbPerMmhg},
	{Xenon, 131.3, 161.30, 165.00, 0.00588, 3.16228e-11, 4.69894e-06, 0.0, 160.0 * physics.MbPerMmhg},
	{Ammonia, 17.0, 195.46, 239.66, 0.001, 0.002, 0.0001, 1.0, 100.0 * physics.MbPerMmhg},
	{Water, 18.0, 273.16, 373.16, 1.000, 0.03, 0.001, 0.0, 0.0},
	{CarbonDioxide, 44.0, 194.66, 194.66, 0.001, 0.01, 0.0005, 0.0, 7.0 * physics.MbPerMmhg},
	{Ozone, 48.0, 80.16, 161.16, 0.001, 0.001, 0.000001, 2.0, 0.10 * physics.MbPerMmhg},
	{Methane, 16.0, 90.16, 109.16, 0.010, 0.005, 0.0001, 1.0, 50000.0 * physics.MbPerMmhg},
}

// waterBoilingPoint returns the boiling point of water, in Kelvin, under
// the given surface pressure in millibars (Fogg 1985 eq. 21).
func waterBoilingPoint(surfacePressureMb float64) float64 {
	surfacePressureBars := surfacePressureMb * physics.BarPerMillibar

	return 1.0 / ((math.Log(surfacePressureBars) / -5050.5) + (1.0 / 373.0))
}

// opacity returns the unitless optical depth driving the greenhouse rise.
// The molecular-weight bands and pressure multipliers form a fixed step
// table (Fogg 1985 via Burrows 2006), not a continuous function.
func opacity(minMolecularWeight, surfacePressure float64) float64 {
	opticalDepth := 0.0

	switch {
	case minMolecularWeight >= 0.0 && minMolecularWeight < 10.0:
		opticalDepth += 3.0
	case minMolecularWeight >= 10.0 && minMolecularWeight < 20.0:
		opticalDepth += 2.34
	case minMolecularWeight >= 20.0 && minMolecularWeight < 30.0:
		opticalDepth += 1.0
	case minMolecularWeight >= 30.0 && minMolecularWeight < 45.0:
		opticalDepth += 0.15
	case minMolecularWeight >= 45.0 && minMolecularWeight < 100.0:
		opticalDepth += 0.05
	}

	switch {
	case surfacePressure >= 70.0*physics.EarthSurfacePressure:
		opticalDepth *= 8.333
	case surfacePressure >= 50.0*physics.EarthSurfacePressure:
		opticalDepth *= 6.666
	case surfacePressure >= 30.0*physics.EarthSurfacePressure:
		opticalDepth *= 3.333
	case surfacePressure >= 10.0*physics.EarthSurfacePressure:
		opticalDepth *= 2.0
	case surfacePressure >= 5.0*physics.EarthSurfacePressure:
		opticalDepth *= 1.5
	}

	return opticalDepth
}

// synthesizeAtmosphere estimates the retained fraction of each tabulated
// species and normalizes the survivors into p.Atmosphere, sorted by
// descending fraction. A species survives when it condenses below the
// night-time temperature and is heavy enough to be retained.
func (p *Planet) synthesizeAtmosphere(stellarAge float64) {
	if p.SurfacePressure <= 0.0 {
		return
	}

	pressure := p.SurfacePressure * physics.BarPerMillibar
	ageOver2B := stellarAge / 2.0e9

	totalAmount := 0.0
	p.Atmosphere = p.Atmosphere[:0]

	for _, g := range gasTable {
		// Condensation point of the species under this pressure.
		yp := g.boilingPoint / (373.0 * ((math.Log(pressure+0.001) / -5050.5) + (1.0 / 373.0)))
		if yp < 0.0 || yp >= p.LowTemperature || g.atomicWeight < p.MinMolecularWeight {
			continue
		}

		vrms := physics.RMSVelocity(g.atomicWeight, p.ExosphereTemperature)
		pvrms := math.Pow(1.0/(1.0+vrms/p.EscapeVelocity), stellarAge/1.0e9)
		abund := g.abundS

		var react float64
		switch {
		case g.gas == Argon:
			react = 0.15 * stellarAge / 4.0e9
		case g.gas == Helium:
			abund *= 0.001 + p.GasMass/p.TotalMass
			pres2 := 0.75 + pressure
			react = math.Pow(1.0/(1.0+g.reactivity), ageOver2B*pres2)
		case g.gas == Oxygen && stellarAge > 2.0e9 &&
			p.MeanSurfaceTemperature > 270.0 && p.MeanSurfaceTemperature < 400.0:
			pres2 := 0.89 + pressure/4.0
			react = math.Pow(1.0/(1.0+g.reactivity), math.Pow(ageOver2B, 0.25)*pres2)
		case g.gas == CarbonDioxide && stellarAge > 2.0e9 &&
			p.MeanSurfaceTemperature > 270.0 && p.MeanSurfaceTemperature < 400.0:
			pres2 := 0.75 + pressure
			react = math.Pow(1.0/(1.0+g.reactivity), math.Pow(ageOver2B, 0.5)*pres2)
			react *= 1.5
		default:
			pres2 := 0.75 + pressure
			react = math.Pow(1.0/(1.0+g.reactivity), ageOver2B*pres2)
		}

		amount := abund * pvrms * react
		if amount > 0.0 {
			p.Atmosphere = append(p.Atmosphere, AtmosphereComponent{Gas: g.gas, Fraction: amount})
			totalAmount += amount
		}
	}

	for i := range p.Atmosphere {
		p.Atmosphere[i].Fraction /= totalAmount
	}
	sort.SliceStable(p.Atmosphere, func(i, j int) bool {
		return p.Atmosphere[i].Fraction > p.Atmosphere[j].Fraction
	})
}
