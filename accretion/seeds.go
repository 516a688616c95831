package accretion

import "math"

// blaggBeta is the b term of the Blagg formulation. 56.6 degrees for the
// solar system.
const blaggBeta = 0.9879

// bodeSequence evaluates the Blagg formulation of Bode's Law,
//
//	SMA(n) = A * (B + f(alpha + n*beta)) * 1.7275^n
//
// for integer n. The periodic correction f keeps successive orbits from
// landing on a strict geometric progression.
func bodeSequence(n int, a, b, alpha, beta float64) float64 {
	theta := alpha + float64(n)*beta
	f := 0.249 + 0.86*(math.Cos(theta)/(3.0-math.Cos(2.0*theta))+1.0/(6.0-4.0*math.Cos(theta-math.Pi/6.0)))

	return a * (b + f) * math.Pow(1.7275, float64(n))
}

// bodeSeeds builds a seed ladder from the Blagg formulation, anchored so
// the n=0 rung lands near the star's ecosphere. Rungs extend inward and
// outward until they leave the planet-forming zone, then all rungs except
// the first are lightly shuffled so insertion order is not strictly
// center-out.
func (e *Engine) bodeSeeds() []Seed {
	// 0.4162 and 2.025 are the solar-system A and B values; both get a
	// few percent of Gaussian scatter, and A is scaled to the ecosphere.
	a := 0.4162 * e.ecosphere * e.rng.Near(1.0, 0.04)
	b := 2.025 * e.rng.Near(1.0, 0.04)
	alpha := e.rng.TwoPi()

	seeds := []Seed{{
		SMA:          bodeSequence(0, a, b, alpha, blaggBeta),
		Eccentricity: e.rng.Eccentricity(),
	}}
	e.diag("Bode seed n =  0: SMA = %.3f, ecc = %.3f\n", seeds[0].SMA, seeds[0].Eccentricity)

	for n, added := 1, true; added; n++ {
		added = false

		s := Seed{SMA: bodeSequence(-n, a, b, alpha, blaggBeta), Eccentricity: e.rng.Eccentricity()}
		if s.SMA >= e.protoplanetZone.Inner {
			seeds = append(seeds, s)
			added = true
			e.diag("Bode seed n = %2d: SMA = %.3f, ecc = %.3f\n", -n, s.SMA, s.Eccentricity)
		}

		s = Seed{SMA: bodeSequence(n, a, b, alpha, blaggBeta), Eccentricity: e.rng.Eccentricity()}
		if s.SMA <= e.protoplanetZone.Outer {
			seeds = append(seeds, s)
			added = true
			e.diag("Bode seed n = %2d: SMA = %.3f, ecc = %.3f\n", n, s.SMA, s.Eccentricity)
		}
	}

	for i := 1; i < len(seeds)-1; i++ {
		otherIdx := e.rng.UniformInt(1, len(seeds)-1)
		if i != otherIdx {
			seeds[i], seeds[otherIdx] = seeds[otherIdx], seeds[i]
		}
	}

	return seeds
}
