package accretion

import "math"

// coalesce merges pp into the planet list. If pp's orbit reaches inside an
// existing body's gravitational effect range (or vice versa), the two merge
// into a single protoplanet that resweeps the disk; otherwise pp joins the
// list as a new body, kept ordered by semi-major axis.
func (e *Engine) coalesce(pp protoplanet) {
	ppScalar := effectLimitScalar(pp.mass)

	for i := range e.planets {
		p := e.planets[i]
		diff := p.SMA - pp.sma
		pScalar := effectLimitScalar(p.Mass())

		var dist1, dist2 float64
		if diff > 0.0 {
			dist1 = (pp.sma * (1.0 + pp.eccentricity) * (1.0 + ppScalar)) - pp.sma
			// x aphelion
			dist2 = p.SMA - (p.SMA * (1.0 - p.Eccentricity) * (1.0 - pScalar))
		} else {
			dist1 = pp.sma - (pp.sma * (1.0 - pp.eccentricity) * (1.0 - ppScalar))
			// x perihelion
			dist2 = (p.SMA * (1.0 + p.Eccentricity) * (1.0 + pScalar)) - p.SMA
		}

		if math.Abs(diff) <= math.Abs(dist1) || math.Abs(diff) <= math.Abs(dist2) {
			merged := e.merge(p, pp)

			e.diag("Protoplanet collision: body at %.3f AU merged with existing body at %.3f AU, resweeping dust\n",
				pp.sma, p.SMA)

			e.planets = append(e.planets[:i], e.planets[i+1:]...)

			// Resweep the disk with the merged mass. accrete re-enters
			// coalesce, which places the result back in the list.
			e.accrete(&merged)

			return
		}
	}

	e.insert(Planetesimal{
		SMA:          pp.sma,
		Eccentricity: pp.eccentricity,
		DustMass:     pp.dustMass,
		GasMass:      pp.gasMass,
	})
}

// merge combines an existing body and a protoplanet into a single
// protoplanet, conserving mass and angular momentum. The momentum sum keeps
// the asymmetric treatment of the two eccentricity terms.
func (e *Engine) merge(p Planetesimal, pp protoplanet) protoplanet {
	totalMass := p.Mass() + pp.mass

	newSMA := totalMass / ((p.Mass() / p.SMA) + (pp.mass / pp.sma))

	momentum := p.Mass() * math.Sqrt(p.SMA) * math.Sqrt(1.0-p.Eccentricity*p.Eccentricity)
	momentum += pp.mass * math.Sqrt(pp.sma) * math.Sqrt(math.Sqrt(1.0-pp.eccentricity*pp.eccentricity))
	momentum /= totalMass * math.Sqrt(newSMA)

	e2 := 1.0 - momentum*momentum
	if e2 < 0.0 {
		e.diag("Merged body at %.3f AU produced an unbound eccentricity, circularizing\n", newSMA)
		e2 = 0.0
	}
	newE := math.Sqrt(e2)

	return protoplanet{
		sma:          newSMA,
		eccentricity: newE,
		mass:         totalMass,
		dustMass:     p.DustMass + pp.dustMass,
		gasMass:      p.GasMass + pp.gasMass,
		active:       true,
	}
}

// insert places p into the planet list, ordered by semi-major axis.
func (e *Engine) insert(p Planetesimal) {
	idx := len(e.planets)
	for i := range e.planets {
		if e.planets[i].SMA >= p.SMA {
			idx = i
			break
		}
	}

	e.planets = append(e.planets, Planetesimal{})
	copy(e.planets[idx+1:], e.planets[idx:])
	e.planets[idx] = p
}
