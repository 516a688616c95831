package accretion

// updateDustLanes reclassifies the partition after a protoplanet swept
// [rInner, rOuter]: dust is gone from the swept range, and gas too unless
// the body stayed below its critical mass. Bands straddling a sweep
// boundary split at that boundary, so total coverage never changes. The
// partition is rebuilt into a fresh slice, then adjacent bands with
// identical flags are merged and the disk-level dustRemains flag is
// recomputed.
func (e *Engine) updateDustLanes(pp *protoplanet) {
	gasRemains := pp.mass < pp.criticalMass

	rebuilt := make([]Band, 0, len(e.bands)+2)
	for _, band := range e.bands {
		switch {
		case band.Inner < pp.rInner && band.Outer > pp.rOuter:
			// Band contains the whole swept region: split in three.
			rebuilt = append(rebuilt,
				Band{Inner: band.Inner, Outer: pp.rInner, Dust: band.Dust, Gas: band.Gas},
				Band{Inner: pp.rInner, Outer: pp.rOuter, Dust: false, Gas: band.Gas && gasRemains},
				Band{Inner: pp.rOuter, Outer: band.Outer, Dust: band.Dust, Gas: band.Gas},
			)
		case band.Inner < pp.rOuter && band.Outer >= pp.rOuter:
			// Band straddles the outer sweep boundary.
			rebuilt = append(rebuilt,
				Band{Inner: band.Inner, Outer: pp.rOuter, Dust: false, Gas: band.Gas && gasRemains},
				Band{Inner: pp.rOuter, Outer: band.Outer, Dust: band.Dust, Gas: band.Gas},
			)
		case band.Inner <= pp.rInner && band.Outer > pp.rInner:
			// Band straddles the inner sweep boundary.
			rebuilt = append(rebuilt,
				Band{Inner: band.Inner, Outer: pp.rInner, Dust: band.Dust, Gas: band.Gas},
				Band{Inner: pp.rInner, Outer: band.Outer, Dust: false, Gas: band.Gas && gasRemains},
			)
		case band.Inner >= pp.rInner && band.Outer <= pp.rOuter:
			// Band lies wholly within the swept region.
			cleared := band
			cleared.Dust = false
			if cleared.Gas {
				cleared.Gas = gasRemains
			}
			rebuilt = append(rebuilt, cleared)
		default:
			// Band lies wholly outside the swept region.
			rebuilt = append(rebuilt, band)
		}
	}

	e.bands = mergeBands(rebuilt)
	e.dustRemains = e.anyDustInZone()
}

// mergeBands coalesces adjacent bands with identical flags, in place.
func mergeBands(bands []Band) []Band {
	if len(bands) == 0 {
		return bands
	}

	merged := bands[:1]
	for _, band := range bands[1:] {
		last := &merged[len(merged)-1]
		if last.Dust == band.Dust && last.Gas == band.Gas {
			last.Outer = band.Outer
		} else {
			merged = append(merged, band)
		}
	}

	return merged
}

// anyDustInZone reports whether a dust-bearing band overlaps the
// planet-forming zone.
func (e *Engine) anyDustInZone() bool {
	for _, band := range e.bands {
		if band.Dust && band.Outer >= e.protoplanetZone.Inner && band.Inner <= e.protoplanetZone.Outer {
			return true
		}
	}

	return false
}
