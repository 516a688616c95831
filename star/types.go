package star

import "errors"

// ErrBadSubtype is returned when a subtype lies outside [0, 9], or below 3
// for class O (the catalog has no O0V-O2V entries of their own).
var ErrBadSubtype = errors.New("star: subtype out of range")

// Classification enumerates the main-sequence stellar classes, hottest first.
type Classification int

const (
	ClassO Classification = iota
	ClassB
	ClassA
	ClassF
	ClassG // Sol is G2V.
	ClassK
	ClassM
)

var classLetters = [...]string{"O", "B", "A", "F", "G", "K", "M"}

// String returns the single-letter class designation.
func (c Classification) String() string {
	if c < ClassO || c > ClassM {
		return "?"
	}

	return classLetters[c]
}

// Type pairs a classification with its subtype.
type Type struct {
	Class   Classification
	Subtype int
}

// String returns the compact designation, e.g. "G2V".
func (t Type) String() string {
	if t.Subtype < 0 || t.Subtype > 9 {
		return t.Class.String() + "?V"
	}

	return t.Class.String() + string(rune('0'+t.Subtype)) + "V"
}

// OrbitalZone is a broad classification of orbital distances relative to
// the habitable zone and the snow line. It does not correspond to the
// material zones used for composition.
type OrbitalZone int

const (
	// ZoneInner lies between the star and the habitable zone.
	ZoneInner OrbitalZone = iota

	// ZoneHabitable lies within the habitable zone bounds.
	ZoneHabitable

	// ZoneMiddle lies outside the habitable zone, inside the snow line.
	ZoneMiddle

	// ZoneOuter lies beyond the snow line.
	ZoneOuter
)

// String names the zone for diagnostics and demo output.
func (z OrbitalZone) String() string {
	switch z {
	case ZoneInner:
		return "inner"
	case ZoneHabitable:
		return "habitable"
	case ZoneMiddle:
		return "middle"
	case ZoneOuter:
		return "outer"
	default:
		return "unknown"
	}
}

// Bounds describes the inner/outer limit of a distance band around the
// star, in AU.
type Bounds struct {
	Inner float64
	Outer float64
}

// Contains reports whether r lies within the band, inclusive of both edges.
func (b Bounds) Contains(r float64) bool {
	return r >= b.Inner && r <= b.Outer
}
