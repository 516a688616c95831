package star

// catalogEntry holds the observable traits of one main-sequence spectral
// type, sourced from the Mamajek dwarf-star compilation.
type catalogEntry struct {
	logT   float64 // log10 of effective temperature, Kelvin
	logL   float64 // log10 of luminosity, Sol = 0.0
	radius float64 // Solar radii
	mass   float64 // Solar masses
}

// catalog maps (classification, subtype) to stellar traits via
// index = class*10 + subtype. The O0V-O2V rows are cloned from O3V so the
// indexing stays uniform.
var catalog = [70]catalogEntry{
	{4.652, 5.82, 13.430, 59.000}, // O0V
	{4.652, 5.82, 13.430, 59.000}, // O1V
	{4.652, 5.82, 13.430, 59.000}, // O2V
	{4.652, 5.82, 13.430, 59.000}, // O3V
	{4.632, 5.65, 12.130, 48.000}, // O4V
	{4.617, 5.54, 11.450, 43.000}, // O5V
	{4.597, 5.36, 10.270, 35.000}, // O6V
	{4.569, 5.18, 9.420, 28.000},  // O7V
	{4.545, 4.99, 8.470, 23.600},  // O8V
	{4.522, 4.82, 7.720, 20.200},  // O9V
	{4.497, 4.65, 7.160, 17.700},  // B0V
	{4.415, 4.13, 5.710, 11.800},  // B1V
	{4.314, 3.43, 4.060, 7.300},   // B2V
	{4.230, 2.99, 3.610, 5.400},   // B3V
	{4.215, 2.89, 3.460, 5.100},   // B4V
	{4.196, 2.77, 3.360, 4.700},   // B5V
	{4.161, 2.57, 3.270, 4.300},   // B6V
	{4.146, 2.48, 2.940, 3.920},   // B7V
	{4.090, 2.19, 2.860, 3.380},   // B8V
	{4.029, 1.86, 2.490, 2.750},   // B9V
	{3.987, 1.58, 2.193, 2.180},   // A0V
	{3.968, 1.49, 2.136, 2.050},   // A1V
	{3.944, 1.38, 2.117, 1.980},   // A2V
	{3.934, 1.23, 1.861, 1.860},   // A3V
	{3.917, 1.13, 1.794, 1.930},   // A4V
	{3.908, 1.09, 1.785, 1.880},   // A5V
	{3.898, 1.05, 1.775, 1.830},   // A6V
	{3.890, 1.00, 1.750, 1.770},   // A7V
	{3.880, 0.96, 1.747, 1.810},   // A8V
	{3.869, 0.92, 1.747, 1.750},   // A9V
	{3.859, 0.86, 1.728, 1.610},   // F0V
	{3.846, 0.79, 1.679, 1.500},   // F1V
	{3.834, 0.71, 1.622, 1.460},   // F2V
	{3.829, 0.67, 1.578, 1.440},   // F3V
	{3.824, 0.62, 1.533, 1.380},   // F4V
	{3.816, 0.56, 1.473, 1.330},   // F5V
	{3.803, 0.43, 1.359, 1.250},   // F6V
	{3.798, 0.39, 1.324, 1.210},   // F7V
	{3.791, 0.29, 1.221, 1.180},   // F8V
	{3.782, 0.22, 1.167, 1.130},   // F9V
	{3.773, 0.13, 1.100, 1.060},   // G0V
	{3.768, 0.08, 1.060, 1.030},   // G1V
	{3.761, 0.01, 1.012, 1.000},   // G2V
	{3.757, -0.01, 1.002, 0.990},  // G3V
	{3.754, -0.04, 0.991, 0.985},  // G4V
	{3.753, -0.05, 0.977, 0.980},  // G5V
	{3.748, -0.10, 0.949, 0.970},  // G6V
	{3.744, -0.13, 0.927, 0.950},  // G7V
	{3.739, -0.17, 0.914, 0.940},  // G8V
	{3.731, -0.26, 0.853, 0.900},  // G9V
	{3.723, -0.34, 0.813, 0.880},  // K0V
	{3.713, -0.39, 0.797, 0.860},  // K1V
	{3.708, -0.43, 0.783, 0.820},  // K2V
	{3.684, -0.55, 0.755, 0.780},  // K3V
	{3.663, -0.69, 0.713, 0.730},  // K4V
	{3.647, -0.76, 0.701, 0.700},  // K5V
	{3.633, -0.86, 0.669, 0.690},  // K6V
	{3.613, -1.00, 0.630, 0.640},  // K7V
	{3.601, -1.06, 0.615, 0.620},  // K8V
	{3.594, -1.10, 0.608, 0.590},  // K9V
	{3.585, -1.16, 0.588, 0.570},  // M0V
	{3.563, -1.39, 0.501, 0.500},  // M1V
	{3.551, -1.54, 0.446, 0.440},  // M2V
	{3.535, -1.79, 0.361, 0.370},  // M3V
	{3.507, -2.14, 0.274, 0.230},  // M4V
	{3.486, -2.52, 0.196, 0.162},  // M5V
	{3.449, -2.98, 0.137, 0.102},  // M6V
	{3.428, -3.19, 0.120, 0.090},  // M7V
	{3.410, -3.28, 0.114, 0.085},  // M8V
	{3.377, -3.52, 0.102, 0.079},  // M9V
}

// lookup returns the catalog entry for a validated Type.
func lookup(t Type) catalogEntry {
	return catalog[int(t.Class)*10+t.Subtype]
}

// TypeForMassBounds is the mass range, in Solar masses, for which
// TypeForMass resolves without clamping: M0V up to A0V.
var TypeForMassBounds = Bounds{Inner: 0.57, Outer: 2.18}

// TypeForMass returns the spectral type whose catalog mass is closest to
// the given stellar mass. Masses outside TypeForMassBounds clamp to the
// nearest supported type; ties resolve toward the hotter type.
func TypeForMass(mass float64) Type {
	m := mass
	if m < TypeForMassBounds.Inner {
		m = TypeForMassBounds.Inner
	} else if m > TypeForMassBounds.Outer {
		m = TypeForMassBounds.Outer
	}

	// A0V..M0V is the monotonic region of the catalog; restricting the scan
	// there keeps super-luminous O/B types out of random generation.
	best := 20
	bestDiff := absDiff(catalog[20].mass, m)
	for i := 21; i <= 60; i++ {
		if d := absDiff(catalog[i].mass, m); d < bestDiff {
			best = i
			bestDiff = d
		}
	}

	return Type{Class: Classification(best / 10), Subtype: best % 10}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}

	return b - a
}
