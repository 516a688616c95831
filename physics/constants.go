package physics

import "math"

// Fundamental physical constants, cgs-leaning like the classic accrete
// literature they come from.
const (
	// GravityConstant is Newton's G in cgs units (dyne·cm²/g²).
	GravityConstant = 6.672e-8

	// MolarGasConstant is the universal gas constant scaled for gram-moles
	// (J/(kmol·K)), matching RMS-velocity formulas that take molecular
	// weights in atomic mass units.
	MolarGasConstant = 8314.41

	// SolarMassInGrams is the mass of Sol, in grams.
	SolarMassInGrams = 1.989e33

	// SolarRadiusKm is the radius of Sol, in km.
	SolarRadiusKm = 695700.0
)

// Unit conversions.
const (
	CmPerKm = 1000.0 * 100.0
	CmPerM  = 100.0
	KmPerCm = 1.0 / CmPerKm
	MPerCm  = 0.01
	MPerKm  = 1000.0

	AuPerKm = 6.6845871222684454959959533702106e-9
	KmPerAu = 1.0 / AuPerKm

	DaysPerYear    = 365.256
	HoursPerDay    = 23.9344696
	SecondsPerHour = 60.0 * 60.0
	YearsPerSecond = 1.0 / (SecondsPerHour * HoursPerDay * DaysPerYear)

	RadiansPerCircle = 2.0 * math.Pi

	// SolarMassToEarthMass converts Solar masses to Earth masses.
	SolarMassToEarthMass = 332775.64

	// SolarMassToJovianMass converts Solar masses to Jupiter masses.
	SolarMassToJovianMass = 1047.0

	// AccelerationInGees converts m/s² to multiples of Earth surface gravity.
	AccelerationInGees = 1.0 / 9.807
)

// Earth reference values used for similarity scoring and atmosphere scaling.
const (
	EarthSurfacePressure         = 1013.25 // mb
	AtmPerMb                     = 1.0 / EarthSurfacePressure
	BarPerMillibar               = 0.001
	MbPerMmhg                    = EarthSurfacePressure / 760.0
	EarthAverageTemperature      = 273.15 + 14.0 // K
	EarthAxialTilt               = 23.4          // degrees
	EarthDensity                 = 5.52          // g/cc
	EarthEscapeVelocity          = 11186.0       // m/s
	EarthEffectiveTemperature    = 250.0         // K
	EarthExosphereTemperature    = 1273.0        // K
	EarthHydrosphere             = 0.708
	EarthMassInGrams             = 5.977e27
	EarthRadiusKm                = 6378.0
	EarthPartialPressureOxygen   = EarthSurfacePressure * 0.2095 // mb
	EarthWaterMassPerKm2         = 3.83e15                       // grams
	FreezingPointWater           = 273.15                        // K
	KelvinToCelsius              = -273.15
	ChangeInEarthAngularVelocity = -1.3e-15 // rad/s per year
)

// Albedo presets for surface materials (Fogg 1985 Table 3).
const (
	AlbedoCloud       = 0.52
	AlbedoEarth       = 0.3
	AlbedoGasGiant    = 0.492
	AlbedoIce         = 0.7
	AlbedoIceAirless  = 0.4
	AlbedoRock        = 0.15
	AlbedoRockAirless = 0.07
	AlbedoWater       = 0.04
)

// Classification thresholds shared by the evaluator and its tests.
const (
	// AsteroidMassLimit is the largest mass, in Earth masses, that an
	// airless low-pressure body may have and still read as an asteroid belt.
	AsteroidMassLimit = 0.001

	// BrownDwarfTransition is the Jovian mass above which a gaseous body is
	// massive enough to fuse deuterium.
	BrownDwarfTransition = 13.0

	// IceGiantTransition is the Jovian mass below which a gas giant reads
	// as an ice giant.
	IceGiantTransition = 0.414

	// RockyTransition is the smallest mass, in Solar masses, that can hold
	// a hydrogen/helium envelope against thermal escape.
	RockyTransition = 2.04 / SolarMassToEarthMass

	// GasRetentionThreshold is the minimum ratio of escape velocity to a
	// molecule's RMS velocity for that molecule to be retained over
	// geological time (Dole 1969).
	GasRetentionThreshold = 5.0

	// BodeProgression is the geometric ratio of the Blagg formulation of
	// the Titius–Bode law.
	BodeProgression = 1.7275
)

// Molecular weights of diagnostic gases, in atomic mass units.
const (
	WeightMolecularHydrogen = 2.0
	WeightHelium            = 4.0
	WeightWaterVapor        = 18.0
	WeightMolecularNitrogen = 28.0
)
