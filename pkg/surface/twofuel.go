package surface

import (
	"math"

	"github.com/firesci/firebehave/internal/log"
	"github.com/firesci/firebehave/pkg/fuel"
)

// TwoFuelMethod selects how spread rates from two fuel models on the same
// site are combined.
type TwoFuelMethod int

const (
	// NoMethod reports the first fuel model's behavior unmodified.
	NoMethod TwoFuelMethod = iota
	// Arithmetic weights the two spread rates by coverage (Rothermel 1983).
	Arithmetic
	// Harmonic weights the inverse spread rates by coverage (Fuquay 1986).
	Harmonic
	// TwoDimensional is the expected-spread lattice method (Finney 2003).
	TwoDimensional
)

// TwoFuelResult pairs the component runs with the combined behavior.
type TwoFuelResult struct {
	First    Result
	Second   Result
	Combined Result
	// CoverageFirst is the fraction of the site occupied by the first model.
	CoverageFirst float64
	Method        TwoFuelMethod
}

// RunTwoFuelModels computes surface fire behavior for two fuel models
// occupying one site and combines them by the requested method. The
// two-dimensional method requires a spatial fuel arrangement this library
// does not model, so it falls back to the first model's behavior with a
// logged warning.
func RunTwoFuelModels(catalog *fuel.Catalog, firstModel, secondModel int, coverageFirst float64,
	method TwoFuelMethod, env Environment) (TwoFuelResult, error) {

	bed1, err := BedFromModel(catalog, firstModel, env)
	if err != nil {
		return TwoFuelResult{}, err
	}
	bed2, err := BedFromModel(catalog, secondModel, env)
	if err != nil {
		return TwoFuelResult{}, err
	}

	if coverageFirst < 0 {
		coverageFirst = 0
	}
	if coverageFirst > 1 {
		coverageFirst = 1
	}

	if method == TwoDimensional {
		log.Warnf("two-dimensional expected spread requires a spatial fuel arrangement; using first fuel model %d only", firstModel)
		method = NoMethod
	}

	// Method records the method actually applied, not the one requested.
	res := TwoFuelResult{
		First:         Run(bed1, env),
		Second:        Run(bed2, env),
		CoverageFirst: coverageFirst,
		Method:        method,
	}

	switch method {
	case Arithmetic:
		res.Combined = combineWeighted(res.First, res.Second, coverageFirst, arithmeticMean)
	case Harmonic:
		res.Combined = combineWeighted(res.First, res.Second, coverageFirst, harmonicMean)
	default:
		res.Combined = res.First
	}
	return res, nil
}

// RunTwoFuelModelsInDirection is RunTwoFuelModels with the component runs
// additionally evaluated along a direction of interest. The combined
// directional rate is weighted with the same method as the heading rate.
func RunTwoFuelModelsInDirection(catalog *fuel.Catalog, firstModel, secondModel int, coverageFirst float64,
	method TwoFuelMethod, env Environment, directionOfInterest float64) (TwoFuelResult, error) {

	res, err := RunTwoFuelModels(catalog, firstModel, secondModel, coverageFirst, method, env)
	if err != nil {
		return TwoFuelResult{}, err
	}

	dir := normalizeAzimuth(directionOfInterest)
	res.First.DirectionOfInterest = dir
	res.First.SpreadRateInDirection = spreadRateAtAzimuth(res.First, dir)
	res.Second.DirectionOfInterest = dir
	res.Second.SpreadRateInDirection = spreadRateAtAzimuth(res.Second, dir)

	res.Combined.DirectionOfInterest = dir
	switch res.Method {
	case Arithmetic:
		res.Combined.SpreadRateInDirection = arithmeticMean(res.First.SpreadRateInDirection, res.Second.SpreadRateInDirection, res.CoverageFirst)
	case Harmonic:
		res.Combined.SpreadRateInDirection = harmonicMean(res.First.SpreadRateInDirection, res.Second.SpreadRateInDirection, res.CoverageFirst)
	default:
		res.Combined.SpreadRateInDirection = res.First.SpreadRateInDirection
	}
	return res, nil
}

func arithmeticMean(r1, r2, cov float64) float64 {
	return cov*r1 + (1.0-cov)*r2
}

// harmonicMean returns zero when either component rate is zero with both
// models present, since fire cannot carry through the non-burning portion.
func harmonicMean(r1, r2, cov float64) float64 {
	if cov >= 1.0 {
		return r1
	}
	if cov <= 0.0 {
		return r2
	}
	if r1 < 1e-7 || r2 < 1e-7 {
		return 0
	}
	return 1.0 / (cov/r1 + (1.0-cov)/r2)
}

// combineWeighted blends the scalar outputs of two runs. Full coverage of
// either model reproduces that model's result exactly. Directions combine by
// circular mean so that azimuths straddling north average correctly. Per-bed
// intermediates (characteristic SAVR, packing, bulk density, heat sink, live
// moisture of extinction, wind adjustment, midflame wind) have no single
// combined value and stay zero; read them from the component results.
func combineWeighted(r1, r2 Result, cov float64, mean func(a, b, cov float64) float64) Result {
	if cov >= 1.0 {
		return r1
	}
	if cov <= 0.0 {
		return r2
	}

	var out Result
	out.SpreadRate = mean(r1.SpreadRate, r2.SpreadRate, cov)
	out.FirelineIntensity = mean(r1.FirelineIntensity, r2.FirelineIntensity, cov)
	out.FlameLength = FlameLength(out.FirelineIntensity)
	out.HeatPerUnitArea = mean(r1.HeatPerUnitArea, r2.HeatPerUnitArea, cov)
	out.ReactionIntensity = mean(r1.ReactionIntensity, r2.ReactionIntensity, cov)
	out.ResidenceTime = mean(r1.ResidenceTime, r2.ResidenceTime, cov)
	out.EffectiveWindSpeed = mean(r1.EffectiveWindSpeed, r2.EffectiveWindSpeed, cov)
	out.LengthToWidthRatio = mean(r1.LengthToWidthRatio, r2.LengthToWidthRatio, cov)
	out.Eccentricity = mean(r1.Eccentricity, r2.Eccentricity, cov)
	out.BackingSpreadRate = mean(r1.BackingSpreadRate, r2.BackingSpreadRate, cov)
	out.DirectionOfMaxSpread = circularMean(r1.DirectionOfMaxSpread, r2.DirectionOfMaxSpread, cov)
	out.WindSpeedLimitExceeded = r1.WindSpeedLimitExceeded || r2.WindSpeedLimitExceeded

	// Rebuild the ellipse axes from the combined heading and backing rates
	// so the axis identities hold for the blended ellipse too.
	out.EllipticalB = (out.SpreadRate + out.BackingSpreadRate) / 2.0
	if out.LengthToWidthRatio > 0 {
		out.EllipticalA = out.EllipticalB / out.LengthToWidthRatio
	}
	out.EllipticalC = out.EllipticalB - out.BackingSpreadRate
	out.FlankingSpreadRate = out.EllipticalA
	return out
}

// circularMean averages two azimuths by their unit vectors, weighted by
// coverage.
func circularMean(a1, a2, cov float64) float64 {
	r1 := a1 * math.Pi / 180.0
	r2 := a2 * math.Pi / 180.0
	x := cov*math.Cos(r1) + (1.0-cov)*math.Cos(r2)
	y := cov*math.Sin(r1) + (1.0-cov)*math.Sin(r2)
	if math.Abs(x) < 1e-12 && math.Abs(y) < 1e-12 {
		return a1
	}
	return normalizeAzimuth(math.Atan2(y, x) * 180.0 / math.Pi)
}
