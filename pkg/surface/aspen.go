package surface

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/firesci/firebehave/pkg/units"
)

// AspenFuelType enumerates the western aspen community types of Brown &
// Simmerman (1986).
type AspenFuelType int

const (
	AspenShrub AspenFuelType = iota
	AspenTallForb
	AspenLowForb
	MixedShrub
	MixedForb
	numAspenTypes
)

// WesternAspen describes an aspen stand. Loads and surface-area-to-volume
// ratios interpolate between the published curing levels.
type WesternAspen struct {
	FuelType    AspenFuelType
	CuringLevel float64 // fraction
}

// Published aspen tables, indexed by fuel type then curing level. Loads are
// in tons/acre at curing levels of 0, 30, 50, 70, 90 and 100 percent.
var (
	aspenCuringLevels = []float64{0.0, 0.3, 0.5, 0.7, 0.9, 1.0}

	aspenLoadDeadOneHour = [numAspenTypes][]float64{
		{0.800, 0.893, 0.956, 1.035, 1.119, 1.161},
		{0.738, 0.930, 1.056, 1.183, 1.309, 1.372},
		{0.601, 0.645, 0.671, 0.699, 0.730, 0.748},
		{0.880, 0.906, 1.037, 1.167, 1.300, 1.366},
		{0.754, 0.797, 0.825, 0.854, 0.884, 0.899},
	}

	aspenLoadDeadTenHour = [numAspenTypes]float64{0.975, 0.475, 1.035, 1.340, 1.115}

	aspenLoadLiveHerbaceous = [numAspenTypes][]float64{
		{0.335, 0.234, 0.167, 0.100, 0.033, 0.000},
		{0.665, 0.465, 0.332, 0.199, 0.067, 0.000},
		{0.150, 0.105, 0.075, 0.045, 0.015, 0.000},
		{0.100, 0.070, 0.050, 0.030, 0.010, 0.000},
		{0.150, 0.105, 0.075, 0.045, 0.015, 0.000},
	}

	aspenLoadLiveWoody = [numAspenTypes][]float64{
		{0.403, 0.403, 0.333, 0.283, 0.277, 0.274},
		{0.000, 0.000, 0.000, 0.000, 0.000, 0.000},
		{0.000, 0.000, 0.000, 0.000, 0.000, 0.000},
		{0.455, 0.455, 0.364, 0.290, 0.261, 0.233},
		{0.000, 0.000, 0.000, 0.000, 0.000, 0.000},
	}

	aspenSavrDeadOneHour = [numAspenTypes][]float64{
		{1440.0, 1620.0, 1910.0, 2090.0, 2220.0, 2250.0},
		{1480.0, 1890.0, 2050.0, 2160.0, 2240.0, 2280.0},
		{1400.0, 1540.0, 1620.0, 1690.0, 1750.0, 1780.0},
		{1350.0, 1420.0, 1710.0, 1910.0, 2060.0, 2160.0},
		{1420.0, 1540.0, 1610.0, 1670.0, 1720.0, 1740.0},
	}

	aspenSavrLiveWoody = [numAspenTypes][]float64{
		{2440.0, 2440.0, 2310.0, 2090.0, 1670.0, 1670.0},
		{2440.0, 2440.0, 2440.0, 2440.0, 2440.0, 2440.0},
		{2440.0, 2440.0, 2440.0, 2440.0, 2440.0, 2440.0},
		{2530.0, 2530.0, 2410.0, 2210.0, 1800.0, 1800.0},
		{2440.0, 2440.0, 2440.0, 2440.0, 2440.0, 2440.0},
	}

	aspenDepth = [numAspenTypes]float64{0.65, 0.30, 0.18, 0.50, 0.18}
)

const (
	aspenSavrDeadTenHour    = 109.0
	aspenSavrLiveHerbaceous = 2800.0
)

// interpolateCuring fits a piecewise linear curve through the table row and
// evaluates it at the curing level, clamped to the table's domain.
func interpolateCuring(ys []float64, curing float64) float64 {
	if curing < 0 {
		curing = 0
	}
	if curing > 1 {
		curing = 1
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(aspenCuringLevels, ys); err != nil {
		return ys[0]
	}
	return pl.Predict(curing)
}

// Bed assembles the western aspen fuel bed under the environment's moisture
// scenario.
func (wa WesternAspen) Bed(env Environment) (FuelBed, error) {
	if wa.FuelType < 0 || wa.FuelType >= numAspenTypes {
		return FuelBed{}, fmt.Errorf("western aspen fuel type %d is not defined", wa.FuelType)
	}

	t := wa.FuelType
	cure := wa.CuringLevel
	mk := func(loadTonsPerAcre, savr, moisture float64) FuelParticle {
		return particle(units.TonsPerAcre.ToBase(loadTonsPerAcre), savr, 8000.0, moisture)
	}

	bed := FuelBed{
		Depth:    aspenDepth[t],
		MextDead: 0.25,
		Dead: []FuelParticle{
			mk(interpolateCuring(aspenLoadDeadOneHour[t], cure), interpolateCuring(aspenSavrDeadOneHour[t], cure), env.MoistureOneHour),
			mk(aspenLoadDeadTenHour[t], aspenSavrDeadTenHour, env.MoistureTenHour),
		},
		Live: []FuelParticle{
			mk(interpolateCuring(aspenLoadLiveHerbaceous[t], cure), aspenSavrLiveHerbaceous, env.MoistureLiveHerbaceous),
			mk(interpolateCuring(aspenLoadLiveWoody[t], cure), interpolateCuring(aspenSavrLiveWoody[t], cure), env.MoistureLiveWoody),
		},
	}
	return bed, nil
}

// AspenMortality estimates the probability of aspen stem kill from flame
// length and stem diameter (Brown & DeByle 1987). Fire severity below the
// moderate threshold uses the low-severity curve.
func AspenMortality(lowSeverity bool, flameLength, dbh float64) float64 {
	charHeight := flameLength / 1.8
	var p float64
	if lowSeverity {
		p = 1.0 / (1.0 + math.Exp(-4.407+0.638*dbh-2.134*charHeight))
	} else {
		p = 1.0 / (1.0 + math.Exp(-2.157+0.218*dbh-3.600*charHeight))
	}
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
