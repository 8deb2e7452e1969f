// Package crown implements the Rothermel (1991) crown fire model layered on
// the surface fire outputs: crown spread rate from a standardized timber
// litter run, crown fireline intensity and flame length, Van Wagner's
// transition and active crowning criteria, and Byram's power of the fire and
// power of the wind.
package crown

import (
	"errors"
	"math"

	"github.com/firesci/firebehave/pkg/fuel"
	"github.com/firesci/firebehave/pkg/surface"
	"github.com/firesci/firebehave/pkg/units"
)

// FireType classifies the expected fire given the transition and active
// crowning ratios.
type FireType int

const (
	// Surface fire only; the canopy does not ignite.
	Surface FireType = iota
	// Torching of individual or small groups of trees.
	Torching
	// ConditionalCrown means an active crown fire could sustain itself if
	// it arrived, but the surface fire cannot initiate it.
	ConditionalCrown
	// Crowning is an active, wind-driven crown fire.
	Crowning
)

func (t FireType) String() string {
	switch t {
	case Torching:
		return "torching"
	case ConditionalCrown:
		return "conditional crown"
	case Crowning:
		return "crowning"
	default:
		return "surface"
	}
}

// Inputs holds the canopy description for a crown fire run, in base units.
type Inputs struct {
	CanopyBaseHeight  float64 // ft
	CanopyBulkDensity float64 // lb/ft³
	FoliarMoisture    float64 // fraction
}

// Result carries the crown fire outputs in base units.
type Result struct {
	SpreadRate        float64 // ft/min
	FirelineIntensity float64 // Btu/ft/s
	FlameLength       float64 // ft
	FuelLoad          float64 // lb/ft², canopy fuel consumed
	HeatPerUnitArea   float64 // Btu/ft², surface plus canopy

	CriticalSurfaceIntensity   float64 // Btu/ft/s
	CriticalSurfaceFlameLength float64 // ft
	CriticalSpreadRate         float64 // ft/min
	TransitionRatio            float64
	ActiveRatio                float64
	FireType                   FireType

	PowerOfFire    float64 // ft·lb/s/ft²
	PowerOfWind    float64 // ft·lb/s/ft²
	PowerRatio     float64
	WindDriven     bool
	PlumeDominated bool

	WindSpeedAtTwentyFeet float64 // ft/min
}

// crownRatioMultiplier scales the standardized surface spread rate up to the
// crown spread rate (Rothermel 1991, eq 6).
const crownRatioMultiplier = 3.34

// canopyHeatOfCombustion is the heat content applied to consumed canopy
// fuel, Btu/lb.
const canopyHeatOfCombustion = 8000.0

// ErrWindSpeedHeight is returned when the wind speed cannot be referenced to
// 20 ft, which the crown model requires.
var ErrWindSpeedHeight = errors.New("crown fire requires a wind speed at 20 ft or 10 m reference height")

// Run computes crown fire behavior on top of a completed surface run. The
// crown spread rate comes from a standardized scenario: timber litter and
// understory fuel, flat terrain, wind blowing upslope, and a fixed 0.4 wind
// adjustment factor applied to the 20 ft wind.
func Run(catalog *fuel.Catalog, env surface.Environment, surfaceResult surface.Result, in Inputs) (Result, error) {
	wind20 := surface.WindSpeedAtTwentyFeet(env)
	if wind20 < 0 {
		return Result{}, ErrWindSpeedHeight
	}

	crownEnv := env
	crownEnv.Slope = 0
	crownEnv.Aspect = 0
	crownEnv.WindDirection = 0
	crownEnv.Orientation = surface.RelativeToUpslope
	crownEnv.WindHeightMode = surface.DirectMidflame
	crownEnv.WindSpeed = 0.4 * wind20

	const timberLitterUnderstory = 10
	bed, err := surface.BedFromModel(catalog, timberLitterUnderstory, crownEnv)
	if err != nil {
		return Result{}, err
	}
	standardized := surface.Run(bed, crownEnv)

	res := Result{WindSpeedAtTwentyFeet: wind20}
	res.SpreadRate = crownRatioMultiplier * standardized.SpreadRate

	res.FuelLoad = in.CanopyBulkDensity * (env.CanopyHeight - in.CanopyBaseHeight)
	if res.FuelLoad < 0 {
		res.FuelLoad = 0
	}
	canopyHPUA := res.FuelLoad * canopyHeatOfCombustion
	res.HeatPerUnitArea = surfaceResult.HeatPerUnitArea + canopyHPUA

	res.FirelineIntensity = (res.SpreadRate / 60.0) * res.HeatPerUnitArea
	res.FlameLength = crownFlameLength(res.FirelineIntensity)

	res.CriticalSurfaceIntensity = criticalSurfaceIntensity(in.CanopyBaseHeight, in.FoliarMoisture)
	res.CriticalSurfaceFlameLength = surface.FlameLength(res.CriticalSurfaceIntensity)
	res.CriticalSpreadRate = criticalSpreadRate(in.CanopyBulkDensity)

	if res.CriticalSurfaceIntensity > 1e-7 {
		res.TransitionRatio = surfaceResult.FirelineIntensity / res.CriticalSurfaceIntensity
	}
	if res.CriticalSpreadRate > 1e-7 {
		res.ActiveRatio = res.SpreadRate / res.CriticalSpreadRate
	}
	res.FireType = classify(res.TransitionRatio, res.ActiveRatio)

	res.PowerOfFire = res.FirelineIntensity / 129.0
	res.PowerOfWind = powerOfWind(wind20, res.SpreadRate)
	if res.PowerOfWind > 1e-7 {
		res.PowerRatio = res.PowerOfFire / res.PowerOfWind
	}
	res.PlumeDominated = res.PowerRatio > 1.0
	res.WindDriven = !res.PlumeDominated

	return res, nil
}

// crownFlameLength converts crown fireline intensity to flame length
// (Thomas 1963).
func crownFlameLength(firelineIntensity float64) float64 {
	if firelineIntensity < 1e-7 {
		return 0
	}
	return 0.2 * math.Pow(firelineIntensity, 2.0/3.0)
}

// criticalSurfaceIntensity is the surface fireline intensity needed to
// ignite the canopy (Van Wagner 1977). The foliar moisture is floored at
// 30 percent and the canopy base height at 0.1 m to keep the criterion from
// collapsing for sparse canopies. Van Wagner published 460 in the foliar
// ignition energy term; 450 is retained here for continuity with BehavePlus.
func criticalSurfaceIntensity(canopyBaseHeight, foliarMoisture float64) float64 {
	fmcPct := foliarMoisture * 100.0
	if fmcPct < 30.0 {
		fmcPct = 30.0
	}
	cbhMeters := units.Meters.FromBase(canopyBaseHeight)
	if cbhMeters < 0.1 {
		cbhMeters = 0.1
	}
	kwPerMeter := math.Pow(0.01*cbhMeters*(450.0+25.9*fmcPct), 1.5)
	return kwPerMeter * units.KilowattsPerMeterToBtusPerFootPerSecond
}

// criticalSpreadRate is the crown spread rate needed to sustain an active
// crown fire (Van Wagner 1977), 3.0 kg/m² of canopy flow per minute divided
// by the bulk density.
func criticalSpreadRate(canopyBulkDensity float64) float64 {
	if canopyBulkDensity < 1e-7 {
		return 0
	}
	cbdMetric := units.KilogramsPerCubicMeter.FromBase(canopyBulkDensity)
	return (3.0 / cbdMetric) * 3.28084
}

func classify(transitionRatio, activeRatio float64) FireType {
	switch {
	case transitionRatio < 1.0 && activeRatio < 1.0:
		return Surface
	case transitionRatio >= 1.0 && activeRatio < 1.0:
		return Torching
	case transitionRatio < 1.0 && activeRatio >= 1.0:
		return ConditionalCrown
	default:
		return Crowning
	}
}

// powerOfWind follows Byram (1959) with speeds in ft/s. The wind speed in
// excess of the fire's own spread rate does the work; a fire outrunning the
// wind feels no push.
func powerOfWind(wind20, crownSpreadRate float64) float64 {
	du := (wind20 - crownSpreadRate) / 60.0
	if du < 1e-7 {
		return 0
	}
	return 0.00106 * du * du * du
}
