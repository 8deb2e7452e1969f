package surface

import "math"

// ChaparralFuelType selects between the two southern California chaparral
// communities of Rothermel & Philpot (1973).
type ChaparralFuelType int

const (
	Chamise ChaparralFuelType = iota
	MixedBrush
)

// Chaparral describes a chaparral stand. Total load and the dead fraction
// follow from stand age; age itself can be estimated from fuel bed depth.
type Chaparral struct {
	FuelType     ChaparralFuelType
	Age          float64 // years
	Depth        float64 // ft
	DeadFraction float64 // fraction of total load that is dead

	// TotalLoad overrides the age-derived total fuel load when positive,
	// in lb/ft².
	TotalLoad float64

	// DayOfYear drives the seasonal live fuel curves. Day 121 is May 1,
	// the start of the growth season.
	DayOfYear int
}

// ChaparralAgeFromDepth estimates stand age from fuel bed depth.
func ChaparralAgeFromDepth(fuelType ChaparralFuelType, depth float64) float64 {
	if fuelType == Chamise {
		return math.Exp(3.912023 * math.Sqrt(depth/7.5))
	}
	return math.Exp(3.912023 * math.Sqrt(depth/10.0))
}

// ChaparralTotalLoad returns the total fuel load in lb/ft² for a stand age.
func ChaparralTotalLoad(fuelType ChaparralFuelType, age float64) float64 {
	var tonsPerAcre float64
	if fuelType == Chamise {
		tonsPerAcre = age / (1.4459 + 0.0315*age)
	} else {
		tonsPerAcre = age / (0.4849 + 0.0170*age)
	}
	return tonsPerAcre * 2000.0 / 43560.0
}

// ChaparralDeadFraction returns the dead fraction of the total load for a
// stand age, clamped to [0, 1].
func ChaparralDeadFraction(fuelType ChaparralFuelType, age float64) float64 {
	var f float64
	if fuelType == Chamise {
		f = 0.0694 * math.Exp(0.0402*age)
	} else {
		f = 0.1094 * math.Exp(0.0385*age)
	}
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// daysSinceMayFirst counts days from the start of the growth season, wrapping
// through the new year.
func daysSinceMayFirst(dayOfYear int) float64 {
	days := dayOfYear - 121
	if days < 0 {
		days += 365
	}
	return float64(days)
}

// ChaparralLiveLeafMoisture returns the seasonal live leaf moisture fraction.
func ChaparralLiveLeafMoisture(dayOfYear int) float64 {
	d := daysSinceMayFirst(dayOfYear)
	return 1.0 / (0.726 + 0.00877*d)
}

// ChaparralLiveStemMoisture returns the seasonal live stem moisture fraction.
func ChaparralLiveStemMoisture(dayOfYear int) float64 {
	d := daysSinceMayFirst(dayOfYear)
	return 1.0 / (1.454 + 0.00650*d)
}

// Seasonal heat of combustion curves for live chaparral fuel (Btu/lb).
func chaparralLiveLeafHeat(dayOfYear int) float64 {
	d := daysSinceMayFirst(dayOfYear)
	return 9613.0 - 7.42*d + 0.0160*d*d
}

func chaparralLiveStemHeat(dayOfYear int) float64 {
	d := daysSinceMayFirst(dayOfYear)
	return 9509.0 - 10.74*d + 0.0359*d*d
}

// Load partitions across the dead and live size classes. The dead split is
// from Rothermel & Philpot; the live split allots a quarter of the live load
// to leaves and partitions the stems by diameter class.
var (
	chaparralDeadSplit = [4]float64{0.347, 0.364, 0.207, 0.082}
	chaparralLiveSplit = [5]float64{0.25, 0.30, 0.25, 0.12, 0.08}
	chaparralDeadSavr  = [4]float64{640.0, 127.0, 61.0, 27.0}
	chaparralLiveSavr  = [5]float64{2200.0, 640.0, 127.0, 61.0, 27.0}
)

// Bed assembles the chaparral fuel bed under the environment's moisture
// scenario. A zero Age is derived from Depth, a zero DeadFraction is derived
// from age, and a zero TotalLoad is derived from age. Live moisture inputs in
// the environment are ignored in favor of the seasonal curves when DayOfYear
// is set.
func (ch Chaparral) Bed(env Environment) FuelBed {
	age := ch.Age
	if age <= 0 {
		age = ChaparralAgeFromDepth(ch.FuelType, ch.Depth)
	}
	depth := ch.Depth
	if depth <= 0 {
		// Invert the age estimate for callers that supplied age only.
		base := 7.5
		if ch.FuelType == MixedBrush {
			base = 10.0
		}
		lr := math.Log(age) / 3.912023
		depth = base * lr * lr
	}
	deadFraction := ch.DeadFraction
	if deadFraction <= 0 {
		deadFraction = ChaparralDeadFraction(ch.FuelType, age)
	}

	totalLoad := ch.TotalLoad
	if totalLoad <= 0 {
		totalLoad = ChaparralTotalLoad(ch.FuelType, age)
	}
	deadLoad := totalLoad * deadFraction
	liveLoad := totalLoad - deadLoad

	leafMoisture := env.MoistureLiveHerbaceous
	stemMoisture := env.MoistureLiveWoody
	leafHeat := 10500.0
	stemHeat := 9500.0
	if ch.DayOfYear > 0 {
		leafMoisture = ChaparralLiveLeafMoisture(ch.DayOfYear)
		stemMoisture = ChaparralLiveStemMoisture(ch.DayOfYear)
		leafHeat = chaparralLiveLeafHeat(ch.DayOfYear)
		stemHeat = chaparralLiveStemHeat(ch.DayOfYear)
	}

	const (
		deadDensity     = 46.0
		leafDensity     = 32.0
		stemDensity     = 46.0
		silicaTotal     = 0.055
		silicaEffective = 0.015
	)
	mk := func(load, savr, heat, density, moisture float64) FuelParticle {
		return FuelParticle{
			Load:            load,
			Savr:            savr,
			Heat:            heat,
			Density:         density,
			SilicaTotal:     silicaTotal,
			SilicaEffective: silicaEffective,
			Moisture:        moisture,
		}
	}

	deadMoisture := [4]float64{env.MoistureOneHour, env.MoistureTenHour, env.MoistureHundredHour, env.MoistureHundredHour}
	var dead []FuelParticle
	for i, split := range chaparralDeadSplit {
		dead = append(dead, mk(deadLoad*split, chaparralDeadSavr[i], 8000.0, deadDensity, deadMoisture[i]))
	}

	live := []FuelParticle{
		mk(liveLoad*chaparralLiveSplit[0], chaparralLiveSavr[0], leafHeat, leafDensity, leafMoisture),
	}
	for i := 1; i < len(chaparralLiveSplit); i++ {
		live = append(live, mk(liveLoad*chaparralLiveSplit[i], chaparralLiveSavr[i], stemHeat, stemDensity, stemMoisture))
	}

	liveMext := 0.65
	if ch.FuelType == MixedBrush {
		liveMext = 0.74
	}

	return FuelBed{
		Depth:    depth,
		MextDead: 0.30,
		LiveMext: liveMext,
		Dead:     dead,
		Live:     live,
	}
}
