package surface

import "math"

// PalmettoGallberry describes a southeastern palmetto-gallberry understory
// stand (Hough & Albini 1978). Loads are derived from stand age, overstory
// basal area, understory height, and coverage.
type PalmettoGallberry struct {
	AgeOfRough         float64 // years since last fire
	HeightOfUnderstory float64 // ft
	PalmettoCoverage   float64 // fraction
	OverstoryBasalArea float64 // ft²/ac
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// DeadOneHourLoad returns the dead fine fuel load in lb/ft².
func (pg PalmettoGallberry) DeadOneHourLoad() float64 {
	ht := pg.HeightOfUnderstory
	return clampNonNegative(-0.00121 + 0.00379*math.Log(pg.AgeOfRough) + 0.00118*ht*ht)
}

// DeadTenHourLoad returns the dead ten-hour load in lb/ft².
func (pg PalmettoGallberry) DeadTenHourLoad() float64 {
	coverPct := pg.PalmettoCoverage * 100.0
	return clampNonNegative(-0.00775 + 0.00021*coverPct + 0.00007*pg.AgeOfRough*pg.AgeOfRough)
}

// DeadFoliageLoad returns the dead foliage load in lb/ft².
func (pg PalmettoGallberry) DeadFoliageLoad() float64 {
	coverPct := pg.PalmettoCoverage * 100.0
	return 0.00221 * math.Pow(pg.AgeOfRough, 0.51263) * math.Exp(0.02482*coverPct)
}

// LitterLoad returns the pine litter load in lb/ft², driven by the overstory.
func (pg PalmettoGallberry) LitterLoad() float64 {
	return (0.03632 + 0.0005336*pg.OverstoryBasalArea) * (1.0 - math.Pow(0.25, pg.AgeOfRough))
}

// LiveOneHourLoad returns the live fine fuel load in lb/ft².
func (pg PalmettoGallberry) LiveOneHourLoad() float64 {
	ht := pg.HeightOfUnderstory
	return clampNonNegative(0.00546 + 0.00092*pg.AgeOfRough + 0.00212*ht*ht)
}

// LiveTenHourLoad returns the live ten-hour load in lb/ft².
func (pg PalmettoGallberry) LiveTenHourLoad() float64 {
	ht := pg.HeightOfUnderstory
	return clampNonNegative(-0.02128 + 0.00014*pg.AgeOfRough*pg.AgeOfRough + 0.00314*ht*ht)
}

// LiveFoliageLoad returns the live foliage load in lb/ft².
func (pg PalmettoGallberry) LiveFoliageLoad() float64 {
	coverPct := pg.PalmettoCoverage * 100.0
	ht := pg.HeightOfUnderstory
	return clampNonNegative(-0.0036 + 0.00253*pg.AgeOfRough + 0.00049*coverPct + 0.00282*ht*ht)
}

// FuelbedDepth returns the effective fuel bed depth, two thirds of the
// understory height.
func (pg PalmettoGallberry) FuelbedDepth() float64 {
	return 2.0 * pg.HeightOfUnderstory / 3.0
}

// Bed assembles the palmetto-gallberry fuel bed under the environment's
// moisture scenario. Dead stem classes take the one- and ten-hour moistures,
// dead foliage the one-hour, and litter the hundred-hour. Live stems take the
// woody moisture and live foliage the herbaceous moisture.
func (pg PalmettoGallberry) Bed(env Environment) FuelBed {
	const (
		heat            = 8300.0
		density         = 30.0
		silicaTotal     = 0.030
		silicaEffective = 0.015
	)
	mk := func(load, savr, moisture float64) FuelParticle {
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
	return FuelBed{
		Depth:    pg.FuelbedDepth(),
		MextDead: 0.40,
		Dead: []FuelParticle{
			mk(pg.DeadOneHourLoad(), 350.0, env.MoistureOneHour),
			mk(pg.DeadTenHourLoad(), 140.0, env.MoistureTenHour),
			mk(pg.DeadFoliageLoad(), 2000.0, env.MoistureOneHour),
			mk(pg.LitterLoad(), 2000.0, env.MoistureHundredHour),
		},
		Live: []FuelParticle{
			mk(pg.LiveOneHourLoad(), 350.0, env.MoistureLiveWoody),
			mk(pg.LiveTenHourLoad(), 140.0, env.MoistureLiveWoody),
			mk(pg.LiveFoliageLoad(), 2000.0, env.MoistureLiveHerbaceous),
		},
	}
}
