package surface

import (
	"fmt"
	"math"

	"github.com/firesci/firebehave/pkg/fuel"
)

// Default particle properties for the standard fuel models (Rothermel 1972).
const (
	particleDensity        = 32.0   // lb/ft³
	silicaTotalFraction    = 0.0555 // mineral content
	silicaEffectiveDefault = 0.010  // effective silica content
)

// FuelParticle is one size class of fuel with its physical properties and
// current moisture content, all in base units.
type FuelParticle struct {
	Load            float64 // lb/ft²
	Savr            float64 // ft²/ft³
	Heat            float64 // Btu/lb
	Density         float64 // lb/ft³
	SilicaTotal     float64 // fraction
	SilicaEffective float64 // fraction
	Moisture        float64 // fraction
}

// FuelBed is a complete description of the surface fuel complex ready for the
// spread calculation. The special-case generators build these directly; the
// standard models go through BedFromModel.
type FuelBed struct {
	Number   int
	Depth    float64 // ft
	MextDead float64 // fraction

	// LiveMext overrides the computed live moisture of extinction when
	// positive. The palmetto and aspen beds compute it; chaparral fixes it.
	LiveMext float64

	Dead []FuelParticle
	Live []FuelParticle
}

// CuredHerbaceousFraction returns the fraction of herbaceous load treated as
// cured, driven entirely by the live herbaceous moisture content. Fully cured
// below 30 percent moisture, fully green at 120 percent and above.
func CuredHerbaceousFraction(herbMoisture float64) float64 {
	if herbMoisture < 0.30 {
		return 1.0
	}
	if herbMoisture >= 1.20 {
		return 0.0
	}
	return (1.20 - herbMoisture) / 0.90
}

// BedFromModel builds a fuel bed for a catalog model under the given
// environment. Dynamic models transfer the cured portion of the herbaceous
// load into an additional dead size class carrying the herbaceous surface
// area and the one-hour moisture.
func BedFromModel(catalog *fuel.Catalog, number int, env Environment) (FuelBed, error) {
	m, ok := catalog.Model(number)
	if !ok {
		return FuelBed{}, fmt.Errorf("fuel model %d is not defined", number)
	}

	bed := FuelBed{
		Number:   m.Number,
		Depth:    m.Depth,
		MextDead: m.MoistureOfExtinctionDead,
	}

	herbLoad := m.LoadLiveHerbaceous
	if m.Dynamic && herbLoad > 0 {
		cured := CuredHerbaceousFraction(env.MoistureLiveHerbaceous)
		if cured > 0 {
			bed.Dead = append(bed.Dead, particle(herbLoad*cured, m.SavrLiveHerbaceous, m.HeatOfCombustionDead, env.MoistureOneHour))
		}
		herbLoad *= 1.0 - cured
	}

	if m.LoadOneHour > 0 {
		bed.Dead = append(bed.Dead, particle(m.LoadOneHour, m.SavrOneHour, m.HeatOfCombustionDead, env.MoistureOneHour))
	}
	if m.LoadTenHour > 0 {
		bed.Dead = append(bed.Dead, particle(m.LoadTenHour, fuel.SavrTenHour, m.HeatOfCombustionDead, env.MoistureTenHour))
	}
	if m.LoadHundredHour > 0 {
		bed.Dead = append(bed.Dead, particle(m.LoadHundredHour, fuel.SavrHundredHour, m.HeatOfCombustionDead, env.MoistureHundredHour))
	}
	if herbLoad > 0 {
		bed.Live = append(bed.Live, particle(herbLoad, m.SavrLiveHerbaceous, m.HeatOfCombustionLive, env.MoistureLiveHerbaceous))
	}
	if m.LoadLiveWoody > 0 {
		bed.Live = append(bed.Live, particle(m.LoadLiveWoody, m.SavrLiveWoody, m.HeatOfCombustionLive, env.MoistureLiveWoody))
	}

	return bed, nil
}

func particle(load, savr, heat, moisture float64) FuelParticle {
	return FuelParticle{
		Load:            load,
		Savr:            savr,
		Heat:            heat,
		Density:         particleDensity,
		SilicaTotal:     silicaTotalFraction,
		SilicaEffective: silicaEffectiveDefault,
		Moisture:        moisture,
	}
}

// totalLoad sums the loading of every size class.
func (b FuelBed) totalLoad() float64 {
	var sum float64
	for _, p := range b.Dead {
		sum += p.Load
	}
	for _, p := range b.Live {
		sum += p.Load
	}
	return sum
}

// intermediates holds the fuel bed quantities the spread equations consume.
type intermediates struct {
	sigma             float64 // characteristic SAVR, ft²/ft³
	packingRatio      float64
	relativePacking   float64 // β/βop
	bulkDensity       float64 // lb/ft³
	reactionIntensity float64 // Btu/ft²/min
	propagatingFlux   float64
	heatSink          float64 // Btu/ft³
	residenceTime     float64 // min
	noWindNoSlopeRate float64 // ft/min
	mextLive          float64
	moistureDead      float64 // surface-area weighted dead moisture
}

// savrSizeClass maps a surface-area-to-volume ratio to its size class bin.
func savrSizeClass(savr float64) int {
	switch {
	case savr >= 1200.0:
		return 0
	case savr >= 192.0:
		return 1
	case savr >= 96.0:
		return 2
	case savr >= 48.0:
		return 3
	case savr >= 16.0:
		return 4
	default:
		return 5
	}
}

type lifeWeights struct {
	areaWeight float64   // fraction of total surface area in this life category
	f          []float64 // particle surface area weights within the category
	savr       float64   // weighted characteristic SAVR
	moisture   float64   // weighted moisture content
	netLoad    float64   // size-class weighted mineral-free loading
	heat       float64   // weighted heat of combustion
	etaS       float64   // mineral damping coefficient
	qig        float64   // weighted heat of preignition term
}

// weigh applies Albini's surface-area weighting to one life category.
func weigh(particles []FuelParticle) lifeWeights {
	w := lifeWeights{f: make([]float64, len(particles))}
	var totalArea float64
	for i, p := range particles {
		w.f[i] = p.Load * p.Savr / p.Density
		totalArea += w.f[i]
	}
	if totalArea <= 0 {
		return w
	}
	w.areaWeight = totalArea

	var se float64
	for i := range particles {
		w.f[i] /= totalArea
	}
	for i, p := range particles {
		w.savr += w.f[i] * p.Savr
		w.moisture += w.f[i] * p.Moisture
		w.heat += w.f[i] * p.Heat
		se += w.f[i] * p.SilicaEffective
		epsilon := math.Exp(-138.0 / p.Savr)
		w.qig += w.f[i] * epsilon * (250.0 + 1116.0*p.Moisture)
	}

	// Particles in the same size class share a single loading weight.
	var g [6]float64
	for i, p := range particles {
		g[savrSizeClass(p.Savr)] += w.f[i]
	}
	for _, p := range particles {
		w.netLoad += g[savrSizeClass(p.Savr)] * p.Load * (1.0 - p.SilicaTotal)
	}

	w.etaS = 0.174 * math.Pow(se, -0.19)
	if w.etaS > 1.0 || math.IsNaN(w.etaS) || math.IsInf(w.etaS, 0) {
		w.etaS = 1.0
	}
	return w
}

// moistureDamping evaluates the cubic damping polynomial on the ratio of
// moisture content to moisture of extinction.
func moistureDamping(moisture, mext float64) float64 {
	if mext <= 0 {
		return 0
	}
	r := moisture / mext
	if r >= 1.0 {
		return 0
	}
	eta := 1.0 - 2.59*r + 5.11*r*r - 3.52*r*r*r
	if eta < 0 {
		return 0
	}
	return eta
}

// liveMoistureOfExtinction computes the live extinction moisture from the
// drying power of the dead fuel (Albini 1976). Without live fuel or with a
// bed-level override the dead value or the override is used directly.
func (b FuelBed) liveMoistureOfExtinction() float64 {
	if b.LiveMext > 0 {
		return b.LiveMext
	}
	var wDead, wDeadMoist, wLive float64
	for _, p := range b.Dead {
		fine := p.Load * math.Exp(-138.0/p.Savr)
		wDead += fine
		wDeadMoist += fine * p.Moisture
	}
	for _, p := range b.Live {
		wLive += p.Load * math.Exp(-500.0/p.Savr)
	}
	if wLive <= 0 || wDead <= 0 {
		return b.MextDead
	}
	fineDeadMoisture := wDeadMoist / wDead
	ratio := wDead / wLive
	mext := 2.9*ratio*(1.0-fineDeadMoisture/b.MextDead) - 0.226
	if mext < b.MextDead {
		mext = b.MextDead
	}
	return mext
}

// compute evaluates the full set of Rothermel fuel bed intermediates.
func (b FuelBed) compute() intermediates {
	var im intermediates
	totalLoad := b.totalLoad()
	if totalLoad <= 0 || b.Depth <= 0 {
		return im
	}

	dead := weigh(b.Dead)
	live := weigh(b.Live)
	totalArea := dead.areaWeight + live.areaWeight
	if totalArea <= 0 {
		return im
	}
	fDead := dead.areaWeight / totalArea
	fLive := live.areaWeight / totalArea

	im.sigma = fDead*dead.savr + fLive*live.savr
	im.moistureDead = dead.moisture
	im.bulkDensity = totalLoad / b.Depth

	var meanDensity float64
	for _, p := range b.Dead {
		meanDensity += p.Load / p.Density
	}
	for _, p := range b.Live {
		meanDensity += p.Load / p.Density
	}
	im.packingRatio = meanDensity / b.Depth

	optimumPacking := 3.348 * math.Pow(im.sigma, -0.8189)
	im.relativePacking = im.packingRatio / optimumPacking

	sigma15 := math.Pow(im.sigma, 1.5)
	gammaMax := sigma15 / (495.0 + 0.0594*sigma15)
	a := 133.0 * math.Pow(im.sigma, -0.7913)
	gamma := gammaMax * math.Pow(im.relativePacking, a) * math.Exp(a*(1.0-im.relativePacking))

	im.mextLive = b.liveMoistureOfExtinction()
	etaMDead := moistureDamping(dead.moisture, b.MextDead)
	etaMLive := moistureDamping(live.moisture, im.mextLive)

	im.reactionIntensity = gamma * (dead.netLoad*dead.heat*etaMDead*dead.etaS +
		live.netLoad*live.heat*etaMLive*live.etaS)

	im.propagatingFlux = math.Exp((0.792+0.681*math.Sqrt(im.sigma))*(im.packingRatio+0.1)) /
		(192.0 + 0.2595*im.sigma)

	im.heatSink = im.bulkDensity * (fDead*dead.qig + fLive*live.qig)

	if im.heatSink > 0 {
		im.noWindNoSlopeRate = im.reactionIntensity * im.propagatingFlux / im.heatSink
	}
	if im.sigma > 0 {
		im.residenceTime = 384.0 / im.sigma
	}
	return im
}
