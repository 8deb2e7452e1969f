// Package fuel provides the standard fire behavior fuel model catalog: the
// 13 original models (Anderson 1982) and the 40 standard models (Scott &
// Burgan 2005). Loadings are stored in base units (lb/ft²), depths in feet,
// moistures of extinction as fractions, heats of combustion in Btu/lb, and
// surface-area-to-volume ratios in ft²/ft³.
package fuel

import "github.com/firesci/firebehave/pkg/units"

// Model is a single fuel model record.
type Model struct {
	Number int
	Code   string
	Name   string

	// Fuel bed depth (ft)
	Depth float64

	// Dead fuel moisture of extinction (fraction)
	MoistureOfExtinctionDead float64

	// Heat of combustion (Btu/lb)
	HeatOfCombustionDead float64
	HeatOfCombustionLive float64

	// Loadings (lb/ft²)
	LoadOneHour        float64
	LoadTenHour        float64
	LoadHundredHour    float64
	LoadLiveHerbaceous float64
	LoadLiveWoody      float64

	// Surface-area-to-volume ratios (ft²/ft³). Ten-hour and hundred-hour
	// classes use the fixed values 109 and 30.
	SavrOneHour        float64
	SavrLiveHerbaceous float64
	SavrLiveWoody      float64

	// Dynamic models transfer cured herbaceous load to a dead size class.
	Dynamic bool

	// Reserved numbers belong to the standard sets and may not be
	// overwritten by custom records.
	Reserved bool
}

// SavrTenHour and SavrHundredHour are fixed for all standard models.
const (
	SavrTenHour     = 109.0
	SavrHundredHour = 30.0
)

// Catalog is an in-memory fuel model lookup table.
type Catalog struct {
	records map[int]Model
}

// NewCatalog returns a catalog populated with the standard fuel model sets.
func NewCatalog() *Catalog {
	c := &Catalog{records: make(map[int]Model)}
	c.populateStandardModels()
	return c
}

// record adds a standard model. Loadings are given in tons/acre and the
// moisture of extinction in percent, matching the published tables; both are
// converted to base units here.
func (c *Catalog) record(number int, code, name string, depth float64, mextDeadPct float64,
	load1h, load10h, load100h, loadHerb, loadWoody float64,
	savr1h, savrHerb, savrWoody float64, heatDead, heatLive float64, dynamic bool) {

	c.records[number] = Model{
		Number:                   number,
		Code:                     code,
		Name:                     name,
		Depth:                    depth,
		MoistureOfExtinctionDead: units.MoisturePercent.ToBase(mextDeadPct),
		HeatOfCombustionDead:     heatDead,
		HeatOfCombustionLive:     heatLive,
		LoadOneHour:              units.TonsPerAcre.ToBase(load1h),
		LoadTenHour:              units.TonsPerAcre.ToBase(load10h),
		LoadHundredHour:          units.TonsPerAcre.ToBase(load100h),
		LoadLiveHerbaceous:       units.TonsPerAcre.ToBase(loadHerb),
		LoadLiveWoody:            units.TonsPerAcre.ToBase(loadWoody),
		SavrOneHour:              savr1h,
		SavrLiveHerbaceous:       savrHerb,
		SavrLiveWoody:            savrWoody,
		Dynamic:                  dynamic,
		Reserved:                 true,
	}
}

// Model returns the record for a fuel model number.
func (c *Catalog) Model(number int) (Model, bool) {
	m, ok := c.records[number]
	return m, ok
}

// IsFuelModelDefined reports whether the number maps to a catalog record.
func (c *Catalog) IsFuelModelDefined(number int) bool {
	_, ok := c.records[number]
	return ok
}

// IsAllFuelLoadZero reports whether every size class of the model carries
// zero loading. Undefined models report true, since there is nothing to burn.
func (c *Catalog) IsAllFuelLoadZero(number int) bool {
	m, ok := c.records[number]
	if !ok {
		return true
	}
	return m.LoadOneHour == 0 && m.LoadTenHour == 0 && m.LoadHundredHour == 0 &&
		m.LoadLiveHerbaceous == 0 && m.LoadLiveWoody == 0
}

// FuelbedDepth returns the fuel bed depth in the requested length units.
func (c *Catalog) FuelbedDepth(number int, u units.Length) float64 {
	return u.FromBase(c.records[number].Depth)
}

// MoistureOfExtinctionDead returns the dead moisture of extinction in the
// requested moisture units.
func (c *Catalog) MoistureOfExtinctionDead(number int, u units.Moisture) float64 {
	return u.FromBase(c.records[number].MoistureOfExtinctionDead)
}

// HeatOfCombustionDead returns the dead heat of combustion.
func (c *Catalog) HeatOfCombustionDead(number int, u units.HeatOfCombustion) float64 {
	return u.FromBase(c.records[number].HeatOfCombustionDead)
}

// HeatOfCombustionLive returns the live heat of combustion.
func (c *Catalog) HeatOfCombustionLive(number int, u units.HeatOfCombustion) float64 {
	return u.FromBase(c.records[number].HeatOfCombustionLive)
}

// FuelLoadOneHour returns the one-hour loading.
func (c *Catalog) FuelLoadOneHour(number int, u units.Loading) float64 {
	return u.FromBase(c.records[number].LoadOneHour)
}

// FuelLoadTenHour returns the ten-hour loading.
func (c *Catalog) FuelLoadTenHour(number int, u units.Loading) float64 {
	return u.FromBase(c.records[number].LoadTenHour)
}

// FuelLoadHundredHour returns the hundred-hour loading.
func (c *Catalog) FuelLoadHundredHour(number int, u units.Loading) float64 {
	return u.FromBase(c.records[number].LoadHundredHour)
}

// FuelLoadLiveHerbaceous returns the live herbaceous loading.
func (c *Catalog) FuelLoadLiveHerbaceous(number int, u units.Loading) float64 {
	return u.FromBase(c.records[number].LoadLiveHerbaceous)
}

// FuelLoadLiveWoody returns the live woody loading.
func (c *Catalog) FuelLoadLiveWoody(number int, u units.Loading) float64 {
	return u.FromBase(c.records[number].LoadLiveWoody)
}

// SavrOneHour returns the one-hour SAVR.
func (c *Catalog) SavrOneHour(number int, u units.SAVR) float64 {
	return u.FromBase(c.records[number].SavrOneHour)
}

// IsDynamic reports whether the model uses dynamic herbaceous curing.
func (c *Catalog) IsDynamic(number int) bool {
	return c.records[number].Dynamic
}
