// Package surface implements the Rothermel surface fire spread model: fuel
// bed intermediates, reaction intensity, wind and slope coefficients,
// elliptical spread geometry, the special-case fuel parameter generators
// (palmetto-gallberry, western aspen, chaparral), and the two-fuel-model
// spread combination. All calculations run in base units; see pkg/units.
package surface

import "math"

// WindHeightMode identifies the reference height of the input wind speed.
type WindHeightMode int

const (
	// DirectMidflame means the input wind speed is already at midflame height.
	DirectMidflame WindHeightMode = iota
	// TwentyFoot means the wind speed was observed 20 ft above the vegetation.
	TwentyFoot
	// TenMeter means the wind speed was observed 10 m above the vegetation.
	TenMeter
)

// Orientation selects whether wind direction and spread azimuths are given
// relative to upslope or relative to compass north.
type Orientation int

const (
	RelativeToUpslope Orientation = iota
	RelativeToNorth
)

// Environment holds the scenario inputs shared by every spread calculation.
// All fields are in base units: moistures as fractions, wind speed in ft/min
// at the declared reference height, angles in degrees, canopy height in feet.
type Environment struct {
	MoistureOneHour        float64
	MoistureTenHour        float64
	MoistureHundredHour    float64
	MoistureLiveHerbaceous float64
	MoistureLiveWoody      float64

	WindSpeed      float64
	WindHeightMode WindHeightMode
	WindDirection  float64
	Orientation    Orientation

	Slope  float64 // degrees
	Aspect float64 // degrees, direction the slope faces

	CanopyCover  float64 // fraction
	CanopyHeight float64 // ft
	CrownRatio   float64 // fraction

	// WindAdjustmentFactor overrides the computed adjustment factor when
	// positive. Zero or negative requests the computed value.
	WindAdjustmentFactor float64
}

// Normalized returns a copy with the wind direction and aspect wrapped into
// [0, 360).
func (e Environment) Normalized() Environment {
	e.WindDirection = normalizeAzimuth(e.WindDirection)
	e.Aspect = normalizeAzimuth(e.Aspect)
	return e
}

func normalizeAzimuth(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// upslopeDirection returns the compass azimuth pointing upslope.
func (e Environment) upslopeDirection() float64 {
	return normalizeAzimuth(e.Aspect + 180.0)
}

// windDirectionRelativeToUpslope resolves the wind direction into the
// upslope-relative frame used by the spread model.
func (e Environment) windDirectionRelativeToUpslope() float64 {
	if e.Orientation == RelativeToNorth {
		return normalizeAzimuth(e.WindDirection - e.upslopeDirection())
	}
	return normalizeAzimuth(e.WindDirection)
}
