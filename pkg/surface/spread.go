package surface

import (
	"math"

	"github.com/firesci/firebehave/pkg/units"
)

// Result carries every output of one surface fire run, all in base units.
// Results are value types; callers convert with pkg/units as needed.
type Result struct {
	// Heading fire behavior.
	SpreadRate             float64 // ft/min, in the direction of maximum spread
	DirectionOfMaxSpread   float64 // degrees, frame matches the input orientation
	FirelineIntensity      float64 // Btu/ft/s
	FlameLength            float64 // ft
	HeatPerUnitArea        float64 // Btu/ft²
	ReactionIntensity      float64 // Btu/ft²/min
	ResidenceTime          float64 // min
	MidflameWindSpeed      float64 // ft/min
	WindAdjustmentFactor   float64
	EffectiveWindSpeed     float64 // ft/min
	WindSpeedLimitExceeded bool

	// Fire ellipse. The semi-axis rates describe the ellipse grown per
	// minute: b along the major axis, a along the minor axis, and c the
	// distance from the ignition point back to the ellipse center.
	Eccentricity       float64
	LengthToWidthRatio float64
	BackingSpreadRate  float64 // ft/min
	FlankingSpreadRate float64 // ft/min
	EllipticalA        float64 // ft/min
	EllipticalB        float64 // ft/min
	EllipticalC        float64 // ft/min

	// Directional behavior, populated by RunInDirection.
	DirectionOfInterest   float64
	SpreadRateInDirection float64 // ft/min

	// Fuel bed intermediates of interest to callers.
	CharacteristicSavr float64 // ft²/ft³
	BulkDensity        float64 // lb/ft³
	PackingRatio       float64
	RelativePacking    float64
	HeatSink           float64 // Btu/ft³
	LiveMoistureOfExt  float64
}

// FlameLength converts a fireline intensity in Btu/ft/s to flame length in
// feet (Byram 1959). Intensities below the working floor yield zero.
func FlameLength(firelineIntensity float64) float64 {
	if firelineIntensity < 1e-7 {
		return 0
	}
	return 0.45 * math.Pow(firelineIntensity, 0.46)
}

// Run computes surface fire behavior for the fuel bed under the environment.
// The returned direction of maximum spread is expressed in the same frame as
// the input wind direction (upslope-relative or north-relative).
func Run(bed FuelBed, env Environment) Result {
	env = env.Normalized()

	im := bed.compute()
	res := Result{
		ReactionIntensity:  im.reactionIntensity,
		ResidenceTime:      im.residenceTime,
		CharacteristicSavr: im.sigma,
		BulkDensity:        im.bulkDensity,
		PackingRatio:       im.packingRatio,
		RelativePacking:    im.relativePacking,
		HeatSink:           im.heatSink,
		LiveMoistureOfExt:  im.mextLive,
	}
	if im.noWindNoSlopeRate <= 0 {
		// Nothing burns; every rate and intensity stays zero.
		return res
	}

	res.WindAdjustmentFactor = windAdjustmentFactor(env, bed.Depth)
	res.MidflameWindSpeed = midflameWindSpeed(env, bed.Depth)

	// Wind coefficient terms (Rothermel 1972, eqs 47-50).
	c := 7.47 * math.Exp(-0.133*math.Pow(im.sigma, 0.55))
	b := 0.02526 * math.Pow(im.sigma, 0.54)
	e := 0.715 * math.Exp(-0.000359*im.sigma)

	phiWind := 0.0
	if res.MidflameWindSpeed > 0 {
		phiWind = c * math.Pow(res.MidflameWindSpeed, b) * math.Pow(im.relativePacking, -e)
	}

	phiSlope := 0.0
	if env.Slope > 0 {
		tanSlope := math.Tan(env.Slope * math.Pi / 180.0)
		phiSlope = 5.275 * math.Pow(im.packingRatio, -0.3) * tanSlope * tanSlope
	}

	// Combine the wind and slope vectors in the upslope frame.
	r0 := im.noWindNoSlopeRate
	windDir := env.windDirectionRelativeToUpslope() * math.Pi / 180.0
	slopeRate := r0 * phiSlope
	windRate := r0 * phiWind
	x := slopeRate + windRate*math.Cos(windDir)
	y := windRate * math.Sin(windDir)
	additionalRate := math.Sqrt(x*x + y*y)

	maxRate := r0 + additionalRate
	dirMax := 0.0
	if additionalRate > 0 {
		dirMax = normalizeAzimuth(math.Atan2(y, x) * 180.0 / math.Pi)
	}

	// Effective wind speed from the combined coefficient.
	phiEffective := 0.0
	if r0 > 0 {
		phiEffective = maxRate/r0 - 1.0
	}
	effectiveWind := 0.0
	if phiEffective > 0 {
		effectiveWind = math.Pow(phiEffective*math.Pow(im.relativePacking, e)/c, 1.0/b)
	}

	// The effective wind speed cannot usefully exceed 0.9 of the reaction
	// intensity (Rothermel 1972, p. 48).
	windLimit := 0.9 * im.reactionIntensity
	if effectiveWind > windLimit {
		res.WindSpeedLimitExceeded = true
		effectiveWind = windLimit
		phiLimited := c * math.Pow(effectiveWind, b) * math.Pow(im.relativePacking, -e)
		maxRate = r0 * (1.0 + phiLimited)
	}
	res.EffectiveWindSpeed = effectiveWind
	res.SpreadRate = maxRate

	// Express the direction of maximum spread in the caller's frame.
	if env.Orientation == RelativeToNorth {
		res.DirectionOfMaxSpread = normalizeAzimuth(dirMax + env.upslopeDirection())
	} else {
		res.DirectionOfMaxSpread = dirMax
	}

	// Fire ellipse shape from the effective wind speed in mi/h.
	effWindMph := units.MilesPerHour.FromBase(effectiveWind)
	lw := 1.0 + 0.25*effWindMph
	res.LengthToWidthRatio = lw
	res.Eccentricity = 0
	if lw > 1.0 {
		res.Eccentricity = math.Sqrt(lw*lw-1.0) / lw
	}

	ecc := res.Eccentricity
	res.BackingSpreadRate = maxRate * (1.0 - ecc) / (1.0 + ecc)
	res.EllipticalB = (maxRate + res.BackingSpreadRate) / 2.0
	res.EllipticalA = res.EllipticalB / lw
	res.EllipticalC = res.EllipticalB - res.BackingSpreadRate
	res.FlankingSpreadRate = res.EllipticalA

	res.HeatPerUnitArea = im.reactionIntensity * im.residenceTime
	res.FirelineIntensity = (res.SpreadRate / 60.0) * res.HeatPerUnitArea
	res.FlameLength = FlameLength(res.FirelineIntensity)

	return res
}

// RunInDirection computes surface fire behavior and additionally the spread
// rate along a direction of interest, given in the same frame as the wind
// direction input.
func RunInDirection(bed FuelBed, env Environment, directionOfInterest float64) Result {
	res := Run(bed, env)
	res.DirectionOfInterest = normalizeAzimuth(directionOfInterest)
	res.SpreadRateInDirection = spreadRateAtAzimuth(res, res.DirectionOfInterest)
	return res
}

// spreadRateAtAzimuth evaluates the elliptical spread rate at an angle away
// from the direction of maximum spread.
func spreadRateAtAzimuth(res Result, azimuth float64) float64 {
	if res.SpreadRate <= 0 {
		return 0
	}
	theta := normalizeAzimuth(azimuth - res.DirectionOfMaxSpread)
	ecc := res.Eccentricity
	if ecc <= 0 {
		return res.SpreadRate
	}
	rad := theta * math.Pi / 180.0
	return res.SpreadRate * (1.0 - ecc) / (1.0 - ecc*math.Cos(rad))
}
