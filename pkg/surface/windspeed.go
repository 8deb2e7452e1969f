package surface

import "math"

// canopyCoverFloor is the smallest canopy cover treated as present.
const canopyCoverFloor = 1e-7

// WindSpeedAtTwentyFeet converts the environment's wind speed to the 20 ft
// reference height. Twenty-foot input passes through unchanged and 10 m input
// is divided by 1.15. A midflame input cannot be projected back to 20 ft, so
// the result is -1 to mark the value unavailable.
func WindSpeedAtTwentyFeet(env Environment) float64 {
	switch env.WindHeightMode {
	case TwentyFoot:
		return env.WindSpeed
	case TenMeter:
		return env.WindSpeed / 1.15
	default:
		return -1.0
	}
}

// windAdjustmentFactor computes the factor that scales a 20 ft wind speed
// down to midflame height (Albini & Baughman 1979). The fuel bed is sheltered
// when enough canopy fills the volume under the crowns; otherwise the open
// formula uses the fuel bed depth.
func windAdjustmentFactor(env Environment, fuelbedDepth float64) float64 {
	if env.WindAdjustmentFactor > 0 {
		return env.WindAdjustmentFactor
	}

	// The sheltered formula divides by sqrt(crownFill*height); a canopy
	// with no height cannot shelter the fuel bed.
	crownFill := env.CrownRatio * env.CanopyCover / 3.0
	sheltered := env.CanopyCover > canopyCoverFloor && env.CanopyHeight > 0 && crownFill >= 0.05

	if sheltered {
		h := env.CanopyHeight
		return 0.555 / (math.Sqrt(crownFill*h) * math.Log((20.0+0.36*h)/(0.13*h)))
	}

	d := fuelbedDepth
	if d < 1e-7 {
		d = 1e-7
	}
	return 1.83 / math.Log((20.0+0.36*d)/(0.13*d))
}

// midflameWindSpeed resolves the environment wind speed to midflame height in
// ft/min, applying the adjustment factor when the reference height requires
// it.
func midflameWindSpeed(env Environment, fuelbedDepth float64) float64 {
	switch env.WindHeightMode {
	case TwentyFoot:
		return env.WindSpeed * windAdjustmentFactor(env, fuelbedDepth)
	case TenMeter:
		return (env.WindSpeed / 1.15) * windAdjustmentFactor(env, fuelbedDepth)
	default:
		return env.WindSpeed
	}
}
