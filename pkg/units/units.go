// Package units provides bidirectional conversion between the unit systems
// accepted at the library boundary and the single base-unit system all fire
// behavior calculations are performed in.
//
// The base system is: feet (length), feet per minute (speed), degrees
// (slope and compass angles), fraction (moisture, cover, curing), minutes
// (time), degrees Fahrenheit (temperature), pounds per square foot
// (loading), pounds per cubic foot (density), Btus per pound (heat of
// combustion), Btus per square foot (heat per unit area), Btus per square
// foot per minute (heat source / reaction intensity), Btus per foot per
// second (fireline intensity), square feet per cubic foot (SAVR), and
// square feet per acre (basal area).
package units

import "math"

// Length units. Base: feet.
type Length int

const (
	Feet Length = iota
	Inches
	Centimeters
	Meters
	Chains
	Miles
	Kilometers
)

func (u Length) ToBase(value float64) float64 {
	switch u {
	case Inches:
		return value / 12.0
	case Centimeters:
		return value / 30.48
	case Meters:
		return value * 3.28084
	case Chains:
		return value * 66.0
	case Miles:
		return value * 5280.0
	case Kilometers:
		return value * 3280.84
	default:
		return value
	}
}

func (u Length) FromBase(value float64) float64 {
	switch u {
	case Inches:
		return value * 12.0
	case Centimeters:
		return value * 30.48
	case Meters:
		return value / 3.28084
	case Chains:
		return value / 66.0
	case Miles:
		return value / 5280.0
	case Kilometers:
		return value / 3280.84
	default:
		return value
	}
}

// Speed units. Base: feet per minute.
type Speed int

const (
	FeetPerMinute Speed = iota
	ChainsPerHour
	MetersPerSecond
	MetersPerMinute
	MilesPerHour
	KilometersPerHour
)

func (u Speed) ToBase(value float64) float64 {
	switch u {
	case ChainsPerHour:
		return value * 1.1
	case MetersPerSecond:
		return value * 196.8504
	case MetersPerMinute:
		return value * 3.28084
	case MilesPerHour:
		return value * 88.0
	case KilometersPerHour:
		return value * 54.68066
	default:
		return value
	}
}

func (u Speed) FromBase(value float64) float64 {
	switch u {
	case ChainsPerHour:
		return value / 1.1
	case MetersPerSecond:
		return value / 196.8504
	case MetersPerMinute:
		return value / 3.28084
	case MilesPerHour:
		return value / 88.0
	case KilometersPerHour:
		return value / 54.68066
	default:
		return value
	}
}

// Slope units. Base: degrees.
type Slope int

const (
	SlopeDegrees Slope = iota
	SlopePercent
)

func (u Slope) ToBase(value float64) float64 {
	if u == SlopePercent {
		return math.Atan(value/100.0) * 180.0 / math.Pi
	}
	return value
}

func (u Slope) FromBase(value float64) float64 {
	if u == SlopePercent {
		return math.Tan(value*math.Pi/180.0) * 100.0
	}
	return value
}

// Moisture units. Base: fraction.
type Moisture int

const (
	MoistureFraction Moisture = iota
	MoisturePercent
)

func (u Moisture) ToBase(value float64) float64 {
	if u == MoisturePercent {
		return value / 100.0
	}
	return value
}

func (u Moisture) FromBase(value float64) float64 {
	if u == MoisturePercent {
		return value * 100.0
	}
	return value
}

// Cover units. Base: fraction.
type Cover int

const (
	CoverFraction Cover = iota
	CoverPercent
)

func (u Cover) ToBase(value float64) float64 {
	if u == CoverPercent {
		return value / 100.0
	}
	return value
}

func (u Cover) FromBase(value float64) float64 {
	if u == CoverPercent {
		return value * 100.0
	}
	return value
}

// Curing level units. Base: fraction.
type Curing int

const (
	CuringFraction Curing = iota
	CuringPercent
)

func (u Curing) ToBase(value float64) float64 {
	if u == CuringPercent {
		return value / 100.0
	}
	return value
}

func (u Curing) FromBase(value float64) float64 {
	if u == CuringPercent {
		return value * 100.0
	}
	return value
}

// Time units. Base: minutes.
type Time int

const (
	Minutes Time = iota
	Seconds
	Hours
	Days
)

func (u Time) ToBase(value float64) float64 {
	switch u {
	case Seconds:
		return value / 60.0
	case Hours:
		return value * 60.0
	case Days:
		return value * 1440.0
	default:
		return value
	}
}

func (u Time) FromBase(value float64) float64 {
	switch u {
	case Seconds:
		return value * 60.0
	case Hours:
		return value / 60.0
	case Days:
		return value / 1440.0
	default:
		return value
	}
}

// Temperature units. Base: degrees Fahrenheit.
type Temperature int

const (
	Fahrenheit Temperature = iota
	Celsius
	Kelvin
)

func (u Temperature) ToBase(value float64) float64 {
	switch u {
	case Celsius:
		return value*9.0/5.0 + 32.0
	case Kelvin:
		return (value-273.15)*9.0/5.0 + 32.0
	default:
		return value
	}
}

func (u Temperature) FromBase(value float64) float64 {
	switch u {
	case Celsius:
		return (value - 32.0) * 5.0 / 9.0
	case Kelvin:
		return (value-32.0)*5.0/9.0 + 273.15
	default:
		return value
	}
}

// Loading units. Base: pounds per square foot.
type Loading int

const (
	PoundsPerSquareFoot Loading = iota
	TonsPerAcre
	TonnesPerHectare
	KilogramsPerSquareMeter
)

func (u Loading) ToBase(value float64) float64 {
	switch u {
	case TonsPerAcre:
		return value * 2000.0 / 43560.0
	case TonnesPerHectare:
		return value * 0.0204816
	case KilogramsPerSquareMeter:
		return value * 0.204816
	default:
		return value
	}
}

func (u Loading) FromBase(value float64) float64 {
	switch u {
	case TonsPerAcre:
		return value * 43560.0 / 2000.0
	case TonnesPerHectare:
		return value / 0.0204816
	case KilogramsPerSquareMeter:
		return value / 0.204816
	default:
		return value
	}
}

// Density units. Base: pounds per cubic foot.
type Density int

const (
	PoundsPerCubicFoot Density = iota
	KilogramsPerCubicMeter
)

func (u Density) ToBase(value float64) float64 {
	if u == KilogramsPerCubicMeter {
		return value / 16.0185
	}
	return value
}

func (u Density) FromBase(value float64) float64 {
	if u == KilogramsPerCubicMeter {
		return value * 16.0185
	}
	return value
}

// Heat of combustion units. Base: Btus per pound.
type HeatOfCombustion int

const (
	BtusPerPound HeatOfCombustion = iota
	KilojoulesPerKilogram
)

func (u HeatOfCombustion) ToBase(value float64) float64 {
	if u == KilojoulesPerKilogram {
		return value * 0.429923
	}
	return value
}

func (u HeatOfCombustion) FromBase(value float64) float64 {
	if u == KilojoulesPerKilogram {
		return value / 0.429923
	}
	return value
}

// Heat per unit area units. Base: Btus per square foot.
type HeatPerUnitArea int

const (
	BtusPerSquareFoot HeatPerUnitArea = iota
	KilojoulesPerSquareMeter
)

func (u HeatPerUnitArea) ToBase(value float64) float64 {
	if u == KilojoulesPerSquareMeter {
		return value * 0.0880549
	}
	return value
}

func (u HeatPerUnitArea) FromBase(value float64) float64 {
	if u == KilojoulesPerSquareMeter {
		return value / 0.0880549
	}
	return value
}

// Heat source and reaction intensity units. Base: Btus per square foot per minute.
type HeatSource int

const (
	BtusPerSquareFootPerMinute HeatSource = iota
	KilowattsPerSquareMeter
)

func (u HeatSource) ToBase(value float64) float64 {
	if u == KilowattsPerSquareMeter {
		return value * 5.28329
	}
	return value
}

func (u HeatSource) FromBase(value float64) float64 {
	if u == KilowattsPerSquareMeter {
		return value / 5.28329
	}
	return value
}

// Fireline intensity units. Base: Btus per foot per second.
type FirelineIntensity int

const (
	BtusPerFootPerSecond FirelineIntensity = iota
	BtusPerFootPerMinute
	KilowattsPerMeter
)

// KilowattsPerMeterToBtusPerFootPerSecond is the conversion factor between
// the metric and base fireline intensity units.
const KilowattsPerMeterToBtusPerFootPerSecond = 0.288672

func (u FirelineIntensity) ToBase(value float64) float64 {
	switch u {
	case BtusPerFootPerMinute:
		return value / 60.0
	case KilowattsPerMeter:
		return value * KilowattsPerMeterToBtusPerFootPerSecond
	default:
		return value
	}
}

func (u FirelineIntensity) FromBase(value float64) float64 {
	switch u {
	case BtusPerFootPerMinute:
		return value * 60.0
	case KilowattsPerMeter:
		return value / KilowattsPerMeterToBtusPerFootPerSecond
	default:
		return value
	}
}

// Surface-area-to-volume ratio units. Base: square feet per cubic foot.
type SAVR int

const (
	SquareFeetPerCubicFoot SAVR = iota
	SquareInchesPerCubicInch
	SquareMetersPerCubicMeter
	SquareCentimetersPerCubicCentimeter
)

func (u SAVR) ToBase(value float64) float64 {
	switch u {
	case SquareInchesPerCubicInch:
		return value * 12.0
	case SquareMetersPerCubicMeter:
		return value * 0.3048
	case SquareCentimetersPerCubicCentimeter:
		return value * 30.48
	default:
		return value
	}
}

func (u SAVR) FromBase(value float64) float64 {
	switch u {
	case SquareInchesPerCubicInch:
		return value / 12.0
	case SquareMetersPerCubicMeter:
		return value / 0.3048
	case SquareCentimetersPerCubicCentimeter:
		return value / 30.48
	default:
		return value
	}
}

// Basal area units. Base: square feet per acre.
type BasalArea int

const (
	SquareFeetPerAcre BasalArea = iota
	SquareMetersPerHectare
)

func (u BasalArea) ToBase(value float64) float64 {
	if u == SquareMetersPerHectare {
		return value * 4.35600
	}
	return value
}

func (u BasalArea) FromBase(value float64) float64 {
	if u == SquareMetersPerHectare {
		return value / 4.35600
	}
	return value
}
