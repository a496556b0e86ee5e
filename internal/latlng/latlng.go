// Package latlng converts geographic coordinates between decimal degrees,
// degrees and decimal minutes, and degrees, minutes and seconds.
//
// All conversions expect finite input. NaN and infinite values produce
// unspecified results.
package latlng

import "math"

// Rounding factors applied at each stage of a conversion. Degrees are rounded
// first, minutes are derived from the rounded degrees and seconds from the
// rounded minutes.
const (
	degreePrecisionFactor = 1e7
	minutePrecisionFactor = 1e6
	secondPrecisionFactor = 1e4
)

func roundTo(x, factor float64) float64 {
	return math.Round(x*factor) / factor
}

// ToDegreesMinutes converts a decimal degree value into degrees and decimal minutes.
// The sign of value is only kept when hint asks for a direction.
//
// A minutes value that rounds up to 60 is not carried into the degrees.
func ToDegreesMinutes(value float64, hint Hint) DDM {
	degrees := roundTo(math.Abs(value), degreePrecisionFactor)
	minutes := roundTo(math.Mod(degrees, 1)*60, minutePrecisionFactor)

	return DDM{
		Degrees:   int(math.Floor(degrees)),
		Minutes:   minutes,
		Direction: directionOf(value, hint),
	}
}

// DegreesMinutesToDecimal converts degrees and decimal minutes into a signed
// decimal degree value. West and south directions yield a negative result.
func DegreesMinutesToDecimal(ddm DDM) float64 {
	sum := float64(ddm.Degrees) + ddm.Minutes/60
	return signOf(ddm.Direction) * roundTo(sum, degreePrecisionFactor)
}

// ToDegreesMinutesSeconds converts a decimal degree value into degrees, minutes
// and seconds. Because each stage is floored from the rounded value of the
// previous one, 10.99999999 becomes 11° 0' 0" rather than 10° 60' 0".
func ToDegreesMinutesSeconds(value float64, hint Hint) DMS {
	degrees := roundTo(math.Abs(value), degreePrecisionFactor)
	minutes := roundTo(math.Mod(degrees, 1)*60, minutePrecisionFactor)
	seconds := roundTo(math.Mod(minutes, 1)*60, secondPrecisionFactor)

	return DMS{
		Degrees:   int(math.Floor(degrees)),
		Minutes:   int(math.Floor(minutes)),
		Seconds:   seconds,
		Direction: directionOf(value, hint),
	}
}

// DegreesMinutesSecondsToDecimal converts degrees, minutes and seconds into a
// signed decimal degree value. Rounding is applied once to the combined sum.
func DegreesMinutesSecondsToDecimal(dms DMS) float64 {
	sum := float64(dms.Degrees) + float64(dms.Minutes)/60 + dms.Seconds/3600
	return signOf(dms.Direction) * roundTo(sum, degreePrecisionFactor)
}

// FormatCoordinates converts a latitude/longitude pair into formatted DMS strings
// carrying N/S and E/W directions.
func FormatCoordinates(coords DecimalCoordinates) DMSCoordinates {
	return DMSCoordinates{
		FormatDMS(ToDegreesMinutesSeconds(coords[0], HintLat)),
		FormatDMS(ToDegreesMinutesSeconds(coords[1], HintLng)),
	}
}

// ParseCoordinates is the inverse of FormatCoordinates.
func ParseCoordinates(coords DMSCoordinates) (DecimalCoordinates, error) {
	var out DecimalCoordinates
	for i, text := range coords {
		dms, err := ParseDMS(text)
		if err != nil {
			return DecimalCoordinates{}, err
		}
		out[i] = DegreesMinutesSecondsToDecimal(dms)
	}

	return out, nil
}

// directionOf treats zero as the negative hemisphere.
func directionOf(value float64, hint Hint) Direction {
	switch hint {
	case HintLat:
		if value > 0 {
			return North
		}
		return South
	case HintLng:
		if value > 0 {
			return East
		}
		return West
	default:
		return ""
	}
}

func signOf(direction Direction) float64 {
	if direction == West || direction == South {
		return -1
	}
	return 1
}
