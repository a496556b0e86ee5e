package latlng

import (
	"errors"
	"fmt"
)

// Direction is a compass label attached to a converted coordinate.
// The zero value means no direction is attached.
type Direction string

const (
	North Direction = "N"
	South Direction = "S"
	East  Direction = "E"
	West  Direction = "W"
)

// Hint tells a conversion which compass pair (N/S or E/W) to use when
// rendering the sign of a decimal degree value.
type Hint string

const (
	HintNone Hint = ""    // HintNone leaves the result without a direction.
	HintLat  Hint = "lat" // HintLat renders the sign as N or S.
	HintLng  Hint = "lng" // HintLng renders the sign as E or W.
)

// ErrUnknownHint is returned by ParseHint for anything other than "lat", "lng" or "".
var ErrUnknownHint = errors.New("unknown coordinate hint")

// ParseHint converts a textual hint into a Hint.
func ParseHint(s string) (Hint, error) {
	switch h := Hint(s); h {
	case HintNone, HintLat, HintLng:
		return h, nil
	default:
		return HintNone, fmt.Errorf("%w: %q", ErrUnknownHint, s)
	}
}

// DDM is a coordinate expressed in degrees and decimal minutes.
type DDM struct {
	Degrees   int       `json:"degrees"`             // Whole degrees, never negative.
	Minutes   float64   `json:"minutes"`             // Decimal minutes.
	Direction Direction `json:"direction,omitempty"` // Optional compass label.
}

// DMS is a coordinate expressed in degrees, minutes and seconds.
type DMS struct {
	Degrees   int       `json:"degrees"`             // Whole degrees, never negative.
	Minutes   int       `json:"minutes"`             // Whole minutes in [0,60).
	Seconds   float64   `json:"seconds"`             // Decimal seconds in [0,60).
	Direction Direction `json:"direction,omitempty"` // Optional compass label.
}

// String renders the coordinate with FormatDMS.
func (d DMS) String() string {
	return FormatDMS(d)
}

// DecimalCoordinates is a latitude/longitude pair in decimal degrees.
type DecimalCoordinates [2]float64

// DMSCoordinates is a latitude/longitude pair in formatted DMS notation.
type DMSCoordinates [2]string
