package latlng

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned by ParseDMS when the text does not match the
// `D° M' S"` notation.
var ErrInvalidFormat = errors.New("Invalid coordinate string")

var dmsPattern = regexp.MustCompile(`^([01]?\d?\d)° ([0-5]?\d)' ([0-5]?\d(?:\.\d+)?)"(?: ([NSEW]))?$`)

// FormatDMS renders a DMS value as `10° 7' 24.24"`, followed by ` N` when a
// direction is attached. Numbers use their shortest decimal form.
func FormatDMS(dms DMS) string {
	var sb strings.Builder

	sb.WriteString(strconv.Itoa(dms.Degrees))
	sb.WriteString("° ")
	sb.WriteString(strconv.Itoa(dms.Minutes))
	sb.WriteString("' ")
	sb.WriteString(strconv.FormatFloat(dms.Seconds, 'f', -1, 64))
	sb.WriteByte('"')

	if dms.Direction != "" {
		sb.WriteByte(' ')
		sb.WriteString(string(dms.Direction))
	}

	return sb.String()
}

// ParseDMS parses text produced by FormatDMS. The whole string must match;
// anything else returns ErrInvalidFormat.
func ParseDMS(text string) (DMS, error) {
	match := dmsPattern.FindStringSubmatch(text)
	if match == nil {
		return DMS{}, ErrInvalidFormat
	}

	degrees, err := strconv.Atoi(match[1])
	if err != nil {
		return DMS{}, ErrInvalidFormat
	}
	minutes, err := strconv.Atoi(match[2])
	if err != nil {
		return DMS{}, ErrInvalidFormat
	}
	seconds, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return DMS{}, ErrInvalidFormat
	}

	return DMS{
		Degrees:   degrees,
		Minutes:   minutes,
		Seconds:   seconds,
		Direction: Direction(match[4]),
	}, nil
}
