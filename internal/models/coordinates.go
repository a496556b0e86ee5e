package models

// FormattedCoordinates holds the DMS text stored next to a task's decimal coordinates.
type FormattedCoordinates struct {
	Latitude  string // Latitude in DMS notation, e.g. 50° 27' 0" N.
	Longitude string // Longitude in DMS notation, e.g. 30° 31' 12" E.
}
