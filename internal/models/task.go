package models

// Task represents a geocoded task whose coordinates still need a DMS rendering.
type Task struct {
	ID        int     // ID is the unique identifier for the task.
	Latitude  float64 // Latitude of the task location in decimal degrees.
	Longitude float64 // Longitude of the task location in decimal degrees.
}
