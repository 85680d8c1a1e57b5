// Package geo provides great-circle distance between points given as
// (latitude, longitude) pairs in degrees.
//
// It has no notion of roads, stops, or buses — callers (catalogue, transit)
// combine it with their own stored road distances to compute curvature.
package geo
