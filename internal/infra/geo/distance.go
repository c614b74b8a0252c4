// Package geo wraps the planar geometry primitives used for site proximity.
package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Distance returns the haversine great-circle distance in meters between two
// longitude/latitude pairs.
func Distance(lon1, lat1, lon2, lat2 float64) float64 {
	return geo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})
}
