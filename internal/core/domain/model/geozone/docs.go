// Package geozone defines named circular delivery zones and the registry
// that resolves coordinates to zones.
//
// A zone is a city center plus a radius in kilometers; containment uses
// great-circle distance. Zones may overlap, and resolution is strictly
// first-match in declaration order, which keeps zone assignment
// deterministic for bundling and driver matching.
package geozone
