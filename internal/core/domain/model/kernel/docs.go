// Package kernel provides core domain primitives shared across the grocery
// delivery domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a validated WGS84 coordinate pair with great-circle distance
//
// Both primitives are immutable, enforce their invariants at construction,
// and are safe for concurrent use.
package kernel
