// Package bundle provides the Bundle aggregate for the grocery delivery
// system. A bundle groups orders from a single store into one delivery
// route: an ordered list of stops with route metrics (distance, duration,
// value) and an optional set-once driver assignment.
//
// Bundles are produced by the bundling engine and progressed by the
// delivery simulator: a bundle stays active while its orders are picked
// and delivered, and completes when the last stop is delivered.
package bundle
