// Package driver provides the Driver aggregate for the grocery delivery
// system. A driver has an identity, a vehicle type, a customer rating and a
// current geographic position, and is either active (accepting work) or off
// shift.
//
// Drivers are the assignment targets of the bundling engine: active drivers
// not already carrying an in-flight bundle are matched to new bundles by
// delivery zone and proximity to the bundle centroid.
package driver
