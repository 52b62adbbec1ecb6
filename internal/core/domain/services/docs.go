// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the grocery delivery system. It implements
// complex business workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - Bundler: Greedy clustering of unbundled orders into single-store bundles
//   - RoutePlanner: Nearest-neighbor stop ordering and route metric estimation
//   - DriverAssigner: Zone-aware nearest-driver matching for fresh bundles
//   - DeliveryProgressor: Time-based advancement of bundled orders through
//     picking, delivery and completion
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
