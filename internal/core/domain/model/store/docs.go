// Package store provides the Store aggregate for the grocery delivery
// system. A store has an identity, a street address, a geographic position
// and a daily operating window.
//
// Stores anchor the bundling engine: every bundle contains orders from
// exactly one store, and delivery routes are measured starting at the
// store's location.
package store
