// Package order provides domain entities and business logic for order management
// in the grocery delivery system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, charges, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Charges: A value object holding the monetary breakdown of an order
//
// Key business rules:
//   - Orders must have valid identifiers, a delivery location, a positive item
//     count and non-negative charges
//   - Order status follows a defined workflow:
//     Pending -> Confirmed -> Picking -> OutForDelivery -> Delivered
//   - Any non-terminal order can be canceled by an external actor
//   - Lifecycle timestamps strictly increase along the transition chain;
//     a transition with an out-of-order timestamp fails immediately
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
