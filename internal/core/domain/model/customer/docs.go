// Package customer provides the Customer aggregate for the grocery delivery
// system. A customer has an identity, contact details and a default delivery
// location that determines which geographic zone their orders fall into.
package customer
