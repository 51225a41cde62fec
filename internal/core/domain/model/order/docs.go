// Package order holds the Order aggregate of the lunch ordering domain.
//
// An order belongs to one student and one delivery date and carries one
// line per product with the unit price captured when it was placed.
//
// Key business rules:
//   - a new order is Active and unreceived
//   - Active -> Cancelled is the only status transition
//   - receipt can be marked once per active order and reset by staff
//
// The package also declares the rule violations (ErrDeadlinePassed,
// ErrDuplicateActiveOrder, ...) reported by the ordering flow.
package order
