// Package services holds the domain services of lunch ordering.
//
//   - OrderLifecycle: the rules for placing, cancelling and receiving orders
//   - OrderAggregator: the grouped and daily-total views used by staff reports
//
// Both are pure: they take loaded aggregates and an explicit now, and leave
// persistence to the application layer.
package services
