// Package kernel holds value objects shared by every aggregate of the lunch
// ordering domain.
//
//   - UUID: order identifiers
//   - Date: civil delivery dates, independent of clock and zone
//
// Both are immutable and safe for concurrent use.
package kernel
