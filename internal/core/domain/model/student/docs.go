// Package student models the school roster.
//
// Grades run from MinGrade to MaxGrade. Inactive students stay on the roster
// but may not place orders.
package student
