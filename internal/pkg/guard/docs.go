// Package guard detects values that bypassed their constructors.
package guard
