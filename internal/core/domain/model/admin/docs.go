// Package admin models staff accounts that may run reports and manage the roster.
package admin
