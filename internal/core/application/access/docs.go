// Package access decides which signed-in users may run which use cases.
package access
