// Package product models the lunch catalog. Products are maintained outside
// the service and only read here.
package product
