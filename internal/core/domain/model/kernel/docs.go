// Package kernel provides core domain primitives shared by the order and
// customer models.
//
// The package includes:
//   - Money: A non-negative monetary amount with two decimal places
//
// Primitives are immutable values; their zero values are rejected by Validate
// so that persisted or decoded data cannot bypass the constructors.
package kernel
