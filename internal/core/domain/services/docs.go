// Package services provides domain services for order rules that do not belong
// to a single method of the Order aggregate.
//
// The package includes:
//   - OrderCanceller: Decides whether withdrawing an order cancels or voids it
//   - StatusMessages: Maps a status to the customer-facing notification text
package services
