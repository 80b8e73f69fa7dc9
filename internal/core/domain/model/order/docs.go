// Package order provides domain entities and business logic for retail order
// management. It implements the Order aggregate root with its creation snapshot
// and status lifecycle.
//
// The package includes:
//   - Order: The aggregate root holding identity, channel, customer, line items and status
//   - Status: A state machine that enforces valid order status transitions
//   - Channel: The intake flow (WEB or IN_PERSON) an order came from
//   - LineItem: An immutable product row with its subtotal
//   - StatusChange: The append-only record produced by every transition
//
// Key business rules:
//   - Orders are created PENDING with a total equal to the sum of line subtotals
//   - WEB orders carry an external payment reference, IN_PERSON orders never do
//   - Status follows Pending -> Processing -> Completed -> Delivered, with
//     cancellation before completion and voiding before delivery
//   - Delivered, Cancelled and Voided are terminal
//   - Orders are never deleted; withdrawing an order is a status
package order
