// Package order contains the Order aggregate root and its supporting value
// objects. The aggregate is the single consistency unit for a customer order:
// its items, its derived total, and its status state machine are only ever
// mutated through the named operations on Order, which enforce every invariant.
//
// Key invariants maintained by this package:
//   - An order always references a customer and carries an idempotency key
//   - Every item has a positive quantity, a positive unit price, and a name
//   - Items are keyed by product: a repeated product increases quantity
//     rather than duplicating a line
//   - The cancellation reason is present if and only if the order is Canceled
//   - Status transitions out of Pending are one-shot; non-Pending orders
//     accept no further mutation
//   - The total is always the live sum over items, never stored independently
package order
