// Package order provides the Order aggregate root: a customer's basket offered
// to fulfillment shops one priority rank at a time.
//
// The package includes:
//   - Order: identity, lines, derived total, lifecycle and shop assignment
//   - Item: an order line (name, unit price, quantity)
//   - Status: the Pending -> Accepted | Expired state machine
//   - ShopSet: the grow-only set of shops that declined the order
//   - Event: committed lifecycle changes published to other systems
//
// Key business rules:
//   - an order needs a customer, at least one line and a creation time
//   - the total is the sum of line subtotals and never changes
//   - status leaves Pending at most once; Accepted and Expired are terminal
//   - a shop is assigned if and only if the order is Accepted
//   - a declined shop stays declined
package order
