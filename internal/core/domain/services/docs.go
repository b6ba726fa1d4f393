// Package services holds the domain logic that spans the order and shop
// aggregates.
//
// The package includes:
//   - Chain: shops in priority order
//   - EscalationRouter: which shop holds a pending order at a given instant
//   - OrderAcceptor: the accept transition (eligibility, stock, assignment)
//
// Nothing here reads a clock or touches storage; callers pass the current
// time and the loaded aggregates.
package services
