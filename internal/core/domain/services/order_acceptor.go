package services

import (
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/shop"
)

// ErrShopIneligible is returned when a shop tries to accept an order it does
// not currently hold.
var ErrShopIneligible = errors.New("shop is not eligible for this order")

// OrderAcceptor performs the accept transition across the order and shop
// aggregates. Callers load both inside one unit of work, so the checks below
// and the writes that follow them are atomic.
//
// Checks, in order:
//   - the order is Pending (order.ErrOrderIsNotPending)
//   - the shop is the current holder (ErrShopIneligible)
//   - the shop can cover every line (shop.ErrInsufficientInventory)
//
// On success stock is withdrawn and the order is marked Accepted by the shop.
type OrderAcceptor struct {
	router EscalationRouter
}

// NewOrderAcceptor creates an acceptor deciding eligibility with router.
//
// Returns:
//   - OrderAcceptor: stateless service safe for concurrent use
func NewOrderAcceptor(router EscalationRouter) OrderAcceptor {
	return OrderAcceptor{router: router}
}

// Accept assigns o to s when s holds the order and can cover it.
//
// Parameters:
//   - o: the order, loaded inside the caller's unit of work
//   - s: the accepting shop, loaded inside the same unit of work
//   - chain: shops in escalation order
//   - now: acceptance instant, recorded as acceptedAt
//
// Returns:
//   - error: order.ErrOrderIsNotPending, ErrShopIneligible,
//     shop.ErrInsufficientInventory or a validation error; nil when both
//     aggregates were mutated and must be persisted
//
// On error the caller rolls back its unit of work.
//
// Example usage:
//
//	acceptor := services.NewOrderAcceptor(router)
//	if err := acceptor.Accept(o, s, services.NewChain(shops), clk.Now()); err != nil {
//	    return err
//	}
//	// persist o and s, then commit
func (a OrderAcceptor) Accept(o *order.Order, s *shop.Shop, chain Chain, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := s.Validate(); err != nil {
		return err
	}

	if err := o.Status().ValidatePending(); err != nil {
		return err
	}

	if !a.router.IsHolder(o, chain, s.ID(), now) {
		return fmt.Errorf("%w: shop %s", ErrShopIneligible, s.ID())
	}

	if err := s.Withdraw(o.Items()); err != nil {
		return err
	}

	return o.Accept(s.ID(), s.Name(), now)
}
