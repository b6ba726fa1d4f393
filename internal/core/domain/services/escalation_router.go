package services

import (
	"fmt"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
)

// Assignment names the shop currently holding an order.
type Assignment struct {
	ShopID kernel.ShopID
	// Rank is the holder's position in the chain.
	Rank int
	// WindowEndsAt is createdAt + (Rank+1)·W, the instant the order escalates
	// unless the holder accepts or declines first.
	WindowEndsAt time.Time
}

// EscalationRouter decides which shop may accept a pending order at a given
// instant. It is a pure function of the order, the chain and the clock value
// passed in, so every caller sees the same answer for the same inputs.
//
// With t = max(0, now - createdAt) the holder is the first chain position k
// that has not declined and satisfies t < (k+1)·W. Windows include their
// lower bound and exclude the upper one. A decline takes effect immediately:
// the next shop becomes holder without waiting for the declined window to
// run out.
//
// Example, W = 5m, chain [1, 2], nobody declined:
//
//	t = 0s    holder 1
//	t = 299s  holder 1
//	t = 300s  holder 2
//	t = 600s  exhausted
type EscalationRouter struct {
	window time.Duration
}

// NewEscalationRouter creates a router giving each chain position a window of
// the given length.
//
// Parameters:
//   - window: length of every shop's exclusive turn, must be greater than 0
//
// Returns:
//   - EscalationRouter: router ready to evaluate orders
//   - error: errs.ErrValueIsInvalid when window is zero or negative
func NewEscalationRouter(window time.Duration) (EscalationRouter, error) {
	if window <= 0 {
		return EscalationRouter{}, errs.NewValueIsInvalidErrorWithCause(
			"escalation window",
			fmt.Errorf("%s is not greater than 0", window),
		)
	}
	return EscalationRouter{window: window}, nil
}

// Window returns the length of a single shop's turn.
func (r EscalationRouter) Window() time.Duration {
	return r.window
}

// Holder returns the shop that may act on o at now.
//
// Parameters:
//   - o: the order to evaluate
//   - chain: shops in escalation order, see NewChain
//   - now: evaluation instant; instants before createdAt count as createdAt
//
// Returns:
//   - Assignment: the holder, its chain position and its window deadline
//   - bool: false when o is not Pending or every window was used up or declined
//
// Example usage:
//
//	holder, ok := router.Holder(o, services.NewChain(shops), clk.Now())
//	if !ok {
//	    // exhausted: the reaper will expire the order
//	    return
//	}
//	log.Printf("shop %s holds the order until %s", holder.ShopID, holder.WindowEndsAt)
func (r EscalationRouter) Holder(o *order.Order, chain Chain, now time.Time) (Assignment, bool) {
	if o.Status() != order.Pending {
		return Assignment{}, false
	}

	elapsed := o.Elapsed(now)
	for k, shopID := range chain {
		if o.HasDeclined(shopID) {
			continue
		}

		windowEnd := time.Duration(k+1) * r.window
		if elapsed < windowEnd {
			return Assignment{
				ShopID:       shopID,
				Rank:         k,
				WindowEndsAt: o.CreatedAt().Add(windowEnd),
			}, true
		}
	}

	return Assignment{}, false
}

// IsHolder reports whether shopID is the holder of o at now. Non-pending
// orders have no holder.
//
// Parameters:
//   - o: the order to evaluate
//   - chain: shops in escalation order
//   - shopID: the shop asking to act
//   - now: evaluation instant
//
// Returns:
//   - bool: true only for the single shop Holder would name
func (r EscalationRouter) IsHolder(o *order.Order, chain Chain, shopID kernel.ShopID, now time.Time) bool {
	holder, ok := r.Holder(o, chain, now)
	return ok && holder.ShopID == shopID
}

// IsExhausted reports whether a Pending order has no holder left and may be
// expired.
func (r EscalationRouter) IsExhausted(o *order.Order, chain Chain, now time.Time) bool {
	if o.Status() != order.Pending {
		return false
	}
	_, ok := r.Holder(o, chain, now)
	return !ok
}
