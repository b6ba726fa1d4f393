package order

import (
	"errors"
	"fmt"

	"grocery/internal/pkg/errs"
)

// ErrOrderIsNotPending is returned by every transition attempted on an order
// that already reached a terminal status.
var ErrOrderIsNotPending = errors.New("order is not pending")

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Accepted
//	          └──> Expired
//
// Accepted and Expired are terminal. There is no way back to Pending.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending orders are travelling down the shop priority chain.
	Pending

	// Accepted orders were taken by exactly one shop.
	Accepted

	// Expired orders ran out of eligible shops before anyone accepted.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Accepted: "Accepted",
		Expired:  "Expired",
	}
}

// Validate rejects Unknown and out of range values, e.g. read back from storage.
func (s Status) Validate() error {
	if s < Pending || s > Expired {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Accepted || s == Expired
}

// ValidatePending returns ErrOrderIsNotPending (wrapped) unless s is Pending.
func (s Status) ValidatePending() error {
	if s != Pending {
		return fmt.Errorf("%w: status is %s", ErrOrderIsNotPending, s)
	}
	return nil
}

// ValidateCanHaveShop checks that a shop assignment exists exactly when the
// order is Accepted.
func (s Status) ValidateCanHaveShop(assigned bool) error {
	if assigned && s != Accepted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an assigned shop", s),
		)
	}

	if !assigned && s == Accepted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no assigned shop", s),
		)
	}

	return nil
}

// Accept transitions Pending -> Accepted.
func (s Status) Accept() (Status, error) {
	if err := s.ValidatePending(); err != nil {
		return 0, err
	}
	return Accepted, nil
}

// Expire transitions Pending -> Expired.
func (s Status) Expire() (Status, error) {
	if err := s.ValidatePending(); err != nil {
		return 0, err
	}
	return Expired, nil
}
