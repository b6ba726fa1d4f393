package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTotalAmountMismatch is returned when a restored total does not match its lines.
	ErrTotalAmountMismatch = errors.New("total amount does not match order items")
)

// Order is the aggregate root of a customer order travelling down the shop
// priority chain.
//
// Order follows these invariants:
//   - identity, customer, items, total and creation time never change
//   - status leaves Pending at most once, to Accepted or Expired
//   - the declined set only grows
//   - the assigned shop is set if and only if the status is Accepted
//
// Eligibility of a shop is not decided here; see services.EscalationRouter.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	customerName string
	items        []Item
	totalAmount  decimal.Decimal
	createdAt    time.Time

	status     Status
	declinedBy ShopSet

	assignedShopID   *kernel.ShopID
	assignedShopName string
	acceptedAt       *time.Time

	guard guard.ConstructorGuard
}

// State is the complete persisted form of an Order. Storage adapters read it
// with Order.State and rebuild the aggregate with RestoreOrder.
type State struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	CustomerName     string
	Items            []Item
	TotalAmount      decimal.Decimal
	CreatedAt        time.Time
	Status           Status
	DeclinedBy       []kernel.ShopID
	AssignedShopID   *kernel.ShopID
	AssignedShopName string
	AcceptedAt       *time.Time
}

// NewOrder creates a Pending order. The total amount is derived from items.
//
// Example:
//
//	milk, _ := order.NewItem("Milk", decimal.NewFromInt(60), 2)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, "Asha", []order.Item{milk}, now)
//	if err != nil {
//	    // invalid input
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID, customerName),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from its persisted state and checks every
// invariant, including that the stored total matches the lines.
//
// Parameters:
//   - state: the persisted form, as returned by Order.State
//
// Returns:
//   - *Order: the restored aggregate
//   - error: a validation error, or ErrTotalAmountMismatch when the stored
//     total differs from the sum of the lines
func RestoreOrder(state State) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(state.ID),
		o.setCustomer(state.CustomerID, state.CustomerName),
		o.setItems(state.Items),
		o.setCreatedAt(state.CreatedAt),
		o.restoreDeclined(state.DeclinedBy),
		o.restoreLifecycle(state),
	); err != nil {
		return nil, err
	}

	if !o.totalAmount.Equal(state.TotalAmount) {
		return nil, fmt.Errorf("%w: stored %s, computed %s", ErrTotalAmountMismatch, state.TotalAmount, o.totalAmount)
	}

	return o, nil
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// State returns a deep copy of the order's persisted form.
func (o *Order) State() State {
	return State{
		ID:               o.id,
		CustomerID:       o.customerID,
		CustomerName:     o.customerName,
		Items:            o.Items(),
		TotalAmount:      o.totalAmount,
		CreatedAt:        o.createdAt,
		Status:           o.status,
		DeclinedBy:       o.declinedBy.Values(),
		AssignedShopID:   o.AssignedShopID(),
		AssignedShopName: o.assignedShopName,
		AcceptedAt:       o.AcceptedAt(),
	}
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) CustomerName() string {
	return o.customerName
}

// Items returns a copy of the order lines in their original order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

// DeclinedBy returns the declined shop ids in ascending order.
func (o *Order) DeclinedBy() []kernel.ShopID {
	return o.declinedBy.Values()
}

// HasDeclined reports whether shopID gave the order up.
func (o *Order) HasDeclined(shopID kernel.ShopID) bool {
	return o.declinedBy.Contains(shopID)
}

// AssignedShopID is nil until the order is Accepted.
func (o *Order) AssignedShopID() *kernel.ShopID {
	if o.assignedShopID == nil {
		return nil
	}
	id := *o.assignedShopID
	return &id
}

func (o *Order) AssignedShopName() string {
	return o.assignedShopName
}

// AcceptedAt is nil until the order is Accepted.
func (o *Order) AcceptedAt() *time.Time {
	if o.acceptedAt == nil {
		return nil
	}
	at := *o.acceptedAt
	return &at
}

// Elapsed is the time since creation, never negative.
func (o *Order) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(o.createdAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Accept records the winning shop. Only a Pending order can be accepted;
// eligibility and stock are checked by the caller before this is invoked.
//
// Parameters:
//   - shopID: the accepting shop
//   - shopName: the registered name of that shop
//   - at: acceptance instant
//
// Returns:
//   - error: ErrOrderIsNotPending when the order already left Pending, or a
//     validation error for the shop attributes
func (o *Order) Accept(shopID kernel.ShopID, shopName string, at time.Time) error {
	if err := shopID.Validate(); err != nil {
		return err
	}

	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return errs.NewValueIsRequiredError("shop name")
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedShopID = &shopID
	o.assignedShopName = shopName
	o.acceptedAt = &at
	return nil
}

// Decline adds shopID to the declined set. Repeating a decline is a no-op.
//
// Parameters:
//   - shopID: the declining shop
//
// Returns:
//   - bool: true when the set changed and the order must be persisted
//   - error: ErrOrderIsNotPending for Accepted or Expired orders
func (o *Order) Decline(shopID kernel.ShopID) (bool, error) {
	if err := shopID.Validate(); err != nil {
		return false, err
	}

	if err := o.status.ValidatePending(); err != nil {
		return false, err
	}

	return o.declinedBy.Add(shopID), nil
}

// Expire finalizes a Pending order nobody accepted.
func (o *Order) Expire() error {
	newStatus, err := o.status.Expire()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	o.customerName = strings.TrimSpace(customerName)
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := decimal.Zero
	lines := make([]Item, 0, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("item %d", i), err)
		}
		total = total.Add(item.Subtotal())
		lines = append(lines, item)
	}

	o.items = lines
	o.totalAmount = total
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) restoreDeclined(declined []kernel.ShopID) error {
	for _, id := range declined {
		if err := id.Validate(); err != nil {
			return err
		}
		o.declinedBy.Add(id)
	}
	return nil
}

func (o *Order) restoreLifecycle(state State) error {
	if err := state.Status.Validate(); err != nil {
		return err
	}

	if err := state.Status.ValidateCanHaveShop(state.AssignedShopID != nil); err != nil {
		return err
	}

	o.status = state.Status
	if state.Status != Accepted {
		return nil
	}

	if err := state.AssignedShopID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(state.AssignedShopName) == "" {
		return errs.NewValueIsRequiredError("shop name")
	}
	if state.AcceptedAt == nil {
		return errs.NewValueIsRequiredError("accepted at")
	}

	shopID := *state.AssignedShopID
	acceptedAt := *state.AcceptedAt
	o.assignedShopID = &shopID
	o.assignedShopName = state.AssignedShopName
	o.acceptedAt = &acceptedAt
	return nil
}
