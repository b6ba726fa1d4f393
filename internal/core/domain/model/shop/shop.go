package shop

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var (
	ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop constructor")

	// ErrInsufficientInventory is the sentinel behind InsufficientInventoryError.
	ErrInsufficientInventory = errors.New("insufficient inventory")

	ErrDuplicateStockItem = errors.New("duplicate stock item")
)

// InsufficientInventoryError names the first order line a shop cannot cover.
// A name the shop does not stock is reported with Available 0.
type InsufficientInventoryError struct {
	Item      string
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("%s: %q requested %d, available %d", ErrInsufficientInventory, e.Item, e.Requested, e.Available)
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}

// Shop is a fulfillment shop in the priority chain. Lower PriorityRank is
// offered orders earlier; ties are broken by id.
//
// Business rules:
//   - stock item names and ids are unique within a shop
//   - every stock count stays within [0, MaxStock]
//   - Withdraw is all-or-nothing
type Shop struct {
	id           kernel.ShopID
	name         string
	priorityRank int
	inventory    map[string]StockItem
	guard        guard.ConstructorGuard
}

// State is the persisted form of a Shop.
type State struct {
	ID           kernel.ShopID
	Name         string
	PriorityRank int
	Inventory    []StockItem
}

// NewShop registers a shop with its initial inventory.
func NewShop(id kernel.ShopID, name string, priorityRank int, inventory []StockItem) (*Shop, error) {
	return RestoreShop(State{ID: id, Name: name, PriorityRank: priorityRank, Inventory: inventory})
}

// RestoreShop rebuilds a shop read back from storage.
func RestoreShop(state State) (*Shop, error) {
	s := &Shop{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(state.ID),
		s.setName(state.Name),
		s.setPriorityRank(state.PriorityRank),
		s.setInventory(state.Inventory),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Shop) Validate() error {
	if s == nil {
		return ErrShopIsNotConstructed
	}
	return s.guard.Validate(ErrShopIsNotConstructed)
}

func (s *Shop) IsEqual(other *Shop) bool {
	return other != nil && s.id == other.id
}

func (s *Shop) State() State {
	return State{
		ID:           s.id,
		Name:         s.name,
		PriorityRank: s.priorityRank,
		Inventory:    s.Inventory(),
	}
}

func (s *Shop) ID() kernel.ShopID {
	return s.id
}

func (s *Shop) Name() string {
	return s.name
}

func (s *Shop) PriorityRank() int {
	return s.priorityRank
}

// Inventory returns the stock items ordered by item id.
func (s *Shop) Inventory() []StockItem {
	items := make([]StockItem, 0, len(s.inventory))
	for _, item := range s.inventory {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, b StockItem) int { return a.id - b.id })
	return items
}

// StockOf returns the units on hand for name, 0 when the shop does not carry it.
func (s *Shop) StockOf(name string) int {
	return s.inventory[name].stock
}

// Item looks a stock item up by id.
func (s *Shop) Item(itemID int) (StockItem, bool) {
	for _, item := range s.inventory {
		if item.id == itemID {
			return item, true
		}
	}
	return StockItem{}, false
}

// CanFulfil checks every line against the stock on hand. Lines sharing a
// name are summed first.
func (s *Shop) CanFulfil(items []order.Item) error {
	_, err := s.demand(items)
	return err
}

// Withdraw decrements stock for every line, or for none of them when any
// line cannot be covered.
//
// Parameters:
//   - items: order lines; lines naming the same item are summed and names the
//     shop does not stock count as stock 0
//
// Returns:
//   - error: an *InsufficientInventoryError wrapping ErrInsufficientInventory
//     naming the first short item, or nil after every count was decremented
func (s *Shop) Withdraw(items []order.Item) error {
	demand, err := s.demand(items)
	if err != nil {
		return err
	}

	for name, quantity := range demand {
		item := s.inventory[name]
		item.stock -= quantity
		s.inventory[name] = item
	}
	return nil
}

// SetStock overwrites the units on hand of the item with itemID.
func (s *Shop) SetStock(itemID int, stock int) error {
	item, ok := s.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("stock item", itemID)
	}

	updated, err := item.withStock(stock)
	if err != nil {
		return err
	}

	s.inventory[updated.name] = updated
	return nil
}

func (s *Shop) demand(items []order.Item) (map[string]int, error) {
	demand := make(map[string]int, len(items))
	names := make([]string, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, seen := demand[item.Name()]; !seen {
			names = append(names, item.Name())
		}
		demand[item.Name()] += item.Quantity()
	}

	for _, name := range names {
		if available := s.StockOf(name); demand[name] > available {
			return nil, &InsufficientInventoryError{Item: name, Requested: demand[name], Available: available}
		}
	}
	return demand, nil
}

func (s *Shop) setID(id kernel.ShopID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shop) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("shop name")
	}
	s.name = name
	return nil
}

func (s *Shop) setPriorityRank(rank int) error {
	if rank < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priority rank", fmt.Errorf("%d is negative", rank))
	}
	s.priorityRank = rank
	return nil
}

func (s *Shop) setInventory(items []StockItem) error {
	inventory := make(map[string]StockItem, len(items))
	ids := make(map[int]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("stock item", err)
		}
		if _, ok := inventory[item.name]; ok {
			return fmt.Errorf("%w: name %q", ErrDuplicateStockItem, item.name)
		}
		if _, ok := ids[item.id]; ok {
			return fmt.Errorf("%w: id %d", ErrDuplicateStockItem, item.id)
		}
		inventory[item.name] = item
		ids[item.id] = struct{}{}
	}
	s.inventory = inventory
	return nil
}
