// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries to detect instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when the
// caller does not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was produced by its
// constructor. The zero value reports "not constructed".
//
// Example:
//
//	var ErrStockItemNotConstructed = errors.New("StockItem must be created via NewStockItem")
//
//	type StockItem struct {
//	    name  string
//	    stock int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewStockItem(name string, stock int) (StockItem, error) {
//	    if stock < 0 {
//	        return StockItem{}, errors.New("stock cannot be negative")
//	    }
//	    return StockItem{name: name, stock: stock, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s StockItem) Validate() error {
//	    return s.guard.Validate(ErrStockItemNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it only from
// constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
