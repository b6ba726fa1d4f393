// Package shop holds the Shop aggregate of the shop registry: identity,
// position in the priority chain and the inventory that accepted orders are
// withdrawn from.
//
// The package includes:
//   - Shop: the aggregate root, owning its stock items
//   - StockItem: one catalog entry with its units on hand
//
// Inventory is keyed by item name because order lines carry names only.
package shop
