// Package kernel holds the identifiers shared by the order and shop
// aggregates:
//   - UUID: order and customer identity, backed by github.com/google/uuid
//   - ShopID: positive integer identity of a fulfillment shop
//
// Both are immutable values; their zero values are invalid and rejected by
// Validate.
package kernel
