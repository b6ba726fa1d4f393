package services

import (
	"cmp"
	"slices"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/shop"
)

// Chain is the order in which shops are offered an order: ascending
// priority rank, ties broken by ascending shop id. Position k in the chain
// owns the window [k·W, (k+1)·W).
type Chain []kernel.ShopID

// NewChain sorts shops into a Chain. The input slice is not modified.
//
// Parameters:
//   - shops: every registered shop, in any order
//
// Returns:
//   - Chain: shop ids by ascending (priorityRank, id); empty for no shops
func NewChain(shops []*shop.Shop) Chain {
	sorted := slices.Clone(shops)
	slices.SortFunc(sorted, func(a, b *shop.Shop) int {
		return cmp.Or(
			cmp.Compare(a.PriorityRank(), b.PriorityRank()),
			cmp.Compare(a.ID(), b.ID()),
		)
	})

	chain := make(Chain, 0, len(sorted))
	for _, s := range sorted {
		chain = append(chain, s.ID())
	}
	return chain
}

// Position returns the rank index of shopID, or -1 when it is not in the chain.
func (c Chain) Position(shopID kernel.ShopID) int {
	return slices.Index(c, shopID)
}
