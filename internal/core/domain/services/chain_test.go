package services_test

import (
	"testing"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/shop"
	"grocery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestNewChain(t *testing.T) {
	t.Run("should order by rank then id", func(t *testing.T) {
		shops := []*shop.Shop{
			newShop(t, 3, 2, nil),
			newShop(t, 2, 1, nil),
			newShop(t, 1, 2, nil),
		}

		chain := services.NewChain(shops)

		assert.Equal(t, services.Chain{2, 1, 3}, chain)
		assert.Equal(t, kernel.ShopID(3), shops[0].ID(), "input must not be reordered")
	})

	t.Run("should report positions", func(t *testing.T) {
		chain := services.Chain{2, 1}

		assert.Equal(t, 0, chain.Position(2))
		assert.Equal(t, 1, chain.Position(1))
		assert.Equal(t, -1, chain.Position(7))
	})

	t.Run("should handle empty registry", func(t *testing.T) {
		assert.Empty(t, services.NewChain(nil))
	})
}
