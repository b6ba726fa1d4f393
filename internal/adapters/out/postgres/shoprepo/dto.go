// Package shoprepo maps shop aggregates to the shops and stock_items tables.
package shoprepo

import (
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/shop"

	"github.com/shopspring/decimal"
)

type ShopDTO struct {
	ID           int64          `gorm:"primaryKey;autoIncrement:false"`
	Name         string         `gorm:"type:varchar(255);not null"`
	PriorityRank int            `gorm:"not null;index"`
	Inventory    []StockItemDTO `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

func (ShopDTO) TableName() string {
	return "shops"
}

// StockItemDTO is one item of a shop inventory, keyed by (shop_id, item_id).
type StockItemDTO struct {
	ShopID   int64           `gorm:"primaryKey;autoIncrement:false"`
	ItemID   int             `gorm:"primaryKey;autoIncrement:false"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Price    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Stock    int             `gorm:"not null"`
	ImageURL string          `gorm:"type:text"`
}

func (StockItemDTO) TableName() string {
	return "stock_items"
}

func fromDomain(s *shop.Shop) ShopDTO {
	state := s.State()

	inventory := make([]StockItemDTO, 0, len(state.Inventory))
	for _, item := range state.Inventory {
		inventory = append(inventory, StockItemDTO{
			ShopID:   state.ID.Int64(),
			ItemID:   item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Stock:    item.Stock(),
			ImageURL: item.ImageURL(),
		})
	}

	return ShopDTO{
		ID:           state.ID.Int64(),
		Name:         state.Name,
		PriorityRank: state.PriorityRank,
		Inventory:    inventory,
	}
}

func toDomain(dto ShopDTO) (*shop.Shop, error) {
	inventory := make([]shop.StockItem, 0, len(dto.Inventory))
	for _, itemDTO := range dto.Inventory {
		item, err := shop.NewStockItem(itemDTO.ItemID, itemDTO.Name, itemDTO.Price, itemDTO.Stock, itemDTO.ImageURL)
		if err != nil {
			return nil, err
		}
		inventory = append(inventory, item)
	}

	return shop.RestoreShop(shop.State{
		ID:           kernel.ShopID(dto.ID),
		Name:         dto.Name,
		PriorityRank: dto.PriorityRank,
		Inventory:    inventory,
	})
}
