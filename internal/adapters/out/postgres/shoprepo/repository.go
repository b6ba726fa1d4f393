package shoprepo

import (
	"context"
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/shop"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrShopAlreadyExists = errors.New("shop already exists")

// GormShopRepository implements ports.ShopRepository using GORM.
type GormShopRepository struct {
	db       *gorm.DB
	lockRows bool
}

// NewGormShopRepository creates a repository over db. With lockRows set, Get
// locks the shop row, which serializes stock changes of one shop.
func NewGormShopRepository(db *gorm.DB, lockRows bool) *GormShopRepository {
	return &GormShopRepository{db: db, lockRows: lockRows}
}

func (r *GormShopRepository) Add(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrShopAlreadyExists, aggregate.ID())
		}
		return err
	}
	return nil
}

// Update writes the shop row and the stock count of every inventory item.
func (r *GormShopRepository) Update(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ShopDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "priority_rank": dto.PriorityRank})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shop", aggregate.ID())
	}

	for _, item := range dto.Inventory {
		if err := db.Model(&StockItemDTO{}).
			Where("shop_id = ? AND item_id = ?", item.ShopID, item.ItemID).
			Update("stock", item.Stock).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *GormShopRepository) Get(ctx context.Context, id kernel.ShopID) (*shop.Shop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.withInventory(ctx)
	if r.lockRows {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ShopDTO
	if err := query.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll never locks; the chain order only depends on immutable columns.
func (r *GormShopRepository) GetAll(ctx context.Context) ([]*shop.Shop, error) {
	var dtos []ShopDTO
	if err := r.withInventory(ctx).Order("priority_rank ASC, id ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	shops := make([]*shop.Shop, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}
	return shops, nil
}

func (r *GormShopRepository) withInventory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Inventory", func(db *gorm.DB) *gorm.DB {
		return db.Order("item_id ASC")
	})
}
