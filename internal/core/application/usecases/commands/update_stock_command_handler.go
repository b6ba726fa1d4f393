package commands

import (
	"context"

	"grocery/internal/core/domain/model/shop"
)

// UpdateStockCommandHandler sets a stock count. The shop is locked for the
// unit of work, so the write cannot interleave with an Accept withdrawing
// from the same shop.
type UpdateStockCommandHandler struct {
	uowFactory ShopUoWFactory
}

func NewUpdateStockCommandHandler(uowFactory ShopUoWFactory) UpdateStockCommandHandler {
	return UpdateStockCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateStockCommandHandler) Handle(ctx context.Context, cmd UpdateStockCommand) (shop.StockItem, error) {
	if err := cmd.Validate(); err != nil {
		return shop.StockItem{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shop.StockItem{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shopRepo := uow.ShopRepository()

	s, err := shopRepo.Get(ctx, cmd.ShopID())
	if err != nil {
		return shop.StockItem{}, err
	}

	if err = s.SetStock(cmd.ItemID(), cmd.Stock()); err != nil {
		return shop.StockItem{}, err
	}

	if err = shopRepo.Update(ctx, s); err != nil {
		return shop.StockItem{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shop.StockItem{}, err
	}

	item, _ := s.Item(cmd.ItemID())
	return item, nil
}
