package block

import (
	"context"
	"fmt"
	"time"

	"github.com/pagesmith/pagesmith-backend/internal/application/dto"
	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type UpdatePageBlock struct {
	uowFactory *dbs.UOWFactory
}

func NewUpdatePageBlock(factory *dbs.UOWFactory) *UpdatePageBlock {
	return &UpdatePageBlock{uowFactory: factory}
}

func (c *UpdatePageBlock) Execute(ctx context.Context, blockID int64, req *dto.UpdatePageBlockRequest) (block *db.PageBlock, err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	blocks := repo.NewBlockRepo(tx)
	block, err = blocks.GetByID(ctx, blockID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	if block == nil {
		err = errs.NotFoundError{Err: fmt.Errorf("Page block with id %d not found", blockID)}
		return nil, err
	}

	if req.Content != nil {
		block.Content = db.MapToRawMessage(req.Content)
	}
	if req.Settings != nil {
		block.Settings = db.MapToRawMessage(req.Settings)
	}
	if req.SortOrder != nil {
		block.SortOrder = *req.SortOrder
	}
	block.UpdatedAt = time.Now()

	if err = blocks.Update(ctx, *block); err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}

	return block, nil
}
