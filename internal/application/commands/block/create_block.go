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

type CreatePageBlock struct {
	uowFactory *dbs.UOWFactory
}

func NewCreatePageBlock(factory *dbs.UOWFactory) *CreatePageBlock {
	return &CreatePageBlock{uowFactory: factory}
}

// Execute instantiates a block template on a page. A caller-supplied
// sort_order is taken verbatim, collisions included; otherwise the block is
// appended after the page's current maximum, starting at 0.
func (c *CreatePageBlock) Execute(ctx context.Context, req *dto.CreatePageBlockRequest) (block *db.PageBlock, err error) {
	if vErr := req.Validate(); vErr != nil {
		return nil, errs.ValidationError{Err: vErr}
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	pageExists, err := repo.NewPageRepo(tx).Exists(ctx, req.PageID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	if !pageExists {
		err = errs.NotFoundError{Err: fmt.Errorf("Page with id %d does not exist", req.PageID)}
		return nil, err
	}

	templateExists, err := repo.NewTemplateRepo(tx).Exists(ctx, req.BlockTemplateID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	if !templateExists {
		err = errs.NotFoundError{Err: fmt.Errorf("Block template with id %d does not exist", req.BlockTemplateID)}
		return nil, err
	}

	blocks := repo.NewBlockRepo(tx)
	var sortOrder int
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	} else {
		max, maxErr := blocks.MaxSortOrder(ctx, req.PageID)
		if maxErr != nil {
			err = errs.StorageError{Err: maxErr}
			return nil, err
		}
		if max != nil {
			sortOrder = *max + 1
		}
	}

	now := time.Now()
	block, err = blocks.Insert(ctx, db.PageBlock{
		PageID:          req.PageID,
		BlockTemplateID: req.BlockTemplateID,
		Content:         db.MapToRawMessage(req.Content),
		Settings:        db.MapToRawMessage(req.Settings),
		SortOrder:       sortOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}

	return block, nil
}
