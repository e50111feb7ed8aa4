package block

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type DeletePageBlock struct {
	uowFactory *dbs.UOWFactory
}

func NewDeletePageBlock(factory *dbs.UOWFactory) *DeletePageBlock {
	return &DeletePageBlock{uowFactory: factory}
}

func (c *DeletePageBlock) Execute(ctx context.Context, blockID int64) (deleted bool, err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return false, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	deleted, err = repo.NewBlockRepo(tx).Delete(ctx, blockID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return false, err
	}

	return deleted, nil
}
