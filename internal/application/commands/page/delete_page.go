package page

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type DeletePage struct {
	uowFactory *dbs.UOWFactory
}

func NewDeletePage(factory *dbs.UOWFactory) *DeletePage {
	return &DeletePage{uowFactory: factory}
}

// Execute removes the page and its blocks in one transaction. A missing page
// reports deleted=false without an error.
func (c *DeletePage) Execute(ctx context.Context, pageID int64) (deleted bool, err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return false, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	if err = repo.NewBlockRepo(tx).DeleteByPage(ctx, pageID); err != nil {
		err = errs.StorageError{Err: err}
		return false, err
	}

	deleted, err = repo.NewPageRepo(tx).Delete(ctx, pageID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return false, err
	}

	return deleted, nil
}
