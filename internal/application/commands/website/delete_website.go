package website

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type DeleteWebsite struct {
	uowFactory *dbs.UOWFactory
}

func NewDeleteWebsite(factory *dbs.UOWFactory) *DeleteWebsite {
	return &DeleteWebsite{uowFactory: factory}
}

// Execute removes the website and everything it owns: blocks of its pages,
// then the pages, then its assets, then the website row. Block templates are
// shared reference data and are never touched. The whole cascade is one
// transaction. A missing website reports deleted=false without an error.
func (c *DeleteWebsite) Execute(ctx context.Context, websiteID int64) (deleted bool, err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return false, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	if err = repo.NewBlockRepo(tx).DeleteByWebsite(ctx, websiteID); err != nil {
		err = errs.StorageError{Err: err}
		return false, err
	}
	if err = repo.NewPageRepo(tx).DeleteByWebsite(ctx, websiteID); err != nil {
		err = errs.StorageError{Err: err}
		return false, err
	}
	if err = repo.NewAssetRepo(tx).DeleteByWebsite(ctx, websiteID); err != nil {
		err = errs.StorageError{Err: err}
		return false, err
	}

	deleted, err = repo.NewWebsiteRepo(tx).Delete(ctx, websiteID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return false, err
	}

	return deleted, nil
}
