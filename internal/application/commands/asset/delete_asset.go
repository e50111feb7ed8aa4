package asset

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type DeleteAsset struct {
	uowFactory *dbs.UOWFactory
}

func NewDeleteAsset(factory *dbs.UOWFactory) *DeleteAsset {
	return &DeleteAsset{uowFactory: factory}
}

func (c *DeleteAsset) Execute(ctx context.Context, assetID int64) (deleted bool, err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return false, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	deleted, err = repo.NewAssetRepo(tx).Delete(ctx, assetID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return false, err
	}

	return deleted, nil
}
