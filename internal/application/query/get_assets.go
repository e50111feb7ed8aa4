package query

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type GetAssets struct {
	uowFactory *dbs.UOWFactory
}

func NewGetAssets(factory *dbs.UOWFactory) *GetAssets {
	return &GetAssets{uowFactory: factory}
}

func (q *GetAssets) Query(ctx context.Context, websiteID int64) (assets []db.Asset, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	assets, err = repo.NewAssetRepo(tx).ListByWebsite(ctx, websiteID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	return assets, nil
}
