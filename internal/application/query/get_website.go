package query

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type GetWebsite struct {
	uowFactory *dbs.UOWFactory
}

func NewGetWebsite(factory *dbs.UOWFactory) *GetWebsite {
	return &GetWebsite{uowFactory: factory}
}

// Query returns nil without an error when the website does not exist.
func (q *GetWebsite) Query(ctx context.Context, websiteID int64) (website *db.Website, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	website, err = repo.NewWebsiteRepo(tx).GetByID(ctx, websiteID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	return website, nil
}
