package query

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type GetPages struct {
	uowFactory *dbs.UOWFactory
}

func NewGetPages(factory *dbs.UOWFactory) *GetPages {
	return &GetPages{uowFactory: factory}
}

// Query lists a website's pages in insertion order. The page builder UI does
// its own arranging, so sort_order is deliberately not applied here.
func (q *GetPages) Query(ctx context.Context, websiteID int64) (pages []db.Page, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	pages, err = repo.NewPageRepo(tx).ListByWebsite(ctx, websiteID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	return pages, nil
}
