package query

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type GetPage struct {
	uowFactory *dbs.UOWFactory
}

func NewGetPage(factory *dbs.UOWFactory) *GetPage {
	return &GetPage{uowFactory: factory}
}

// Query returns nil without an error when the page does not exist.
func (q *GetPage) Query(ctx context.Context, pageID int64) (page *db.Page, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	page, err = repo.NewPageRepo(tx).GetByID(ctx, pageID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	return page, nil
}
