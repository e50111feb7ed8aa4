package query

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type GetWebsites struct {
	uowFactory *dbs.UOWFactory
}

func NewGetWebsites(factory *dbs.UOWFactory) *GetWebsites {
	return &GetWebsites{uowFactory: factory}
}

func (q *GetWebsites) Query(ctx context.Context) (websites []db.Website, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	websites, err = repo.NewWebsiteRepo(tx).List(ctx)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	return websites, nil
}
