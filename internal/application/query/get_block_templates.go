package query

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type GetBlockTemplates struct {
	uowFactory *dbs.UOWFactory
}

func NewGetBlockTemplates(factory *dbs.UOWFactory) *GetBlockTemplates {
	return &GetBlockTemplates{uowFactory: factory}
}

func (q *GetBlockTemplates) Query(ctx context.Context) (templates []db.BlockTemplate, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	templates, err = repo.NewTemplateRepo(tx).List(ctx)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	return templates, nil
}
