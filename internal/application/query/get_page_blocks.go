package query

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type GetPageBlocks struct {
	uowFactory *dbs.UOWFactory
}

func NewGetPageBlocks(factory *dbs.UOWFactory) *GetPageBlocks {
	return &GetPageBlocks{uowFactory: factory}
}

// Query lists a page's blocks ascending by sort_order.
func (q *GetPageBlocks) Query(ctx context.Context, pageID int64) (blocks []db.PageBlock, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	blocks, err = repo.NewBlockRepo(tx).ListByPage(ctx, pageID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	return blocks, nil
}
