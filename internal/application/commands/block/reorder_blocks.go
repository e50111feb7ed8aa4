package block

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/application/dto"
	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type ReorderPageBlocks struct {
	uowFactory *dbs.UOWFactory
}

func NewReorderPageBlocks(factory *dbs.UOWFactory) *ReorderPageBlocks {
	return &ReorderPageBlocks{uowFactory: factory}
}

// Execute sets each listed block's sort_order to its zero-based position and
// refreshes updated_at, all in one transaction. The caller is trusted: ids
// missing from the list keep their old sort_order, unknown ids are skipped,
// and an empty list is a successful no-op.
func (c *ReorderPageBlocks) Execute(ctx context.Context, req *dto.ReorderBlocksRequest) (err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	blocks := repo.NewBlockRepo(tx)
	for position, blockID := range req.BlockIDs {
		if err = blocks.SetSortOrder(ctx, blockID, position); err != nil {
			err = errs.StorageError{Err: err}
			return err
		}
	}

	return nil
}
