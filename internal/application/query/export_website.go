package query

import (
	"context"
	"fmt"

	"github.com/pagesmith/pagesmith-backend/internal/application/dto"
	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type ExportWebsite struct {
	uowFactory *dbs.UOWFactory
}

func NewExportWebsite(factory *dbs.UOWFactory) *ExportWebsite {
	return &ExportWebsite{uowFactory: factory}
}

// Query assembles a denormalized snapshot of one website: the website row,
// every page, every block of those pages and every asset, read within a
// single transaction so the snapshot is consistent. Blocks come back in
// insertion order across all pages, not grouped by sort_order.
func (q *ExportWebsite) Query(ctx context.Context, websiteID int64) (export *dto.WebsiteExport, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	website, err := repo.NewWebsiteRepo(tx).GetByID(ctx, websiteID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	if website == nil {
		err = errs.NotFoundError{Err: fmt.Errorf("Website with id %d not found", websiteID)}
		return nil, err
	}

	pages, err := repo.NewPageRepo(tx).ListByWebsite(ctx, websiteID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}

	blocks, err := repo.NewBlockRepo(tx).ListByWebsite(ctx, websiteID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}

	assets, err := repo.NewAssetRepo(tx).ListByWebsite(ctx, websiteID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}

	return &dto.WebsiteExport{
		Website: *website,
		Pages:   pages,
		Blocks:  blocks,
		Assets:  assets,
	}, nil
}
