package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/pagesmith/pagesmith-backend/internal/application/dto"
	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type CreateAsset struct {
	uowFactory *dbs.UOWFactory
}

func NewCreateAsset(factory *dbs.UOWFactory) *CreateAsset {
	return &CreateAsset{uowFactory: factory}
}

// Execute records metadata for a file that is already stored elsewhere; no
// bytes pass through here. Assets are immutable once created.
func (c *CreateAsset) Execute(ctx context.Context, req *dto.CreateAssetRequest) (asset *db.Asset, err error) {
	if vErr := req.Validate(); vErr != nil {
		return nil, errs.ValidationError{Err: vErr}
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	exists, err := repo.NewWebsiteRepo(tx).Exists(ctx, req.WebsiteID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	if !exists {
		err = errs.NotFoundError{Err: fmt.Errorf("Website with id %d not found", req.WebsiteID)}
		return nil, err
	}

	asset, err = repo.NewAssetRepo(tx).Insert(ctx, db.Asset{
		WebsiteID:    req.WebsiteID,
		Filename:     req.Filename,
		OriginalName: req.OriginalName,
		MimeType:     req.MimeType,
		FileSize:     req.FileSize,
		URL:          req.URL,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}

	return asset, nil
}
