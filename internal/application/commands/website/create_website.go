package website

import (
	"context"
	"time"

	"github.com/pagesmith/pagesmith-backend/internal/application/dto"
	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type CreateWebsite struct {
	uowFactory *dbs.UOWFactory
}

func NewCreateWebsite(factory *dbs.UOWFactory) *CreateWebsite {
	return &CreateWebsite{uowFactory: factory}
}

// Execute creates a website. New websites always start unpublished.
func (c *CreateWebsite) Execute(ctx context.Context, req *dto.CreateWebsiteRequest) (website *db.Website, err error) {
	if vErr := req.Validate(); vErr != nil {
		return nil, errs.ValidationError{Err: vErr}
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	now := time.Now()
	website, err = repo.NewWebsiteRepo(tx).Insert(ctx, db.Website{
		Name:        req.Name,
		Domain:      req.Domain,
		IsPublished: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}

	return website, nil
}
