package website

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

type UpdateWebsite struct {
	uowFactory *dbs.UOWFactory
}

func NewUpdateWebsite(factory *dbs.UOWFactory) *UpdateWebsite {
	return &UpdateWebsite{uowFactory: factory}
}

// Execute applies only the fields present in the request. Domain is
// tri-state: omitted keeps the current value, an explicit null clears it.
// updated_at is refreshed regardless of which fields changed.
func (c *UpdateWebsite) Execute(ctx context.Context, websiteID int64, req *dto.UpdateWebsiteRequest) (website *db.Website, err error) {
	if vErr := req.Validate(); vErr != nil {
		return nil, errs.ValidationError{Err: vErr}
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	websites := repo.NewWebsiteRepo(tx)
	website, err = websites.GetByID(ctx, websiteID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	if website == nil {
		err = errs.NotFoundError{Err: fmt.Errorf("Website with id %d not found", websiteID)}
		return nil, err
	}

	if req.Name != nil {
		website.Name = *req.Name
	}
	if req.Domain.Set {
		website.Domain = req.Domain.Value
	}
	if req.IsPublished != nil {
		website.IsPublished = *req.IsPublished
	}
	website.UpdatedAt = time.Now()

	if err = websites.Update(ctx, *website); err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}

	return website, nil
}
