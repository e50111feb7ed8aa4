package page

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

type CreatePage struct {
	uowFactory *dbs.UOWFactory
}

func NewCreatePage(factory *dbs.UOWFactory) *CreatePage {
	return &CreatePage{uowFactory: factory}
}

// Execute creates a page under an existing website. A homepage request first
// unsets is_homepage on every sibling so the website never holds two
// homepages. sort_order is the count of pages the website already has; it is
// never recomputed after deletions, so gaps can appear.
func (c *CreatePage) Execute(ctx context.Context, req *dto.CreatePageRequest) (page *db.Page, err error) {
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
		err = errs.NotFoundError{Err: fmt.Errorf("Website with id %d does not exist", req.WebsiteID)}
		return nil, err
	}

	pages := repo.NewPageRepo(tx)
	if req.IsHomepage {
		if err = pages.UnsetHomepages(ctx, req.WebsiteID); err != nil {
			err = errs.StorageError{Err: err}
			return nil, err
		}
	}

	sortOrder, err := pages.CountByWebsite(ctx, req.WebsiteID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}

	now := time.Now()
	page, err = pages.Insert(ctx, db.Page{
		WebsiteID:       req.WebsiteID,
		Title:           req.Title,
		Slug:            req.Slug,
		MetaDescription: req.MetaDescription,
		SeoTitle:        req.SeoTitle,
		SeoKeywords:     req.SeoKeywords,
		IsHomepage:      req.IsHomepage,
		SortOrder:       sortOrder,
		IsPublished:     false,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}

	return page, nil
}
