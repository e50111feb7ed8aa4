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

type UpdatePage struct {
	uowFactory *dbs.UOWFactory
}

func NewUpdatePage(factory *dbs.UOWFactory) *UpdatePage {
	return &UpdatePage{uowFactory: factory}
}

// Execute applies only the fields present in the request. Promoting a page to
// homepage unsets every sibling first, inside the same transaction, so the
// single-homepage invariant also holds for updates.
func (c *UpdatePage) Execute(ctx context.Context, pageID int64, req *dto.UpdatePageRequest) (page *db.Page, err error) {
	if vErr := req.Validate(); vErr != nil {
		return nil, errs.ValidationError{Err: vErr}
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, errs.StorageError{Err: err}
	}
	defer uow.Finalize(&err)

	pages := repo.NewPageRepo(tx)
	page, err = pages.GetByID(ctx, pageID)
	if err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}
	if page == nil {
		err = errs.NotFoundError{Err: fmt.Errorf("Page with id %d not found", pageID)}
		return nil, err
	}

	if req.IsHomepage != nil && *req.IsHomepage {
		if err = pages.UnsetHomepages(ctx, page.WebsiteID); err != nil {
			err = errs.StorageError{Err: err}
			return nil, err
		}
	}

	applyPageUpdate(page, req)
	page.UpdatedAt = time.Now()

	if err = pages.Update(ctx, *page); err != nil {
		err = errs.StorageError{Err: err}
		return nil, err
	}

	return page, nil
}

func applyPageUpdate(page *db.Page, req *dto.UpdatePageRequest) {
	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Slug != nil {
		page.Slug = *req.Slug
	}
	if req.MetaDescription.Set {
		page.MetaDescription = req.MetaDescription.Value
	}
	if req.SeoTitle.Set {
		page.SeoTitle = req.SeoTitle.Value
	}
	if req.SeoKeywords.Set {
		page.SeoKeywords = req.SeoKeywords.Value
	}
	if req.IsHomepage != nil {
		page.IsHomepage = *req.IsHomepage
	}
	if req.SortOrder != nil {
		page.SortOrder = *req.SortOrder
	}
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}
}
