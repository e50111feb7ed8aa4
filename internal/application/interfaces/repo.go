package interfaces

import (
	"context"

	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
)

// Repos are constructed per transaction; absence on point reads is a nil
// result, not an error.

type WebsiteRepo interface {
	Insert(ctx context.Context, website db.Website) (*db.Website, error)
	GetByID(ctx context.Context, id int64) (*db.Website, error)
	List(ctx context.Context) ([]db.Website, error)
	Update(ctx context.Context, website db.Website) error
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type PageRepo interface {
	Insert(ctx context.Context, page db.Page) (*db.Page, error)
	GetByID(ctx context.Context, id int64) (*db.Page, error)
	ListByWebsite(ctx context.Context, websiteID int64) ([]db.Page, error)
	CountByWebsite(ctx context.Context, websiteID int64) (int, error)
	UnsetHomepages(ctx context.Context, websiteID int64) error
	Update(ctx context.Context, page db.Page) error
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByWebsite(ctx context.Context, websiteID int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type BlockRepo interface {
	Insert(ctx context.Context, block db.PageBlock) (*db.PageBlock, error)
	GetByID(ctx context.Context, id int64) (*db.PageBlock, error)
	ListByPage(ctx context.Context, pageID int64) ([]db.PageBlock, error)
	ListByWebsite(ctx context.Context, websiteID int64) ([]db.PageBlock, error)
	MaxSortOrder(ctx context.Context, pageID int64) (*int, error)
	SetSortOrder(ctx context.Context, id int64, sortOrder int) error
	Update(ctx context.Context, block db.PageBlock) error
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByPage(ctx context.Context, pageID int64) error
	DeleteByWebsite(ctx context.Context, websiteID int64) error
}

type TemplateRepo interface {
	List(ctx context.Context) ([]db.BlockTemplate, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type AssetRepo interface {
	Insert(ctx context.Context, asset db.Asset) (*db.Asset, error)
	ListByWebsite(ctx context.Context, websiteID int64) ([]db.Asset, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByWebsite(ctx context.Context, websiteID int64) error
}
