package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/pagesmith/pagesmith-backend/internal/application/interfaces"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
)

type PageRepo struct {
	tx pgx.Tx
}

var _ interfaces.PageRepo = (*PageRepo)(nil)

func NewPageRepo(tx pgx.Tx) *PageRepo {
	return &PageRepo{tx: tx}
}

const pageColumns = `id, website_id, title, slug, meta_description, seo_title, seo_keywords,
	is_homepage, sort_order, is_published, created_at, updated_at`

func scanPage(row pgx.Row) (*db.Page, error) {
	var page db.Page
	err := row.Scan(&page.ID, &page.WebsiteID, &page.Title, &page.Slug, &page.MetaDescription,
		&page.SeoTitle, &page.SeoKeywords, &page.IsHomepage, &page.SortOrder, &page.IsPublished,
		&page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PageRepo) Insert(ctx context.Context, page db.Page) (*db.Page, error) {
	query := `INSERT INTO cms.pages(website_id, title, slug, meta_description, seo_title, seo_keywords,
		is_homepage, sort_order, is_published, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING id`
	err := r.tx.QueryRow(ctx, query, page.WebsiteID, page.Title, page.Slug, page.MetaDescription,
		page.SeoTitle, page.SeoKeywords, page.IsHomepage, page.SortOrder, page.IsPublished,
		page.CreatedAt, page.UpdatedAt).Scan(&page.ID)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PageRepo) GetByID(ctx context.Context, id int64) (*db.Page, error) {
	page, err := scanPage(r.tx.QueryRow(ctx,
		"SELECT "+pageColumns+" FROM cms.pages WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return page, err
}

// ListByWebsite returns pages in insertion order, not sort_order.
func (r *PageRepo) ListByWebsite(ctx context.Context, websiteID int64) ([]db.Page, error) {
	rows, err := r.tx.Query(ctx,
		"SELECT "+pageColumns+" FROM cms.pages WHERE website_id = $1 ORDER BY id", websiteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []db.Page{}
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *page)
	}
	return pages, rows.Err()
}

func (r *PageRepo) CountByWebsite(ctx context.Context, websiteID int64) (int, error) {
	var count int
	err := r.tx.QueryRow(ctx, "SELECT COUNT(*) FROM cms.pages WHERE website_id = $1", websiteID).Scan(&count)
	return count, err
}

func (r *PageRepo) UnsetHomepages(ctx context.Context, websiteID int64) error {
	_, err := r.tx.Exec(ctx, "UPDATE cms.pages SET is_homepage = FALSE WHERE website_id = $1", websiteID)
	return err
}

func (r *PageRepo) Update(ctx context.Context, page db.Page) error {
	_, err := r.tx.Exec(ctx,
		`UPDATE cms.pages SET title = $1, slug = $2, meta_description = $3, seo_title = $4,
		seo_keywords = $5, is_homepage = $6, sort_order = $7, is_published = $8, updated_at = $9
		WHERE id = $10`,
		page.Title, page.Slug, page.MetaDescription, page.SeoTitle, page.SeoKeywords,
		page.IsHomepage, page.SortOrder, page.IsPublished, page.UpdatedAt, page.ID)
	return err
}

func (r *PageRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.tx.Exec(ctx, "DELETE FROM cms.pages WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PageRepo) DeleteByWebsite(ctx context.Context, websiteID int64) error {
	_, err := r.tx.Exec(ctx, "DELETE FROM cms.pages WHERE website_id = $1", websiteID)
	return err
}

func (r *PageRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM cms.pages WHERE id = $1)", id).Scan(&exists)
	return exists, err
}
