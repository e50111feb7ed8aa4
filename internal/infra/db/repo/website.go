package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/pagesmith/pagesmith-backend/internal/application/interfaces"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
)

type WebsiteRepo struct {
	tx pgx.Tx
}

var _ interfaces.WebsiteRepo = (*WebsiteRepo)(nil)

func NewWebsiteRepo(tx pgx.Tx) *WebsiteRepo {
	return &WebsiteRepo{tx: tx}
}

const websiteColumns = "id, name, domain, is_published, created_at, updated_at"

func scanWebsite(row pgx.Row) (*db.Website, error) {
	var website db.Website
	err := row.Scan(&website.ID, &website.Name, &website.Domain, &website.IsPublished,
		&website.CreatedAt, &website.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &website, nil
}

func (r *WebsiteRepo) Insert(ctx context.Context, website db.Website) (*db.Website, error) {
	query := `INSERT INTO cms.websites(name, domain, is_published, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5) RETURNING id`
	err := r.tx.QueryRow(ctx, query, website.Name, website.Domain, website.IsPublished,
		website.CreatedAt, website.UpdatedAt).Scan(&website.ID)
	if err != nil {
		return nil, err
	}
	return &website, nil
}

func (r *WebsiteRepo) GetByID(ctx context.Context, id int64) (*db.Website, error) {
	website, err := scanWebsite(r.tx.QueryRow(ctx,
		"SELECT "+websiteColumns+" FROM cms.websites WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return website, err
}

func (r *WebsiteRepo) List(ctx context.Context) ([]db.Website, error) {
	rows, err := r.tx.Query(ctx, "SELECT "+websiteColumns+" FROM cms.websites ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	websites := []db.Website{}
	for rows.Next() {
		website, err := scanWebsite(rows)
		if err != nil {
			return nil, err
		}
		websites = append(websites, *website)
	}
	return websites, rows.Err()
}

func (r *WebsiteRepo) Update(ctx context.Context, website db.Website) error {
	_, err := r.tx.Exec(ctx,
		"UPDATE cms.websites SET name = $1, domain = $2, is_published = $3, updated_at = $4 WHERE id = $5",
		website.Name, website.Domain, website.IsPublished, website.UpdatedAt, website.ID)
	return err
}

func (r *WebsiteRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.tx.Exec(ctx, "DELETE FROM cms.websites WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *WebsiteRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM cms.websites WHERE id = $1)", id).Scan(&exists)
	return exists, err
}
