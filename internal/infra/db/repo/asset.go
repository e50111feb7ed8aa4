package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pagesmith/pagesmith-backend/internal/application/interfaces"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
)

type AssetRepo struct {
	tx pgx.Tx
}

var _ interfaces.AssetRepo = (*AssetRepo)(nil)

func NewAssetRepo(tx pgx.Tx) *AssetRepo {
	return &AssetRepo{tx: tx}
}

const assetColumns = "id, website_id, filename, original_name, mime_type, file_size, url, created_at"

func (r *AssetRepo) Insert(ctx context.Context, asset db.Asset) (*db.Asset, error) {
	query := `INSERT INTO cms.assets(website_id, filename, original_name, mime_type, file_size, url, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`
	err := r.tx.QueryRow(ctx, query, asset.WebsiteID, asset.Filename, asset.OriginalName,
		asset.MimeType, asset.FileSize, asset.URL, asset.CreatedAt).Scan(&asset.ID)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *AssetRepo) ListByWebsite(ctx context.Context, websiteID int64) ([]db.Asset, error) {
	rows, err := r.tx.Query(ctx,
		"SELECT "+assetColumns+" FROM cms.assets WHERE website_id = $1 ORDER BY id", websiteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []db.Asset{}
	for rows.Next() {
		var asset db.Asset
		err = rows.Scan(&asset.ID, &asset.WebsiteID, &asset.Filename, &asset.OriginalName,
			&asset.MimeType, &asset.FileSize, &asset.URL, &asset.CreatedAt)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func (r *AssetRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.tx.Exec(ctx, "DELETE FROM cms.assets WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AssetRepo) DeleteByWebsite(ctx context.Context, websiteID int64) error {
	_, err := r.tx.Exec(ctx, "DELETE FROM cms.assets WHERE website_id = $1", websiteID)
	return err
}
