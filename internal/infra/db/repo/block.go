package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pagesmith/pagesmith-backend/internal/application/interfaces"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
)

type BlockRepo struct {
	tx pgx.Tx
}

var _ interfaces.BlockRepo = (*BlockRepo)(nil)

func NewBlockRepo(tx pgx.Tx) *BlockRepo {
	return &BlockRepo{tx: tx}
}

const blockColumns = "id, page_id, block_template_id, content, settings, sort_order, created_at, updated_at"

func scanBlock(row pgx.Row) (*db.PageBlock, error) {
	var block db.PageBlock
	err := row.Scan(&block.ID, &block.PageID, &block.BlockTemplateID, &block.Content,
		&block.Settings, &block.SortOrder, &block.CreatedAt, &block.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *BlockRepo) Insert(ctx context.Context, block db.PageBlock) (*db.PageBlock, error) {
	query := `INSERT INTO cms.page_blocks(page_id, block_template_id, content, settings, sort_order, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`
	err := r.tx.QueryRow(ctx, query, block.PageID, block.BlockTemplateID, block.Content,
		block.Settings, block.SortOrder, block.CreatedAt, block.UpdatedAt).Scan(&block.ID)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *BlockRepo) GetByID(ctx context.Context, id int64) (*db.PageBlock, error) {
	block, err := scanBlock(r.tx.QueryRow(ctx,
		"SELECT "+blockColumns+" FROM cms.page_blocks WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return block, err
}

// ListByPage returns blocks ascending by sort_order, ties broken by id.
func (r *BlockRepo) ListByPage(ctx context.Context, pageID int64) ([]db.PageBlock, error) {
	rows, err := r.tx.Query(ctx,
		"SELECT "+blockColumns+" FROM cms.page_blocks WHERE page_id = $1 ORDER BY sort_order, id", pageID)
	if err != nil {
		return nil, err
	}
	return collectBlocks(rows)
}

// ListByWebsite gathers blocks across all of the website's pages. The subquery
// keeps it a single statement and is naturally empty when the website has no
// pages.
func (r *BlockRepo) ListByWebsite(ctx context.Context, websiteID int64) ([]db.PageBlock, error) {
	rows, err := r.tx.Query(ctx,
		`SELECT `+blockColumns+` FROM cms.page_blocks
		WHERE page_id IN (SELECT id FROM cms.pages WHERE website_id = $1) ORDER BY id`, websiteID)
	if err != nil {
		return nil, err
	}
	return collectBlocks(rows)
}

func collectBlocks(rows pgx.Rows) ([]db.PageBlock, error) {
	defer rows.Close()
	blocks := []db.PageBlock{}
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, *block)
	}
	return blocks, rows.Err()
}

// MaxSortOrder returns nil when the page has no blocks.
func (r *BlockRepo) MaxSortOrder(ctx context.Context, pageID int64) (*int, error) {
	var max *int
	err := r.tx.QueryRow(ctx,
		"SELECT MAX(sort_order) FROM cms.page_blocks WHERE page_id = $1", pageID).Scan(&max)
	if err != nil {
		return nil, err
	}
	return max, nil
}

func (r *BlockRepo) SetSortOrder(ctx context.Context, id int64, sortOrder int) error {
	_, err := r.tx.Exec(ctx,
		"UPDATE cms.page_blocks SET sort_order = $1, updated_at = $2 WHERE id = $3",
		sortOrder, time.Now(), id)
	return err
}

func (r *BlockRepo) Update(ctx context.Context, block db.PageBlock) error {
	_, err := r.tx.Exec(ctx,
		"UPDATE cms.page_blocks SET content = $1, settings = $2, sort_order = $3, updated_at = $4 WHERE id = $5",
		block.Content, block.Settings, block.SortOrder, block.UpdatedAt, block.ID)
	return err
}

func (r *BlockRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.tx.Exec(ctx, "DELETE FROM cms.page_blocks WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BlockRepo) DeleteByPage(ctx context.Context, pageID int64) error {
	_, err := r.tx.Exec(ctx, "DELETE FROM cms.page_blocks WHERE page_id = $1", pageID)
	return err
}

func (r *BlockRepo) DeleteByWebsite(ctx context.Context, websiteID int64) error {
	_, err := r.tx.Exec(ctx,
		"DELETE FROM cms.page_blocks WHERE page_id IN (SELECT id FROM cms.pages WHERE website_id = $1)", websiteID)
	return err
}
