package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pagesmith/pagesmith-backend/internal/application/interfaces"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
)

// TemplateRepo reads block templates. They are shared reference data and never
// written through the application.
type TemplateRepo struct {
	tx pgx.Tx
}

var _ interfaces.TemplateRepo = (*TemplateRepo)(nil)

func NewTemplateRepo(tx pgx.Tx) *TemplateRepo {
	return &TemplateRepo{tx: tx}
}

func (r *TemplateRepo) List(ctx context.Context) ([]db.BlockTemplate, error) {
	rows, err := r.tx.Query(ctx,
		`SELECT id, name, category, description, default_content, settings_schema, created_at
		FROM cms.block_templates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []db.BlockTemplate{}
	for rows.Next() {
		var template db.BlockTemplate
		err = rows.Scan(&template.ID, &template.Name, &template.Category, &template.Description,
			&template.DefaultContent, &template.SettingsSchema, &template.CreatedAt)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}

func (r *TemplateRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM cms.block_templates WHERE id = $1)", id).Scan(&exists)
	return exists, err
}
