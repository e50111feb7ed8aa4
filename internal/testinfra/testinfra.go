package testinfra

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var Pool *pgxpool.Pool

func init() {
	Pool = SetupDB()
}

func SetupDB() *pgxpool.Pool {

	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:17.2-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "password",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections"),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	if err != nil {
		log.Panicf("start postgres: %v", err)
	}

	pgHostPort, err := pgC.Endpoint(ctx, "")
	if err != nil {
		log.Panicf("postgres endpoint: %v", err)
	}
	pgDSN := fmt.Sprintf("postgres://postgres:password@%s/testdb?sslmode=disable", pgHostPort)

	pool, err := pgxpool.New(ctx, pgDSN)
	if err != nil {
		log.Panicf("pgxpool connect: %v", err)
	}

	ok := false
	for i := 0; i < 20; i++ {
		slog.Info("ping db", "try", i)
		ctxPing, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		err = pool.Ping(ctxPing)
		cancel()
		if err == nil {
			ok = true
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if !ok {
		log.Panic("db did not respond after 20 attempts")
	}

	_, err = pool.Exec(ctx, `
		CREATE SCHEMA IF NOT EXISTS cms;
		CREATE TABLE IF NOT EXISTS cms.websites (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			domain TEXT,
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS cms.pages (
			id BIGSERIAL PRIMARY KEY,
			website_id BIGINT NOT NULL,
			title TEXT NOT NULL,
			slug TEXT NOT NULL,
			meta_description TEXT,
			seo_title TEXT,
			seo_keywords TEXT,
			is_homepage BOOLEAN NOT NULL DEFAULT FALSE,
			sort_order INTEGER NOT NULL DEFAULT 0,
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS cms.block_templates (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT,
			default_content JSONB NOT NULL,
			settings_schema JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS cms.page_blocks (
			id BIGSERIAL PRIMARY KEY,
			page_id BIGINT NOT NULL,
			block_template_id BIGINT NOT NULL,
			content JSONB NOT NULL,
			settings JSONB NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS cms.assets (
			id BIGSERIAL PRIMARY KEY,
			website_id BIGINT NOT NULL,
			filename TEXT NOT NULL,
			original_name TEXT NOT NULL,
			mime_type TEXT NOT NULL,
			file_size BIGINT NOT NULL,
			url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	if err != nil {
		log.Panicf("create tables: %v", err)
	}

	return pool
}

// SeedTemplate inserts a block template directly; templates are read-only
// reference data with no create operation in the application.
func SeedTemplate(ctx context.Context, name, category string) int64 {
	var id int64
	err := Pool.QueryRow(ctx, `INSERT INTO cms.block_templates(name, category, default_content, settings_schema, created_at)
		VALUES ($1, $2, '{"text":"hello"}', '{}', $3) RETURNING id`, name, category, time.Now()).Scan(&id)
	if err != nil {
		log.Panicf("seed template: %v", err)
	}
	return id
}
