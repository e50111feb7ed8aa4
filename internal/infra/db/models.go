package db

import (
	"encoding/json"
	"time"
)

type Website struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Domain      *string   `db:"domain" json:"domain"`
	IsPublished bool      `db:"is_published" json:"is_published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Page struct {
	ID              int64     `db:"id" json:"id"`
	WebsiteID       int64     `db:"website_id" json:"website_id"`
	Title           string    `db:"title" json:"title"`
	Slug            string    `db:"slug" json:"slug"`
	MetaDescription *string   `db:"meta_description" json:"meta_description"`
	SeoTitle        *string   `db:"seo_title" json:"seo_title"`
	SeoKeywords     *string   `db:"seo_keywords" json:"seo_keywords"`
	IsHomepage      bool      `db:"is_homepage" json:"is_homepage"`
	SortOrder       int       `db:"sort_order" json:"sort_order"`
	IsPublished     bool      `db:"is_published" json:"is_published"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type BlockTemplate struct {
	ID             int64           `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`
	Category       string          `db:"category" json:"category"`
	Description    *string         `db:"description" json:"description"`
	DefaultContent json.RawMessage `db:"default_content" json:"default_content"`
	SettingsSchema json.RawMessage `db:"settings_schema" json:"settings_schema"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

type PageBlock struct {
	ID              int64           `db:"id" json:"id"`
	PageID          int64           `db:"page_id" json:"page_id"`
	BlockTemplateID int64           `db:"block_template_id" json:"block_template_id"`
	Content         json.RawMessage `db:"content" json:"content"`
	Settings        json.RawMessage `db:"settings" json:"settings"`
	SortOrder       int             `db:"sort_order" json:"sort_order"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

type Asset struct {
	ID           int64     `db:"id" json:"id"`
	WebsiteID    int64     `db:"website_id" json:"website_id"`
	Filename     string    `db:"filename" json:"filename"`
	OriginalName string    `db:"original_name" json:"original_name"`
	MimeType     string    `db:"mime_type" json:"mime_type"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	URL          string    `db:"url" json:"url"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
