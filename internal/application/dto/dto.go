package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
)

type CreateWebsiteRequest struct {
	Name   string  `json:"name"`
	Domain *string `json:"domain"`
}

func (r CreateWebsiteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

type UpdateWebsiteRequest struct {
	Name        *string          `json:"name"`
	Domain      Optional[string] `json:"domain"`
	IsPublished *bool            `json:"is_published"`
}

func (r UpdateWebsiteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty),
	)
}

type CreatePageRequest struct {
	WebsiteID       int64   `json:"website_id"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	MetaDescription *string `json:"meta_description"`
	SeoTitle        *string `json:"seo_title"`
	SeoKeywords     *string `json:"seo_keywords"`
	IsHomepage      bool    `json:"is_homepage"`
}

func (r CreatePageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WebsiteID, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Slug, validation.Required),
	)
}

type UpdatePageRequest struct {
	Title           *string          `json:"title"`
	Slug            *string          `json:"slug"`
	MetaDescription Optional[string] `json:"meta_description"`
	SeoTitle        Optional[string] `json:"seo_title"`
	SeoKeywords     Optional[string] `json:"seo_keywords"`
	IsHomepage      *bool            `json:"is_homepage"`
	SortOrder       *int             `json:"sort_order"`
	IsPublished     *bool            `json:"is_published"`
}

func (r UpdatePageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.Slug, validation.NilOrNotEmpty),
	)
}

type CreatePageBlockRequest struct {
	PageID          int64                  `json:"page_id"`
	BlockTemplateID int64                  `json:"block_template_id"`
	Content         map[string]interface{} `json:"content"`
	Settings        map[string]interface{} `json:"settings"`
	SortOrder       *int                   `json:"sort_order"`
}

func (r CreatePageBlockRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PageID, validation.Required),
		validation.Field(&r.BlockTemplateID, validation.Required),
	)
}

// UpdatePageBlockRequest treats a nil map as "not provided"; content and
// settings are never null in storage.
type UpdatePageBlockRequest struct {
	Content   map[string]interface{} `json:"content"`
	Settings  map[string]interface{} `json:"settings"`
	SortOrder *int                   `json:"sort_order"`
}

type ReorderBlocksRequest struct {
	BlockIDs []int64 `json:"block_ids"`
}

type CreateAssetRequest struct {
	WebsiteID    int64  `json:"website_id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	FileSize     int64  `json:"file_size"`
	URL          string `json:"url"`
}

func (r CreateAssetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WebsiteID, validation.Required),
		validation.Field(&r.Filename, validation.Required),
		validation.Field(&r.OriginalName, validation.Required),
		validation.Field(&r.MimeType, validation.Required),
		validation.Field(&r.FileSize, validation.Min(0)),
		validation.Field(&r.URL, validation.Required),
	)
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type WebsiteExport struct {
	Website db.Website     `json:"website"`
	Pages   []db.Page      `json:"pages"`
	Blocks  []db.PageBlock `json:"blocks"`
	Assets  []db.Asset     `json:"assets"`
}

type HealthcheckResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
