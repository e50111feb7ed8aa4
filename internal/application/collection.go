package application

import (
	"github.com/pagesmith/pagesmith-backend/internal/application/commands/asset"
	"github.com/pagesmith/pagesmith-backend/internal/application/commands/block"
	"github.com/pagesmith/pagesmith-backend/internal/application/commands/page"
	"github.com/pagesmith/pagesmith-backend/internal/application/commands/website"
	"github.com/pagesmith/pagesmith-backend/internal/application/query"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
)

type Collection struct {
	*website.CreateWebsite
	*website.UpdateWebsite
	*website.DeleteWebsite
	*page.CreatePage
	*page.UpdatePage
	*page.DeletePage
	*block.CreatePageBlock
	*block.UpdatePageBlock
	*block.DeletePageBlock
	*block.ReorderPageBlocks
	*asset.CreateAsset
	*asset.DeleteAsset
	*query.GetWebsite
	*query.GetWebsites
	*query.GetPage
	*query.GetPages
	*query.GetPageBlocks
	*query.GetBlockTemplates
	*query.GetAssets
	*query.ExportWebsite
}

func NewCollection(factory *dbs.UOWFactory) *Collection {
	return &Collection{
		CreateWebsite:     website.NewCreateWebsite(factory),
		UpdateWebsite:     website.NewUpdateWebsite(factory),
		DeleteWebsite:     website.NewDeleteWebsite(factory),
		CreatePage:        page.NewCreatePage(factory),
		UpdatePage:        page.NewUpdatePage(factory),
		DeletePage:        page.NewDeletePage(factory),
		CreatePageBlock:   block.NewCreatePageBlock(factory),
		UpdatePageBlock:   block.NewUpdatePageBlock(factory),
		DeletePageBlock:   block.NewDeletePageBlock(factory),
		ReorderPageBlocks: block.NewReorderPageBlocks(factory),
		CreateAsset:       asset.NewCreateAsset(factory),
		DeleteAsset:       asset.NewDeleteAsset(factory),
		GetWebsite:        query.NewGetWebsite(factory),
		GetWebsites:       query.NewGetWebsites(factory),
		GetPage:           query.NewGetPage(factory),
		GetPages:          query.NewGetPages(factory),
		GetPageBlocks:     query.NewGetPageBlocks(factory),
		GetBlockTemplates: query.NewGetBlockTemplates(factory),
		GetAssets:         query.NewGetAssets(factory),
		ExportWebsite:     query.NewExportWebsite(factory),
	}
}
