package rest

import "github.com/gofiber/fiber/v2"

func RegisterHandlers(app *fiber.App, s *Server) {
	app.Get("/healthcheck", s.Healthcheck)

	app.Post("/websites", s.CreateWebsite)
	app.Get("/websites", s.GetWebsites)
	app.Get("/websites/:id", s.GetWebsite)
	app.Put("/websites/:id", s.UpdateWebsite)
	app.Delete("/websites/:id", s.DeleteWebsite)
	app.Get("/websites/:id/pages", s.GetWebsitePages)
	app.Get("/websites/:id/assets", s.GetWebsiteAssets)
	app.Get("/websites/:id/export", s.ExportWebsite)

	app.Post("/pages", s.CreatePage)
	app.Get("/pages/:id", s.GetPage)
	app.Put("/pages/:id", s.UpdatePage)
	app.Delete("/pages/:id", s.DeletePage)
	app.Get("/pages/:id/blocks", s.GetPageBlocks)

	app.Post("/blocks", s.CreatePageBlock)
	app.Post("/blocks/reorder", s.ReorderPageBlocks)
	app.Put("/blocks/:id", s.UpdatePageBlock)
	app.Delete("/blocks/:id", s.DeletePageBlock)

	app.Get("/block-templates", s.GetBlockTemplates)

	app.Post("/assets", s.CreateAsset)
	app.Delete("/assets/:id", s.DeleteAsset)
}
