package rest

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pagesmith/pagesmith-backend/internal/application"
	"github.com/pagesmith/pagesmith-backend/internal/application/dto"
	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
)

type Server struct {
	commands *application.Collection
}

func NewServer(commands *application.Collection) *Server {
	return &Server{commands: commands}
}

func (s *Server) Healthcheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.HealthcheckResponse{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (s *Server) CreateWebsite(c *fiber.Ctx) error {
	var req dto.CreateWebsiteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	website, err := s.commands.CreateWebsite.Execute(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(website)
}

func (s *Server) GetWebsites(c *fiber.Ctx) error {
	websites, err := s.commands.GetWebsites.Query(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(websites)
}

func (s *Server) GetWebsite(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	website, err := s.commands.GetWebsite.Query(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if website == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusOK).JSON(website)
}

func (s *Server) UpdateWebsite(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	var req dto.UpdateWebsiteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	website, err := s.commands.UpdateWebsite.Execute(c.Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(website)
}

func (s *Server) DeleteWebsite(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	deleted, err := s.commands.DeleteWebsite.Execute(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeleteResponse{Success: deleted})
}

func (s *Server) GetWebsitePages(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	pages, err := s.commands.GetPages.Query(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(pages)
}

func (s *Server) GetWebsiteAssets(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	assets, err := s.commands.GetAssets.Query(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(assets)
}

func (s *Server) ExportWebsite(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	export, err := s.commands.ExportWebsite.Query(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(export)
}

func (s *Server) CreatePage(c *fiber.Ctx) error {
	var req dto.CreatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	page, err := s.commands.CreatePage.Execute(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(page)
}

func (s *Server) GetPage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	page, err := s.commands.GetPage.Query(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if page == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

func (s *Server) UpdatePage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	var req dto.UpdatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	page, err := s.commands.UpdatePage.Execute(c.Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

func (s *Server) DeletePage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	deleted, err := s.commands.DeletePage.Execute(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeleteResponse{Success: deleted})
}

func (s *Server) GetPageBlocks(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	blocks, err := s.commands.GetPageBlocks.Query(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(blocks)
}

func (s *Server) CreatePageBlock(c *fiber.Ctx) error {
	var req dto.CreatePageBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	block, err := s.commands.CreatePageBlock.Execute(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(block)
}

func (s *Server) UpdatePageBlock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	var req dto.UpdatePageBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	block, err := s.commands.UpdatePageBlock.Execute(c.Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(block)
}

func (s *Server) DeletePageBlock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	deleted, err := s.commands.DeletePageBlock.Execute(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeleteResponse{Success: deleted})
}

func (s *Server) ReorderPageBlocks(c *fiber.Ctx) error {
	var req dto.ReorderBlocksRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	if err := s.commands.ReorderPageBlocks.Execute(c.Context(), &req); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeleteResponse{Success: true})
}

func (s *Server) GetBlockTemplates(c *fiber.Ctx) error {
	templates, err := s.commands.GetBlockTemplates.Query(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(templates)
}

func (s *Server) CreateAsset(c *fiber.Ctx) error {
	var req dto.CreateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	asset, err := s.commands.CreateAsset.Execute(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(asset)
}

func (s *Server) DeleteAsset(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	deleted, err := s.commands.DeleteAsset.Execute(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeleteResponse{Success: deleted})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, err
	}
	return int64(id), nil
}

func respondError(c *fiber.Ctx, err error) error {
	var validationErr errs.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	var notFoundErr errs.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}
