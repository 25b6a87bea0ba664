package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"learninghub/internal/dto"
	"learninghub/internal/middleware"
	"learninghub/internal/services"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) Feed(c *fiber.Ctx) error {
	var sources []string
	if raw := c.Query("sources"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				sources = append(sources, s)
			}
		}
	}

	content, err := h.contentService.Feed(sources)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch content",
		})
	}

	return c.JSON(content)
}

func (h *ContentHandler) Saved(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	content, err := h.contentService.Saved(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch saved content",
		})
	}

	return c.JSON(content)
}

func (h *ContentHandler) Save(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SaveContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	credits, err := h.contentService.Save(user.ID, req.ContentID)
	if err != nil {
		return engagementError(c, err)
	}

	return c.JSON(dto.EngagementResponse{Message: "Content saved", Credits: credits})
}

func (h *ContentHandler) Share(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ShareContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	credits, err := h.contentService.Share(user.ID, req.ContentID)
	if err != nil {
		return engagementError(c, err)
	}

	return c.JSON(dto.EngagementResponse{Message: "Content shared", Credits: credits})
}

func (h *ContentHandler) Report(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ReportContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	credits, err := h.contentService.Report(user.ID, req.ContentID, strings.TrimSpace(req.Reason))
	if err != nil {
		return engagementError(c, err)
	}

	return c.JSON(dto.EngagementResponse{Message: "Content reported", Credits: credits})
}

func engagementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrContentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrAlreadySaved), errors.Is(err, services.ErrAlreadyReported):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
