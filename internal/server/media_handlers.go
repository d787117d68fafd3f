package server

import (
	"chesnokuz/internal/models"
	"chesnokuz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListMedia returns all registered media assets.
func (s *Server) ListMedia(c *fiber.Ctx) error {
	media, err := s.mediaService.ListMedia(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(media)
}

// GetMedia returns a media asset by id.
func (s *Server) GetMedia(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	media, err := s.mediaService.GetMedia(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(media)
}

// CreateMedia registers a media asset by URL.
func (s *Server) CreateMedia(c *fiber.Ctx) error {
	var in service.MediaInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	media, err := s.mediaService.CreateMedia(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(media)
}

// UpdateMedia replaces a media asset's URL.
func (s *Server) UpdateMedia(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in service.MediaInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	media, err := s.mediaService.UpdateMedia(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(media)
}

// DeleteMedia removes a media asset and its post links.
func (s *Server) DeleteMedia(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.mediaService.DeleteMedia(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
