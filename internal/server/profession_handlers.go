package server

import (
	"strings"

	"chesnokuz/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListProfessions returns every profession.
func (s *Server) ListProfessions(c *fiber.Ctx) error {
	professions, err := s.professionRepo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(professions)
}

// CreateProfession adds a profession.
func (s *Server) CreateProfession(c *fiber.Ctx) error {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(in.Name) == "" {
		return respondError(c, models.NewValidationError("Name is required"))
	}
	if len(in.Name) > 50 {
		return respondError(c, models.NewValidationError("Name too long (max 50 characters)"))
	}

	profession := &models.Profession{Name: in.Name}
	if err := s.professionRepo.Create(c.UserContext(), profession); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profession)
}
