package server

import (
	"github.com/gofiber/fiber/v2"
)

// ListSearchTerms reports recorded user lookup terms, most searched first.
func (s *Server) ListSearchTerms(c *fiber.Ctx) error {
	terms, err := s.searchRepo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(terms)
}
