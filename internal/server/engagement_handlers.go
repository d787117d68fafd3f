package server

import (
	"github.com/gofiber/fiber/v2"
)

// LikePost records a like from the requesting device, identified by its
// User-Agent header. Repeats are no-ops.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.engagementService.Like(c.UserContext(), c.Get(fiber.HeaderUserAgent), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// UnlikePost withdraws the requesting device's like, if any.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.engagementService.Unlike(c.UserContext(), c.Get(fiber.HeaderUserAgent), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
