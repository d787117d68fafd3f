package server

import (
	"chesnokuz/internal/models"
	"chesnokuz/internal/repository"
	"chesnokuz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPosts returns posts, newest first, honoring ?is_active=, ?category_id=
// and ?tag_id= filters.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	filter := repository.PostFilter{
		IsActive:   parseBoolQuery(c, "is_active"),
		CategoryID: parseUintQuery(c, "category_id"),
		TagID:      parseUintQuery(c, "tag_id"),
	}

	posts, err := s.postService.ListPosts(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// ListPostsByAuthor returns all posts written by the given user.
func (s *Server) ListPostsByAuthor(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListByAuthor(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPost resolves a post by slug and counts the view.
func (s *Server) GetPost(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Slug is required"))
	}

	post, err := s.postService.ViewPost(c.UserContext(), slug)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// CreatePost publishes a new post.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in service.CreatePostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// UpdatePost replaces a post wholesale.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in service.UpdatePostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// PatchPost updates only the fields present in the payload.
func (s *Server) PatchPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in service.PatchPostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.PatchPost(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost removes a post with its comments, likes and attachments.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AttachTag links a tag to a post.
func (s *Server) AttachTag(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	tagID, err := s.parseID(c, "tagId")
	if err != nil {
		return nil
	}

	if err := s.postService.AttachTag(c.UserContext(), postID, tagID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"attached": true})
}

// DetachTag unlinks a tag from a post.
func (s *Server) DetachTag(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	tagID, err := s.parseID(c, "tagId")
	if err != nil {
		return nil
	}

	if err := s.postService.DetachTag(c.UserContext(), postID, tagID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AttachMedia links a media asset to a post.
func (s *Server) AttachMedia(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	mediaID, err := s.parseID(c, "mediaId")
	if err != nil {
		return nil
	}

	if err := s.postService.AttachMedia(c.UserContext(), postID, mediaID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"attached": true})
}

// DetachMedia unlinks a media asset from a post.
func (s *Server) DetachMedia(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	mediaID, err := s.parseID(c, "mediaId")
	if err != nil {
		return nil
	}

	if err := s.postService.DetachMedia(c.UserContext(), postID, mediaID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
