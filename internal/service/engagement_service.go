package service

import (
	"context"
	"strings"

	"chesnokuz/internal/middleware"
	"chesnokuz/internal/models"
	"chesnokuz/internal/repository"
)

type EngagementService struct {
	engagementRepo repository.EngagementRepository
}

func NewEngagementService(engagementRepo repository.EngagementRepository) *EngagementService {
	return &EngagementService{engagementRepo: engagementRepo}
}

// LikeResult reports whether the request changed anything. A repeated like or
// unlike from the same device succeeds without moving the counter.
type LikeResult struct {
	Changed bool `json:"changed"`
}

// Like records a like on the post for the device behind the user-agent.
func (s *EngagementService) Like(ctx context.Context, userAgent string, postID uint) (*LikeResult, error) {
	device, err := s.resolveDevice(ctx, userAgent)
	if err != nil {
		return nil, err
	}

	liked, err := s.engagementRepo.Like(ctx, device.ID, postID)
	if err != nil {
		return nil, err
	}
	if liked {
		middleware.LikeEvents.WithLabelValues("like").Inc()
	}
	return &LikeResult{Changed: liked}, nil
}

// Unlike removes the device's like from the post if present.
func (s *EngagementService) Unlike(ctx context.Context, userAgent string, postID uint) (*LikeResult, error) {
	device, err := s.resolveDevice(ctx, userAgent)
	if err != nil {
		return nil, err
	}

	removed, err := s.engagementRepo.Unlike(ctx, device.ID, postID)
	if err != nil {
		return nil, err
	}
	if removed {
		middleware.LikeEvents.WithLabelValues("unlike").Inc()
	}
	return &LikeResult{Changed: removed}, nil
}

func (s *EngagementService) resolveDevice(ctx context.Context, userAgent string) (*models.Device, error) {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil, models.NewValidationError("User-Agent header is required")
	}
	if len(userAgent) > 255 {
		userAgent = userAgent[:255]
	}
	return s.engagementRepo.FindOrCreateDevice(ctx, userAgent)
}
