package service

import (
	"context"
	"net/url"
	"strings"

	"chesnokuz/internal/models"
	"chesnokuz/internal/repository"
)

type MediaService struct {
	mediaRepo repository.MediaRepository
}

type MediaInput struct {
	URL string `json:"url"`
}

func NewMediaService(mediaRepo repository.MediaRepository) *MediaService {
	return &MediaService{mediaRepo: mediaRepo}
}

func validateMediaURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.NewValidationError("url is required")
	}
	if len(raw) > 100 {
		return models.NewValidationError("url too long (max 100 characters)")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return models.NewValidationError("url must be a valid URL")
	}
	return nil
}

func (s *MediaService) CreateMedia(ctx context.Context, in MediaInput) (*models.Media, error) {
	if err := validateMediaURL(in.URL); err != nil {
		return nil, err
	}
	media := &models.Media{URL: strings.TrimSpace(in.URL)}
	if err := s.mediaRepo.Create(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *MediaService) GetMedia(ctx context.Context, id uint) (*models.Media, error) {
	return s.mediaRepo.GetByID(ctx, id)
}

func (s *MediaService) ListMedia(ctx context.Context) ([]models.Media, error) {
	return s.mediaRepo.List(ctx)
}

func (s *MediaService) UpdateMedia(ctx context.Context, id uint, in MediaInput) (*models.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateMediaURL(in.URL); err != nil {
		return nil, err
	}
	media.URL = strings.TrimSpace(in.URL)
	if err := s.mediaRepo.Update(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *MediaService) DeleteMedia(ctx context.Context, id uint) error {
	return s.mediaRepo.Delete(ctx, id)
}
