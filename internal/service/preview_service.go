package service

import (
	"context"

	"github.com/lshigami/admission/internal/cache"
	"github.com/lshigami/admission/internal/dto"
	"github.com/rs/zerolog/log"
)

type PreviewService interface {
	Preview(ctx context.Context, userID uint) (*dto.PreviewData, error)
}

type previewService struct {
	profiles ProfileService
	apps     ApplicationService
	previews cache.PreviewCache
}

// NewPreviewService builds the preview from the profile and page 3. Entries are
// dropped from the cache whenever page 3 or the documents change.
func NewPreviewService(profiles ProfileService, apps ApplicationService, previews cache.PreviewCache) PreviewService {
	return &previewService{profiles: profiles, apps: apps, previews: previews}
}

func (s *previewService) Preview(ctx context.Context, userID uint) (*dto.PreviewData, error) {
	if data, hit := s.previews.Get(ctx, userID); hit {
		log.Debug().Uint("user_id", userID).Msg("Preview served from cache")
		return data, nil
	}
	profile, err := s.profiles.Profile(userID)
	if err != nil {
		return nil, err
	}
	page3, err := s.apps.GetPage3(userID)
	if err != nil {
		return nil, err
	}
	data := &dto.PreviewData{Student: *profile, Application: *page3}
	s.previews.Set(ctx, userID, data)
	return data, nil
}
