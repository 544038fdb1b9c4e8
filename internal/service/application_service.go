package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/admission/internal/cache"
	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/form"
	"github.com/lshigami/admission/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ApplicationService interface {
	GetPage3(userID uint) (*dto.Page3Data, error)
	SubmitPage3(ctx context.Context, userID uint, sub dto.Page3Submission) error
}

type applicationService struct {
	userRepo repository.UserRepository
	appRepo  repository.ApplicationRepository
	previews cache.PreviewCache
}

func NewApplicationService(userRepo repository.UserRepository, appRepo repository.ApplicationRepository, previews cache.PreviewCache) ApplicationService {
	return &applicationService{userRepo: userRepo, appRepo: appRepo, previews: previews}
}

func (s *applicationService) GetPage3(userID uint) (*dto.Page3Data, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	app, err := s.appRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.Page3Data{
				Email:          user.Email,
				NameInitial:    user.NameInitial,
				Qualifications: []dto.QualificationDTO{},
				SemesterMarks:  []dto.SemesterDTO{},
			}, nil
		}
		return nil, fmt.Errorf("load application of user %d: %w", userID, err)
	}
	data := toPage3Data(app)
	if data.NameInitial == "" {
		data.NameInitial = user.NameInitial
	}
	return &data, nil
}

// SubmitPage3 re-validates the cleaned page and stores it. Rule violations are
// returned as *ValidationFailedError.
func (s *applicationService) SubmitPage3(ctx context.Context, userID uint, sub dto.Page3Submission) error {
	if v := form.ValidateSubmission(sub); !v.IsValid {
		log.Warn().Uint("user_id", userID).Str("errors", v.Errors.String()).Msg("Page 3 submission rejected")
		return &ValidationFailedError{Errors: v.Errors}
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load user %d: %w", userID, err)
	}
	app, err := s.appRepo.FirstOrCreate(user.ID, user.Email)
	if err != nil {
		return fmt.Errorf("load application of user %d: %w", userID, err)
	}
	if err := applySubmission(app, sub); err != nil {
		return fmt.Errorf("encode semester marks: %w", err)
	}
	rows, err := qualificationRows(sub)
	if err != nil {
		return fmt.Errorf("copy qualifications: %w", err)
	}
	if err := s.appRepo.Replace(app, rows); err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("Failed to save page 3")
		return fmt.Errorf("save application: %w", err)
	}
	s.previews.Invalidate(ctx, userID)
	log.Info().Uint("user_id", userID).Uint("application_id", app.ID).Int("qualifications", len(rows)).Msg("Page 3 saved")
	return nil
}
