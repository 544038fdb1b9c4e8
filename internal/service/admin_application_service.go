package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/repository"
	"github.com/lshigami/admission/internal/upload"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminApplicationService interface {
	List() ([]dto.ApplicationSummary, error)
	Get(id uint) (*dto.Page3Data, error)
}

type adminApplicationService struct {
	appRepo repository.ApplicationRepository
}

func NewAdminApplicationService(appRepo repository.ApplicationRepository) AdminApplicationService {
	return &adminApplicationService{appRepo: appRepo}
}

func (s *adminApplicationService) List() ([]dto.ApplicationSummary, error) {
	rows, err := s.appRepo.FindAllWithCounts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list applications")
		return nil, fmt.Errorf("list applications: %w", err)
	}
	out := make([]dto.ApplicationSummary, 0, len(rows))
	for _, r := range rows {
		page := toPage3Data(&r.Application)
		out = append(out, dto.ApplicationSummary{
			ID:                 r.ID,
			Email:              r.Email,
			Name:               r.Name,
			QualificationCount: r.QualificationCount,
			SemesterCount:      len(page.SemesterMarks),
			Percentage:         r.Percentage,
			DocumentsComplete:  r.DocumentCount >= len(upload.DocumentTargets),
			UpdatedAt:          r.UpdatedAt,
		})
	}
	return out, nil
}

func (s *adminApplicationService) Get(id uint) (*dto.Page3Data, error) {
	app, err := s.appRepo.FindByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load application %d: %w", id, err)
	}
	data := toPage3Data(app)
	if data.NameInitial == "" {
		data.NameInitial = app.User.NameInitial
	}
	return &data, nil
}
