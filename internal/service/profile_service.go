package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/form"
	"github.com/lshigami/admission/internal/model"
	"github.com/lshigami/admission/internal/repository"
	"github.com/lshigami/admission/internal/upload"
	"gorm.io/gorm"
)

type ProfileService interface {
	Profile(userID uint) (*dto.UserProfile, error)
	Autofill(userID uint) (*dto.AutofillData, error)
}

type profileService struct {
	userRepo repository.UserRepository
	appRepo  repository.ApplicationRepository
}

func NewProfileService(userRepo repository.UserRepository, appRepo repository.ApplicationRepository) ProfileService {
	return &profileService{userRepo: userRepo, appRepo: appRepo}
}

func (s *profileService) user(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	return user, nil
}

func (s *profileService) Profile(userID uint) (*dto.UserProfile, error) {
	user, err := s.user(userID)
	if err != nil {
		return nil, err
	}
	var profile dto.UserProfile
	if err := copier.Copy(&profile, user); err != nil {
		return nil, fmt.Errorf("copy profile: %w", err)
	}
	return &profile, nil
}

// Autofill returns the identity block plus what later pages can reuse from
// the saved application.
func (s *profileService) Autofill(userID uint) (*dto.AutofillData, error) {
	user, err := s.user(userID)
	if err != nil {
		return nil, err
	}
	var out dto.AutofillData
	if err := copier.Copy(&out, user); err != nil {
		return nil, fmt.Errorf("copy profile: %w", err)
	}
	app, err := s.appRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &out, nil
		}
		return nil, fmt.Errorf("load application of user %d: %w", userID, err)
	}
	if app.NameInitial != "" {
		out.NameInitial = app.NameInitial
	}
	for _, q := range app.Qualifications {
		switch q.Course {
		case form.CourseSSLC:
			out.SSLCPercentage = q.Percentage
		case form.CourseHSC:
			out.HSCPercentage = q.Percentage
		}
	}
	for _, d := range app.Documents {
		if d.Field == upload.TargetPhoto {
			out.PhotoURL = d.URL
		}
	}
	return &out, nil
}
