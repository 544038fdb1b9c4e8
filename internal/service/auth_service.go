package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/model"
	"github.com/lshigami/admission/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(req dto.SignupRequest) (*dto.UserProfile, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	// EnsureAdmin creates the reviewer account if it does not exist yet.
	EnsureAdmin(email, password string) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	validate *validator.Validate
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, validate: newValidator()}
}

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validationFailed(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := map[string][]string{}
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "This field is required"
		case "email":
			msg = "Enter a valid email address"
		case "min":
			msg = fmt.Sprintf("Must be at least %s characters", fe.Param())
		case "max":
			msg = fmt.Sprintf("Must be at most %s characters", fe.Param())
		default:
			msg = "Invalid value"
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return &ValidationFailedError{Errors: out}
}

func (s *authService) Signup(req dto.SignupRequest) (*dto.UserProfile, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validate.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		NameInitial:  req.NameInitial,
		Role:         model.RoleApplicant,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}
	log.Info().Uint("user_id", user.ID).Msg("User signed up")
	return &dto.UserProfile{Email: user.Email, Name: user.Name, NameInitial: user.NameInitial}, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Status: dto.StatusSuccess, Token: token, Email: user.Email}, nil
}

func (s *authService) EnsureAdmin(email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	admin := model.User{Email: email, PasswordHash: string(hash), Name: "Administrator", Role: model.RoleAdmin}
	if err := s.userRepo.Create(&admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Info().Str("email", email).Msg("Admin account created")
	return nil
}
