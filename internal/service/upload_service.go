package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/lshigami/admission/internal/cache"
	"github.com/lshigami/admission/internal/form"
	"github.com/lshigami/admission/internal/model"
	"github.com/lshigami/admission/internal/repository"
	"github.com/lshigami/admission/internal/storage"
	"github.com/lshigami/admission/internal/upload"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FileInput is one received multipart file.
type FileInput struct {
	Name string
	Data []byte
}

type UploadService interface {
	UploadMarksheet(ctx context.Context, userID uint, qualificationType string, file FileInput) (string, error)
	UploadDocuments(ctx context.Context, userID uint, files map[string]FileInput) (map[string]string, error)
}

type uploadService struct {
	userRepo repository.UserRepository
	appRepo  repository.ApplicationRepository
	store    storage.ObjectStore
	previews cache.PreviewCache
	now      func() time.Time
}

func NewUploadService(userRepo repository.UserRepository, appRepo repository.ApplicationRepository, store storage.ObjectStore, previews cache.PreviewCache) UploadService {
	return &uploadService{userRepo: userRepo, appRepo: appRepo, store: store, previews: previews, now: time.Now}
}

// sniff checks the received bytes against the policy of target. The declared
// content type of the part is ignored.
func sniff(target string, f FileInput) (string, error) {
	p, ok := upload.PolicyFor(target)
	if !ok {
		return "", fmt.Errorf("unknown upload target %q", target)
	}
	ct := mimetype.Detect(f.Data).String()
	if err := p.Check(ct, int64(len(f.Data))); err != nil {
		return "", err
	}
	return ct, nil
}

func (s *uploadService) put(ctx context.Context, folder string, userID uint, ct string, data []byte) (string, error) {
	key := storage.ObjectKey(folder, userID, ct, s.now())
	return s.store.Put(ctx, key, ct, data)
}

func (s *uploadService) UploadMarksheet(ctx context.Context, userID uint, qualificationType string, file FileInput) (string, error) {
	target := upload.TargetMarksheet
	if qualificationType == form.SemesterMarksType {
		target = upload.TargetSemesterMarksheet
	}
	ct, err := sniff(target, file)
	if err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Str("qualification_type", qualificationType).Msg("Marksheet rejected")
		return "", err
	}
	url, err := s.put(ctx, "marksheets", userID, ct, file.Data)
	if err != nil {
		return "", fmt.Errorf("store marksheet: %w", err)
	}
	log.Info().Uint("user_id", userID).Str("qualification_type", qualificationType).Str("url", url).Msg("Marksheet stored")
	return url, nil
}

// UploadDocuments stores every file after checking all of them, then records
// the URLs on the user's application.
func (s *uploadService) UploadDocuments(ctx context.Context, userID uint, files map[string]FileInput) (map[string]string, error) {
	if len(files) == 0 {
		return nil, &ValidationFailedError{Errors: map[string][]string{"documents": {"At least one document is required"}}}
	}
	types := make(map[string]string, len(files))
	fieldErrs := map[string][]string{}
	for field, f := range files {
		ct, err := sniff(field, f)
		if err != nil {
			var rej *upload.RejectedError
			if errors.As(err, &rej) {
				fieldErrs[field] = append(fieldErrs[field], rej.Reason)
				continue
			}
			fieldErrs[field] = append(fieldErrs[field], "Unknown document field")
			continue
		}
		types[field] = ct
	}
	if len(fieldErrs) > 0 {
		return nil, &ValidationFailedError{Errors: fieldErrs}
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	app, err := s.appRepo.FirstOrCreate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("load application of user %d: %w", userID, err)
	}

	urls := make(map[string]string, len(files))
	docs := make([]model.Document, 0, len(files))
	for _, field := range upload.DocumentTargets {
		f, ok := files[field]
		if !ok {
			continue
		}
		data := f.Data
		ct := types[field]
		if field == upload.TargetPhoto || field == upload.TargetSignature {
			if data, err = storage.NormalizeImage(data, ct); err != nil {
				return nil, &ValidationFailedError{Errors: map[string][]string{field: {"Image could not be read"}}}
			}
		}
		url, err := s.put(ctx, "documents/"+field, userID, ct, data)
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", field, err)
		}
		urls[field] = url
		docs = append(docs, model.Document{Field: field, URL: url, ContentType: ct, Size: int64(len(data))})
	}
	if err := s.appRepo.UpsertDocuments(app.ID, docs); err != nil {
		log.Error().Err(err).Uint("application_id", app.ID).Msg("Failed to record documents")
		return nil, fmt.Errorf("record documents: %w", err)
	}
	s.previews.Invalidate(ctx, userID)
	log.Info().Uint("user_id", userID).Int("files", len(urls)).Msg("Documents stored")
	return urls, nil
}
