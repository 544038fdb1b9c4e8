package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lshigami/admission/internal/session"
	"github.com/lshigami/admission/internal/upload"
	"github.com/rs/zerolog/log"
)

// Page4API is the part of the backend the documents page uses.
type Page4API interface {
	CurrentUserEmail(ctx context.Context) (string, error)
	UploadDocuments(ctx context.Context, files map[string]upload.Request, values map[string]string, progress upload.ProgressFunc) (map[string]string, error)
}

// Page4 is the documents page: photo, signature and certificates, sent
// together in one request.
type Page4 struct {
	api  Page4API
	sess *session.Session

	mu         sync.Mutex
	email      string
	files      map[string]upload.Request
	submitting atomic.Bool
}

func NewPage4(api Page4API, sess *session.Session) *Page4 {
	return &Page4{api: api, sess: sess, files: map[string]upload.Request{}}
}

// Mount resolves the email the documents are filed under.
func (p *Page4) Mount(ctx context.Context) error {
	if p.sess.AuthToken() == "" {
		return ErrLoginRequired
	}
	email, err := p.api.CurrentUserEmail(ctx)
	if err != nil {
		if err = handleAuth(p.sess, err); errors.Is(err, ErrLoginRequired) {
			return err
		}
		return fmt.Errorf("fetch current user email: %w", err)
	}
	p.mu.Lock()
	p.email = email
	p.mu.Unlock()
	return nil
}

func isDocumentTarget(target string) bool {
	for _, t := range upload.DocumentTargets {
		if t == target {
			return true
		}
	}
	return false
}

// Select checks f against the policy of target and keeps it for Submit.
// A rejected file leaves any earlier selection in place.
func (p *Page4) Select(target string, f upload.File) error {
	if !isDocumentTarget(target) {
		return fmt.Errorf("unknown document %q", target)
	}
	ct, err := upload.CheckFile(target, f)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.files[target] = upload.Request{Target: target, File: f, ContentType: ct}
	return nil
}

func (p *Page4) Remove(target string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.files, target)
}

// Selected lists the chosen documents in display order.
func (p *Page4) Selected() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, t := range upload.DocumentTargets {
		if _, ok := p.files[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Submit sends every selected document. progress, if set, receives 0-100.
func (p *Page4) Submit(ctx context.Context, progress func(percent int)) (Step, map[string]string, error) {
	if p.sess.AuthToken() == "" {
		return StepLogin, nil, ErrLoginRequired
	}
	p.mu.Lock()
	email := p.email
	files := make(map[string]upload.Request, len(p.files))
	for k, v := range p.files {
		files[k] = v
	}
	p.mu.Unlock()

	if email == "" {
		return StepDocuments, nil, ErrEmailUnknown
	}
	if len(files) == 0 {
		return StepDocuments, nil, ErrNoDocuments
	}
	if !p.submitting.CompareAndSwap(false, true) {
		return StepDocuments, nil, ErrSubmitInProgress
	}
	defer p.submitting.Store(false)

	var report upload.ProgressFunc
	if progress != nil {
		last := -1
		report = func(sent, total int64) {
			if pct := upload.Percent(sent, total); pct != last {
				last = pct
				progress(pct)
			}
		}
	}
	urls, err := p.api.UploadDocuments(ctx, files, map[string]string{"email": email}, report)
	if err != nil {
		if err = handleAuth(p.sess, err); errors.Is(err, ErrLoginRequired) {
			return StepLogin, nil, err
		}
		log.Error().Err(err).Int("files", len(files)).Msg("Page4 Submit failed")
		return StepDocuments, nil, fmt.Errorf("failed to upload documents: %w", err)
	}
	p.mu.Lock()
	p.files = map[string]upload.Request{}
	p.mu.Unlock()
	log.Info().Int("files", len(urls)).Msg("documents uploaded")
	return StepPreview, urls, nil
}
