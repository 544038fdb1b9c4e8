package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lshigami/admission/internal/client"
	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/form"
	"github.com/lshigami/admission/internal/session"
	"github.com/lshigami/admission/internal/upload"
	"github.com/rs/zerolog/log"
)

// Page3API is the part of the backend the qualifications page uses.
type Page3API interface {
	FetchPage3(ctx context.Context) (dto.Page3Data, error)
	SubmitPage3(ctx context.Context, sub dto.Page3Submission) error
	upload.Transport
}

// Page3 is the educational qualifications page.
type Page3 struct {
	api     Page3API
	sess    *session.Session
	uploads *upload.Coordinator

	mu         sync.RWMutex
	form       *form.Orchestrator
	submitting atomic.Bool
}

func NewPage3(api Page3API, sess *session.Session) *Page3 {
	return &Page3{api: api, sess: sess, uploads: upload.NewCoordinator(api)}
}

// Mount loads the saved page from the backend. A failed fetch leaves the
// page unmounted and may be retried.
func (p *Page3) Mount(ctx context.Context) error {
	if p.sess.AuthToken() == "" {
		return ErrLoginRequired
	}
	data, err := p.api.FetchPage3(ctx)
	if err != nil {
		if err = handleAuth(p.sess, err); errors.Is(err, ErrLoginRequired) {
			return err
		}
		log.Error().Err(err).Msg("Page3 Mount: fetch failed")
		return fmt.Errorf("error fetching data: %w", err)
	}
	o, err := form.NewOrchestrator(form.Hydrate(data))
	if err != nil {
		return fmt.Errorf("error loading data: %w", err)
	}
	p.setForm(o)
	if data.Email != "" {
		p.sess.SetEmail(data.Email)
		if err := p.sess.Save(); err != nil {
			log.Warn().Err(err).Msg("Page3 Mount: could not save session")
		}
	}
	log.Debug().Int("qualifications", 2+len(data.Qualifications)).Int("semesters", len(data.SemesterMarks)).Msg("Page3 mounted")
	return nil
}

// Load mounts the page from a document kept elsewhere, such as a draft file.
func (p *Page3) Load(doc form.Document) error {
	o, err := form.NewOrchestrator(doc)
	if err != nil {
		return err
	}
	p.setForm(o)
	return nil
}

func (p *Page3) setForm(o *form.Orchestrator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = o
}

// Form returns the orchestrator of the mounted page, or nil.
func (p *Page3) Form() *form.Orchestrator {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.form
}

func (p *Page3) Dispatch(a form.Action) (form.Result, error) {
	o := p.Form()
	if o == nil {
		return form.Result{}, ErrNotMounted
	}
	return o.Dispatch(a)
}

// UploadMarksheet uploads the marksheet of the qualification at index. A file
// rejected by policy returns an error and leaves the page untouched.
func (p *Page3) UploadMarksheet(ctx context.Context, index int, f upload.File) (<-chan upload.Event, error) {
	o := p.Form()
	if o == nil {
		return nil, ErrNotMounted
	}
	doc := o.Snapshot()
	q, err := doc.Qualification(index)
	if err != nil {
		return nil, fmt.Errorf("qualification %d: %w", index, err)
	}
	target, err := doc.QualificationTarget(index)
	if err != nil {
		return nil, err
	}
	fields := map[string]string{"qualification_type": q.Course, "email": p.email(doc)}
	events, err := p.uploads.Upload(ctx, upload.TargetMarksheet, f, fields)
	if err != nil {
		return nil, err
	}
	return p.track(o, target, f.Name(), events), nil
}

// UploadSemesterMarksheet uploads the single semester marksheet.
func (p *Page3) UploadSemesterMarksheet(ctx context.Context, f upload.File) (<-chan upload.Event, error) {
	o := p.Form()
	if o == nil {
		return nil, ErrNotMounted
	}
	fields := map[string]string{"qualification_type": form.SemesterMarksType, "email": p.email(o.Snapshot())}
	events, err := p.uploads.Upload(ctx, upload.TargetSemesterMarksheet, f, fields)
	if err != nil {
		return nil, err
	}
	return p.track(o, form.SemesterMarksheetTarget, f.Name(), events), nil
}

func (p *Page3) email(doc form.Document) string {
	if e := p.sess.Email(); e != "" {
		return e
	}
	return doc.Email
}

// track applies upload events to the document and forwards them. The
// returned channel must be drained.
func (p *Page3) track(o *form.Orchestrator, target form.Target, name string, events <-chan upload.Event) <-chan upload.Event {
	if _, err := o.Dispatch(form.StartUpload{Target: target, FileName: name}); err != nil {
		log.Warn().Err(err).Stringer("target", target).Msg("upload start not recorded")
	}
	out := make(chan upload.Event)
	go func() {
		defer close(out)
		for ev := range events {
			var action form.Action
			switch {
			case !ev.Done:
				action = form.SetUploadProgress{Target: target, Percent: ev.Progress}
			case ev.Err != nil:
				if errors.Is(handleAuth(p.sess, ev.Err), ErrLoginRequired) {
					ev.Err = ErrLoginRequired
				}
				action = form.FailUpload{Target: target, Err: ev.Err.Error()}
			default:
				action = form.AssignUploadURL{Target: target, URL: ev.URL}
			}
			// The qualification may have been removed meanwhile.
			if _, err := o.Dispatch(action); err != nil {
				log.Warn().Err(err).Stringer("target", target).Msg("upload event dropped")
			}
			out <- ev
		}
	}()
	return out
}

// Submit validates and posts the page. On success the next step is the
// documents page. Server-side field errors are merged into the page's
// validation and returned as a *client.ValidationError.
func (p *Page3) Submit(ctx context.Context) (Step, error) {
	if p.sess.AuthToken() == "" {
		return StepLogin, ErrLoginRequired
	}
	o := p.Form()
	if o == nil {
		return StepQualifications, ErrNotMounted
	}
	if v := o.ValidateAll(); !v.IsValid {
		return StepQualifications, fmt.Errorf("%w (%d fields)", ErrInvalidForm, len(v.Errors))
	}
	if !p.submitting.CompareAndSwap(false, true) {
		return StepQualifications, ErrSubmitInProgress
	}
	defer p.submitting.Store(false)

	err := p.api.SubmitPage3(ctx, o.Submission())
	if err == nil {
		log.Info().Str("email", p.sess.Email()).Msg("Page3 submitted")
		return StepDocuments, nil
	}
	if err = handleAuth(p.sess, err); errors.Is(err, ErrLoginRequired) {
		return StepLogin, err
	}
	var verr *client.ValidationError
	if errors.As(err, &verr) {
		o.MergeServerErrors(verr.Fields)
		return StepQualifications, verr
	}
	log.Error().Err(err).Msg("Page3 Submit failed")
	return StepQualifications, fmt.Errorf("error submitting form: %w", err)
}
