package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/session"
	"golang.org/x/sync/errgroup"
)

// PreviewAPI is the part of the backend the preview page uses.
type PreviewAPI interface {
	Preview(ctx context.Context) (dto.PreviewMaps, error)
	Autofill(ctx context.Context) (map[string]interface{}, error)
	FetchPage3(ctx context.Context) (dto.Page3Data, error)
}

// Merged is everything the preview page shows.
type Merged struct {
	Student        map[string]interface{} `json:"student" yaml:"student"`
	Application    map[string]interface{} `json:"application" yaml:"application"`
	StudentDetails map[string]interface{} `json:"student_details" yaml:"student_details"`
}

type Preview struct {
	api  PreviewAPI
	sess *session.Session
}

func NewPreview(api PreviewAPI, sess *session.Session) *Preview {
	return &Preview{api: api, sess: sess}
}

// Load fetches the three sources at once and merges them.
func (p *Preview) Load(ctx context.Context) (Merged, error) {
	if p.sess.AuthToken() == "" {
		return Merged{}, ErrLoginRequired
	}
	var (
		preview  dto.PreviewMaps
		autofill map[string]interface{}
		page3    dto.Page3Data
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		preview, err = p.api.Preview(gctx)
		return err
	})
	g.Go(func() (err error) {
		autofill, err = p.api.Autofill(gctx)
		return err
	})
	g.Go(func() (err error) {
		page3, err = p.api.FetchPage3(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if err = handleAuth(p.sess, err); errors.Is(err, ErrLoginRequired) {
			return Merged{}, err
		}
		return Merged{}, fmt.Errorf("load preview: %w", err)
	}
	details, err := toMap(page3)
	if err != nil {
		return Merged{}, err
	}
	return merge(preview, autofill, details), nil
}

// merge prefers the preview's student, falling back to autofill, and
// overlays autofill onto the application.
func merge(preview dto.PreviewMaps, autofill, details map[string]interface{}) Merged {
	m := Merged{
		Student:        preview.Student,
		Application:    map[string]interface{}{},
		StudentDetails: details,
	}
	if len(m.Student) == 0 {
		m.Student = autofill
	}
	for k, v := range preview.Application {
		m.Application[k] = v
	}
	for k, v := range autofill {
		m.Application[k] = v
	}
	return m
}

func toMap(v interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode page data: %w", err)
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode page data: %w", err)
	}
	return out, nil
}
