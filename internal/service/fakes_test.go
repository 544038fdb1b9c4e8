package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/model"
	"github.com/lshigami/admission/internal/repository"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*model.User
}

func (r *fakeUserRepo) Create(u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = uint(len(r.users) + 1)
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return &model.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return &model.User{}, gorm.ErrRecordNotFound
}

type fakeAppRepo struct {
	mu   sync.Mutex
	apps map[uint]*model.Application // by user id
	next uint
}

func newFakeAppRepo() *fakeAppRepo { return &fakeAppRepo{apps: map[uint]*model.Application{}} }

func (r *fakeAppRepo) FindByUserID(userID uint) (*model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[userID]
	if !ok {
		return &model.Application{}, gorm.ErrRecordNotFound
	}
	cp := *app
	return &cp, nil
}

func (r *fakeAppRepo) FindByIDWithDetails(id uint) (*model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.apps {
		if app.ID == id {
			cp := *app
			return &cp, nil
		}
	}
	return &model.Application{}, gorm.ErrRecordNotFound
}

func (r *fakeAppRepo) FirstOrCreate(userID uint, email string) (*model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if app, ok := r.apps[userID]; ok {
		cp := *app
		return &cp, nil
	}
	r.next++
	app := &model.Application{ID: r.next, UserID: userID, Email: email, CreatedAt: time.Now()}
	r.apps[userID] = app
	cp := *app
	return &cp, nil
}

func (r *fakeAppRepo) Replace(app *model.Application, qs []model.Qualification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range qs {
		qs[i].ApplicationID = app.ID
	}
	app.Qualifications = qs
	stored := *app
	if prev, ok := r.apps[app.UserID]; ok {
		stored.Documents = prev.Documents
	}
	r.apps[app.UserID] = &stored
	return nil
}

func (r *fakeAppRepo) UpsertDocuments(applicationID uint, docs []model.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.apps {
		if app.ID != applicationID {
			continue
		}
	next:
		for _, d := range docs {
			d.ApplicationID = applicationID
			for i := range app.Documents {
				if app.Documents[i].Field == d.Field {
					app.Documents[i] = d
					continue next
				}
			}
			app.Documents = append(app.Documents, d)
		}
		return nil
	}
	return fmt.Errorf("application %d: %w", applicationID, gorm.ErrRecordNotFound)
}

func (r *fakeAppRepo) FindAllWithCounts() ([]repository.ApplicationRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []repository.ApplicationRow
	for _, app := range r.apps {
		rows = append(rows, repository.ApplicationRow{
			Application:        *app,
			QualificationCount: len(app.Qualifications),
			DocumentCount:      len(app.Documents),
		})
	}
	return rows, nil
}

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *memStore) Put(_ context.Context, key, contentType string, body []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = body
	s.types[key] = contentType
	return "https://files.test/" + key, nil
}

type memCache struct {
	mu          sync.Mutex
	entries     map[uint]*dto.PreviewData
	invalidated []uint
}

func newMemCache() *memCache { return &memCache{entries: map[uint]*dto.PreviewData{}} }

func (c *memCache) Get(_ context.Context, userID uint) (*dto.PreviewData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.entries[userID]
	return d, ok
}

func (c *memCache) Set(_ context.Context, userID uint, data *dto.PreviewData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = data
}

func (c *memCache) Invalidate(_ context.Context, userID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	c.invalidated = append(c.invalidated, userID)
}
