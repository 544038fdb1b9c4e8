package repository

import (
	"github.com/lshigami/admission/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicationRow is an application with the counts shown in the admin listing.
type ApplicationRow struct {
	model.Application
	Name               string
	QualificationCount int
	DocumentCount      int
}

type ApplicationRepository interface {
	FindByUserID(userID uint) (*model.Application, error)
	FindByIDWithDetails(id uint) (*model.Application, error)
	// FirstOrCreate returns the user's application, creating an empty one.
	FirstOrCreate(userID uint, email string) (*model.Application, error)
	// Replace saves app and swaps its qualification rows for qs.
	Replace(app *model.Application, qs []model.Qualification) error
	UpsertDocuments(applicationID uint, docs []model.Document) error
	FindAllWithCounts() ([]ApplicationRow, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Qualifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("qualifications.position ASC")
		}).
		Preload("Documents")
}

func (r *applicationRepository) FindByUserID(userID uint) (*model.Application, error) {
	var app model.Application
	err := withDetails(r.db).Where("user_id = ?", userID).First(&app).Error
	return &app, err
}

func (r *applicationRepository) FindByIDWithDetails(id uint) (*model.Application, error) {
	var app model.Application
	err := withDetails(r.db).Preload("User").First(&app, id).Error
	return &app, err
}

func (r *applicationRepository) FirstOrCreate(userID uint, email string) (*model.Application, error) {
	var app model.Application
	err := r.db.Where(model.Application{UserID: userID}).
		Attrs(model.Application{Email: email}).
		FirstOrCreate(&app).Error
	return &app, err
}

func (r *applicationRepository) Replace(app *model.Application, qs []model.Qualification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(app).Error; err != nil {
			return err
		}
		if err := tx.Where("application_id = ?", app.ID).Delete(&model.Qualification{}).Error; err != nil {
			return err
		}
		if len(qs) == 0 {
			app.Qualifications = nil
			return nil
		}
		for i := range qs {
			qs[i].ID = 0
			qs[i].ApplicationID = app.ID
		}
		if err := tx.Create(&qs).Error; err != nil {
			return err
		}
		app.Qualifications = qs
		return nil
	})
}

func (r *applicationRepository) UpsertDocuments(applicationID uint, docs []model.Document) error {
	for i := range docs {
		docs[i].ApplicationID = applicationID
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}, {Name: "field"}},
		DoUpdates: clause.AssignmentColumns([]string{"url", "content_type", "size", "updated_at"}),
	}).Create(&docs).Error
}

func (r *applicationRepository) FindAllWithCounts() ([]ApplicationRow, error) {
	var rows []ApplicationRow
	err := r.db.Model(&model.Application{}).
		Select("applications.*, users.name AS name, " +
			"(SELECT COUNT(*) FROM qualifications WHERE qualifications.application_id = applications.id) AS qualification_count, " +
			"(SELECT COUNT(*) FROM documents WHERE documents.application_id = applications.id) AS document_count").
		Joins("LEFT JOIN users ON users.id = applications.user_id").
		Where("applications.deleted_at IS NULL").
		Order("applications.updated_at DESC").
		Scan(&rows).Error
	return rows, err
}
