package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application is one applicant's qualifications page. Semester marks are kept
// as a JSON document since they are only ever read and written whole.
type Application struct {
	ID                   uint            `gorm:"primarykey" json:"id"`
	UserID               uint            `json:"user_id" gorm:"not null;uniqueIndex"`
	User                 User            `json:"-" gorm:"foreignKey:UserID"`
	Email                string          `json:"email" gorm:"not null;index"`
	NameInitial          string          `json:"name_initial"`
	Qualifications       []Qualification `json:"qualifications,omitempty" gorm:"foreignKey:ApplicationID"`
	SemesterMarks        datatypes.JSON  `json:"semester_marks" gorm:"type:jsonb"`
	SSLCMarksheetURL     string          `json:"sslc_marksheet_url"`
	HSCMarksheetURL      string          `json:"hsc_marksheet_url"`
	UGMarksheetURL       string          `json:"ug_marksheet_url"`
	SemesterMarksheetURL string          `json:"semester_marksheet_url"`
	TotalMaxMarks        *float64        `json:"total_max_marks"`
	TotalObtainedMarks   *float64        `json:"total_obtained_marks"`
	Percentage           *float64        `json:"percentage"`
	CGPA                 string          `json:"cgpa"`
	OverallGrade         string          `json:"overall_grade"`
	ClassObtained        string          `json:"class_obtained"`
	CurrentDesignation   string          `json:"current_designation"`
	CurrentInstitute     string          `json:"current_institute"`
	YearsExperience      *float64        `json:"years_experience"`
	AnnualIncome         *float64        `json:"annual_income"`
	Documents            []Document      `json:"documents,omitempty" gorm:"foreignKey:ApplicationID"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	DeletedAt            gorm.DeletedAt  `gorm:"index" json:"-"`
}

type Qualification struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	ApplicationID  uint      `json:"application_id" gorm:"not null;index"`
	Position       int       `json:"position" gorm:"not null"`
	Course         string    `json:"course" gorm:"not null"`
	InstituteName  string    `json:"institute_name"`
	Board          string    `json:"board"`
	SubjectStudied string    `json:"subject_studied"`
	RegNo          string    `json:"reg_no"`
	Percentage     string    `json:"percentage"`
	MonthYear      string    `json:"month_year"`
	ModeOfStudy    string    `json:"mode_of_study"`
	MarksheetURL   string    `json:"marksheet_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Document is a file uploaded from the documents page, one per field.
type Document struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ApplicationID uint      `json:"application_id" gorm:"not null;uniqueIndex:idx_document_field"`
	Field         string    `json:"field" gorm:"not null;uniqueIndex:idx_document_field"`
	URL           string    `json:"url" gorm:"not null"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
