package dto

import "time"

// ApplicationSummary is one row of the admin review listing.
type ApplicationSummary struct {
	ID                 uint      `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	QualificationCount int       `json:"qualification_count"`
	SemesterCount      int       `json:"semester_count"`
	Percentage         *float64  `json:"percentage"`
	DocumentsComplete  bool      `json:"documents_complete"`
	UpdatedAt          time.Time `json:"updated_at"`
}
