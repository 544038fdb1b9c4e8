package dto

// SignupRequest creates an applicant account. OTP verification happens elsewhere.
type SignupRequest struct {
	Email       string `json:"email" binding:"required" validate:"required,email"`
	Password    string `json:"password" binding:"required" validate:"required,min=8"`
	Name        string `json:"name" validate:"required,max=255"`
	NameInitial string `json:"name_initial" validate:"max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Page3Submission is the cleaned qualifications page as posted by the client.
// Nested marksheet URLs are lifted to the top level and numeric strings are
// coerced, with empty values sent as null.
type Page3Submission struct {
	Email                string             `json:"email"`
	NameInitial          string             `json:"name_initial"`
	Qualifications       []QualificationDTO `json:"qualifications"`
	SemesterMarks        []SemesterDTO      `json:"semester_marks"`
	SSLCMarksheetURL     string             `json:"sslc_marksheet_url"`
	HSCMarksheetURL      string             `json:"hsc_marksheet_url"`
	UGMarksheetURL       string             `json:"ug_marksheet_url"`
	SemesterMarksheetURL string             `json:"semester_marksheet_url"`
	TotalMaxMarks        *float64           `json:"total_max_marks"`
	TotalObtainedMarks   *float64           `json:"total_obtained_marks"`
	Percentage           *float64           `json:"percentage"`
	CGPA                 string             `json:"cgpa"`
	OverallGrade         string             `json:"overall_grade"`
	ClassObtained        string             `json:"class_obtained"`
	CurrentDesignation   string             `json:"current_designation"`
	CurrentInstitute     string             `json:"current_institute"`
	YearsExperience      *float64           `json:"years_experience"`
	AnnualIncome         *float64           `json:"annual_income"`
}
