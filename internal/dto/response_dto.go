package dto

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type LoginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Email  string `json:"email"`
}

type EmailData struct {
	Email string `json:"email"`
}

type UserProfile struct {
	Email       string `json:"email" yaml:"email"`
	Name        string `json:"name" yaml:"name"`
	NameInitial string `json:"name_initial" yaml:"name_initial"`
}

// AutofillData is the identity block pre-filled into later pages.
type AutofillData struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	NameInitial    string `json:"name_initial"`
	SSLCPercentage string `json:"sslc_percentage,omitempty"`
	HSCPercentage  string `json:"hsc_percentage,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`
}

type UploadResponse struct {
	Status  string `json:"status"`
	FileURL string `json:"file_url"`
	Message string `json:"message,omitempty"`
}

type DocumentsUploadResponse struct {
	Status   string            `json:"status"`
	FileURLs map[string]string `json:"file_urls"`
	Message  string            `json:"message,omitempty"`
}

type QualificationDTO struct {
	Course           string       `json:"course"`
	InstituteName    string       `json:"institute_name"`
	Board            string       `json:"board"`
	SubjectStudied   string       `json:"subject_studied"`
	RegNo            string       `json:"reg_no"`
	Percentage       NumberString `json:"percentage"`
	MonthYear        string       `json:"month_year"`
	ModeOfStudy      string       `json:"mode_of_study"`
	SSLCMarksheetURL string       `json:"sslc_marksheet_url,omitempty"`
	HSCMarksheetURL  string       `json:"hsc_marksheet_url,omitempty"`
	UGMarksheetURL   string       `json:"ug_marksheet_url,omitempty"`
}

type SubjectDTO struct {
	SubjectName   string       `json:"subject_name"`
	Category      string       `json:"category"`
	MaxMarks      NumberString `json:"max_marks"`
	ObtainedMarks NumberString `json:"obtained_marks"`
	MonthYear     string       `json:"month_year"`
}

type SemesterDTO struct {
	Semester string       `json:"semester"`
	Subjects []SubjectDTO `json:"subjects"`
}

// Page3Data is the persisted qualifications page plus the document URLs
// recorded by the documents page.
type Page3Data struct {
	Email                   string             `json:"email"`
	NameInitial             string             `json:"name_initial"`
	Qualifications          []QualificationDTO `json:"qualifications"`
	SemesterMarks           []SemesterDTO      `json:"semester_marks"`
	SSLCMarksheetURL        string             `json:"sslc_marksheet_url"`
	HSCMarksheetURL         string             `json:"hsc_marksheet_url"`
	UGMarksheetURL          string             `json:"ug_marksheet_url"`
	SemesterMarksheetURL    string             `json:"semester_marksheet_url"`
	TotalMaxMarks           NumberString       `json:"total_max_marks"`
	TotalObtainedMarks      NumberString       `json:"total_obtained_marks"`
	Percentage              NumberString       `json:"percentage"`
	CGPA                    string             `json:"cgpa"`
	OverallGrade            string             `json:"overall_grade"`
	ClassObtained           string             `json:"class_obtained"`
	CurrentDesignation      string             `json:"current_designation"`
	CurrentInstitute        string             `json:"current_institute"`
	YearsExperience         NumberString       `json:"years_experience"`
	AnnualIncome            NumberString       `json:"annual_income"`
	PhotoURL                string             `json:"photo_url,omitempty"`
	SignatureURL            string             `json:"signature_url,omitempty"`
	CommunityCertificateURL string             `json:"community_certificate_url,omitempty"`
	AadhaarURL              string             `json:"aadhaar_url,omitempty"`
	TransferCertificateURL  string             `json:"transfer_certificate_url,omitempty"`
}

// PreviewData is what the server returns for the preview page.
type PreviewData struct {
	Student     UserProfile `json:"student"`
	Application Page3Data   `json:"application"`
}

// PreviewMaps is the client-side view of PreviewData, kept loose so it can be
// overlaid with autofill data.
type PreviewMaps struct {
	Student     map[string]interface{} `json:"student"`
	Application map[string]interface{} `json:"application"`
}
