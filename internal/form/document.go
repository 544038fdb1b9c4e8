// Package form holds the qualifications page of the admission application:
// the record stores for qualifications and semesters, the derived summary,
// and the orchestrator that validates and serialises the whole document.
package form

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Fixed course names of the two mandatory qualifications.
const (
	CourseSSLC = "S.S.L.C"
	CourseHSC  = "HSC"
)

// SemesterMarksType is the qualification_type sent with a semester marksheet upload.
const SemesterMarksType = "Semester Marks"

// SemestersPerQualification is how many semester slots an additional
// qualification brings with it.
const SemestersPerQualification = 6

// OptionalSemesterIndex is the one semester position that is never required.
const OptionalSemesterIndex = 5

// OptionalSemesterLabel is the label the optional slot is created with. A
// cleaned submission may have dropped semesters before it, so the server
// recognises the slot by this label rather than by position.
var OptionalSemesterLabel = fmt.Sprintf("Semester %d", OptionalSemesterIndex+1)

// Select options offered by the page.
var (
	AdditionalCourses = []string{"Diploma", "UG", "OTHERS"}
	StudyModes        = []string{"Regular", "Distance", "Online"}
	SubjectCategories = []string{"Theory", "Practical"}
	ClassOptions      = []string{"First Class", "Second Class", "Third Class", "Pass"}
)

var (
	ErrMandatoryQualification = errors.New("S.S.L.C and HSC qualifications cannot be removed")
	ErrReservedCourse         = errors.New("course is reserved for a mandatory qualification")
	ErrIndexOutOfRange        = errors.New("index out of range")
	ErrUnknownField           = errors.New("unknown field")
)

// QualificationFields are the user-editable parts of a qualification.
type QualificationFields struct {
	Course         string `yaml:"course"`
	InstituteName  string `yaml:"institute_name"`
	Board          string `yaml:"board"`
	SubjectStudied string `yaml:"subject_studied"`
	RegNo          string `yaml:"reg_no"`
	Percentage     string `yaml:"percentage"`
	MonthYear      string `yaml:"month_year"`
	ModeOfStudy    string `yaml:"mode_of_study"`
}

// UploadState is the transient upload bookkeeping of one marksheet slot.
type UploadState struct {
	FileName string
	Progress int
	Failed   bool
	Err      string
}

// Qualification is one educational credential together with its marksheet.
type Qualification struct {
	// ID identifies an additional entry for as long as the page is open.
	// The mandatory entries go by their course instead.
	ID                  string `yaml:"-"`
	QualificationFields `yaml:",inline"`
	MarksheetURL        string      `yaml:"marksheet_url"`
	Upload              UploadState `yaml:"-"`
}

type Subject struct {
	SubjectName   string `yaml:"subject_name"`
	Category      string `yaml:"category"`
	MaxMarks      string `yaml:"max_marks"`
	ObtainedMarks string `yaml:"obtained_marks"`
	MonthYear     string `yaml:"month_year"`
}

type Semester struct {
	Label    string    `yaml:"semester"`
	Subjects []Subject `yaml:"subjects"`
}

// MarksheetSlot is the single semester marksheet upload.
type MarksheetSlot struct {
	URL    string      `yaml:"url"`
	Upload UploadState `yaml:"-"`
}

// Summary holds the totals derived from the semesters and the fields the
// applicant fills in next to them.
type Summary struct {
	TotalMaxMarks      string `yaml:"total_max_marks"`
	TotalObtainedMarks string `yaml:"total_obtained_marks"`
	Percentage         string `yaml:"percentage"`
	CGPA               string `yaml:"cgpa"`
	OverallGrade       string `yaml:"overall_grade"`
	ClassObtained      string `yaml:"class_obtained"`
}

type Professional struct {
	CurrentDesignation string `yaml:"current_designation"`
	CurrentInstitute   string `yaml:"current_institute"`
	YearsExperience    string `yaml:"years_experience"`
	AnnualIncome       string `yaml:"annual_income"`
}

// Document is the qualifications page as a whole. The S.S.L.C and HSC
// entries are fields rather than list members, so there is always exactly
// one of each. In index terms they are 0 and 1, Additional starts at 2.
type Document struct {
	Email             string          `yaml:"email"`
	NameInitial       string          `yaml:"name_initial"`
	SSLC              Qualification   `yaml:"sslc"`
	HSC               Qualification   `yaml:"hsc"`
	Additional        []Qualification `yaml:"additional"`
	Semesters         []Semester      `yaml:"semesters"`
	SemesterMarksheet MarksheetSlot   `yaml:"semester_marksheet"`
	Summary           Summary         `yaml:"summary"`
	Professional      Professional    `yaml:"professional"`
}

// NewDocument returns an empty page with the two mandatory qualifications.
func NewDocument() Document {
	return Document{
		SSLC: Qualification{QualificationFields: QualificationFields{Course: CourseSSLC}},
		HSC:  Qualification{QualificationFields: QualificationFields{Course: CourseHSC}},
	}
}

// Qualifications lists every qualification in display order.
func (d *Document) Qualifications() []Qualification {
	out := make([]Qualification, 0, 2+len(d.Additional))
	out = append(out, d.SSLC, d.HSC)
	return append(out, d.Additional...)
}

// QualificationCount is 2 plus the number of additional entries.
func (d *Document) QualificationCount() int { return 2 + len(d.Additional) }

func (d *Document) qualification(i int) (*Qualification, error) {
	switch {
	case i == 0:
		return &d.SSLC, nil
	case i == 1:
		return &d.HSC, nil
	case i >= 2 && i-2 < len(d.Additional):
		return &d.Additional[i-2], nil
	}
	return nil, ErrIndexOutOfRange
}

// byKey finds an entry by the key a Target carries.
func (d *Document) byKey(key string) (*Qualification, error) {
	switch key {
	case CourseSSLC:
		return &d.SSLC, nil
	case CourseHSC:
		return &d.HSC, nil
	case "":
		return nil, ErrIndexOutOfRange
	}
	for i := range d.Additional {
		if d.Additional[i].ID == key {
			return &d.Additional[i], nil
		}
	}
	return nil, ErrIndexOutOfRange
}

// Qualification returns a copy of the entry at index i.
func (d *Document) Qualification(i int) (Qualification, error) {
	q, err := d.qualification(i)
	if err != nil {
		return Qualification{}, err
	}
	return *q, nil
}

// MarksheetField names the top-level field a qualification's marksheet URL
// is submitted under.
func MarksheetField(course string) string {
	switch course {
	case CourseSSLC:
		return "sslc_marksheet_url"
	case CourseHSC:
		return "hsc_marksheet_url"
	}
	return "ug_marksheet_url"
}

// Clone returns a deep copy.
func (d Document) Clone() Document {
	out := d
	if d.Additional != nil {
		out.Additional = append([]Qualification(nil), d.Additional...)
	}
	if d.Semesters != nil {
		out.Semesters = make([]Semester, len(d.Semesters))
		for i, s := range d.Semesters {
			out.Semesters[i] = s.clone()
		}
	}
	return out
}

func (s Semester) clone() Semester {
	if s.Subjects != nil {
		s.Subjects = append([]Subject(nil), s.Subjects...)
	}
	return s
}

// Normalize restores the fixed courses of the mandatory entries and gives
// every additional entry an ID. It is applied to documents that come from
// outside the reducer, such as a draft file.
func (d *Document) Normalize() error {
	d.SSLC.Course = CourseSSLC
	d.HSC.Course = CourseHSC
	for i := range d.Additional {
		if d.Additional[i].ID == "" {
			d.Additional[i].ID = uuid.NewString()
		}
	}
	for i, q := range d.Additional {
		if isReserved(q.Course) {
			return fmt.Errorf("additional qualification %d: %w", i+2, ErrReservedCourse)
		}
	}
	return nil
}

func isReserved(course string) bool {
	return course == CourseSSLC || course == CourseHSC
}
