package form

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lshigami/admission/internal/validation"
)

// Action is one discrete edit of the document. Actions are applied one at a
// time by the Orchestrator; a failing action leaves the document unchanged.
type Action interface {
	apply(d *Document) (warning string, err error)
}

// AddQualification appends an empty additional qualification together with
// its six semester slots.
type AddQualification struct{}

func (AddQualification) apply(d *Document) (string, error) {
	d.Additional = append(d.Additional, Qualification{ID: uuid.NewString()})
	base := len(d.Semesters)
	for i := 0; i < SemestersPerQualification; i++ {
		d.Semesters = append(d.Semesters, Semester{Label: fmt.Sprintf("Semester %d", base+i+1)})
	}
	d.recomputeSummary()
	return "", nil
}

// UpdateQualification replaces the editable fields of the entry at Index.
// The course of a mandatory entry cannot change.
type UpdateQualification struct {
	Index  int
	Fields QualificationFields
}

func (a UpdateQualification) apply(d *Document) (string, error) {
	q, err := d.qualification(a.Index)
	if err != nil {
		return "", fmt.Errorf("update qualification %d: %w", a.Index, err)
	}
	fields := a.Fields
	switch a.Index {
	case 0:
		fields.Course = CourseSSLC
	case 1:
		fields.Course = CourseHSC
	default:
		if isReserved(strings.TrimSpace(fields.Course)) {
			return "", fmt.Errorf("update qualification %d: %w", a.Index, ErrReservedCourse)
		}
	}
	q.QualificationFields = fields
	return "", nil
}

// RemoveQualification drops an additional qualification. When more than six
// semesters exist, the last six go with it.
//
// The trimmed semesters are always the tail, whichever qualification is
// removed. This mirrors how the slots are added and is kept as is until the
// intended pairing is settled.
type RemoveQualification struct {
	Index int
}

func (a RemoveQualification) apply(d *Document) (string, error) {
	if a.Index == 0 || a.Index == 1 {
		return "", ErrMandatoryQualification
	}
	if _, err := d.qualification(a.Index); err != nil {
		return "", fmt.Errorf("remove qualification %d: %w", a.Index, err)
	}
	i := a.Index - 2
	d.Additional = append(d.Additional[:i:i], d.Additional[i+1:]...)
	if len(d.Semesters) > SemestersPerQualification {
		d.Semesters = d.Semesters[:len(d.Semesters)-SemestersPerQualification:len(d.Semesters)-SemestersPerQualification]
	}
	d.recomputeSummary()
	return "", nil
}

// AddSemester appends one semester labelled after its position.
type AddSemester struct{}

func (AddSemester) apply(d *Document) (string, error) {
	d.Semesters = append(d.Semesters, Semester{Label: fmt.Sprintf("Semester %d", len(d.Semesters)+1)})
	d.recomputeSummary()
	return "", nil
}

// UpdateSemester replaces the semester at Index, subjects included.
type UpdateSemester struct {
	Index    int
	Semester Semester
}

func (a UpdateSemester) apply(d *Document) (string, error) {
	if a.Index < 0 || a.Index >= len(d.Semesters) {
		return "", fmt.Errorf("update semester %d: %w", a.Index, ErrIndexOutOfRange)
	}
	d.Semesters[a.Index] = a.Semester.clone()
	d.recomputeSummary()
	return "", nil
}

type RemoveSemester struct {
	Index int
}

func (a RemoveSemester) apply(d *Document) (string, error) {
	if a.Index < 0 || a.Index >= len(d.Semesters) {
		return "", fmt.Errorf("remove semester %d: %w", a.Index, ErrIndexOutOfRange)
	}
	d.Semesters = append(d.Semesters[:a.Index:a.Index], d.Semesters[a.Index+1:]...)
	d.recomputeSummary()
	return "", nil
}

// AddSubject appends an empty subject to a semester.
type AddSubject struct {
	Semester int
}

func (a AddSubject) apply(d *Document) (string, error) {
	if a.Semester < 0 || a.Semester >= len(d.Semesters) {
		return "", fmt.Errorf("add subject to semester %d: %w", a.Semester, ErrIndexOutOfRange)
	}
	s := &d.Semesters[a.Semester]
	s.Subjects = append(s.Subjects[:len(s.Subjects):len(s.Subjects)], Subject{})
	d.recomputeSummary()
	return "", nil
}

type UpdateSubject struct {
	Semester int
	Index    int
	Subject  Subject
}

func (a UpdateSubject) apply(d *Document) (string, error) {
	if a.Semester < 0 || a.Semester >= len(d.Semesters) {
		return "", fmt.Errorf("update subject in semester %d: %w", a.Semester, ErrIndexOutOfRange)
	}
	s := &d.Semesters[a.Semester]
	if a.Index < 0 || a.Index >= len(s.Subjects) {
		return "", fmt.Errorf("update subject %d: %w", a.Index, ErrIndexOutOfRange)
	}
	subjects := append([]Subject(nil), s.Subjects...)
	subjects[a.Index] = a.Subject
	s.Subjects = subjects
	d.recomputeSummary()
	return "", nil
}

type RemoveSubject struct {
	Semester int
	Index    int
}

func (a RemoveSubject) apply(d *Document) (string, error) {
	if a.Semester < 0 || a.Semester >= len(d.Semesters) {
		return "", fmt.Errorf("remove subject from semester %d: %w", a.Semester, ErrIndexOutOfRange)
	}
	s := &d.Semesters[a.Semester]
	if a.Index < 0 || a.Index >= len(s.Subjects) {
		return "", fmt.Errorf("remove subject %d: %w", a.Index, ErrIndexOutOfRange)
	}
	s.Subjects = append(s.Subjects[:a.Index:a.Index], s.Subjects[a.Index+1:]...)
	d.recomputeSummary()
	return "", nil
}

// SetSummaryField edits one of the applicant-entered summary fields:
// cgpa, overall_grade or class_obtained. Totals are derived and not settable.
type SetSummaryField struct {
	Field string
	Value string
}

func (a SetSummaryField) apply(d *Document) (string, error) {
	switch a.Field {
	case "cgpa":
		d.Summary.CGPA = a.Value
	case "overall_grade":
		d.Summary.OverallGrade = a.Value
	case "class_obtained":
		d.Summary.ClassObtained = a.Value
	default:
		return "", fmt.Errorf("summary field %q: %w", a.Field, ErrUnknownField)
	}
	return "", nil
}

// SetProfessionalField edits a professional-details field. Numeric fields
// that do not hold a non-negative number are cleared, and a warning is
// returned when the applicant had typed something.
type SetProfessionalField struct {
	Field string
	Value string
}

func (a SetProfessionalField) apply(d *Document) (string, error) {
	p := &d.Professional
	switch a.Field {
	case "current_designation":
		p.CurrentDesignation = a.Value
	case "current_institute":
		p.CurrentInstitute = a.Value
	case validation.FieldYearsExperience:
		v, warning := validation.NormalizeNonNegative(a.Field, a.Value)
		p.YearsExperience = v
		return warning, nil
	case validation.FieldAnnualIncome:
		v, warning := validation.NormalizeNonNegative(a.Field, a.Value)
		p.AnnualIncome = v
		return warning, nil
	default:
		return "", fmt.Errorf("professional field %q: %w", a.Field, ErrUnknownField)
	}
	return "", nil
}

// Replace swaps in a whole document, for example one read from a draft.
type Replace struct {
	Document Document
}

func (a Replace) apply(d *Document) (string, error) {
	next := a.Document.Clone()
	if err := next.Normalize(); err != nil {
		return "", err
	}
	*d = next
	return "", nil
}

// RecomputeSummary refreshes the derived totals, for documents edited
// outside the reducer.
type RecomputeSummary struct{}

func (RecomputeSummary) apply(d *Document) (string, error) {
	d.recomputeSummary()
	return "", nil
}

// Target names a marksheet slot: a qualification by its key, or the
// semester marksheet. The key follows the entry, not its position, so an
// upload still finds its own qualification after the list changes.
type Target struct {
	Qualification     string
	SemesterMarksheet bool
}

// SemesterMarksheetTarget is the single semester marksheet slot.
var SemesterMarksheetTarget = Target{SemesterMarksheet: true}

// QualificationTarget is the marksheet slot of the entry currently at index i.
func (d *Document) QualificationTarget(i int) (Target, error) {
	q, err := d.qualification(i)
	if err != nil {
		return Target{}, fmt.Errorf("qualification %d: %w", i, err)
	}
	switch i {
	case 0:
		return Target{Qualification: CourseSSLC}, nil
	case 1:
		return Target{Qualification: CourseHSC}, nil
	}
	if q.ID == "" {
		return Target{}, fmt.Errorf("qualification %d: %w", i, ErrIndexOutOfRange)
	}
	return Target{Qualification: q.ID}, nil
}

func (t Target) String() string {
	if t.SemesterMarksheet {
		return "semester_marksheet"
	}
	return "qualification " + t.Qualification
}

func (d *Document) slot(t Target) (url *string, state *UploadState, err error) {
	if t.SemesterMarksheet {
		return &d.SemesterMarksheet.URL, &d.SemesterMarksheet.Upload, nil
	}
	q, err := d.byKey(t.Qualification)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", t, err)
	}
	return &q.MarksheetURL, &q.Upload, nil
}

// StartUpload records that a file is on its way to a slot.
type StartUpload struct {
	Target   Target
	FileName string
}

func (a StartUpload) apply(d *Document) (string, error) {
	_, st, err := d.slot(a.Target)
	if err != nil {
		return "", err
	}
	*st = UploadState{FileName: a.FileName}
	return "", nil
}

type SetUploadProgress struct {
	Target  Target
	Percent int
}

func (a SetUploadProgress) apply(d *Document) (string, error) {
	_, st, err := d.slot(a.Target)
	if err != nil {
		return "", err
	}
	p := a.Percent
	if p < 0 {
		p = 0
	} else if p > 100 {
		p = 100
	}
	st.Progress = p
	return "", nil
}

// AssignUploadURL stores the URL returned for a finished upload and resets
// the progress.
type AssignUploadURL struct {
	Target Target
	URL    string
}

func (a AssignUploadURL) apply(d *Document) (string, error) {
	url, st, err := d.slot(a.Target)
	if err != nil {
		return "", err
	}
	*url = a.URL
	*st = UploadState{}
	return "", nil
}

// FailUpload resets the progress and flags the slot. A URL from an earlier
// successful upload stays.
type FailUpload struct {
	Target Target
	Err    string
}

func (a FailUpload) apply(d *Document) (string, error) {
	_, st, err := d.slot(a.Target)
	if err != nil {
		return "", err
	}
	*st = UploadState{FileName: st.FileName, Failed: true, Err: a.Err}
	return "", nil
}
