package form

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lshigami/admission/internal/dto"
	v "github.com/lshigami/admission/internal/validation"
)

// Errors maps a field key, such as "qualification_0" or "semester_3", to its
// messages.
type Errors map[string][]string

func (e Errors) add(key string, msgs ...string) {
	if len(msgs) == 0 {
		return
	}
	e[key] = append(e[key], msgs...)
}

// Keys returns the keys in sorted order.
func (e Errors) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, msgs := range e {
		out[k] = append([]string(nil), msgs...)
	}
	return out
}

// Merge overwrites keys of e with those of other.
func (e Errors) Merge(other Errors) {
	for k, msgs := range other {
		e[k] = append([]string(nil), msgs...)
	}
}

func (e Errors) String() string {
	var b strings.Builder
	for i, k := range e.Keys() {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", k, strings.Join(e[k], "; "))
	}
	return b.String()
}

// Validation is the outcome of checking a whole document.
type Validation struct {
	Errors  Errors
	IsValid bool
}

func newValidation(errs Errors) Validation {
	return Validation{Errors: errs, IsValid: len(errs) == 0}
}

var qualificationRequired = []string{
	v.FieldCourse, v.FieldInstituteName, v.FieldBoard, v.FieldSubjectStudied,
	v.FieldRegNo, v.FieldPercentage, v.FieldMonthYear, v.FieldModeOfStudy,
}

var subjectRequired = []string{
	v.FieldSubjectName, v.FieldCategory, v.FieldMaxMarks, v.FieldObtainedMarks, v.FieldMonthYear,
}

var summaryRequired = []string{"total_max_marks", "total_obtained_marks", "percentage", "class_obtained"}

func (f QualificationFields) value(field string) string {
	switch field {
	case v.FieldCourse:
		return f.Course
	case v.FieldInstituteName:
		return f.InstituteName
	case v.FieldBoard:
		return f.Board
	case v.FieldSubjectStudied:
		return f.SubjectStudied
	case v.FieldRegNo:
		return f.RegNo
	case v.FieldPercentage:
		return f.Percentage
	case v.FieldMonthYear:
		return f.MonthYear
	case v.FieldModeOfStudy:
		return f.ModeOfStudy
	}
	return ""
}

// complete reports whether every required qualification field is filled.
func (f QualificationFields) complete() bool {
	for _, field := range qualificationRequired {
		if strings.TrimSpace(f.value(field)) == "" {
			return false
		}
	}
	return true
}

func (s Subject) value(field string) string {
	switch field {
	case v.FieldSubjectName:
		return s.SubjectName
	case v.FieldCategory:
		return s.Category
	case v.FieldMaxMarks:
		return s.MaxMarks
	case v.FieldObtainedMarks:
		return s.ObtainedMarks
	case v.FieldMonthYear:
		return s.MonthYear
	}
	return ""
}

func (s Subject) complete() bool {
	for _, field := range subjectRequired {
		if strings.TrimSpace(s.value(field)) == "" {
			return false
		}
	}
	return true
}

// qualificationErrors lists required-field messages first, then format
// messages, then the marksheet requirement of the mandatory courses.
func qualificationErrors(f QualificationFields, marksheetURL string) []string {
	var msgs []string
	for _, field := range qualificationRequired {
		if r := v.Required(field, f.value(field)); !r.Valid {
			msgs = append(msgs, r.Error)
		}
	}
	for _, field := range []string{v.FieldPercentage, v.FieldMonthYear} {
		if strings.TrimSpace(f.value(field)) == "" {
			continue
		}
		if r := v.Validate(field, f.value(field), v.Context{}); !r.Valid {
			msgs = append(msgs, r.Error)
		}
	}
	switch f.Course {
	case CourseSSLC:
		if r := v.Validate(v.FieldSSLCMarksheet, marksheetURL, v.Context{}); !r.Valid {
			msgs = append(msgs, r.Error)
		}
	case CourseHSC:
		if r := v.Validate(v.FieldHSCMarksheet, marksheetURL, v.Context{}); !r.Valid {
			msgs = append(msgs, r.Error)
		}
	}
	return msgs
}

func subjectErrors(s Subject) []string {
	var msgs []string
	for _, field := range subjectRequired {
		if r := v.Required(field, s.value(field)); !r.Valid {
			msgs = append(msgs, r.Error)
		}
	}
	if strings.TrimSpace(s.MaxMarks) != "" {
		if r := v.Validate(v.FieldMaxMarks, s.MaxMarks, v.Context{}); !r.Valid {
			msgs = append(msgs, r.Error)
		}
	}
	if strings.TrimSpace(s.ObtainedMarks) != "" {
		if r := v.Validate(v.FieldObtainedMarks, s.ObtainedMarks, v.Context{MaxMarks: s.MaxMarks}); !r.Valid {
			msgs = append(msgs, r.Error)
		}
	}
	if strings.TrimSpace(s.MonthYear) != "" {
		if r := v.Validate(v.FieldMonthYear, s.MonthYear, v.Context{}); !r.Valid {
			msgs = append(msgs, r.Error)
		}
	}
	return msgs
}

func semesterErrors(s Semester) []string {
	var msgs []string
	if r := v.Validate(v.FieldSemester, s.Label, v.Context{}); !r.Valid {
		msgs = append(msgs, r.Error)
	}
	if len(s.Subjects) == 0 {
		return append(msgs, "At least one subject is required")
	}
	for i, sub := range s.Subjects {
		if errs := subjectErrors(sub); len(errs) > 0 {
			msgs = append(msgs, fmt.Sprintf("Subject %d: %s", i+1, strings.Join(errs, "; ")))
		}
	}
	return msgs
}

func validateSemesters(errs Errors, semesters []Semester, optional func(i int, s Semester) bool) {
	for i, s := range semesters {
		if optional(i, s) {
			continue
		}
		errs.add(fmt.Sprintf("semester_%d", i), semesterErrors(s)...)
	}
}

func validateProfessional(errs Errors, yearsExperience, annualIncome string) {
	if r := v.Validate(v.FieldYearsExperience, yearsExperience, v.Context{}); !r.Valid {
		errs.add(v.FieldYearsExperience, r.Error)
	}
	if r := v.Validate(v.FieldAnnualIncome, annualIncome, v.Context{}); !r.Valid {
		errs.add(v.FieldAnnualIncome, r.Error)
	}
}

// Validate checks the whole document. It has no side effects, so two calls
// on the same document give equal results.
func Validate(d Document) Validation {
	errs := Errors{}
	for i, q := range d.Qualifications() {
		errs.add(fmt.Sprintf("qualification_%d", i), qualificationErrors(q.QualificationFields, q.MarksheetURL)...)
	}
	validateSemesters(errs, d.Semesters, func(i int, _ Semester) bool { return i == OptionalSemesterIndex })
	if len(d.Semesters) > 0 {
		if strings.TrimSpace(d.SemesterMarksheet.URL) == "" {
			errs.add("semester_marksheet", v.MsgSemesterMarksheet)
		}
		summary := map[string]string{
			"total_max_marks":      d.Summary.TotalMaxMarks,
			"total_obtained_marks": d.Summary.TotalObtainedMarks,
			"percentage":           d.Summary.Percentage,
			"class_obtained":       d.Summary.ClassObtained,
		}
		for _, field := range summaryRequired {
			if r := v.RequiredForSemesters(field, summary[field]); !r.Valid {
				errs.add(field, r.Error)
			}
		}
	}
	validateProfessional(errs, d.Professional.YearsExperience, d.Professional.AnnualIncome)
	return newValidation(errs)
}

func formatOptional(f *float64) string {
	if f == nil {
		return ""
	}
	return v.FormatNumber(*f)
}

// ValidateSubmission re-checks a posted page on the server. It applies the
// same rules as Validate to the cleaned payload and additionally requires the
// mandatory qualifications to be present, since the payload is a flat list.
// The optional semester is the one carrying OptionalSemesterLabel; every
// other posted semester gets the full checks.
func ValidateSubmission(sub dto.Page3Submission) Validation {
	errs := Errors{}
	var haveSSLC, haveHSC bool
	for i, q := range sub.Qualifications {
		fields := fieldsFromDTO(q)
		url := ""
		switch fields.Course {
		case CourseSSLC:
			haveSSLC, url = true, sub.SSLCMarksheetURL
		case CourseHSC:
			haveHSC, url = true, sub.HSCMarksheetURL
		}
		errs.add(fmt.Sprintf("qualification_%d", i), qualificationErrors(fields, url)...)
	}
	if !haveSSLC {
		errs.add("qualifications", "S.S.L.C (10th) qualification is mandatory")
	}
	if !haveHSC {
		errs.add("qualifications", "HSC (12th) qualification is mandatory")
	}

	semesters := semestersFromDTO(sub.SemesterMarks)
	validateSemesters(errs, semesters, func(_ int, s Semester) bool {
		return strings.EqualFold(strings.TrimSpace(s.Label), OptionalSemesterLabel)
	})
	if len(semesters) > 0 {
		if strings.TrimSpace(sub.SemesterMarksheetURL) == "" {
			errs.add("semester_marksheet", v.MsgSemesterMarksheet)
		}
		summary := map[string]string{
			"total_max_marks":      formatOptional(sub.TotalMaxMarks),
			"total_obtained_marks": formatOptional(sub.TotalObtainedMarks),
			"percentage":           formatOptional(sub.Percentage),
			"class_obtained":       sub.ClassObtained,
		}
		for _, field := range summaryRequired {
			if r := v.RequiredForSemesters(field, summary[field]); !r.Valid {
				errs.add(field, r.Error)
			}
		}
	}
	validateProfessional(errs, formatOptional(sub.YearsExperience), formatOptional(sub.AnnualIncome))
	return newValidation(errs)
}
