// Package validation holds the field-level rules of the admission form.
// Every rule returns a Result; nothing here panics or returns an error.
package validation

import (
	"regexp"
	"strings"
)

// Field names as they appear on the wire and as error-map keys.
const (
	FieldCourse          = "course"
	FieldInstituteName   = "institute_name"
	FieldBoard           = "board"
	FieldSubjectStudied  = "subject_studied"
	FieldRegNo           = "reg_no"
	FieldPercentage      = "percentage"
	FieldMonthYear       = "month_year"
	FieldModeOfStudy     = "mode_of_study"
	FieldSSLCMarksheet   = "sslc_marksheet_url"
	FieldHSCMarksheet    = "hsc_marksheet_url"
	FieldSemester        = "semester"
	FieldSubjectName     = "subject_name"
	FieldCategory        = "category"
	FieldMaxMarks        = "max_marks"
	FieldObtainedMarks   = "obtained_marks"
	FieldYearsExperience = "years_experience"
	FieldAnnualIncome    = "annual_income"
)

// Messages that are compared against by callers and tests.
const (
	MsgPercentageRange   = "Percentage must be between 0 and 100"
	MsgMonthYearFormat   = "Month & Year must be in MM/YYYY format"
	MsgMaxMarksPositive  = "Max Marks must be positive"
	MsgObtainedRange     = "Obtained Marks must be between 0 and Max Marks"
	MsgSSLCMarksheet     = "SSLC Marksheet is required"
	MsgHSCMarksheet      = "HSC Marksheet is required"
	MsgSemesterRequired  = "Semester/Year is required"
	MsgYearsExperience   = "Years of Experience must be a valid non-negative number"
	MsgAnnualIncome      = "Annual Income must be a valid non-negative number"
	MsgSemesterMarksheet = "Semester marksheet upload is required"
)

var monthYearPattern = regexp.MustCompile(`^\d{2}/\d{4}$`)

// Result is the outcome of validating one field.
type Result struct {
	Error string
	Valid bool
}

// Context carries the sibling values a rule may depend on.
type Context struct {
	// MaxMarks is the raw max-marks value of the subject being checked.
	MaxMarks string
}

func ok() Result { return Result{Valid: true} }

func fail(msg string) Result { return Result{Error: msg} }

// Label turns a field name into the lower-case label used in required messages.
func Label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// Required reports an error when value is empty or whitespace only.
func Required(field, value string) Result {
	if strings.TrimSpace(value) == "" {
		return fail(Label(field) + " is required")
	}
	return ok()
}

// RequiredForSemesters is the summary-field rule applied once any semester exists.
func RequiredForSemesters(field, value string) Result {
	if strings.TrimSpace(value) == "" {
		return fail(Label(field) + " is required for semester marks")
	}
	return ok()
}

// MonthYear checks the MM/YYYY shape only. "13/2023" passes.
func MonthYear(value string) bool {
	return monthYearPattern.MatchString(value)
}

// Validate applies the rule for field to value. Unknown fields are always valid.
func Validate(field, value string, ctx Context) Result {
	switch field {
	case FieldCourse, FieldInstituteName, FieldBoard, FieldSubjectStudied,
		FieldRegNo, FieldModeOfStudy, FieldSubjectName, FieldCategory:
		return Required(field, value)

	case FieldPercentage:
		if r := Required(field, value); !r.Valid {
			return r
		}
		p, parsed := ParseFloat(value)
		if !parsed || p < 0 || p > 100 {
			return fail(MsgPercentageRange)
		}
		return ok()

	case FieldMonthYear:
		if r := Required(field, value); !r.Valid {
			return r
		}
		if !MonthYear(value) {
			return fail(MsgMonthYearFormat)
		}
		return ok()

	case FieldMaxMarks:
		if r := Required(field, value); !r.Valid {
			return r
		}
		m, parsed := ParseFloat(value)
		if !parsed || m <= 0 {
			return fail(MsgMaxMarksPositive)
		}
		return ok()

	case FieldObtainedMarks:
		if r := Required(field, value); !r.Valid {
			return r
		}
		// An unusable max is reported on max_marks itself.
		max, maxOK := ParseFloat(ctx.MaxMarks)
		if !maxOK || max <= 0 {
			return ok()
		}
		o, parsed := ParseFloat(value)
		if !parsed || o < 0 || o > max {
			return fail(MsgObtainedRange)
		}
		return ok()

	case FieldSSLCMarksheet:
		if strings.TrimSpace(value) == "" {
			return fail(MsgSSLCMarksheet)
		}
		return ok()

	case FieldHSCMarksheet:
		if strings.TrimSpace(value) == "" {
			return fail(MsgHSCMarksheet)
		}
		return ok()

	case FieldSemester:
		if strings.TrimSpace(value) == "" {
			return fail(MsgSemesterRequired)
		}
		return ok()

	case FieldYearsExperience, FieldAnnualIncome:
		if strings.TrimSpace(value) == "" {
			return ok()
		}
		if n, parsed := ParseFloat(value); !parsed || n < 0 {
			return fail(nonNegativeMessage(field))
		}
		return ok()
	}
	return ok()
}

func nonNegativeMessage(field string) string {
	if field == FieldAnnualIncome {
		return MsgAnnualIncome
	}
	return MsgYearsExperience
}

// NormalizeNonNegative applies the optional non-negative number rule to raw
// input. Invalid input collapses to "". The warning is set only when the
// trimmed input was non-empty.
func NormalizeNonNegative(field, raw string) (value, warning string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ""
	}
	if n, parsed := ParseFloat(trimmed); !parsed || n < 0 {
		return "", nonNegativeMessage(field)
	}
	return trimmed, ""
}
