package form

import (
	"strings"

	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/validation"
)

func fieldsToDTO(f QualificationFields) dto.QualificationDTO {
	return dto.QualificationDTO{
		Course:         f.Course,
		InstituteName:  f.InstituteName,
		Board:          f.Board,
		SubjectStudied: f.SubjectStudied,
		RegNo:          f.RegNo,
		Percentage:     dto.NumberString(f.Percentage),
		MonthYear:      f.MonthYear,
		ModeOfStudy:    f.ModeOfStudy,
	}
}

func semesterToDTO(s Semester) dto.SemesterDTO {
	out := dto.SemesterDTO{Semester: s.Label, Subjects: make([]dto.SubjectDTO, 0, len(s.Subjects))}
	for _, sub := range s.Subjects {
		out.Subjects = append(out.Subjects, dto.SubjectDTO{
			SubjectName:   sub.SubjectName,
			Category:      sub.Category,
			MaxMarks:      dto.NumberString(sub.MaxMarks),
			ObtainedMarks: dto.NumberString(sub.ObtainedMarks),
			MonthYear:     sub.MonthYear,
		})
	}
	return out
}

// eligible reports whether a semester is sent. The optional slot only needs
// a label; the others need a label and fully filled subjects.
func eligible(i int, s Semester) bool {
	if strings.TrimSpace(s.Label) == "" {
		return false
	}
	if i == OptionalSemesterIndex {
		return true
	}
	if len(s.Subjects) == 0 {
		return false
	}
	for _, sub := range s.Subjects {
		if !sub.complete() {
			return false
		}
	}
	return true
}

// BuildSubmission cleans the document into the payload posted to the server.
// Marksheet URLs move to top-level fields, incomplete qualifications and
// ineligible semesters are dropped, and numeric strings become numbers with
// empty values sent as null.
func BuildSubmission(d Document) dto.Page3Submission {
	sub := dto.Page3Submission{
		Email:                d.Email,
		NameInitial:          d.NameInitial,
		SSLCMarksheetURL:     strings.TrimSpace(d.SSLC.MarksheetURL),
		HSCMarksheetURL:      strings.TrimSpace(d.HSC.MarksheetURL),
		SemesterMarksheetURL: strings.TrimSpace(d.SemesterMarksheet.URL),
		Qualifications:       []dto.QualificationDTO{},
		SemesterMarks:        []dto.SemesterDTO{},
		TotalMaxMarks:        validation.OptionalFloat(d.Summary.TotalMaxMarks),
		TotalObtainedMarks:   validation.OptionalFloat(d.Summary.TotalObtainedMarks),
		Percentage:           validation.OptionalFloat(d.Summary.Percentage),
		CGPA:                 d.Summary.CGPA,
		OverallGrade:         d.Summary.OverallGrade,
		ClassObtained:        d.Summary.ClassObtained,
		CurrentDesignation:   d.Professional.CurrentDesignation,
		CurrentInstitute:     d.Professional.CurrentInstitute,
		YearsExperience:      validation.OptionalFloat(d.Professional.YearsExperience),
		AnnualIncome:         validation.OptionalFloat(d.Professional.AnnualIncome),
	}
	if len(d.Additional) > 0 {
		sub.UGMarksheetURL = strings.TrimSpace(d.Additional[0].MarksheetURL)
	}
	for _, q := range d.Qualifications() {
		if q.complete() {
			sub.Qualifications = append(sub.Qualifications, fieldsToDTO(q.QualificationFields))
		}
	}
	for i, s := range d.Semesters {
		if eligible(i, s) {
			sub.SemesterMarks = append(sub.SemesterMarks, semesterToDTO(s))
		}
	}
	return sub
}
