package form

import (
	"github.com/google/uuid"
	"github.com/lshigami/admission/internal/dto"
)

func fieldsFromDTO(q dto.QualificationDTO) QualificationFields {
	return QualificationFields{
		Course:         q.Course,
		InstituteName:  q.InstituteName,
		Board:          q.Board,
		SubjectStudied: q.SubjectStudied,
		RegNo:          q.RegNo,
		Percentage:     q.Percentage.String(),
		MonthYear:      q.MonthYear,
		ModeOfStudy:    q.ModeOfStudy,
	}
}

func semestersFromDTO(in []dto.SemesterDTO) []Semester {
	if len(in) == 0 {
		return nil
	}
	out := make([]Semester, len(in))
	for i, s := range in {
		out[i].Label = s.Semester
		for _, sub := range s.Subjects {
			out[i].Subjects = append(out[i].Subjects, Subject{
				SubjectName:   sub.SubjectName,
				Category:      sub.Category,
				MaxMarks:      sub.MaxMarks.String(),
				ObtainedMarks: sub.ObtainedMarks.String(),
				MonthYear:     sub.MonthYear,
			})
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, s := range vals {
		if s != "" {
			return s
		}
	}
	return ""
}

// Hydrate builds a document from the persisted page. The mandatory entries
// are found by course name and fall back to empty defaults; every other
// qualification becomes an additional entry in server order.
func Hydrate(data dto.Page3Data) Document {
	d := NewDocument()
	d.Email = data.Email
	d.NameInitial = data.NameInitial

	var sslcSeen, hscSeen bool
	for _, q := range data.Qualifications {
		switch q.Course {
		case CourseSSLC:
			if sslcSeen {
				continue
			}
			sslcSeen = true
			d.SSLC = Qualification{
				QualificationFields: fieldsFromDTO(q),
				MarksheetURL:        firstNonEmpty(q.SSLCMarksheetURL, data.SSLCMarksheetURL),
			}
		case CourseHSC:
			if hscSeen {
				continue
			}
			hscSeen = true
			d.HSC = Qualification{
				QualificationFields: fieldsFromDTO(q),
				MarksheetURL:        firstNonEmpty(q.HSCMarksheetURL, data.HSCMarksheetURL),
			}
		default:
			d.Additional = append(d.Additional, Qualification{
				ID:                  uuid.NewString(),
				QualificationFields: fieldsFromDTO(q),
				MarksheetURL:        q.UGMarksheetURL,
			})
		}
	}
	if !sslcSeen {
		d.SSLC.MarksheetURL = data.SSLCMarksheetURL
	}
	if !hscSeen {
		d.HSC.MarksheetURL = data.HSCMarksheetURL
	}
	if len(d.Additional) > 0 && d.Additional[0].MarksheetURL == "" {
		d.Additional[0].MarksheetURL = data.UGMarksheetURL
	}

	d.Semesters = semestersFromDTO(data.SemesterMarks)
	d.SemesterMarksheet.URL = data.SemesterMarksheetURL
	d.Summary = Summary{
		TotalMaxMarks:      data.TotalMaxMarks.String(),
		TotalObtainedMarks: data.TotalObtainedMarks.String(),
		Percentage:         data.Percentage.String(),
		CGPA:               data.CGPA,
		OverallGrade:       data.OverallGrade,
		ClassObtained:      data.ClassObtained,
	}
	d.Professional = Professional{
		CurrentDesignation: data.CurrentDesignation,
		CurrentInstitute:   data.CurrentInstitute,
		YearsExperience:    data.YearsExperience.String(),
		AnnualIncome:       data.AnnualIncome.String(),
	}
	return d
}
