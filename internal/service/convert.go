package service

import (
	"encoding/json"

	"github.com/jinzhu/copier"
	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/form"
	"github.com/lshigami/admission/internal/model"
	"github.com/lshigami/admission/internal/upload"
	"github.com/lshigami/admission/internal/validation"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

func numberString(f *float64) dto.NumberString {
	if f == nil {
		return ""
	}
	return dto.NumberString(validation.FormatNumber(*f))
}

// qualificationRows turns the posted list into rows, attaching the top-level
// marksheet URLs by course. The first additional qualification owns the UG
// marksheet.
func qualificationRows(sub dto.Page3Submission) ([]model.Qualification, error) {
	rows := make([]model.Qualification, 0, len(sub.Qualifications))
	if err := copier.Copy(&rows, &sub.Qualifications); err != nil {
		return nil, err
	}
	ugAssigned := false
	for i := range rows {
		rows[i].Position = i
		switch rows[i].Course {
		case form.CourseSSLC:
			rows[i].MarksheetURL = sub.SSLCMarksheetURL
		case form.CourseHSC:
			rows[i].MarksheetURL = sub.HSCMarksheetURL
		default:
			if !ugAssigned {
				rows[i].MarksheetURL = sub.UGMarksheetURL
				ugAssigned = true
			}
		}
	}
	return rows, nil
}

func applySubmission(app *model.Application, sub dto.Page3Submission) error {
	semesters := sub.SemesterMarks
	if semesters == nil {
		semesters = []dto.SemesterDTO{}
	}
	raw, err := json.Marshal(semesters)
	if err != nil {
		return err
	}
	if sub.NameInitial != "" {
		app.NameInitial = sub.NameInitial
	}
	app.SemesterMarks = datatypes.JSON(raw)
	app.SSLCMarksheetURL = sub.SSLCMarksheetURL
	app.HSCMarksheetURL = sub.HSCMarksheetURL
	app.UGMarksheetURL = sub.UGMarksheetURL
	app.SemesterMarksheetURL = sub.SemesterMarksheetURL
	app.TotalMaxMarks = sub.TotalMaxMarks
	app.TotalObtainedMarks = sub.TotalObtainedMarks
	app.Percentage = sub.Percentage
	app.CGPA = sub.CGPA
	app.OverallGrade = sub.OverallGrade
	app.ClassObtained = sub.ClassObtained
	app.CurrentDesignation = sub.CurrentDesignation
	app.CurrentInstitute = sub.CurrentInstitute
	app.YearsExperience = sub.YearsExperience
	app.AnnualIncome = sub.AnnualIncome
	return nil
}

func toPage3Data(app *model.Application) dto.Page3Data {
	data := dto.Page3Data{
		Email:                app.Email,
		NameInitial:          app.NameInitial,
		Qualifications:       []dto.QualificationDTO{},
		SemesterMarks:        []dto.SemesterDTO{},
		SSLCMarksheetURL:     app.SSLCMarksheetURL,
		HSCMarksheetURL:      app.HSCMarksheetURL,
		UGMarksheetURL:       app.UGMarksheetURL,
		SemesterMarksheetURL: app.SemesterMarksheetURL,
		TotalMaxMarks:        numberString(app.TotalMaxMarks),
		TotalObtainedMarks:   numberString(app.TotalObtainedMarks),
		Percentage:           numberString(app.Percentage),
		CGPA:                 app.CGPA,
		OverallGrade:         app.OverallGrade,
		ClassObtained:        app.ClassObtained,
		CurrentDesignation:   app.CurrentDesignation,
		CurrentInstitute:     app.CurrentInstitute,
		YearsExperience:      numberString(app.YearsExperience),
		AnnualIncome:         numberString(app.AnnualIncome),
	}
	for _, q := range app.Qualifications {
		var out dto.QualificationDTO
		if err := copier.Copy(&out, &q); err != nil {
			log.Warn().Err(err).Uint("qualification_id", q.ID).Msg("Failed to copy qualification")
			continue
		}
		switch form.MarksheetField(q.Course) {
		case "sslc_marksheet_url":
			out.SSLCMarksheetURL = q.MarksheetURL
		case "hsc_marksheet_url":
			out.HSCMarksheetURL = q.MarksheetURL
		default:
			out.UGMarksheetURL = q.MarksheetURL
		}
		data.Qualifications = append(data.Qualifications, out)
	}
	if len(app.SemesterMarks) > 0 {
		if err := json.Unmarshal(app.SemesterMarks, &data.SemesterMarks); err != nil {
			log.Warn().Err(err).Uint("application_id", app.ID).Msg("Stored semester marks are unreadable")
			data.SemesterMarks = []dto.SemesterDTO{}
		}
	}
	for _, d := range app.Documents {
		setDocumentURL(&data, d.Field, d.URL)
	}
	return data
}

func setDocumentURL(data *dto.Page3Data, field, url string) {
	switch field {
	case upload.TargetPhoto:
		data.PhotoURL = url
	case upload.TargetSignature:
		data.SignatureURL = url
	case upload.TargetCommunityCertificate:
		data.CommunityCertificateURL = url
	case upload.TargetAadharCard:
		data.AadhaarURL = url
	case upload.TargetTransferCertificate:
		data.TransferCertificateURL = url
	}
}
