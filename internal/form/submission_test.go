package form

import (
	"encoding/json"
	"testing"

	"github.com/lshigami/admission/internal/dto"
)

func TestBuildSubmissionCleansDocument(t *testing.T) {
	d := validDocument()
	d.SSLC.MarksheetURL = "  https://files.example.com/sslc.pdf  "
	d.Additional = []Qualification{
		{QualificationFields: completeFields("UG"), MarksheetURL: "https://files.example.com/ug.pdf"},
		{QualificationFields: QualificationFields{Course: "Diploma"}},
	}
	d.Semesters = []Semester{
		{Label: "Semester 1", Subjects: []Subject{completeSubject("100", "80")}},
		{Label: "Semester 2", Subjects: []Subject{{SubjectName: "Physics"}}},
		{Label: "Semester 3"},
		{Label: "  "},
		{Label: "Semester 5", Subjects: []Subject{completeSubject("50", "25")}},
		{Label: "Semester 6"},
	}
	d.SemesterMarksheet.URL = "https://files.example.com/sem.pdf"
	d.recomputeSummary()
	d.Professional.YearsExperience = ""
	d.Professional.AnnualIncome = "250000"

	sub := BuildSubmission(d)

	if sub.SSLCMarksheetURL != "https://files.example.com/sslc.pdf" {
		t.Errorf("sslc url = %q", sub.SSLCMarksheetURL)
	}
	if sub.UGMarksheetURL != "https://files.example.com/ug.pdf" {
		t.Errorf("ug url = %q", sub.UGMarksheetURL)
	}
	if len(sub.Qualifications) != 3 {
		t.Fatalf("qualifications = %d, want 3 (incomplete Diploma dropped)", len(sub.Qualifications))
	}
	for _, q := range sub.Qualifications {
		if q.SSLCMarksheetURL != "" || q.HSCMarksheetURL != "" || q.UGMarksheetURL != "" {
			t.Errorf("nested url left on %s", q.Course)
		}
	}
	var labels []string
	for _, s := range sub.SemesterMarks {
		labels = append(labels, s.Semester)
	}
	if len(labels) != 3 || labels[0] != "Semester 1" || labels[1] != "Semester 5" || labels[2] != "Semester 6" {
		t.Errorf("semesters sent = %q", labels)
	}
	if sub.TotalMaxMarks == nil || *sub.TotalMaxMarks != 150 {
		t.Errorf("total max = %v", sub.TotalMaxMarks)
	}
	if sub.Percentage == nil || *sub.Percentage != 70 {
		t.Errorf("percentage = %v", sub.Percentage)
	}
	if sub.YearsExperience != nil {
		t.Errorf("years_experience = %v, want nil", *sub.YearsExperience)
	}
	if sub.AnnualIncome == nil || *sub.AnnualIncome != 250000 {
		t.Errorf("annual_income = %v", sub.AnnualIncome)
	}
}

func TestBuildSubmissionJSONShape(t *testing.T) {
	b, err := json.Marshal(BuildSubmission(validDocument()))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"years_experience", "annual_income", "total_max_marks", "percentage"} {
		v, ok := raw[key]
		if !ok || v != nil {
			t.Errorf("%s = %#v, want null", key, v)
		}
	}
	quals := raw["qualifications"].([]interface{})
	first := quals[0].(map[string]interface{})
	if _, ok := first["sslc_marksheet_url"]; ok {
		t.Error("nested sslc_marksheet_url should be omitted")
	}
	if first["percentage"] != "88.5" {
		t.Errorf("percentage = %#v", first["percentage"])
	}
}

func TestHydrate(t *testing.T) {
	data := dto.Page3Data{
		Email: "student@example.com",
		Qualifications: []dto.QualificationDTO{
			{Course: "UG", InstituteName: "City College", Percentage: "71", UGMarksheetURL: ""},
			{Course: CourseHSC, InstituteName: "HSS", Percentage: "90", HSCMarksheetURL: "https://f/hsc.pdf"},
		},
		SSLCMarksheetURL: "https://f/sslc.pdf",
		UGMarksheetURL:   "https://f/ug.pdf",
		SemesterMarks: []dto.SemesterDTO{
			{Semester: "Semester 1", Subjects: []dto.SubjectDTO{{SubjectName: "Maths", MaxMarks: "100", ObtainedMarks: "80"}}},
		},
		TotalMaxMarks:   "100",
		YearsExperience: "3",
	}
	d := Hydrate(data)

	if d.SSLC.Course != CourseSSLC || d.SSLC.InstituteName != "" {
		t.Errorf("sslc should fall back to defaults: %+v", d.SSLC)
	}
	if d.SSLC.MarksheetURL != "https://f/sslc.pdf" {
		t.Errorf("sslc url = %q", d.SSLC.MarksheetURL)
	}
	if d.HSC.InstituteName != "HSS" || d.HSC.MarksheetURL != "https://f/hsc.pdf" {
		t.Errorf("hsc = %+v", d.HSC)
	}
	if len(d.Additional) != 1 || d.Additional[0].Course != "UG" || d.Additional[0].MarksheetURL != "https://f/ug.pdf" {
		t.Errorf("additional = %+v", d.Additional)
	}
	if len(d.Additional) == 1 && d.Additional[0].ID == "" {
		t.Error("additional entry has no id")
	}
	if len(d.Semesters) != 1 || d.Semesters[0].Subjects[0].MaxMarks != "100" {
		t.Errorf("semesters = %+v", d.Semesters)
	}
	if d.Summary.TotalMaxMarks != "100" || d.Professional.YearsExperience != "3" {
		t.Errorf("summary %+v professional %+v", d.Summary, d.Professional)
	}
}

func TestHydrateEmptyKeepsDefaults(t *testing.T) {
	d := Hydrate(dto.Page3Data{Email: "a@b.c"})
	if d.SSLC.Course != CourseSSLC || d.HSC.Course != CourseHSC {
		t.Fatalf("defaults missing: %+v %+v", d.SSLC, d.HSC)
	}
	if len(d.Additional) != 0 || len(d.Semesters) != 0 {
		t.Fatal("unexpected entries")
	}
}
