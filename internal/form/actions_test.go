package form

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func TestMandatoryQualificationsSurviveAnySequence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	o := newOrchestrator(t, NewDocument())
	for step := 0; step < 300; step++ {
		doc := o.Snapshot()
		switch rng.Intn(4) {
		case 0, 1:
			mustDispatch(t, o, AddQualification{})
		case 2:
			idx := rng.Intn(doc.QualificationCount() + 1)
			_, err := o.Dispatch(RemoveQualification{Index: idx})
			if idx < 2 && !errors.Is(err, ErrMandatoryQualification) {
				t.Fatalf("step %d: removing %d: err = %v", step, idx, err)
			}
		case 3:
			idx := rng.Intn(2)
			f := completeFields("UG")
			mustDispatch(t, o, UpdateQualification{Index: idx, Fields: f})
		}
		doc = o.Snapshot()
		if countCourse(doc, CourseSSLC) != 1 || countCourse(doc, CourseHSC) != 1 {
			t.Fatalf("step %d: SSLC=%d HSC=%d", step, countCourse(doc, CourseSSLC), countCourse(doc, CourseHSC))
		}
	}
}

func TestUpdateQualificationRejectsReservedCourse(t *testing.T) {
	o := newOrchestrator(t, NewDocument())
	mustDispatch(t, o, AddQualification{})
	_, err := o.Dispatch(UpdateQualification{Index: 2, Fields: completeFields(CourseHSC)})
	if !errors.Is(err, ErrReservedCourse) {
		t.Fatalf("err = %v, want ErrReservedCourse", err)
	}
	if got := o.Snapshot().Additional[0].Course; got != "" {
		t.Errorf("course changed to %q after rejected update", got)
	}
}

func TestAddQualificationAppendsSixSemesters(t *testing.T) {
	o := newOrchestrator(t, NewDocument())
	mustDispatch(t, o, AddSemester{})
	mustDispatch(t, o, AddSemester{})
	mustDispatch(t, o, AddQualification{})

	doc := o.Snapshot()
	if len(doc.Semesters) != 8 {
		t.Fatalf("semesters = %d, want 8", len(doc.Semesters))
	}
	for i := 2; i < 8; i++ {
		want := fmt.Sprintf("Semester %d", i+1)
		if doc.Semesters[i].Label != want {
			t.Errorf("semester %d label = %q, want %q", i, doc.Semesters[i].Label, want)
		}
	}
}

func TestRemoveQualificationTrimsSixFromTail(t *testing.T) {
	o := newOrchestrator(t, NewDocument())
	mustDispatch(t, o, AddQualification{})
	mustDispatch(t, o, AddQualification{})
	mustDispatch(t, o, UpdateSemester{Index: 0, Semester: Semester{Label: "First year"}})

	mustDispatch(t, o, RemoveQualification{Index: 2})
	doc := o.Snapshot()
	if len(doc.Additional) != 1 {
		t.Fatalf("additional = %d, want 1", len(doc.Additional))
	}
	if len(doc.Semesters) != 6 {
		t.Fatalf("semesters = %d, want 6", len(doc.Semesters))
	}
	if doc.Semesters[0].Label != "First year" || doc.Semesters[5].Label != "Semester 6" {
		t.Errorf("head not preserved: %q .. %q", doc.Semesters[0].Label, doc.Semesters[5].Label)
	}

	// With exactly six left nothing is trimmed.
	mustDispatch(t, o, RemoveQualification{Index: 2})
	if got := len(o.Snapshot().Semesters); got != 6 {
		t.Errorf("semesters after last removal = %d, want 6", got)
	}
}

func TestSemesterAndSubjectEditsRecomputeSummary(t *testing.T) {
	o := newOrchestrator(t, NewDocument())
	mustDispatch(t, o, AddSemester{})
	mustDispatch(t, o, AddSemester{})
	mustDispatch(t, o, AddSubject{Semester: 0})
	mustDispatch(t, o, AddSubject{Semester: 1})
	mustDispatch(t, o, UpdateSubject{Semester: 0, Index: 0, Subject: completeSubject("100", "80")})
	mustDispatch(t, o, UpdateSubject{Semester: 1, Index: 0, Subject: completeSubject("50", "25")})

	s := o.Snapshot().Summary
	if s.TotalMaxMarks != "150" || s.TotalObtainedMarks != "105" || s.Percentage != "70.00" {
		t.Fatalf("summary = %+v", s)
	}

	mustDispatch(t, o, RemoveSubject{Semester: 1, Index: 0})
	s = o.Snapshot().Summary
	if s.TotalMaxMarks != "100" || s.Percentage != "80.00" {
		t.Errorf("after removal summary = %+v", s)
	}

	mustDispatch(t, o, RemoveSemester{Index: 0})
	mustDispatch(t, o, RemoveSemester{Index: 0})
	if s = o.Snapshot().Summary; s.Percentage != "0.00" {
		t.Errorf("empty percentage = %q", s.Percentage)
	}
}

func TestIndexErrorsLeaveDocumentUnchanged(t *testing.T) {
	o := newOrchestrator(t, validDocument())
	before := o.Snapshot()
	for _, a := range []Action{
		RemoveQualification{Index: 9},
		UpdateQualification{Index: -1},
		RemoveSemester{Index: 0},
		AddSubject{Semester: 3},
		UpdateSubject{Semester: 0, Index: 0},
		SetSummaryField{Field: "total_max_marks", Value: "1"},
		SetProfessionalField{Field: "salary", Value: "1"},
		AssignUploadURL{Target: Target{Qualification: "no-such-entry"}, URL: "x"},
	} {
		if _, err := o.Dispatch(a); err == nil {
			t.Errorf("%T: expected error", a)
		}
	}
	after := o.Snapshot()
	if after.SSLC != before.SSLC || after.HSC != before.HSC || len(after.Semesters) != 0 {
		t.Error("document changed by failing actions")
	}
}

func TestSetProfessionalFieldWarnings(t *testing.T) {
	o := newOrchestrator(t, NewDocument())

	res := mustDispatch(t, o, SetProfessionalField{Field: "years_experience", Value: " 4.5 "})
	if res.Warning != "" || o.Snapshot().Professional.YearsExperience != "4.5" {
		t.Fatalf("valid input: warning %q value %q", res.Warning, o.Snapshot().Professional.YearsExperience)
	}

	res = mustDispatch(t, o, SetProfessionalField{Field: "years_experience", Value: "-2"})
	if res.Warning == "" || o.Snapshot().Professional.YearsExperience != "" {
		t.Fatalf("negative input: warning %q value %q", res.Warning, o.Snapshot().Professional.YearsExperience)
	}

	res = mustDispatch(t, o, SetProfessionalField{Field: "annual_income", Value: "   "})
	if res.Warning != "" {
		t.Errorf("blank input should not warn, got %q", res.Warning)
	}
}

func TestUploadActions(t *testing.T) {
	o := newOrchestrator(t, validDocument())
	target := Target{Qualification: CourseSSLC}

	mustDispatch(t, o, StartUpload{Target: target, FileName: "sslc.pdf"})
	mustDispatch(t, o, SetUploadProgress{Target: target, Percent: 150})
	if p := o.Snapshot().SSLC.Upload.Progress; p != 100 {
		t.Fatalf("progress = %d, want clamped 100", p)
	}

	mustDispatch(t, o, FailUpload{Target: target, Err: "network down"})
	doc := o.Snapshot()
	if doc.SSLC.Upload.Progress != 0 || !doc.SSLC.Upload.Failed {
		t.Fatalf("after failure upload = %+v", doc.SSLC.Upload)
	}
	if doc.SSLC.MarksheetURL != "https://files.example.com/sslc.pdf" {
		t.Fatalf("earlier url lost: %q", doc.SSLC.MarksheetURL)
	}

	mustDispatch(t, o, AssignUploadURL{Target: SemesterMarksheetTarget, URL: "https://files.example.com/sem.pdf"})
	if got := o.Snapshot().SemesterMarksheet.URL; got != "https://files.example.com/sem.pdf" {
		t.Errorf("semester marksheet url = %q", got)
	}
}

func TestMarksheetField(t *testing.T) {
	cases := map[string]string{
		CourseSSLC: "sslc_marksheet_url",
		CourseHSC:  "hsc_marksheet_url",
		"UG":       "ug_marksheet_url",
		"Diploma":  "ug_marksheet_url",
	}
	for course, want := range cases {
		if got := MarksheetField(course); got != want {
			t.Errorf("%s: got %q, want %q", course, got, want)
		}
	}
}

func TestUploadTargetFollowsQualification(t *testing.T) {
	o := newOrchestrator(t, validDocument())
	mustDispatch(t, o, AddQualification{})
	mustDispatch(t, o, AddQualification{})
	mustDispatch(t, o, UpdateQualification{Index: 2, Fields: completeFields("Diploma")})
	mustDispatch(t, o, UpdateQualification{Index: 3, Fields: completeFields("UG")})

	doc := o.Snapshot()
	diploma, err := doc.QualificationTarget(2)
	if err != nil {
		t.Fatal(err)
	}
	ug, err := doc.QualificationTarget(3)
	if err != nil {
		t.Fatal(err)
	}
	mustDispatch(t, o, StartUpload{Target: ug, FileName: "ug.pdf"})
	mustDispatch(t, o, StartUpload{Target: diploma, FileName: "diploma.pdf"})
	mustDispatch(t, o, RemoveQualification{Index: 2})

	if _, err := o.Dispatch(AssignUploadURL{Target: diploma, URL: "https://files.example.com/diploma.pdf"}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("removed entry: err = %v, want ErrIndexOutOfRange", err)
	}
	mustDispatch(t, o, AssignUploadURL{Target: ug, URL: "https://files.example.com/ug.pdf"})

	after := o.Snapshot()
	q, err := after.Qualification(2)
	if err != nil {
		t.Fatal(err)
	}
	if q.Course != "UG" || q.MarksheetURL != "https://files.example.com/ug.pdf" {
		t.Fatalf("qualification 2 = %q with %q", q.Course, q.MarksheetURL)
	}
}

func TestQualificationTarget(t *testing.T) {
	d := NewDocument()
	if tg, err := d.QualificationTarget(0); err != nil || tg.Qualification != CourseSSLC {
		t.Errorf("index 0: %+v, %v", tg, err)
	}
	if tg, err := d.QualificationTarget(1); err != nil || tg.Qualification != CourseHSC {
		t.Errorf("index 1: %+v, %v", tg, err)
	}
	if _, err := d.QualificationTarget(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("index 2: err = %v", err)
	}
}
