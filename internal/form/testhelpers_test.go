package form

import "testing"

func completeFields(course string) QualificationFields {
	return QualificationFields{
		Course:         course,
		InstituteName:  "Govt Higher Secondary School",
		Board:          "State Board",
		SubjectStudied: "Science",
		RegNo:          "REG-001",
		Percentage:     "88.5",
		MonthYear:      "04/2019",
		ModeOfStudy:    "Regular",
	}
}

func completeSubject(max, obtained string) Subject {
	return Subject{
		SubjectName:   "Mathematics",
		Category:      "Theory",
		MaxMarks:      max,
		ObtainedMarks: obtained,
		MonthYear:     "11/2021",
	}
}

// validDocument has both mandatory entries filled and nothing else.
func validDocument() Document {
	d := NewDocument()
	d.Email = "student@example.com"
	d.SSLC.QualificationFields = completeFields(CourseSSLC)
	d.SSLC.MarksheetURL = "https://files.example.com/sslc.pdf"
	d.HSC.QualificationFields = completeFields(CourseHSC)
	d.HSC.MarksheetURL = "https://files.example.com/hsc.pdf"
	return d
}

func newOrchestrator(t testing.TB, d Document) *Orchestrator {
	t.Helper()
	o, err := NewOrchestrator(d)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	return o
}

func mustDispatch(t testing.TB, o *Orchestrator, a Action) Result {
	t.Helper()
	res, err := o.Dispatch(a)
	if err != nil {
		t.Fatalf("dispatch %T: %v", a, err)
	}
	return res
}

func countCourse(d Document, course string) int {
	n := 0
	for _, q := range d.Qualifications() {
		if q.Course == course {
			n++
		}
	}
	return n
}
