package form

import (
	"strconv"

	"github.com/lshigami/admission/internal/validation"
)

// Totals are the marks summed over every subject of every semester.
type Totals struct {
	MaxMarks      float64
	ObtainedMarks float64
}

// Percentage is obtained over max, two decimals, "0.00" when max is zero.
func (t Totals) Percentage() string {
	if t.MaxMarks <= 0 {
		return "0.00"
	}
	return strconv.FormatFloat(t.ObtainedMarks/t.MaxMarks*100, 'f', 2, 64)
}

// Summarize adds up the semesters. Unparseable marks count as zero.
func Summarize(semesters []Semester) Totals {
	var t Totals
	for _, s := range semesters {
		for _, sub := range s.Subjects {
			t.MaxMarks += validation.FloatOrZero(sub.MaxMarks)
			t.ObtainedMarks += validation.FloatOrZero(sub.ObtainedMarks)
		}
	}
	return t
}

// recomputeSummary refreshes the derived totals from the current semesters.
func (d *Document) recomputeSummary() {
	t := Summarize(d.Semesters)
	d.Summary.TotalMaxMarks = validation.FormatNumber(t.MaxMarks)
	d.Summary.TotalObtainedMarks = validation.FormatNumber(t.ObtainedMarks)
	d.Summary.Percentage = t.Percentage()
}
