package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/form"
	"github.com/lshigami/admission/internal/model"
	"github.com/lshigami/admission/internal/upload"
)

func floatPtr(f float64) *float64 { return &f }

func qualificationDTO(course string) dto.QualificationDTO {
	return dto.QualificationDTO{
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

func validSubmission() dto.Page3Submission {
	return dto.Page3Submission{
		Email:            "student@example.com",
		NameInitial:      "K",
		Qualifications:   []dto.QualificationDTO{qualificationDTO(form.CourseSSLC), qualificationDTO(form.CourseHSC), qualificationDTO("UG")},
		SSLCMarksheetURL: "https://files.test/sslc.pdf",
		HSCMarksheetURL:  "https://files.test/hsc.pdf",
		UGMarksheetURL:   "https://files.test/ug.pdf",
		SemesterMarks: []dto.SemesterDTO{{
			Semester: "Semester 1",
			Subjects: []dto.SubjectDTO{{SubjectName: "Maths", Category: "Theory", MaxMarks: "100", ObtainedMarks: "90", MonthYear: "11/2021"}},
		}},
		SemesterMarksheetURL: "https://files.test/sem.pdf",
		TotalMaxMarks:        floatPtr(100),
		TotalObtainedMarks:   floatPtr(90),
		Percentage:           floatPtr(90),
		ClassObtained:        "First Class",
		YearsExperience:      floatPtr(2),
	}
}

type fixture struct {
	users *fakeUserRepo
	apps  *fakeAppRepo
	cache *memCache
	store *memStore
	user  *model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{users: &fakeUserRepo{}, apps: newFakeAppRepo(), cache: newMemCache(), store: newMemStore()}
	u := &model.User{Email: "student@example.com", Name: "Asha", NameInitial: "R", Role: model.RoleApplicant}
	if err := f.users.Create(u); err != nil {
		t.Fatal(err)
	}
	f.user = u
	return f
}

func TestGetPage3WithoutApplication(t *testing.T) {
	f := newFixture(t)
	svc := NewApplicationService(f.users, f.apps, f.cache)
	data, err := svc.GetPage3(f.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if data.Email != "student@example.com" || data.NameInitial != "R" {
		t.Errorf("identity = %q %q", data.Email, data.NameInitial)
	}
	if data.Qualifications == nil || len(data.Qualifications) != 0 {
		t.Errorf("qualifications = %#v, want empty list", data.Qualifications)
	}
	if _, err := svc.GetPage3(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user: %v", err)
	}
}

func TestSubmitPage3RejectsMissingHSC(t *testing.T) {
	f := newFixture(t)
	svc := NewApplicationService(f.users, f.apps, f.cache)
	sub := validSubmission()
	sub.Qualifications = sub.Qualifications[:1]
	sub.SSLCMarksheetURL = ""

	err := svc.SubmitPage3(context.Background(), f.user.ID, sub)
	var verr *ValidationFailedError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationFailedError, got %v", err)
	}
	if got := strings.Join(verr.Errors["qualifications"], "|"); !strings.Contains(got, "HSC") {
		t.Errorf("qualifications errors = %q", got)
	}
	if len(verr.Errors["qualification_0"]) == 0 {
		t.Errorf("missing SSLC marksheet not reported: %v", verr.Errors)
	}
	if len(f.apps.apps) != 0 {
		t.Error("invalid submission was stored")
	}
}

func TestSubmitPage3StoresAndRoundTrips(t *testing.T) {
	f := newFixture(t)
	svc := NewApplicationService(f.users, f.apps, f.cache)
	f.cache.entries[f.user.ID] = &dto.PreviewData{}

	if err := svc.SubmitPage3(context.Background(), f.user.ID, validSubmission()); err != nil {
		t.Fatalf("SubmitPage3: %v", err)
	}
	if _, hit := f.cache.entries[f.user.ID]; hit {
		t.Error("preview cache not invalidated")
	}

	stored := f.apps.apps[f.user.ID]
	if len(stored.Qualifications) != 3 {
		t.Fatalf("stored %d qualifications", len(stored.Qualifications))
	}
	wantURLs := []string{"https://files.test/sslc.pdf", "https://files.test/hsc.pdf", "https://files.test/ug.pdf"}
	for i, q := range stored.Qualifications {
		if q.Position != i || q.MarksheetURL != wantURLs[i] {
			t.Errorf("row %d = position %d url %q", i, q.Position, q.MarksheetURL)
		}
	}

	data, err := svc.GetPage3(f.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if data.NameInitial != "K" {
		t.Errorf("name_initial = %q", data.NameInitial)
	}
	if data.Qualifications[0].SSLCMarksheetURL != wantURLs[0] || data.Qualifications[2].UGMarksheetURL != wantURLs[2] {
		t.Errorf("nested urls = %+v", data.Qualifications)
	}
	if data.Qualifications[1].Percentage != "88.5" {
		t.Errorf("percentage = %q", data.Qualifications[1].Percentage)
	}
	if len(data.SemesterMarks) != 1 || data.SemesterMarks[0].Subjects[0].ObtainedMarks != "90" {
		t.Errorf("semester marks = %+v", data.SemesterMarks)
	}
	if data.TotalMaxMarks != "100" || data.YearsExperience != "2" || data.AnnualIncome != "" {
		t.Errorf("numbers = %q %q %q", data.TotalMaxMarks, data.YearsExperience, data.AnnualIncome)
	}

	// the hydrated document is valid again
	if v := form.Validate(form.Hydrate(*data)); !v.IsValid {
		t.Errorf("round trip is invalid: %v", v.Errors)
	}
}

func pdfBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, "%PDF-1.4\n")
	return b
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 30)), nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestUploadMarksheet(t *testing.T) {
	f := newFixture(t)
	svc := NewUploadService(f.users, f.apps, f.store, f.cache)
	ctx := context.Background()

	url, err := svc.UploadMarksheet(ctx, f.user.ID, form.CourseSSLC, FileInput{Name: "sslc.pdf", Data: pdfBytes(1024)})
	if err != nil {
		t.Fatalf("UploadMarksheet: %v", err)
	}
	if !strings.HasPrefix(url, "https://files.test/marksheets/1/") || !strings.HasSuffix(url, ".pdf") {
		t.Errorf("url = %q", url)
	}

	_, err = svc.UploadMarksheet(ctx, f.user.ID, form.SemesterMarksType, FileInput{Name: "sem.jpg", Data: jpegBytes(t)})
	var rej *upload.RejectedError
	if !errors.As(err, &rej) || rej.Reason != "Only PDF files are allowed" {
		t.Errorf("semester jpeg: %v", err)
	}

	_, err = svc.UploadMarksheet(ctx, f.user.ID, form.CourseHSC, FileInput{Name: "big.pdf", Data: pdfBytes(6 * int(upload.MB))})
	if !errors.As(err, &rej) || rej.Reason != "File size exceeds 5MB limit" {
		t.Errorf("oversized marksheet: %v", err)
	}

	// the declared name does not matter, the content does
	_, err = svc.UploadMarksheet(ctx, f.user.ID, form.CourseHSC, FileInput{Name: "fake.pdf", Data: []byte("plain text")})
	if !errors.As(err, &rej) {
		t.Errorf("text disguised as pdf: %v", err)
	}
}

func TestUploadDocuments(t *testing.T) {
	f := newFixture(t)
	svc := NewUploadService(f.users, f.apps, f.store, f.cache)
	ctx := context.Background()

	_, err := svc.UploadDocuments(ctx, f.user.ID, nil)
	var verr *ValidationFailedError
	if !errors.As(err, &verr) {
		t.Fatalf("empty upload: %v", err)
	}

	_, err = svc.UploadDocuments(ctx, f.user.ID, map[string]FileInput{
		upload.TargetPhoto:      {Name: "photo.pdf", Data: pdfBytes(100)},
		upload.TargetAadharCard: {Name: "aadhar.pdf", Data: pdfBytes(100)},
	})
	if !errors.As(err, &verr) || len(verr.Errors[upload.TargetPhoto]) != 1 || len(verr.Errors[upload.TargetAadharCard]) != 0 {
		t.Fatalf("pdf photo: %v", err)
	}
	if len(f.store.objects) != 0 {
		t.Fatal("nothing may be stored when one file is rejected")
	}

	urls, err := svc.UploadDocuments(ctx, f.user.ID, map[string]FileInput{
		upload.TargetPhoto:      {Name: "photo.jpg", Data: jpegBytes(t)},
		upload.TargetAadharCard: {Name: "aadhar.pdf", Data: pdfBytes(100)},
	})
	if err != nil {
		t.Fatalf("UploadDocuments: %v", err)
	}
	if len(urls) != 2 || !strings.Contains(urls[upload.TargetPhoto], "documents/photo/") {
		t.Errorf("urls = %v", urls)
	}
	app := f.apps.apps[f.user.ID]
	if app == nil || len(app.Documents) != 2 {
		t.Fatalf("documents not recorded: %+v", app)
	}
	if len(f.cache.invalidated) == 0 {
		t.Error("preview cache not invalidated")
	}

	data, err := NewApplicationService(f.users, f.apps, f.cache).GetPage3(f.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if data.PhotoURL != urls[upload.TargetPhoto] || data.AadhaarURL != urls[upload.TargetAadharCard] {
		t.Errorf("page3 document urls = %q %q", data.PhotoURL, data.AadhaarURL)
	}
}

func TestPreviewUsesCache(t *testing.T) {
	f := newFixture(t)
	apps := NewApplicationService(f.users, f.apps, f.cache)
	svc := NewPreviewService(NewProfileService(f.users, f.apps), apps, f.cache)
	ctx := context.Background()

	first, err := svc.Preview(ctx, f.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if first.Student.Name != "Asha" || first.Application.Email != "student@example.com" {
		t.Errorf("preview = %+v", first)
	}
	if _, hit := f.cache.entries[f.user.ID]; !hit {
		t.Fatal("preview not cached")
	}

	if err := apps.SubmitPage3(ctx, f.user.ID, validSubmission()); err != nil {
		t.Fatal(err)
	}
	second, err := svc.Preview(ctx, f.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Application.Qualifications) != 3 {
		t.Errorf("stale preview after submit: %d qualifications", len(second.Application.Qualifications))
	}
}

func TestAutofill(t *testing.T) {
	f := newFixture(t)
	apps := NewApplicationService(f.users, f.apps, f.cache)
	profiles := NewProfileService(f.users, f.apps)

	out, err := profiles.Autofill(f.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if out.Email != "student@example.com" || out.SSLCPercentage != "" {
		t.Errorf("autofill before page 3 = %+v", out)
	}
	if err := apps.SubmitPage3(context.Background(), f.user.ID, validSubmission()); err != nil {
		t.Fatal(err)
	}
	out, err = profiles.Autofill(f.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if out.SSLCPercentage != "88.5" || out.HSCPercentage != "88.5" || out.NameInitial != "K" {
		t.Errorf("autofill = %+v", out)
	}
}

func TestAdminApplications(t *testing.T) {
	f := newFixture(t)
	apps := NewApplicationService(f.users, f.apps, f.cache)
	if err := apps.SubmitPage3(context.Background(), f.user.ID, validSubmission()); err != nil {
		t.Fatal(err)
	}
	admin := NewAdminApplicationService(f.apps)

	list, err := admin.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].QualificationCount != 3 || list[0].SemesterCount != 1 || list[0].DocumentsComplete {
		t.Fatalf("list = %+v", list)
	}
	page, err := admin.Get(list[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Qualifications) != 3 {
		t.Errorf("detail = %+v", page)
	}
	if _, err := admin.Get(404); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing application: %v", err)
	}
}
