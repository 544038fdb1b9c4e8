package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lshigami/admission/internal/form"
)

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","token":"tok","email":"student@example.com"}`))
	})
	mux.HandleFunc("/api/application/page3/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Invalid token."}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","data":{"email":"student@example.com","name_initial":"K","qualifications":[{"course":"S.S.L.C","institute_name":"GHSS","percentage":91}],"semester_marks":[]}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLoginThenPullDraft(t *testing.T) {
	srv := fakeBackend(t)
	dir := t.TempDir()
	common := []string{"--api", srv.URL + "/api/", "--session", filepath.Join(dir, "session.yaml")}

	out, err := run(t, append([]string{"login", "--email", "student@example.com", "--password", "password123"}, common...)...)
	if err != nil {
		t.Fatalf("login: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Logged in as student@example.com") {
		t.Errorf("login output = %q", out)
	}

	draft := filepath.Join(dir, "page3.yaml")
	if out, err := run(t, append([]string{"page3", "pull", "-o", draft}, common...)...); err != nil {
		t.Fatalf("pull: %v\n%s", err, out)
	}
	doc, err := readDraft(draft)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Email != "student@example.com" || doc.SSLC.InstituteName != "GHSS" || doc.SSLC.Percentage != "91" {
		t.Errorf("draft = %+v", doc)
	}
	if doc.HSC.Course != form.CourseHSC {
		t.Errorf("HSC entry missing from draft: %+v", doc.HSC)
	}

	// an incomplete draft is reported field by field
	out, err = run(t, append([]string{"page3", "check", "-f", draft}, common...)...)
	if err == nil {
		t.Fatal("check of an incomplete draft succeeded")
	}
	if !strings.Contains(out, "qualification_1: ") {
		t.Errorf("check output = %q", out)
	}

	if _, err := run(t, append([]string{"logout"}, common...)...); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "session.yaml")); !os.IsNotExist(err) {
		t.Errorf("session file still present: %v", err)
	}
	if _, err := run(t, append([]string{"page3", "pull", "-o", draft}, common...)...); err == nil {
		t.Error("pull without a session succeeded")
	}
}

func TestDraftRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.yaml")
	doc := form.NewDocument()
	doc.Email = "a@b.co"
	doc.SSLC.MarksheetURL = "https://files.test/sslc.pdf"
	doc.Semesters = []form.Semester{{Label: "Semester 1", Subjects: []form.Subject{{SubjectName: "Maths", MaxMarks: "100"}}}}
	if err := writeDraft(path, doc); err != nil {
		t.Fatal(err)
	}
	got, err := readDraft(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.SSLC.MarksheetURL != doc.SSLC.MarksheetURL || got.Semesters[0].Subjects[0].MaxMarks != "100" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestReadDraftRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.yaml")
	if err := os.WriteFile(path, []byte("email: a@b.co\nsslcc: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readDraft(path); err == nil {
		t.Fatal("typo in draft was accepted")
	}
}
