package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/upload"
)

type staticToken string

func (s staticToken) AuthToken() string { return string(s) }

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/api", staticToken("abc123"), 0)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestFetchPage3(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/application/page3/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Token abc123" {
			t.Errorf("auth header = %q", got)
		}
		io.WriteString(w, `{"status":"success","data":{"email":"s@example.com","years_experience":4,"annual_income":null,
			"qualifications":[{"course":"S.S.L.C","percentage":91.5,"sslc_marksheet_url":"https://f/s.pdf"}]}}`)
	})
	data, err := c.FetchPage3(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if data.Email != "s@example.com" || data.YearsExperience != "4" || data.AnnualIncome != "" {
		t.Errorf("data = %+v", data)
	}
	if len(data.Qualifications) != 1 || data.Qualifications[0].Percentage != "91.5" {
		t.Errorf("qualifications = %+v", data.Qualifications)
	}
}

func TestUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"detail":"Invalid token."}`)
	})
	_, err := c.CurrentUserEmail(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v", err)
	}
}

func TestSubmitPage3ValidationErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var sub dto.Page3Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"status":"error","message":"Validation failed","errors":{"qualification_0":["SSLC Marksheet is required"],"reg_no":"taken"}}`)
	})
	err := c.SubmitPage3(context.Background(), dto.Page3Submission{Email: "s@example.com"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v", err)
	}
	if got := verr.Fields["qualification_0"]; len(got) != 1 || got[0] != "SSLC Marksheet is required" {
		t.Errorf("fields = %v", verr.Fields)
	}
	if got := verr.Fields["reg_no"]; len(got) != 1 || got[0] != "taken" {
		t.Errorf("reg_no = %v", got)
	}
}

func TestDecodeError(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"bare field object", 400, `{"percentage":["out of range"]}`, func(err error) bool {
			var v *ValidationError
			return errors.As(err, &v) && v.Fields["percentage"][0] == "out of range"
		}},
		{"message only", 500, `{"status":"error","message":"database down"}`, func(err error) bool {
			var a *APIError
			return errors.As(err, &a) && a.Message == "database down" && a.StatusCode == 500
		}},
		{"plain text", 502, `Bad Gateway`, func(err error) bool {
			var a *APIError
			return errors.As(err, &a) && a.Message == "Bad Gateway"
		}},
		{"empty", 503, ``, func(err error) bool {
			var a *APIError
			return errors.As(err, &a) && a.Message == "Service Unavailable"
		}},
	}
	for _, tc := range cases {
		if err := decodeError(tc.status, []byte(tc.body)); !tc.check(err) {
			t.Errorf("%s: got %#v", tc.name, err)
		}
	}
}

func TestUploadMarksheet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload-marksheet/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		if got := r.FormValue("qualification_type"); got != "HSC" {
			t.Errorf("qualification_type = %q", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer f.Close()
		if hdr.Filename != "hsc.pdf" || hdr.Header.Get("Content-Type") != "application/pdf" {
			t.Errorf("part header = %v %v", hdr.Filename, hdr.Header)
		}
		io.WriteString(w, `{"status":"success","file_url":"https://files/hsc.pdf"}`)
	})

	var lastSent, lastTotal int64
	u, err := c.Upload(context.Background(), upload.Request{
		Target:      upload.TargetMarksheet,
		File:        upload.NewBytesFile("hsc.pdf", []byte("%PDF-1.4 body")),
		ContentType: "application/pdf",
		Fields:      map[string]string{"qualification_type": "HSC", "email": "s@example.com"},
	}, func(sent, total int64) { lastSent, lastTotal = sent, total })
	if err != nil {
		t.Fatal(err)
	}
	if u != "https://files/hsc.pdf" {
		t.Errorf("url = %q", u)
	}
	if lastTotal == 0 || lastSent != lastTotal {
		t.Errorf("progress ended at %d/%d", lastSent, lastTotal)
	}
}

func TestUploadDocuments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		if r.FormValue("email") != "s@example.com" {
			t.Errorf("email = %q", r.FormValue("email"))
		}
		if _, _, err := r.FormFile("photo"); err != nil {
			t.Errorf("photo missing: %v", err)
		}
		io.WriteString(w, `{"status":"success","file_urls":{"photo":"https://files/p.jpg"}}`)
	})
	urls, err := c.UploadDocuments(context.Background(), map[string]upload.Request{
		upload.TargetPhoto: {Target: upload.TargetPhoto, File: upload.NewBytesFile("p.jpg", []byte{0xFF, 0xD8, 0xFF}), ContentType: "image/jpeg"},
	}, map[string]string{"email": "s@example.com"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if urls["photo"] != "https://files/p.jpg" {
		t.Errorf("urls = %v", urls)
	}
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "s@example.com" || req.Password != "secret-pass" {
			t.Errorf("login body = %+v", req)
		}
		io.WriteString(w, `{"status":"success","token":"jwt-token","email":"s@example.com"}`)
	})
	out, err := c.Login(context.Background(), "s@example.com", "secret-pass")
	if err != nil || out.Token != "jwt-token" {
		t.Fatalf("login = %+v, %v", out, err)
	}
}
