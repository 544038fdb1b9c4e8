// Package client talks to the admission backend over its JSON REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lshigami/admission/internal/dto"
	"github.com/lshigami/admission/internal/upload"
	"github.com/rs/zerolog/log"
)

// TokenSource supplies the auth token for each request.
type TokenSource interface {
	AuthToken() string
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api/". A zero timeout keeps the http.Client default.
func New(baseURL string, tokens TokenSource, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &Client{baseURL: u, http: &http.Client{Timeout: timeout}, tokens: tokens}, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")}).String()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if tok := c.tokens.AuthToken(); tok != "" {
			req.Header.Set("Authorization", "Token "+tok)
		}
	}
	return req, nil
}

// do sends req and decodes a 2xx body into out when out is non-nil.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := decodeError(resp.StatusCode, body)
		log.Debug().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Int("status", resp.StatusCode).Msg("api call failed")
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// envelope decodes {status, data, message} with data into Data.
type envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func checkStatus(status, message string) error {
	if status != "" && status != dto.StatusSuccess {
		if message == "" {
			message = "request failed"
		}
		return &APIError{StatusCode: http.StatusOK, Message: message}
	}
	return nil
}

func (c *Client) getData(ctx context.Context, path string, data interface{}) error {
	env := envelope{Data: data}
	if err := c.getJSON(ctx, path, &env); err != nil {
		return err
	}
	return checkStatus(env.Status, env.Message)
}

func (c *Client) Signup(ctx context.Context, req dto.SignupRequest) error {
	var env envelope
	if err := c.postJSON(ctx, "signup/", req, &env); err != nil {
		return err
	}
	return checkStatus(env.Status, env.Message)
}

func (c *Client) Login(ctx context.Context, email, password string) (dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.postJSON(ctx, "login/", dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return out, err
	}
	if out.Token == "" {
		return out, &APIError{StatusCode: http.StatusOK, Message: "no token in login response"}
	}
	return out, nil
}

func (c *Client) CurrentUserEmail(ctx context.Context) (string, error) {
	var data dto.EmailData
	if err := c.getData(ctx, "current-user-email/", &data); err != nil {
		return "", err
	}
	return data.Email, nil
}

func (c *Client) UserProfile(ctx context.Context) (dto.UserProfile, error) {
	var p dto.UserProfile
	err := c.getData(ctx, "user-profile/", &p)
	return p, err
}

func (c *Client) FetchPage3(ctx context.Context) (dto.Page3Data, error) {
	var data dto.Page3Data
	err := c.getData(ctx, "application/page3/", &data)
	return data, err
}

// SubmitPage3 posts the cleaned page. Field errors come back as *ValidationError.
func (c *Client) SubmitPage3(ctx context.Context, sub dto.Page3Submission) error {
	var env envelope
	if err := c.postJSON(ctx, "application/page3/", sub, &env); err != nil {
		return err
	}
	if env.Status != dto.StatusSuccess {
		msg := env.Message
		if msg == "" {
			msg = "Submission failed"
		}
		return &APIError{StatusCode: http.StatusOK, Message: msg}
	}
	return nil
}

func (c *Client) Preview(ctx context.Context) (dto.PreviewMaps, error) {
	var data dto.PreviewMaps
	err := c.getData(ctx, "application/preview/", &data)
	return data, err
}

func (c *Client) Autofill(ctx context.Context) (map[string]interface{}, error) {
	data := map[string]interface{}{}
	err := c.getData(ctx, "get-autofill-application/", &data)
	return data, err
}

func (c *Client) postMultipart(ctx context.Context, path string, values map[string]string, parts []part, progress upload.ProgressFunc, out interface{}) error {
	buf, contentType, err := buildMultipart(values, parts)
	if err != nil {
		return err
	}
	total := int64(buf.Len())
	req, err := c.newRequest(ctx, http.MethodPost, path, &progressReader{r: buf, total: total, progress: progress})
	if err != nil {
		return err
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", contentType)
	return c.do(req, out)
}

// Upload sends one file. Marksheets go to upload-marksheet/ as "file";
// documents go to upload-documents/ under their own field name.
func (c *Client) Upload(ctx context.Context, r upload.Request, progress upload.ProgressFunc) (string, error) {
	switch r.Target {
	case upload.TargetMarksheet, upload.TargetSemesterMarksheet:
		var out dto.UploadResponse
		parts := []part{{field: "file", file: r.File, contentType: r.ContentType}}
		if err := c.postMultipart(ctx, "upload-marksheet/", r.Fields, parts, progress, &out); err != nil {
			return "", err
		}
		if out.Status != dto.StatusSuccess || out.FileURL == "" {
			return "", &APIError{StatusCode: http.StatusOK, Message: firstNonEmpty(out.Message, "Failed to upload marksheet")}
		}
		return out.FileURL, nil
	}
	urls, err := c.UploadDocuments(ctx, map[string]upload.Request{r.Target: r}, r.Fields, progress)
	if err != nil {
		return "", err
	}
	u, ok := urls[r.Target]
	if !ok {
		return "", &APIError{StatusCode: http.StatusOK, Message: "no url returned for " + r.Target}
	}
	return u, nil
}

// UploadDocuments sends several documents in one request.
func (c *Client) UploadDocuments(ctx context.Context, files map[string]upload.Request, values map[string]string, progress upload.ProgressFunc) (map[string]string, error) {
	parts := make([]part, 0, len(files))
	for _, target := range upload.DocumentTargets {
		if r, ok := files[target]; ok {
			parts = append(parts, part{field: target, file: r.File, contentType: r.ContentType})
		}
	}
	if len(parts) != len(files) {
		return nil, fmt.Errorf("unknown document field in upload")
	}
	var out dto.DocumentsUploadResponse
	if err := c.postMultipart(ctx, "upload-documents/", values, parts, progress, &out); err != nil {
		return nil, err
	}
	if out.Status != dto.StatusSuccess {
		return nil, &APIError{StatusCode: http.StatusOK, Message: firstNonEmpty(out.Message, "Failed to upload documents")}
	}
	return out.FileURLs, nil
}

func firstNonEmpty(vals ...string) string {
	for _, s := range vals {
		if s != "" {
			return s
		}
	}
	return ""
}
