package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"

	"github.com/lshigami/admission/internal/upload"
)

type part struct {
	field       string
	file        upload.File
	contentType string
}

// buildMultipart writes the form values and files into one buffer so the
// request has a known length for progress reporting.
func buildMultipart(values map[string]string, parts []part) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, values[k]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}

	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, p.field, escapeQuotes(p.file.Name())))
		ct := p.contentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		dst, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", p.field, err)
		}
		src, err := p.file.Open()
		if err != nil {
			return nil, "", fmt.Errorf("open %s: %w", p.file.Name(), err)
		}
		_, err = io.Copy(dst, src)
		src.Close()
		if err != nil {
			return nil, "", fmt.Errorf("copy %s: %w", p.file.Name(), err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func escapeQuotes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

// progressReader reports every read of the request body.
type progressReader struct {
	r        io.Reader
	sent     int64
	total    int64
	progress upload.ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.progress != nil {
			p.progress(p.sent, p.total)
		}
	}
	return n, err
}
