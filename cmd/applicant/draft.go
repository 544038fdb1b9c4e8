package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/lshigami/admission/internal/client"
	"github.com/lshigami/admission/internal/form"
	"github.com/lshigami/admission/internal/wizard"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var errNotLoggedIn = fmt.Errorf("%w: run `applicant login` first", wizard.ErrLoginRequired)

// authFailure forgets the token on a 401, like the page controllers do.
func (a *app) authFailure(err error) error {
	if !errors.Is(err, client.ErrUnauthorized) {
		return err
	}
	a.sess.DropToken()
	if saveErr := a.sess.Save(); saveErr != nil {
		log.Warn().Err(saveErr).Msg("could not save session")
	}
	return errNotLoggedIn
}

func readDraft(path string) (form.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return form.Document{}, fmt.Errorf("read draft: %w", err)
	}
	doc := form.NewDocument()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return form.Document{}, fmt.Errorf("parse draft %s: %w", path, err)
	}
	return doc, nil
}

func writeDraft(path string, doc form.Document) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}
	return nil
}

// loadDraft mounts page 3 from a draft file with refreshed totals.
func loadDraft(page *wizard.Page3, path string) error {
	doc, err := readDraft(path)
	if err != nil {
		return err
	}
	if err := page.Load(doc); err != nil {
		return fmt.Errorf("draft %s: %w", path, err)
	}
	if len(doc.Semesters) > 0 {
		if _, err := page.Dispatch(form.RecomputeSummary{}); err != nil {
			return err
		}
	}
	return nil
}

func printErrors(a *app, errs form.Errors) {
	for _, key := range errs.Keys() {
		for _, msg := range errs[key] {
			fmt.Fprintf(a.out, "%s: %s\n", key, msg)
		}
	}
}
