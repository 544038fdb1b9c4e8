// Package wizard drives the pages of the application wizard against the
// backend: it loads each page's state, runs its uploads and submits it, and
// reports which step comes next.
package wizard

import (
	"errors"

	"github.com/lshigami/admission/internal/client"
	"github.com/lshigami/admission/internal/session"
	"github.com/rs/zerolog/log"
)

// Step is a wizard location, named by its route.
type Step string

const (
	StepLogin          Step = "/login"
	StepQualifications Step = "/application/page3"
	StepDocuments      Step = "/application/page4"
	StepPreview        Step = "/application/page5"
)

var (
	ErrLoginRequired    = errors.New("please login again")
	ErrNotMounted       = errors.New("page has not been loaded")
	ErrInvalidForm      = errors.New("please fix all errors before submitting")
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrNoDocuments      = errors.New("please upload at least one document")
	ErrEmailUnknown     = errors.New("user email not found, please try logging in again")
)

// handleAuth turns a 401 into ErrLoginRequired and forgets the stored token.
// Other errors pass through unchanged.
func handleAuth(sess *session.Session, err error) error {
	if !errors.Is(err, client.ErrUnauthorized) {
		return err
	}
	sess.DropToken()
	if saveErr := sess.Save(); saveErr != nil {
		log.Warn().Err(saveErr).Msg("could not persist session after 401")
	}
	return ErrLoginRequired
}
