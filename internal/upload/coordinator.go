// Package upload runs file uploads for the application pages: it checks a
// file against the policy of its target, sends it through a Transport and
// streams progress back over a channel.
package upload

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog/log"
)

// ProgressFunc receives the bytes sent so far and the total.
type ProgressFunc func(sent, total int64)

// Request is one file headed for one target.
type Request struct {
	Target      string
	File        File
	ContentType string
	// Fields are extra multipart form values, such as qualification_type.
	Fields map[string]string
}

// Transport sends a single file and returns the URL the server stored it at.
type Transport interface {
	Upload(ctx context.Context, req Request, progress ProgressFunc) (string, error)
}

// Event is one step of an upload. The last event on a channel has Done set
// and carries either URL or Err.
type Event struct {
	Progress int
	Done     bool
	URL      string
	Err      error
}

type Coordinator struct {
	transport Transport
}

func NewCoordinator(t Transport) *Coordinator {
	return &Coordinator{transport: t}
}

// Percent is sent*100/total rounded to the nearest integer.
func Percent(sent, total int64) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(sent) * 100 / float64(total)))
	if p > 100 {
		return 100
	}
	return p
}

// Upload validates the file locally and, if it passes, starts sending it.
// A rejected file returns a *RejectedError and nothing is sent.
//
// The returned channel yields progress events and then one final event; it
// is closed afterwards and must be drained. Progress events may be dropped
// when the reader falls behind, the final event never is. Cancelling ctx
// aborts the transfer and ends the stream with ctx's error.
func (c *Coordinator) Upload(ctx context.Context, target string, f File, fields map[string]string) (<-chan Event, error) {
	ct, err := CheckFile(target, f)
	if err != nil {
		var rej *RejectedError
		if errors.As(err, &rej) {
			log.Debug().Str("target", target).Str("file", f.Name()).Str("reason", rej.Reason).Msg("upload rejected locally")
		}
		return nil, err
	}

	events := make(chan Event, 8)
	req := Request{Target: target, File: f, ContentType: ct, Fields: fields}
	go func() {
		defer close(events)
		last := -1
		url, err := c.transport.Upload(ctx, req, func(sent, total int64) {
			p := Percent(sent, total)
			if p == last {
				return
			}
			last = p
			select {
			case events <- Event{Progress: p}:
			default:
			}
		})
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
		}
		if err != nil {
			log.Warn().Err(err).Str("target", target).Str("file", f.Name()).Msg("upload failed")
			events <- Event{Done: true, Err: err}
			return
		}
		log.Info().Str("target", target).Str("file", f.Name()).Str("url", url).Msg("upload finished")
		events <- Event{Done: true, Progress: 100, URL: url}
	}()
	return events, nil
}
