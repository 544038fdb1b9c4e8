package form

import (
	"sync"

	"github.com/lshigami/admission/internal/dto"
)

// Result is what a dispatched action leaves behind.
type Result struct {
	Validation Validation
	// Warning is a user-facing notice from input that was discarded.
	Warning string
}

// Orchestrator owns one Document. Every change goes through Dispatch, which
// applies the action to a copy, swaps it in and revalidates, so concurrent
// callers such as upload progress and edits never see a half-applied change.
type Orchestrator struct {
	mu           sync.Mutex
	doc          Document
	local        Validation
	serverErrors Errors
	listeners    []func(Validation)
}

// NewOrchestrator takes a copy of doc. A document with an additional entry
// using a mandatory course is rejected with ErrReservedCourse.
func NewOrchestrator(doc Document) (*Orchestrator, error) {
	o := &Orchestrator{doc: doc.Clone()}
	if err := o.doc.Normalize(); err != nil {
		return nil, err
	}
	o.local = Validate(o.doc)
	return o, nil
}

// OnChange registers fn to be called with the new validation after every
// successful dispatch. fn runs outside the lock.
func (o *Orchestrator) OnChange(fn func(Validation)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listeners = append(o.listeners, fn)
}

// Dispatch applies a. Server errors merged earlier are dropped because they
// described the document before this change.
func (o *Orchestrator) Dispatch(a Action) (Result, error) {
	o.mu.Lock()
	next := o.doc.Clone()
	warning, err := a.apply(&next)
	if err != nil {
		o.mu.Unlock()
		return Result{Validation: o.current()}, err
	}
	o.doc = next
	o.serverErrors = nil
	o.local = Validate(o.doc)
	res := Result{Validation: o.current(), Warning: warning}
	listeners := append([]func(Validation){}, o.listeners...)
	o.mu.Unlock()

	for _, fn := range listeners {
		fn(res.Validation)
	}
	return res, nil
}

// current combines local and server errors. Callers hold the lock.
func (o *Orchestrator) current() Validation {
	if len(o.serverErrors) == 0 {
		return Validation{Errors: o.local.Errors.Clone(), IsValid: o.local.IsValid}
	}
	errs := o.local.Errors.Clone()
	errs.Merge(o.serverErrors)
	return newValidation(errs)
}

// Validation returns the result of the last recompute.
func (o *Orchestrator) Validation() Validation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current()
}

// ValidateAll reruns every rule against the current document.
func (o *Orchestrator) ValidateAll() Validation {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.local = Validate(o.doc)
	return o.current()
}

// MergeServerErrors folds a per-field error map from the server into the
// current validation until the next edit.
func (o *Orchestrator) MergeServerErrors(errs map[string][]string) Validation {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.serverErrors == nil {
		o.serverErrors = Errors{}
	}
	o.serverErrors.Merge(errs)
	return o.current()
}

// Snapshot returns a copy of the document.
func (o *Orchestrator) Snapshot() Document {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.doc.Clone()
}

// Submission returns the cleaned payload for the current document.
func (o *Orchestrator) Submission() dto.Page3Submission {
	o.mu.Lock()
	defer o.mu.Unlock()
	return BuildSubmission(o.doc)
}
