package upload

import (
	"fmt"
	"strings"
)

const MB = 1 << 20

// Upload targets. The document names double as multipart field names.
const (
	TargetMarksheet            = "marksheet"
	TargetSemesterMarksheet    = "semester_marksheet"
	TargetPhoto                = "photo"
	TargetSignature            = "signature"
	TargetCommunityCertificate = "community_certificate"
	TargetAadharCard           = "aadhar_card"
	TargetTransferCertificate  = "transfer_certificate"
)

// DocumentTargets are the files of the documents page, in display order.
var DocumentTargets = []string{
	TargetPhoto, TargetSignature, TargetCommunityCertificate, TargetAadharCard, TargetTransferCertificate,
}

// Policy is the content-type allow-list and size ceilings of one target.
type Policy struct {
	Target string
	// Limits maps each allowed content type to its size ceiling in bytes.
	Limits map[string]int64
	// TypeMessage is reported for a disallowed type.
	TypeMessage string
	// SizeMessage is a format with one %d for the ceiling in MB.
	SizeMessage string
}

func documentPolicy(target string, limits map[string]int64, allowed ...string) Policy {
	label := strings.ReplaceAll(target, "_", " ")
	return Policy{
		Target:      target,
		Limits:      limits,
		TypeMessage: fmt.Sprintf("Invalid file type for %s. Allowed: %s", label, strings.Join(allowed, ", ")),
		SizeMessage: "File size for " + label + " exceeds %dMB",
	}
}

var policies = map[string]Policy{
	TargetMarksheet: {
		Target: TargetMarksheet,
		Limits: map[string]int64{
			"application/pdf": 5 * MB,
			"image/jpeg":      5 * MB,
			"image/png":       5 * MB,
		},
		TypeMessage: "Only PDF, JPG, JPEG, and PNG files are allowed",
		SizeMessage: "File size exceeds %dMB limit",
	},
	TargetSemesterMarksheet: {
		Target:      TargetSemesterMarksheet,
		Limits:      map[string]int64{"application/pdf": 10 * MB},
		TypeMessage: "Only PDF files are allowed",
		SizeMessage: "File size exceeds %dMB limit",
	},
	TargetPhoto:     documentPolicy(TargetPhoto, map[string]int64{"image/jpeg": 5 * MB}, "image/jpeg"),
	TargetSignature: documentPolicy(TargetSignature, map[string]int64{"image/jpeg": 5 * MB}, "image/jpeg"),
	TargetCommunityCertificate: documentPolicy(TargetCommunityCertificate,
		map[string]int64{"image/jpeg": 5 * MB, "application/pdf": 10 * MB}, "image/jpeg", "application/pdf"),
	TargetAadharCard: documentPolicy(TargetAadharCard,
		map[string]int64{"image/jpeg": 5 * MB, "application/pdf": 10 * MB}, "image/jpeg", "application/pdf"),
	TargetTransferCertificate: documentPolicy(TargetTransferCertificate,
		map[string]int64{"image/jpeg": 5 * MB, "application/pdf": 10 * MB}, "image/jpeg", "application/pdf"),
}

// PolicyFor returns the policy of target.
func PolicyFor(target string) (Policy, bool) {
	p, ok := policies[target]
	return p, ok
}

// RejectedError is a file refused before any network call.
type RejectedError struct {
	Target string
	Reason string
}

func (e *RejectedError) Error() string { return e.Reason }

// Check tests a content type and size against the policy.
func (p Policy) Check(contentType string, size int64) error {
	limit, ok := p.Limits[baseType(contentType)]
	if !ok {
		return &RejectedError{Target: p.Target, Reason: p.TypeMessage}
	}
	if size > limit {
		return &RejectedError{Target: p.Target, Reason: fmt.Sprintf(p.SizeMessage, limit/MB)}
	}
	return nil
}

// CheckFile sniffs f and checks it against the policy of target. It returns
// the detected content type.
func CheckFile(target string, f File) (string, error) {
	p, ok := PolicyFor(target)
	if !ok {
		return "", fmt.Errorf("unknown upload target %q", target)
	}
	ct, err := DetectMIME(f)
	if err != nil {
		return "", err
	}
	if err := p.Check(ct, f.Size()); err != nil {
		return "", err
	}
	return ct, nil
}
