// Package extractor defines the contract every service adapter implements: one-shot page fetching,
// independently failing accessors, item extractors, the collector and continuation-based listings.
package extractor

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is. Each typed error below matches exactly one of them.
var (
	ErrMalformed          = errors.New("malformed input")
	ErrContentUnavailable = errors.New("content unavailable")
	ErrCaptcha            = errors.New("captcha challenge")
	ErrInvalidPage        = errors.New("invalid continuation page")
	ErrUnsupportedURL     = errors.New("unsupported url")
)

// ParsingError is a malformed-input failure of one field or one entry.
type ParsingError struct {
	Field string
	Err   error
}

func (e *ParsingError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed input: %v", e.Err)
	}
	return fmt.Sprintf("could not extract %s: %v", e.Field, e.Err)
}

func (e *ParsingError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}

// Malformed wraps err as a ParsingError for field.
func Malformed(field string, err error) error {
	if err == nil {
		err = errors.New("missing value")
	}
	return &ParsingError{Field: field, Err: err}
}

// Malformedf is Malformed with a formatted cause.
func Malformedf(field, format string, args ...any) error {
	return Malformed(field, fmt.Errorf(format, args...))
}

// UnavailableReason tells why an existing resource cannot be served.
type UnavailableReason int

const (
	ReasonGeneric UnavailableReason = iota
	ReasonPaid
	ReasonAgeRestricted
	ReasonAccountTerminated
	ReasonGeoRestricted
	ReasonPrivate
)

func (r UnavailableReason) String() string {
	switch r {
	case ReasonPaid:
		return "purchase required"
	case ReasonAgeRestricted:
		return "age restricted"
	case ReasonAccountTerminated:
		return "account terminated"
	case ReasonGeoRestricted:
		return "not available in this region"
	case ReasonPrivate:
		return "private"
	default:
		return "unavailable"
	}
}

// TerminationReason is attached to ReasonAccountTerminated.
type TerminationReason int

const (
	TerminationUnspecified TerminationReason = iota
	TerminationPolicyViolation
	TerminationCopyright
	TerminationSpam
	TerminationHarassment
)

func (r TerminationReason) String() string {
	switch r {
	case TerminationPolicyViolation:
		return "policy violation"
	case TerminationCopyright:
		return "copyright"
	case TerminationSpam:
		return "spam"
	case TerminationHarassment:
		return "harassment"
	default:
		return "unspecified"
	}
}

// ClassifyTermination maps an upstream termination notice to a reason.
func ClassifyTermination(message string) TerminationReason {
	message = strings.ToLower(message)
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(message, w) {
				return true
			}
		}
		return false
	}

	switch {
	case has("copyright", "infring"):
		return TerminationCopyright
	case has("spam", "scam", "deceptive", "misleading"):
		return TerminationSpam
	case has("harass", "bully", "hate speech"):
		return TerminationHarassment
	case has("violation", "violat", "terms of", "guideline", "policy", "policies"):
		return TerminationPolicyViolation
	default:
		return TerminationUnspecified
	}
}

// UnavailableError is a content-unavailable failure of a whole fetch.
type UnavailableError struct {
	Reason      UnavailableReason
	Termination TerminationReason
	Message     string
}

func (e *UnavailableError) Error() string {
	reason := e.Reason.String()
	if e.Reason == ReasonAccountTerminated {
		reason = fmt.Sprintf("%s (%s)", reason, e.Termination)
	}
	if e.Message == "" {
		return "content unavailable: " + reason
	}
	return fmt.Sprintf("content unavailable: %s: %s", reason, e.Message)
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrContentUnavailable
}

func Unavailable(message string) error {
	return &UnavailableError{Reason: ReasonGeneric, Message: message}
}

func Paid(message string) error {
	return &UnavailableError{Reason: ReasonPaid, Message: message}
}

func AgeRestricted(message string) error {
	return &UnavailableError{Reason: ReasonAgeRestricted, Message: message}
}

func GeoRestricted(message string) error {
	return &UnavailableError{Reason: ReasonGeoRestricted, Message: message}
}

func Private(message string) error {
	return &UnavailableError{Reason: ReasonPrivate, Message: message}
}

// Terminated builds an account-terminated error. The reason is classified from message when
// reason is TerminationUnspecified.
func Terminated(reason TerminationReason, message string) error {
	if reason == TerminationUnspecified {
		reason = ClassifyTermination(message)
	}
	return &UnavailableError{Reason: ReasonAccountTerminated, Termination: reason, Message: message}
}

// CaptchaError is returned by a Downloader when the service answers with a verification challenge.
type CaptchaError struct {
	URL string
}

func (e *CaptchaError) Error() string {
	return "captcha challenge at " + e.URL
}

func (e *CaptchaError) Is(target error) bool {
	return target == ErrCaptcha
}

// InvalidPageError rejects a structurally invalid continuation page.
type InvalidPageError struct {
	Reason string
}

func (e *InvalidPageError) Error() string {
	return "invalid continuation page: " + e.Reason
}

func (e *InvalidPageError) Is(target error) bool {
	return target == ErrInvalidPage
}

func InvalidPage(format string, args ...any) error {
	return &InvalidPageError{Reason: fmt.Sprintf(format, args...)}
}
