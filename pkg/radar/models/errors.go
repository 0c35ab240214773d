package models

import (
	"errors"
	"fmt"
)

// MalformedDataError indicates the source document violates the required
// radar format: missing columns, empty required cells, or too many rings.
// Fixing the document resolves it; retrying does not.
type MalformedDataError struct {
	Message string
}

func (e *MalformedDataError) Error() string {
	return e.Message
}

// NewMalformedDataError creates a MalformedDataError from a format string.
func NewMalformedDataError(format string, args ...interface{}) *MalformedDataError {
	return &MalformedDataError{Message: fmt.Sprintf(format, args...)}
}

// SheetNotFoundError indicates the referenced document, file or sheet tab
// does not exist.
type SheetNotFoundError struct {
	Message string
}

func (e *SheetNotFoundError) Error() string {
	return e.Message
}

// NewSheetNotFoundError creates a SheetNotFoundError from a format string.
func NewSheetNotFoundError(format string, args ...interface{}) *SheetNotFoundError {
	return &SheetNotFoundError{Message: fmt.Sprintf(format, args...)}
}

// AuthorizationError indicates the source denied access to the document.
type AuthorizationError struct {
	// Status is the HTTP status code the source answered with.
	Status int
	// Account identifies the denied account, when one was presented.
	Account string
}

func (e *AuthorizationError) Error() string {
	if e.Account != "" {
		return fmt.Sprintf("access denied (status %d) for account %s", e.Status, e.Account)
	}
	return fmt.Sprintf("access denied (status %d)", e.Status)
}

// TransportError wraps a network or provider failure that fits no more
// specific category.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps err as a TransportError.
func NewTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

// Kind is the terminal category of a failed build. The set is closed: every
// error a build can return maps onto exactly one kind.
type Kind string

const (
	// KindNotFound covers missing documents, files and sheet tabs.
	KindNotFound Kind = "not_found"
	// KindMalformed covers format violations in the source data.
	KindMalformed Kind = "malformed"
	// KindUnauthorized covers access denials.
	KindUnauthorized Kind = "unauthorized"
	// KindUnknown covers transport failures and anything unrecognized.
	KindUnknown Kind = "unknown"
)

// Classification is what the presentation layer is allowed to see of a
// failed build: a kind, a user-facing message, and for access denials the
// denied account and status. Internal details of unrecognized errors never
// travel through it; callers log those separately.
type Classification struct {
	// Kind selects the terminal category.
	Kind Kind `json:"kind"`
	// Message is the user-facing message, including recovery guidance.
	Message string `json:"message"`
	// Status is the HTTP status reported by the source. Access denials only.
	Status int `json:"status,omitempty"`
	// Account is the denied account identity. Access denials only, and only
	// when an account was presented.
	Account string `json:"account,omitempty"`
}

const (
	notFoundGuidance  = "Check the URL or id, and that the document still exists."
	malformedGuidance = "Check that the document matches the required radar format."
	deniedGuidance    = "Ask the document owner for access, or authorize with an account that can read it."
	unknownGuidance   = "Something went wrong while building the radar. Please try again later."
)

// Classify maps a build failure onto the closed terminal taxonomy. The
// original error of a KindUnknown classification is deliberately absent from
// the result; the caller is expected to log it.
func Classify(err error) Classification {
	var (
		notFound  *SheetNotFoundError
		malformed *MalformedDataError
		denied    *AuthorizationError
	)
	switch {
	case errors.As(err, &notFound):
		return Classification{
			Kind:    KindNotFound,
			Message: fmt.Sprintf("%s. %s", notFound.Message, notFoundGuidance),
		}
	case errors.As(err, &malformed):
		return Classification{
			Kind:    KindMalformed,
			Message: fmt.Sprintf("%s. %s", malformed.Message, malformedGuidance),
		}
	case errors.As(err, &denied):
		return Classification{
			Kind:    KindUnauthorized,
			Message: fmt.Sprintf("%s. %s", denied.Error(), deniedGuidance),
			Status:  denied.Status,
			Account: denied.Account,
		}
	default:
		return Classification{
			Kind:    KindUnknown,
			Message: unknownGuidance,
		}
	}
}
