package api

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed call so flows can choose a user-facing message
// without inspecting transport details themselves.
type Kind int

const (
	// KindValidation: rejected client-side before any network call.
	KindValidation Kind = iota
	// KindAuthentication: the backend rejected the credential (401).
	KindAuthentication
	// KindAuthorization: the backend refused the action (403).
	KindAuthorization
	// KindTransport: no response reached us at all.
	KindTransport
	// KindServer: any other rejected response.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindTransport:
		return "transport"
	default:
		return "server"
	}
}

// Error is the classified failure of a gateway call. Fields holds the
// structured per-field errors the backend returns on 400s, keyed by field
// name, each value a list of human-readable messages.
type Error struct {
	Kind   Kind
	Status int
	Detail string
	Fields map[string][]string
	err    error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Detail)
	}
	if e.err != nil {
		return fmt.Sprintf("%s error: %v", e.Kind, e.err)
	}
	return fmt.Sprintf("%s error (status %d)", e.Kind, e.Status)
}

func (e *Error) Unwrap() error {
	return e.err
}

// FieldError joins the messages for one field, empty when the field is clean.
func (e *Error) FieldError(field string) string {
	return strings.Join(e.Fields[field], " ")
}

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// AsError extracts the gateway error, if any.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// uniquenessKeywords are the fragments backends use when an email is taken.
// String matching is brittle but it is the contract we actually have.
var uniquenessKeywords = []string{"unique", "exist", "already"}

// EmailConflict reports whether the email field error says the address is
// already registered.
func (e *Error) EmailConflict() bool {
	msg := strings.ToLower(e.FieldError("email"))
	if msg == "" {
		return false
	}
	for _, kw := range uniquenessKeywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

func validationError(err error) *Error {
	return &Error{Kind: KindValidation, err: err}
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, err: err}
}
