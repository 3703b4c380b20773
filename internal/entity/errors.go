package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
)

type ErrorKind int

const (
	// KindNetwork: the request produced no response.
	KindNetwork ErrorKind = iota
	// KindAuthRejected: 401 from an auth endpoint (bad credentials).
	KindAuthRejected
	// KindAuthExpired: 401 from any other endpoint; the transport has
	// already swept the stored session when this is observed.
	KindAuthExpired
	// KindValidation: any other 4xx carrying a server detail.
	KindValidation
	// KindServer: 5xx.
	KindServer
)

// APIError is the typed failure surfaced by the HTTP client. Status is 0
// for network-level failures.
type APIError struct {
	Kind   ErrorKind
	Status int
	Detail string
	cause  error
}

func NewAPIError(kind ErrorKind, status int, detail string) *APIError {
	return &APIError{Kind: kind, Status: status, Detail: detail}
}

func NewNetworkError(err error) *APIError {
	return &APIError{Kind: KindNetwork, Detail: "le serveur ne répond pas", cause: err}
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Detail
	}

	return fmt.Sprintf("api error (%d): %s", e.Status, e.Detail)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// AsAPIError unwraps err into an APIError when the failure came from the
// remote API rather than local plumbing.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
