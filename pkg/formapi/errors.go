package formapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork marks transport failures and timeouts.
	ErrNetwork = errors.New("formapi: network failure")
	// ErrMalformedUpstream marks GET payloads that do not match the contract.
	ErrMalformedUpstream = errors.New("formapi: malformed upstream data")
	// ErrUnexpectedStatus marks GET responses outside the 2xx range.
	ErrUnexpectedStatus = errors.New("formapi: unexpected status")
)

// StatusError carries the status of a rejected GET.
type StatusError struct {
	Code int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("formapi: unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

func (e StatusError) Unwrap() error { return ErrUnexpectedStatus }
