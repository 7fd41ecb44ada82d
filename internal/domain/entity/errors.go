package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrResolutionConflict is reported when a get-or-create lost a uniqueness race
// and the winning row could not be re-read.
var ErrResolutionConflict = errors.New("entity resolution conflict")

// TransportError describes a failed request against the fare endpoint
type TransportError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Message    string
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fare request %s failed with status %d: %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fare request %s failed: %s", e.URL, e.Message)
}

// ParseError describes a fare record that could not be turned into a FlightFare
type ParseError struct {
	Field  string
	Reason string
	Raw    json.RawMessage
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid fare record: %s", e.Reason)
	}
	return fmt.Sprintf("invalid fare record: field %s: %s", e.Field, e.Reason)
}

// BatchRejectedError is the failure recorded when every record of a response was rejected
type BatchRejectedError struct {
	Rejected int
}

func (e *BatchRejectedError) Error() string {
	return fmt.Sprintf("all %d fare records rejected", e.Rejected)
}

// PersistenceError wraps a storage failure inside the snapshot writer transaction
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
