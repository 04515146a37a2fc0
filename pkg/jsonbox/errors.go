package jsonbox

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrBoxIDRequired    = errors.New("box ID is required")
	ErrMissingMetaField = errors.New("missing metadata field")
	ErrMissingMessage   = errors.New("missing message field")
	ErrLengthMismatch   = errors.New("payload and metadata counts differ")
)

// Reason tells which JSON shape a DecodeError failed on.
type Reason string

const (
	// ReasonPayload means the caller's type could not be decoded.
	ReasonPayload Reason = "payload"

	// ReasonMeta means the reserved metadata fields could not be decoded.
	ReasonMeta Reason = "metadata"

	// ReasonErrorBody means a non-2xx body was not a {"message": ...} object.
	ReasonErrorBody Reason = "error body"

	// ReasonRequest means the payload could not be encoded for sending.
	ReasonRequest Reason = "request body"
)

// NetworkError is returned when the HTTP exchange itself failed.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a body could not be converted to or from JSON.
type DecodeError struct {
	Reason Reason
	// Code is the HTTP status when decoding an error body, zero otherwise.
	Code int
	Err  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch {
	case e.Reason == ReasonRequest:
		return fmt.Sprintf("json: encoding %s: %v", e.Reason, e.Err)
	case e.Code != 0:
		return fmt.Sprintf("json: decoding %s (status %d): %v", e.Reason, e.Code, e.Err)
	default:
		return fmt.Sprintf("json: decoding %s: %v", e.Reason, e.Err)
	}
}

// Unwrap returns the underlying codec error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// GeneralError is returned for non-2xx responses carrying a service message.
type GeneralError struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *GeneralError) Error() string {
	return fmt.Sprintf("general: [%d] %s", e.Code, e.Message)
}

// IsNetwork checks if the error is a transport failure.
func IsNetwork(err error) bool {
	netErr := &NetworkError{}

	return errors.As(err, &netErr)
}

// IsDecode checks if the error is a JSON codec failure.
func IsDecode(err error) bool {
	decErr := &DecodeError{}

	return errors.As(err, &decErr)
}

// IsGeneral checks if the error is a non-2xx service response.
func IsGeneral(err error) bool {
	genErr := &GeneralError{}

	return errors.As(err, &genErr)
}

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	genErr := &GeneralError{}
	if errors.As(err, &genErr) {
		return genErr.Code, true
	}

	decErr := &DecodeError{}
	if errors.As(err, &decErr) && decErr.Code != 0 {
		return decErr.Code, true
	}

	return 0, false
}
