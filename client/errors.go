package client

import (
	"fmt"

	"github.com/teknopark/matchmaking-contract-tests/framework"
)

// UnsupportedMethodError is returned for a method other than GET, POST, or PATCH. No request
// is made.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported method: %s", e.Method)
}

func (e *UnsupportedMethodError) ErrorKind() framework.ErrorKind { return framework.KindUnexpected }

// EncodeError means the request body could not be serialized as JSON.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("could not serialize request body: %s", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func (e *EncodeError) ErrorKind() framework.ErrorKind { return framework.KindUnexpected }

// TransportError covers failures below HTTP: DNS, connection refused, timeouts, and I/O errors
// while reading the response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) ErrorKind() framework.ErrorKind { return framework.KindTransport }

// StatusError is returned when the service responds with a status of 400 or higher.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) ErrorKind() framework.ErrorKind { return framework.KindProtocol }

// DecodeError means the response status was successful but the body was not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON response: %s", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) ErrorKind() framework.ErrorKind { return framework.KindProtocol }
