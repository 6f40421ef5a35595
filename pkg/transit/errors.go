package transit

import "fmt"

// NetworkError reports that the request never produced a usable response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError reports a response with a status other than 200 OK.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// DecodeError reports a body that is not the expected JSON shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
