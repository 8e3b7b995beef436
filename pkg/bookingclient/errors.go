package bookingclient

import "fmt"

// FetchError reports that a collection fetch never produced a usable
// body: the request failed in transport or the payload was unreadable.
// A non-2xx status alone is NOT a FetchError for list calls.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NotFoundError covers a non-OK response on a detail fetch.
type NotFoundError struct {
	Path    string
	Status  int
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s: status %d", e.Path, e.Status)
}

// ValidationError carries the server-reported message for a rejected
// create or update.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request rejected with status %d", e.Status)
}
