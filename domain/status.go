package domain

// Status enumerates the payment states the remote service reports. The set
// documents the server-side state machine; Payment.Status itself stays the
// raw wire string and is never checked against it.
type Status string

const (
	StatusCreated     Status = "CREATED"
	StatusInitialised Status = "INITIALISED"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusConfirmed   Status = "CONFIRMED"
	StatusFailed      Status = "FAILED"
	StatusCanceled    Status = "CANCELED"
)

// Known reports whether s is one of the documented status labels. Provided
// for caller convenience only.
func (s Status) Known() bool {
	switch s {
	case StatusCreated, StatusInitialised, StatusInProgress,
		StatusConfirmed, StatusFailed, StatusCanceled:
		return true
	}
	return false
}
