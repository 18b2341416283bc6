package stories

import "fmt"

// ErrorKind classifies an error the way spec.md §7 requires, so callers
// (and the entry points in api.go) can decide how to surface it.
type ErrorKind int

const (
	ErrKindValidation ErrorKind = iota
	ErrKindNotFound
	ErrKindAccessDenied
	ErrKindTransport
	ErrKindStateNoop
	ErrKindParse
	ErrKindUpload
	ErrKindShutdown
)

// APIError is the (code, message) pair entry points return. The message
// strings are part of the external protocol contract (spec.md §9 "Error
// parity") and must never be paraphrased.
type APIError struct {
	Kind    ErrorKind
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func newAPIError(kind ErrorKind, code int, message string) *APIError {
	return &APIError{Kind: kind, Code: code, Message: message}
}

// The literal error strings from spec.md §6. Do not paraphrase these.
var (
	ErrStoryNotFound             = newAPIError(ErrKindNotFound, 400, "Story not found")
	ErrStorySenderNotFound       = newAPIError(ErrKindNotFound, 400, "Story sender not found")
	ErrCantAccessStorySender     = newAPIError(ErrKindAccessDenied, 400, "Can't access the story sender")
	ErrInvalidStoryID            = newAPIError(ErrKindValidation, 400, "Invalid story identifier specified")
	ErrLimitMustBePositive       = newAPIError(ErrKindValidation, 400, "Parameter limit must be positive")
	ErrStoryListMustBeNonEmpty   = newAPIError(ErrKindValidation, 400, "Story list must be non-empty")
	ErrInvalidActivePeriod       = newAPIError(ErrKindValidation, 400, "Invalid story active period specified")
	ErrStoryNotOpened            = newAPIError(ErrKindValidation, 400, "The story wasn't opened")
	ErrActivePeriodNeedsPremium  = newAPIError(ErrKindAccessDenied, 400, "The active period requires Telegram Premium")
	ErrReuploadAlreadyAttempted  = newAPIError(ErrKindUpload, 400, "Story upload failed even after re-uploading the file")
)

// StateNoop wraps a server "not modified" style response, treated as
// success for non-bot callers (spec.md §7).
type StateNoop struct{}

func (StateNoop) Error() string { return "state not modified" }

// ErrShuttingDown is a sentinel error for the shutdown error kind (spec.md §5
// "Cancellation"). Guarded callbacks that observe the close flag do not
// return it; they are dropped without running.
var ErrShuttingDown = newAPIError(ErrKindShutdown, 0, "shutting down")
