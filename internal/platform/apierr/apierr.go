package apierr

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Error is the domain error the HTTP boundary translates into a problem
// document. Status drives the HTTP code, Code becomes the problem type.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(entity string, id uuid.UUID) *Error {
	return New(http.StatusNotFound, entity+"_not_found",
		fmt.Errorf("%s %s not found", entity, id))
}

// InvalidTransition rejects an operation that the board's current status
// prohibits. required names the status that would permit it.
func InvalidTransition(operation string, boardID uuid.UUID, current, required string) *Error {
	return New(http.StatusConflict, "invalid_operation_with_board_with_this_status",
		fmt.Errorf("can't perform %s because status %q of board %s prohibits it, consider changing state to %q",
			operation, current, boardID, required))
}

func AlreadyVoted(userID, boardID uuid.UUID) *Error {
	return New(http.StatusConflict, "double_voting_exception",
		fmt.Errorf("user has already voted on board %s, consider revoking the existing vote", boardID))
}

func Validation(err error) *Error {
	return New(http.StatusUnprocessableEntity, "validation_error", err)
}

func RateLimited(retryAfterSeconds int) *Error {
	return New(http.StatusTooManyRequests, "too_many_requests",
		fmt.Errorf("rate limit exceeded, please retry after %d seconds", retryAfterSeconds))
}

func Timeout(err error) *Error {
	return New(http.StatusGatewayTimeout, "timeout", err)
}

func StorageUnavailable(err error) *Error {
	return New(http.StatusServiceUnavailable, "storage_unavailable", err)
}
