package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNotFoundCodeCarriesEntity(t *testing.T) {
	id := uuid.New()
	err := NotFound("board", id)

	if err.Status != http.StatusNotFound {
		t.Fatalf("status: want 404, got %d", err.Status)
	}
	if err.Code != "board_not_found" {
		t.Fatalf("code: want board_not_found, got %q", err.Code)
	}
	if !strings.Contains(err.Error(), id.String()) {
		t.Fatalf("message must name the id, got %q", err.Error())
	}
}

func TestInvalidTransitionMessageNamesRequiredStatus(t *testing.T) {
	err := InvalidTransition("voting", uuid.New(), "draft", "published")

	if err.Status != http.StatusConflict {
		t.Fatalf("status: want 409, got %d", err.Status)
	}
	if err.Code != "invalid_operation_with_board_with_this_status" {
		t.Fatalf("code: got %q", err.Code)
	}
	if !strings.Contains(err.Error(), `"published"`) {
		t.Fatalf("message must suggest the required status, got %q", err.Error())
	}
}

func TestAlreadyVotedOmitsUserID(t *testing.T) {
	userID := uuid.New()
	err := AlreadyVoted(userID, uuid.New())

	if err.Code != "double_voting_exception" {
		t.Fatalf("code: got %q", err.Code)
	}
	if strings.Contains(err.Error(), userID.String()) {
		t.Fatalf("message must not leak the user id, got %q", err.Error())
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := New(http.StatusServiceUnavailable, "storage_unavailable", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("wrapped cause must be reachable via errors.Is")
	}

	var apiErr *Error
	if !errors.As(fmt.Errorf("wrapped: %w", err), &apiErr) {
		t.Fatalf("errors.As must find *Error through wrapping")
	}
	if apiErr.Code != "storage_unavailable" {
		t.Fatalf("code: got %q", apiErr.Code)
	}
}
