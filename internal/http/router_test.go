package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/teamvote/voteboard-backend/internal/data/repos"
	"github.com/teamvote/voteboard-backend/internal/data/uow"
	"github.com/teamvote/voteboard-backend/internal/domain"
	httpH "github.com/teamvote/voteboard-backend/internal/http/handlers"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/services"
)

func newTestRouter(t *testing.T, rateLimitRPM int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&domain.Board{}, &domain.Idea{}, &domain.User{}, &domain.Vote{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(log.Sync)

	unit := uow.New(db, log,
		repos.NewBoardRepo(db, log),
		repos.NewIdeaRepo(db, log),
		repos.NewUserRepo(db, log),
		repos.NewVoteRepo(db, log),
	)
	boardService := services.NewBoardService(unit, log)
	ideaService := services.NewIdeaService(unit, log)
	userService := services.NewUserService(unit, log)
	voteService := services.NewVoteService(unit, log)
	statsService := services.NewStatsService(unit, log)

	return NewRouter(RouterConfig{
		BoardHandler:  httpH.NewBoardHandler(boardService, statsService, log),
		IdeaHandler:   httpH.NewIdeaHandler(ideaService, log),
		UserHandler:   httpH.NewUserHandler(userService, log),
		VoteHandler:   httpH.NewVoteHandler(voteService, log),
		HealthHandler: httpH.NewHealthHandler(),

		Log:            log,
		Environment:    "test",
		RateLimitRPM:   rateLimitRPM,
		RequestTimeout: 5 * time.Second,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

type problemDoc struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Status        int    `json:"status"`
	Detail        string `json:"detail"`
	CorrelationID string `json:"correlation_id"`
}

func wantProblem(t *testing.T, rec *httptest.ResponseRecorder, status int, errType string) problemDoc {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status: want %d, got %d (%s)", status, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type: want application/problem+json, got %q", ct)
	}
	var doc problemDoc
	decodeInto(t, rec, &doc)
	if doc.Type != errType {
		t.Fatalf("problem type: want %q, got %q", errType, doc.Type)
	}
	if doc.Status != status {
		t.Fatalf("problem status: want %d, got %d", status, doc.Status)
	}
	if doc.CorrelationID == "" {
		t.Fatalf("problem correlation_id must be set")
	}
	return doc
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, 0)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", rec.Code)
	}
	var body map[string]string
	decodeInto(t, rec, &body)
	if body["status"] != "ok" {
		t.Fatalf("body: want status ok, got %v", body)
	}
}

func TestSecurityAndTraceHeadersOnEveryResponse(t *testing.T) {
	router := newTestRouter(t, 0)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	for header, want := range map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Fatalf("%s: want %q, got %q", header, want, got)
		}
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("X-Request-Id must be issued")
	}
	if rec.Header().Get("X-Trace-Id") == "" {
		t.Fatalf("X-Trace-Id must be issued")
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS must not be sent outside production")
	}
}

func TestCallerRequestIDIsEchoed(t *testing.T) {
	router := newTestRouter(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "caller-supplied-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "caller-supplied-id" {
		t.Fatalf("X-Request-Id: want caller-supplied-id, got %q", got)
	}
}

func TestValidationErrorsAreProblemDocuments(t *testing.T) {
	router := newTestRouter(t, 0)

	rec := doJSON(t, router, http.MethodPost, "/boards/", map[string]string{"title": ""})
	wantProblem(t, rec, http.StatusUnprocessableEntity, "/errors/validation_error")

	rec = doJSON(t, router, http.MethodGet, "/boards/not-a-uuid", nil)
	wantProblem(t, rec, http.StatusUnprocessableEntity, "/errors/validation_error")

	rec = doJSON(t, router, http.MethodPost, "/users/", map[string]string{"name": "*bad name*"})
	wantProblem(t, rec, http.StatusUnprocessableEntity, "/errors/validation_error")
}

func TestNotFoundProblem(t *testing.T) {
	router := newTestRouter(t, 0)

	rec := doJSON(t, router, http.MethodGet, "/boards/6f1b2a3c-4d5e-4678-9abc-def012345678", nil)
	doc := wantProblem(t, rec, http.StatusNotFound, "/errors/board_not_found")
	if doc.Title != http.StatusText(http.StatusNotFound) {
		t.Fatalf("problem title: want %q, got %q", http.StatusText(http.StatusNotFound), doc.Title)
	}
}

func TestRateLimitReturns429(t *testing.T) {
	router := newTestRouter(t, 2)

	var rec *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		rec = doJSON(t, router, http.MethodGet, "/health", nil)
	}
	wantProblem(t, rec, http.StatusTooManyRequests, "/errors/too_many_requests")
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("Retry-After must be set on 429")
	}
}

func TestBoardLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t, 0)

	// Create a board, it starts in draft.
	rec := doJSON(t, router, http.MethodPost, "/boards/", map[string]string{"title": "quarterly planning"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create board: want 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var board domain.Board
	decodeInto(t, rec, &board)
	if board.Status != domain.BoardStatusDraft {
		t.Fatalf("new board status: want draft, got %q", board.Status)
	}

	// Attach an idea while draft.
	rec = doJSON(t, router, http.MethodPost, "/ideas/", map[string]any{
		"title":       "weekly demos",
		"description": "show work every friday",
		"board_id":    board.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create idea: want 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var idea domain.Idea
	decodeInto(t, rec, &idea)

	// Publish.
	rec = doJSON(t, router, http.MethodPatch,
		fmt.Sprintf("/boards/%s/change_state", board.ID), map[string]string{"status": "published"})
	if rec.Code != http.StatusOK {
		t.Fatalf("publish: want 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Idea mutations are now rejected.
	rec = doJSON(t, router, http.MethodPatch,
		fmt.Sprintf("/ideas/%s/new_title", idea.ID), map[string]string{"title": "renamed"})
	wantProblem(t, rec, http.StatusConflict, "/errors/invalid_operation_with_board_with_this_status")

	// A user votes.
	rec = doJSON(t, router, http.MethodPost, "/users/", map[string]string{"name": "alice"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create user: want 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var user domain.User
	decodeInto(t, rec, &user)

	rec = doJSON(t, router, http.MethodPost, "/votes/", map[string]any{
		"idea_id": idea.ID,
		"user_id": user.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("vote: want 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var vote domain.Vote
	decodeInto(t, rec, &vote)

	// Voting twice on the same board is a conflict.
	rec = doJSON(t, router, http.MethodPost, "/votes/", map[string]any{
		"idea_id": idea.ID,
		"user_id": user.ID,
	})
	wantProblem(t, rec, http.StatusConflict, "/errors/double_voting_exception")

	// Stats reflect the single vote.
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/boards/%s/votes", board.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("votes stats: want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var counts []domain.IdeaVoteCount
	decodeInto(t, rec, &counts)
	if len(counts) != 1 || counts[0].VotesCount != 1 {
		t.Fatalf("vote counts: want one idea with 1 vote, got %v", counts)
	}

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/boards/%s/winners", board.ID), nil)
	var winners domain.Winners
	decodeInto(t, rec, &winners)
	if winners.WinnersCount != 1 || len(winners.IDs) != 1 || winners.IDs[0] != idea.ID {
		t.Fatalf("winners: want idea %s with count 1, got %v", idea.ID, winners)
	}

	// Revoke the vote.
	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/votes/%s/revoke", vote.ID), nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("revoke: want 204, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Close the board; it is terminal afterwards.
	rec = doJSON(t, router, http.MethodPatch,
		fmt.Sprintf("/boards/%s/change_state", board.ID), map[string]string{"status": "closed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("close: want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodPatch,
		fmt.Sprintf("/boards/%s/change_state", board.ID), map[string]string{"status": "draft"})
	wantProblem(t, rec, http.StatusConflict, "/errors/invalid_operation_with_board_with_this_status")
}

func TestUnknownStatusRejected(t *testing.T) {
	router := newTestRouter(t, 0)

	rec := doJSON(t, router, http.MethodPost, "/boards/", map[string]string{"title": "b"})
	var board domain.Board
	decodeInto(t, rec, &board)

	rec = doJSON(t, router, http.MethodPatch,
		fmt.Sprintf("/boards/%s/change_state", board.ID), map[string]string{"status": "archived"})
	wantProblem(t, rec, http.StatusUnprocessableEntity, "/errors/validation_error")
}
