package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/platform/apierr"
	"github.com/teamvote/voteboard-backend/internal/platform/ctxutil"
)

const ProblemContentType = "application/problem+json"

// Problem is the structured error document every error response carries
// (RFC 7807 shape plus a correlation id).
type Problem struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Status        int    `json:"status"`
	Detail        string `json:"detail"`
	CorrelationID string `json:"correlation_id"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// CorrelationID returns the request id issued by the trace middleware, or a
// fresh uuid when the middleware did not run (tests, panics before it).
func CorrelationID(ctx context.Context) string {
	if td := ctxutil.GetTraceData(ctx); td != nil && td.RequestID != "" {
		return td.RequestID
	}
	return uuid.New().String()
}

// RespondProblem writes a problem document with an explicit status and code.
func RespondProblem(c *gin.Context, status int, code, detail string) {
	c.Header("Content-Type", ProblemContentType)
	c.JSON(status, Problem{
		Type:          "/errors/" + code,
		Title:         http.StatusText(status),
		Status:        status,
		Detail:        detail,
		CorrelationID: CorrelationID(c.Request.Context()),
	})
}

// RespondError translates a service error into a problem document and logs
// it server-side under the same correlation id. Unrecognized errors become
// 500 internal_error; their detail is not leaked to the client.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"
	detail := "something went wrong"

	var apiErr *apierr.Error
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Status
		code = apiErr.Code
		detail = apiErr.Error()
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		code = "timeout"
		detail = "request processing exceeded the configured timeout"
	}

	correlationID := CorrelationID(c.Request.Context())
	if log != nil {
		fields := []interface{}{
			"correlation_id", correlationID,
			"status", status,
			"code", code,
			"error", err,
		}
		if status >= 500 {
			log.Error("Request failed", fields...)
		} else {
			log.Warn("Request failed", fields...)
		}
	}

	c.Header("Content-Type", ProblemContentType)
	c.AbortWithStatusJSON(status, Problem{
		Type:          "/errors/" + code,
		Title:         http.StatusText(status),
		Status:        status,
		Detail:        detail,
		CorrelationID: correlationID,
	})
}
