package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamvote/voteboard-backend/internal/platform/apierr"
)

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierr.Validation(fmt.Errorf("path parameter %q is not a valid uuid", name))
	}
	return id, nil
}

func parseUUIDQuery(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Query(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierr.Validation(fmt.Errorf("query parameter %q is not a valid uuid", name))
	}
	return id, nil
}

func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apierr.Validation(err)
	}
	return nil
}
