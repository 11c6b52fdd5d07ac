package handlers

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/teamvote/voteboard-backend/internal/http/response"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/platform/apierr"
	"github.com/teamvote/voteboard-backend/internal/services"
)

// userNamePattern: letters/digits first, then letters, digits, spaces,
// underscores, dots and dashes.
var userNamePattern = regexp.MustCompile(`^[\pL\pN][\pL\pN _.-]*$`)

type UserHandler struct {
	userService services.UserService
	log         *logger.Logger
}

func NewUserHandler(userService services.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log.With("handler", "UserHandler"),
	}
}

func validateUserName(name string) error {
	if !userNamePattern.MatchString(name) {
		return apierr.Validation(fmt.Errorf("user name contains characters outside the allowed set"))
	}
	return nil
}

// POST /users/
func (uh *UserHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required,min=1,max=50"`
	}
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, uh.log, err)
		return
	}
	if err := validateUserName(req.Name); err != nil {
		response.RespondError(c, uh.log, err)
		return
	}

	user, err := uh.userService.Create(dbctx.Context{Ctx: c.Request.Context()}, req.Name)
	if err != nil {
		response.RespondError(c, uh.log, err)
		return
	}
	response.RespondCreated(c, user)
}

// GET /users/:user_id
func (uh *UserHandler) Get(c *gin.Context) {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		response.RespondError(c, uh.log, err)
		return
	}

	user, err := uh.userService.Get(dbctx.Context{Ctx: c.Request.Context()}, userID)
	if err != nil {
		response.RespondError(c, uh.log, err)
		return
	}
	response.RespondOK(c, user)
}

// PATCH /users/:user_id/new_name
func (uh *UserHandler) ChangeName(c *gin.Context) {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		response.RespondError(c, uh.log, err)
		return
	}

	var req struct {
		Name string `json:"name" binding:"required,min=1,max=50"`
	}
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, uh.log, err)
		return
	}
	if err := validateUserName(req.Name); err != nil {
		response.RespondError(c, uh.log, err)
		return
	}

	user, err := uh.userService.ChangeName(dbctx.Context{Ctx: c.Request.Context()}, userID, req.Name)
	if err != nil {
		response.RespondError(c, uh.log, err)
		return
	}
	response.RespondOK(c, user)
}

// DELETE /users/:user_id/delete
func (uh *UserHandler) Delete(c *gin.Context) {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		response.RespondError(c, uh.log, err)
		return
	}

	if err := uh.userService.Delete(dbctx.Context{Ctx: c.Request.Context()}, userID); err != nil {
		response.RespondError(c, uh.log, err)
		return
	}
	response.RespondNoContent(c)
}

// GET /users/:user_id/vote_history
func (uh *UserHandler) VoteHistory(c *gin.Context) {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		response.RespondError(c, uh.log, err)
		return
	}

	history, err := uh.userService.VoteHistory(dbctx.Context{Ctx: c.Request.Context()}, userID)
	if err != nil {
		response.RespondError(c, uh.log, err)
		return
	}
	response.RespondOK(c, history)
}
