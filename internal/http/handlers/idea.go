package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamvote/voteboard-backend/internal/http/response"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/services"
)

type IdeaHandler struct {
	ideaService services.IdeaService
	log         *logger.Logger
}

func NewIdeaHandler(ideaService services.IdeaService, log *logger.Logger) *IdeaHandler {
	return &IdeaHandler{
		ideaService: ideaService,
		log:         log.With("handler", "IdeaHandler"),
	}
}

// POST /ideas/
func (ih *IdeaHandler) Create(c *gin.Context) {
	var req struct {
		Title       string    `json:"title" binding:"required,min=1,max=100"`
		Description string    `json:"description" binding:"max=1000"`
		BoardID     uuid.UUID `json:"board_id" binding:"required"`
	}
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, ih.log, err)
		return
	}

	idea, err := ih.ideaService.Create(dbctx.Context{Ctx: c.Request.Context()},
		req.BoardID, req.Title, req.Description)
	if err != nil {
		response.RespondError(c, ih.log, err)
		return
	}
	response.RespondCreated(c, idea)
}

// GET /ideas/all?board_id=...
func (ih *IdeaHandler) ListForBoard(c *gin.Context) {
	boardID, err := parseUUIDQuery(c, "board_id")
	if err != nil {
		response.RespondError(c, ih.log, err)
		return
	}

	ideas, err := ih.ideaService.ListForBoard(dbctx.Context{Ctx: c.Request.Context()}, boardID)
	if err != nil {
		response.RespondError(c, ih.log, err)
		return
	}
	response.RespondOK(c, ideas)
}

// GET /ideas/:idea_id
func (ih *IdeaHandler) Get(c *gin.Context) {
	ideaID, err := parseUUIDParam(c, "idea_id")
	if err != nil {
		response.RespondError(c, ih.log, err)
		return
	}

	idea, err := ih.ideaService.Get(dbctx.Context{Ctx: c.Request.Context()}, ideaID)
	if err != nil {
		response.RespondError(c, ih.log, err)
		return
	}
	response.RespondOK(c, idea)
}

// PATCH /ideas/:idea_id/new_title
func (ih *IdeaHandler) ChangeTitle(c *gin.Context) {
	ideaID, err := parseUUIDParam(c, "idea_id")
	if err != nil {
		response.RespondError(c, ih.log, err)
		return
	}

	var req struct {
		Title string `json:"title" binding:"required,min=1,max=100"`
	}
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, ih.log, err)
		return
	}

	idea, err := ih.ideaService.ChangeTitle(dbctx.Context{Ctx: c.Request.Context()}, ideaID, req.Title)
	if err != nil {
		response.RespondError(c, ih.log, err)
		return
	}
	response.RespondOK(c, idea)
}

// PATCH /ideas/:idea_id/new_desc
func (ih *IdeaHandler) ChangeDescription(c *gin.Context) {
	ideaID, err := parseUUIDParam(c, "idea_id")
	if err != nil {
		response.RespondError(c, ih.log, err)
		return
	}

	var req struct {
		Description string `json:"description" binding:"max=1000"`
	}
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, ih.log, err)
		return
	}

	idea, err := ih.ideaService.ChangeDescription(dbctx.Context{Ctx: c.Request.Context()}, ideaID, req.Description)
	if err != nil {
		response.RespondError(c, ih.log, err)
		return
	}
	response.RespondOK(c, idea)
}

// DELETE /ideas/:idea_id/delete
func (ih *IdeaHandler) Delete(c *gin.Context) {
	ideaID, err := parseUUIDParam(c, "idea_id")
	if err != nil {
		response.RespondError(c, ih.log, err)
		return
	}

	if err := ih.ideaService.Delete(dbctx.Context{Ctx: c.Request.Context()}, ideaID); err != nil {
		response.RespondError(c, ih.log, err)
		return
	}
	response.RespondNoContent(c)
}
