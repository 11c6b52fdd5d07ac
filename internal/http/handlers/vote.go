package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamvote/voteboard-backend/internal/http/response"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/services"
)

type VoteHandler struct {
	voteService services.VoteService
	log         *logger.Logger
}

func NewVoteHandler(voteService services.VoteService, log *logger.Logger) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
		log:         log.With("handler", "VoteHandler"),
	}
}

// POST /votes/
func (vh *VoteHandler) Create(c *gin.Context) {
	var req struct {
		IdeaID uuid.UUID `json:"idea_id" binding:"required"`
		UserID uuid.UUID `json:"user_id" binding:"required"`
	}
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, vh.log, err)
		return
	}

	vote, err := vh.voteService.Create(dbctx.Context{Ctx: c.Request.Context()}, req.IdeaID, req.UserID)
	if err != nil {
		response.RespondError(c, vh.log, err)
		return
	}
	response.RespondCreated(c, vote)
}

// DELETE /votes/:vote_id/revoke
func (vh *VoteHandler) Revoke(c *gin.Context) {
	voteID, err := parseUUIDParam(c, "vote_id")
	if err != nil {
		response.RespondError(c, vh.log, err)
		return
	}

	if err := vh.voteService.Delete(dbctx.Context{Ctx: c.Request.Context()}, voteID); err != nil {
		response.RespondError(c, vh.log, err)
		return
	}
	response.RespondNoContent(c)
}
