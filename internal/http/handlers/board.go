package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/teamvote/voteboard-backend/internal/domain"
	"github.com/teamvote/voteboard-backend/internal/http/response"
	"github.com/teamvote/voteboard-backend/internal/pkg/dbctx"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
	"github.com/teamvote/voteboard-backend/internal/platform/apierr"
	"github.com/teamvote/voteboard-backend/internal/services"
)

type BoardHandler struct {
	boardService services.BoardService
	statsService services.StatsService
	log          *logger.Logger
}

func NewBoardHandler(boardService services.BoardService, statsService services.StatsService, log *logger.Logger) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		statsService: statsService,
		log:          log.With("handler", "BoardHandler"),
	}
}

// POST /boards/
func (bh *BoardHandler) Create(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required,min=1,max=100"`
	}
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, bh.log, err)
		return
	}

	board, err := bh.boardService.Create(dbctx.Context{Ctx: c.Request.Context()}, req.Title)
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}
	response.RespondCreated(c, board)
}

// GET /boards/all
func (bh *BoardHandler) List(c *gin.Context) {
	boards, err := bh.boardService.List(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}
	response.RespondOK(c, boards)
}

// GET /boards/:board_id
func (bh *BoardHandler) Get(c *gin.Context) {
	boardID, err := parseUUIDParam(c, "board_id")
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}

	board, err := bh.boardService.Get(dbctx.Context{Ctx: c.Request.Context()}, boardID)
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}
	response.RespondOK(c, board)
}

// PATCH /boards/:board_id/change_state
func (bh *BoardHandler) ChangeStatus(c *gin.Context) {
	boardID, err := parseUUIDParam(c, "board_id")
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, bh.log, err)
		return
	}
	status := domain.BoardStatus(req.Status)
	if !status.Valid() {
		response.RespondError(c, bh.log,
			apierr.Validation(fmt.Errorf("unknown board status %q", req.Status)))
		return
	}

	board, err := bh.boardService.ChangeStatus(dbctx.Context{Ctx: c.Request.Context()}, boardID, status)
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}
	response.RespondOK(c, board)
}

// GET /boards/:board_id/votes
func (bh *BoardHandler) Votes(c *gin.Context) {
	boardID, err := parseUUIDParam(c, "board_id")
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}

	counts, err := bh.statsService.VotingStats(dbctx.Context{Ctx: c.Request.Context()}, boardID)
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}
	response.RespondOK(c, counts)
}

// GET /boards/:board_id/percentage
func (bh *BoardHandler) Percentage(c *gin.Context) {
	boardID, err := parseUUIDParam(c, "board_id")
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}

	percents, err := bh.statsService.Percentages(dbctx.Context{Ctx: c.Request.Context()}, boardID)
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}
	response.RespondOK(c, percents)
}

// GET /boards/:board_id/winners
func (bh *BoardHandler) Winners(c *gin.Context) {
	boardID, err := parseUUIDParam(c, "board_id")
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}

	winners, err := bh.statsService.Winner(dbctx.Context{Ctx: c.Request.Context()}, boardID)
	if err != nil {
		response.RespondError(c, bh.log, err)
		return
	}
	response.RespondOK(c, winners)
}
