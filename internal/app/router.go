package app

import (
	"github.com/gin-gonic/gin"

	voteboardhttp "github.com/teamvote/voteboard-backend/internal/http"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers) *gin.Engine {
	log.Info("Wiring router...")
	return voteboardhttp.NewRouter(voteboardhttp.RouterConfig{
		BoardHandler:  handlerset.Board,
		IdeaHandler:   handlerset.Idea,
		UserHandler:   handlerset.User,
		VoteHandler:   handlerset.Vote,
		HealthHandler: handlerset.Health,

		Log:            log,
		Environment:    cfg.Environment,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitRPM:   cfg.RateLimitRPM,
		RequestTimeout: cfg.RequestTimeout,
	})
}
