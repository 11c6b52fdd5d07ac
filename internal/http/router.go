package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/teamvote/voteboard-backend/internal/http/handlers"
	httpMW "github.com/teamvote/voteboard-backend/internal/http/middleware"
	"github.com/teamvote/voteboard-backend/internal/pkg/logger"
)

type RouterConfig struct {
	BoardHandler *httpH.BoardHandler
	IdeaHandler  *httpH.IdeaHandler
	UserHandler  *httpH.UserHandler
	VoteHandler  *httpH.VoteHandler

	HealthHandler *httpH.HealthHandler

	Log            *logger.Logger
	Environment    string
	CORSOrigins    []string
	RateLimitRPM   int
	RequestTimeout time.Duration
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("voteboard"))
	r.Use(httpMW.AttachTraceContext())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.Use(httpMW.SecurityHeaders(cfg.Environment))
	if cfg.RateLimitRPM > 0 {
		r.Use(httpMW.RateLimit(cfg.RateLimitRPM))
	}
	r.Use(httpMW.RequestTimeout(cfg.RequestTimeout))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	// Boards
	if cfg.BoardHandler != nil {
		boards := r.Group("/boards")
		{
			boards.POST("/", cfg.BoardHandler.Create)
			boards.GET("/all", cfg.BoardHandler.List)
			boards.GET("/:board_id", cfg.BoardHandler.Get)
			boards.PATCH("/:board_id/change_state", cfg.BoardHandler.ChangeStatus)
			boards.GET("/:board_id/votes", cfg.BoardHandler.Votes)
			boards.GET("/:board_id/percentage", cfg.BoardHandler.Percentage)
			boards.GET("/:board_id/winners", cfg.BoardHandler.Winners)
		}
	}

	// Ideas
	if cfg.IdeaHandler != nil {
		ideas := r.Group("/ideas")
		{
			ideas.POST("/", cfg.IdeaHandler.Create)
			ideas.GET("/all", cfg.IdeaHandler.ListForBoard)
			ideas.GET("/:idea_id", cfg.IdeaHandler.Get)
			ideas.PATCH("/:idea_id/new_title", cfg.IdeaHandler.ChangeTitle)
			ideas.PATCH("/:idea_id/new_desc", cfg.IdeaHandler.ChangeDescription)
			ideas.DELETE("/:idea_id/delete", cfg.IdeaHandler.Delete)
		}
	}

	// Users
	if cfg.UserHandler != nil {
		users := r.Group("/users")
		{
			users.POST("/", cfg.UserHandler.Create)
			users.GET("/:user_id", cfg.UserHandler.Get)
			users.PATCH("/:user_id/new_name", cfg.UserHandler.ChangeName)
			users.DELETE("/:user_id/delete", cfg.UserHandler.Delete)
			users.GET("/:user_id/vote_history", cfg.UserHandler.VoteHistory)
		}
	}

	// Votes
	if cfg.VoteHandler != nil {
		votes := r.Group("/votes")
		{
			votes.POST("/", cfg.VoteHandler.Create)
			votes.DELETE("/:vote_id/revoke", cfg.VoteHandler.Revoke)
		}
	}

	return r
}
