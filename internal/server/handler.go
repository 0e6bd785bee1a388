package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/mindlink/internal/bookmark"
	"github.com/orgball2608/mindlink/internal/instagram"
	"github.com/orgball2608/mindlink/internal/ratelimit"
	apperrors "github.com/orgball2608/mindlink/pkg/errors"
	"github.com/orgball2608/mindlink/pkg/logger"
)

type Handler struct {
	instagram instagram.Client
	bookmark  bookmark.Client
	logger    logger.Logger
	devMode   bool
}

func NewHandler(ig instagram.Client, bm bookmark.Client, log logger.Logger, devMode bool) *Handler {
	return &Handler{
		instagram: ig,
		bookmark:  bm,
		logger:    log.WithComponent("HTTPHandler"),
		devMode:   devMode,
	}
}

// NewRouter wires middleware and routes onto a fresh engine.
func NewRouter(h *Handler, limiter ratelimit.Limiter, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(recoveryMiddleware(log))
	router.Use(loggerMiddleware(log))
	router.Use(corsMiddleware())

	router.GET("/healthz", h.healthz)

	api := router.Group("/api")
	api.Use(rateLimitMiddleware(limiter))
	api.GET("/instagram/oembed", h.getInstagramMetadata)

	links := api.Group("/links", requireUser())
	links.GET("", h.listLinks)
	links.POST("", h.createLink)
	links.GET("/:id", h.getLink)
	links.PATCH("/:id", h.updateLink)
	links.DELETE("/:id", h.deleteLink)
	links.POST("/:id/read", h.markAsRead)
	links.POST("/:id/reprocess", h.reprocessLink)

	api.GET("/activities", requireUser(), h.listActivities)

	return router
}

func (h *Handler) healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// writeError maps service errors to responses; fallback is the 500 message.
func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, gin.H{"message": fallback})
		return
	}
	c.JSON(status, gin.H{"message": apperrors.GetMessage(err)})
}

func userID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
