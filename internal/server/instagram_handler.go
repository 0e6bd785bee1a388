package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/mindlink/internal/instagram"
)

const fetchFailedMessage = "Failed to fetch Instagram metadata"

func (h *Handler) getInstagramMetadata(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": instagram.ErrMissingURL.Error()})
		return
	}

	md, err := h.instagram.GetMetadata(c.Request.Context(), rawURL)
	if err != nil {
		if errors.Is(err, instagram.ErrMissingURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		h.logger.Error("Error fetching Instagram metadata", "url", rawURL, "error", err)
		c.JSON(http.StatusInternalServerError, h.fetchErrorBody(err))
		return
	}

	c.JSON(http.StatusOK, md)
}

// fetchErrorBody carries the upstream status and body when there was a response,
// and a stack trace in development.
func (h *Handler) fetchErrorBody(err error) gin.H {
	body := gin.H{
		"error":   fetchFailedMessage,
		"details": err.Error(),
	}

	var fetchErr *instagram.FetchError
	if errors.As(err, &fetchErr) && fetchErr.HasResponse() {
		body["status"] = fetchErr.Status
		body["data"] = fetchErr.Body
	}

	if h.devMode {
		body["stack"] = string(debug.Stack())
	}

	return body
}
