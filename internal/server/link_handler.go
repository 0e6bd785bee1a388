package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/mindlink/internal/domain"
)

func (h *Handler) listLinks(c *gin.Context) {
	links, err := h.bookmark.ListLinks(c.Request.Context(), userID(c))
	if err != nil {
		h.writeError(c, err, "Error fetching links")
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *Handler) createLink(c *gin.Context) {
	var input domain.NewLink
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	link, err := h.bookmark.AddLink(c.Request.Context(), userID(c), input)
	if err != nil {
		h.writeError(c, err, "Error creating link")
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *Handler) getLink(c *gin.Context) {
	link, err := h.bookmark.GetLink(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Error fetching link")
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *Handler) updateLink(c *gin.Context) {
	var update domain.LinkUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	link, err := h.bookmark.UpdateLink(c.Request.Context(), userID(c), c.Param("id"), update)
	if err != nil {
		h.writeError(c, err, "Error updating link")
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *Handler) deleteLink(c *gin.Context) {
	if err := h.bookmark.DeleteLink(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.writeError(c, err, "Error deleting link")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Link deleted successfully"})
}

func (h *Handler) markAsRead(c *gin.Context) {
	link, err := h.bookmark.MarkAsRead(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Error updating link")
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *Handler) reprocessLink(c *gin.Context) {
	link, err := h.bookmark.Reprocess(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Error reprocessing link")
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *Handler) listActivities(c *gin.Context) {
	activities, err := h.bookmark.RecentActivities(c.Request.Context(), userID(c))
	if err != nil {
		h.writeError(c, err, "Error fetching activities")
		return
	}
	c.JSON(http.StatusOK, activities)
}
