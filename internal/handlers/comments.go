package handlers

import (
	"net/http"
	"strings"

	"github.com/Jaymi-01/framez/internal/logger"
	"github.com/Jaymi-01/framez/internal/metrics"
	"github.com/Jaymi-01/framez/internal/models"
	"github.com/Jaymi-01/framez/internal/util"
	"github.com/gin-gonic/gin"
)

// CreateComment appends a comment to a post
// POST /api/v1/posts/:id/comments
func (h *Handlers) CreateComment(c *gin.Context) {
	user, ok := util.GetUserFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondBadRequest(c, "invalid request body")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		util.RespondValidationError(c, "text", "comment text is required")
		return
	}

	comment := &models.Comment{
		PostID:   c.Param("id"),
		UserID:   user.ID,
		UserName: user.AuthorName(),
		Text:     text,
	}
	if err := h.comments.CreateComment(c.Request.Context(), comment); err != nil {
		util.RespondInternalError(c, "failed to create comment", err)
		return
	}

	metrics.Get().CommentsCreatedTotal.Inc()
	logger.Log.Debug("Comment created", logger.WithUserID(user.ID), logger.WithPostID(comment.PostID))
	c.JSON(http.StatusCreated, comment)
}

// ListComments returns all comments on a post, oldest first
// GET /api/v1/posts/:id/comments
func (h *Handlers) ListComments(c *gin.Context) {
	comments, err := h.comments.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondInternalError(c, "failed to load comments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": nonNil(comments)})
}

// CountComments returns a post's comment count
// GET /api/v1/posts/:id/comments/count
func (h *Handlers) CountComments(c *gin.Context) {
	count, err := h.comments.CountComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondInternalError(c, "failed to count comments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
