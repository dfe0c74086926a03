package handlers

import (
	"net/http"

	"github.com/Jaymi-01/framez/internal/logger"
	"github.com/Jaymi-01/framez/internal/metrics"
	"github.com/Jaymi-01/framez/internal/util"
	"github.com/gin-gonic/gin"
)

// LikePost sets the caller's like on a post
// PUT /api/v1/posts/:id/like
func (h *Handlers) LikePost(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		return
	}
	postID := c.Param("id")

	if err := h.likes.SetLike(c.Request.Context(), postID, userID); err != nil {
		util.RespondInternalError(c, "failed to like post", err)
		return
	}

	metrics.Get().LikesTotal.WithLabelValues("set").Inc()
	logger.Log.Debug("Post liked", logger.WithUserID(userID), logger.WithPostID(postID))
	c.JSON(http.StatusOK, gin.H{"liked": true})
}

// UnlikePost removes the caller's like
// DELETE /api/v1/posts/:id/like
func (h *Handlers) UnlikePost(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		return
	}
	postID := c.Param("id")

	if err := h.likes.DeleteLike(c.Request.Context(), postID, userID); err != nil {
		util.RespondInternalError(c, "failed to unlike post", err)
		return
	}

	metrics.Get().LikesTotal.WithLabelValues("unset").Inc()
	logger.Log.Debug("Post unliked", logger.WithUserID(userID), logger.WithPostID(postID))
	c.JSON(http.StatusOK, gin.H{"liked": false})
}

// GetLikeStatus reports whether the caller likes a post
// GET /api/v1/posts/:id/like
func (h *Handlers) GetLikeStatus(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		return
	}

	liked, err := h.likes.HasLiked(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		util.RespondInternalError(c, "failed to check like", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// CountLikes returns a post's like count
// GET /api/v1/posts/:id/likes/count
func (h *Handlers) CountLikes(c *gin.Context) {
	count, err := h.likes.CountLikes(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondInternalError(c, "failed to count likes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
