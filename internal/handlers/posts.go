package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	apierrors "github.com/Jaymi-01/framez/internal/errors"
	"github.com/Jaymi-01/framez/internal/logger"
	"github.com/Jaymi-01/framez/internal/metrics"
	"github.com/Jaymi-01/framez/internal/models"
	"github.com/Jaymi-01/framez/internal/storage"
	"github.com/Jaymi-01/framez/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmptyPostMessage is returned when a post has neither text nor image
const EmptyPostMessage = "You need to add text or an image to share a Frame!"

type createPostRequest struct {
	Text      string `json:"text"`
	ImageData string `json:"image_data"`
}

type postImage struct {
	data     []byte
	filename string
}

// CreatePost uploads the optional image, then writes the post
// POST /api/v1/posts
func (h *Handlers) CreatePost(c *gin.Context) {
	user, ok := util.GetUserFromContext(c)
	if !ok {
		return
	}

	text, image, apiErr := h.readPostInput(c)
	if apiErr != nil {
		util.RespondWithAPIError(c, apiErr)
		return
	}
	if text == "" && image == nil {
		util.RespondValidationError(c, "text", EmptyPostMessage)
		return
	}

	post := &models.Post{
		UserID:    user.ID,
		UserName:  user.AuthorName(),
		UserEmail: user.Email,
		Text:      text,
	}

	if image != nil {
		if h.media == nil {
			util.RespondWithAPIError(c, apierrors.ServiceUnavailable("media upload"))
			return
		}
		result, err := h.media.UploadImage(c.Request.Context(), image.data, user.ID, image.filename)
		if err != nil {
			respondError(c, err, "failed to upload image")
			return
		}
		post.ImageURL = result.URL
	}

	if err := h.posts.CreatePost(c.Request.Context(), post); err != nil {
		util.RespondInternalError(c, "failed to create post", err)
		return
	}

	metrics.Get().PostsCreatedTotal.WithLabelValues(strconv.FormatBool(post.ImageURL != "")).Inc()
	logger.Log.Info("Post created",
		logger.WithUserID(user.ID),
		logger.WithPostID(post.ID),
		zap.Bool("has_image", post.ImageURL != ""),
	)
	c.JSON(http.StatusCreated, post)
}

// jsonBodyOverhead covers the caption and data URI prefix on top of the
// base64-encoded image
const jsonBodyOverhead = 8 << 10

// readPostInput accepts multipart (text + image file) or JSON (text + data URI)
func (h *Handlers) readPostInput(c *gin.Context) (string, *postImage, *apierrors.APIError) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		text := strings.TrimSpace(c.PostForm("text"))
		fileHeader, err := c.FormFile("image")
		if errors.Is(err, http.ErrMissingFile) {
			return text, nil, nil
		}
		if err != nil {
			return "", nil, apierrors.BadRequest("invalid multipart form")
		}

		limit := h.maxImageBytes()
		if limit > 0 && fileHeader.Size > limit {
			return "", nil, apierrors.TooLarge("image", limit)
		}

		file, err := fileHeader.Open()
		if err != nil {
			return "", nil, apierrors.BadRequest("could not read image")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", nil, apierrors.BadRequest("could not read image")
		}
		return text, &postImage{data: data, filename: filepath.Base(fileHeader.Filename)}, nil
	}

	limit := h.maxImageBytes()
	if limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit*4/3+jsonBodyOverhead)
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", nil, apierrors.TooLarge("image", limit)
		}
		return "", nil, apierrors.BadRequest("invalid request body")
	}
	text := strings.TrimSpace(req.Text)
	if strings.TrimSpace(req.ImageData) == "" {
		return text, nil, nil
	}

	data, ext, err := storage.DecodeDataURI(req.ImageData)
	if err != nil {
		return "", nil, apierrors.ValidationError("image_data", err.Error())
	}
	if limit > 0 && int64(len(data)) > limit {
		return "", nil, apierrors.TooLarge("image", limit)
	}
	return text, &postImage{data: data, filename: "frame" + ext}, nil
}

func (h *Handlers) maxImageBytes() int64 {
	if h.media == nil {
		return 0
	}
	return h.media.MaxBytes()
}

// ListPosts returns every post, newest first
// GET /api/v1/posts
func (h *Handlers) ListPosts(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context())
	if err != nil {
		util.RespondInternalError(c, "failed to load posts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": nonNil(posts)})
}

// GetPost returns one post
// GET /api/v1/posts/:id
func (h *Handlers) GetPost(c *gin.Context) {
	post, err := h.posts.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to load post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListUserPosts returns one author's posts
// GET /api/v1/users/:id/posts
func (h *Handlers) ListUserPosts(c *gin.Context) {
	posts, err := h.posts.ListPostsByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondInternalError(c, fmt.Sprintf("failed to load posts for user %s", c.Param("id")), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": nonNil(posts)})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
