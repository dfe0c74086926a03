package handlers

import (
	"errors"

	"github.com/Jaymi-01/framez/internal/auth"
	apierrors "github.com/Jaymi-01/framez/internal/errors"
	"github.com/Jaymi-01/framez/internal/repository"
	"github.com/Jaymi-01/framez/internal/storage"
	"github.com/Jaymi-01/framez/internal/util"
	"github.com/gin-gonic/gin"
)

// Handlers serves posts, likes and comments
type Handlers struct {
	posts    repository.PostRepository
	likes    repository.LikeRepository
	comments repository.CommentRepository
	media    *storage.Service
}

// NewHandlers creates a new handlers instance
func NewHandlers(posts repository.PostRepository, likes repository.LikeRepository, comments repository.CommentRepository) *Handlers {
	return &Handlers{
		posts:    posts,
		likes:    likes,
		comments: comments,
	}
}

// SetMediaService enables image uploads on post creation
func (h *Handlers) SetMediaService(media *storage.Service) {
	h.media = media
}

// respondError maps service and repository errors onto API errors
func respondError(c *gin.Context, err error, fallback string) {
	var validationErr *auth.ValidationError
	var uploadErr *storage.UploadError
	var configErr *storage.ConfigError

	switch {
	case errors.As(err, &validationErr):
		util.RespondValidationError(c, validationErr.Field, validationErr.Message)
	case errors.Is(err, auth.ErrUserExists):
		util.RespondConflict(c, "an account with this email")
	case errors.Is(err, auth.ErrInvalidCredentials):
		util.RespondUnauthorized(c, "invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		util.RespondUnauthorized(c, "invalid or expired token")
	case errors.Is(err, auth.ErrNoSession):
		util.RespondUnauthorized(c, err.Error())
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, repository.ErrUserNotFound):
		util.RespondNotFound(c, "user")
	case errors.Is(err, repository.ErrPostNotFound):
		util.RespondNotFound(c, "post")
	case errors.Is(err, storage.ErrImageTooLarge):
		util.RespondWithAPIError(c, apierrors.ValidationError("image", "image is too large"))
	case errors.Is(err, storage.ErrNotAnImage), errors.Is(err, storage.ErrInvalidData), errors.Is(err, storage.ErrEmptyImage):
		util.RespondValidationError(c, "image", err.Error())
	case errors.As(err, &configErr):
		util.RespondWithAPIError(c, apierrors.ServiceUnavailable("media upload").WithDetails(configErr.Error()))
	case errors.As(err, &uploadErr):
		util.RespondWithAPIError(c, apierrors.UploadFailed(uploadErr.Err))
	default:
		util.RespondInternalError(c, fallback, err)
	}
}
