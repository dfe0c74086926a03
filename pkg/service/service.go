package service

import (
	"context"
	"errors"
	"time"

	"github.com/Jaymi-01/framez/pkg/api"
)

// EmptyPostMessage is shown when a post has neither text nor an image
const EmptyPostMessage = "You need to add text or an image to share a Frame!"

// PostTimeout bounds post creation, image upload included
const PostTimeout = 30 * time.Second

var (
	ErrEmptyPost = errors.New(EmptyPostMessage)
	ErrNoSession = errors.New("no authenticated user")
)

// Backend is the part of the Framez API the aggregation logic needs.
// *api.Client implements it.
type Backend interface {
	IsLiked(ctx context.Context, postID string) (bool, error)
	SetLike(ctx context.Context, postID string) error
	DeleteLike(ctx context.Context, postID string) error
	CountLikes(ctx context.Context, postID string) (int64, error)

	ListComments(ctx context.Context, postID string) ([]api.Comment, error)
	CreateComment(ctx context.Context, postID, text string) (*api.Comment, error)
	CountComments(ctx context.Context, postID string) (int64, error)

	ListPosts(ctx context.Context) ([]api.Post, error)
	ListUserPosts(ctx context.Context, userID string) ([]api.Post, error)
	CreatePost(ctx context.Context, req api.CreatePostRequest) (*api.Post, error)

	Me(ctx context.Context) (*api.User, error)
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*api.User, error)
}

var _ Backend = (*api.Client)(nil)

// Service computes the derived social counters on top of a Backend. Nothing
// is cached: every count is recomputed from the backend on each call.
type Service struct {
	backend Backend
}

func New(backend Backend) *Service {
	return &Service{backend: backend}
}

// toggleLike removes the like when the post was liked and sets it otherwise
func (s *Service) toggleLike(ctx context.Context, postID string, wasLiked bool) error {
	if wasLiked {
		return s.backend.DeleteLike(ctx, postID)
	}
	return s.backend.SetLike(ctx, postID)
}
