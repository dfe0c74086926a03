package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/Jaymi-01/framez/pkg/logger"
)

// CreatePost shares a frame. Blank text without an image is rejected before
// anything is sent. The request, upload included, is bounded by PostTimeout.
func (s *Service) CreatePost(ctx context.Context, user *api.User, text string, image []byte, filename string) (*api.Post, error) {
	if user == nil {
		return nil, ErrNoSession
	}
	text = strings.TrimSpace(text)
	if text == "" && len(image) == 0 {
		return nil, ErrEmptyPost
	}

	ctx, cancel := context.WithTimeout(ctx, PostTimeout)
	defer cancel()

	post, err := s.backend.CreatePost(ctx, api.CreatePostRequest{Text: text, Image: image, Filename: filename})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	logger.Info("Post created", "post_id", post.ID, "has_image", post.ImageURL != "")
	return post, nil
}

// SelectProfilePicture sets the session user's photo and returns the user as
// reloaded from the server
func (s *Service) SelectProfilePicture(ctx context.Context, user *api.User, url string) (*api.User, error) {
	if user == nil {
		return nil, ErrNoSession
	}
	if _, err := s.backend.UpdateProfile(ctx, api.ProfileUpdate{PhotoURL: &url}); err != nil {
		return nil, fmt.Errorf("failed to update profile picture: %w", err)
	}
	return s.backend.Me(ctx)
}
