package api

import (
	"bytes"
	"context"

	"github.com/Jaymi-01/framez/pkg/logger"
)

// CreatePost sends a multipart form when an image is attached and JSON
// otherwise
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	logger.Debug("Creating post", "has_image", len(req.Image) > 0)

	var out Post
	r := c.http.R().
		SetContext(ctx).
		SetResult(&out)

	if len(req.Image) > 0 {
		filename := req.Filename
		if filename == "" {
			filename = "frame.jpg"
		}
		r.SetMultipartFormData(map[string]string{"text": req.Text}).
			SetFileReader("image", filename, bytes.NewReader(req.Image))
	} else {
		r.SetBody(map[string]string{"text": req.Text})
	}

	resp, err := r.Post("/api/v1/posts")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPosts returns the feed, newest first
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var out postsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/v1/posts")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

// ListUserPosts returns one user's posts in no particular order
func (c *Client) ListUserPosts(ctx context.Context, userID string) ([]Post, error) {
	var out postsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", userID).
		SetResult(&out).
		Get("/api/v1/users/{id}/posts")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

func (c *Client) GetPost(ctx context.Context, postID string) (*Post, error) {
	var out Post
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", postID).
		SetResult(&out).
		Get("/api/v1/posts/{id}")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
