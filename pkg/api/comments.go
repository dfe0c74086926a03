package api

import (
	"context"

	"github.com/Jaymi-01/framez/pkg/logger"
)

// CreateComment adds a comment authored by the session user
func (c *Client) CreateComment(ctx context.Context, postID, text string) (*Comment, error) {
	logger.Debug("Creating comment", "post_id", postID)

	var out Comment
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", postID).
		SetBody(map[string]string{"text": text}).
		SetResult(&out).
		Post("/api/v1/posts/{id}/comments")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListComments returns every comment on a post, oldest first
func (c *Client) ListComments(ctx context.Context, postID string) ([]Comment, error) {
	var out commentsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", postID).
		SetResult(&out).
		Get("/api/v1/posts/{id}/comments")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

func (c *Client) CountComments(ctx context.Context, postID string) (int64, error) {
	var out countResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", postID).
		SetResult(&out).
		Get("/api/v1/posts/{id}/comments/count")
	if err := CheckResponse(resp, err); err != nil {
		return 0, err
	}
	return out.Count, nil
}
