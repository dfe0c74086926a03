package api

import (
	"context"
)

// SetLike records the session user's like on a post. Repeating it is a no-op.
func (c *Client) SetLike(ctx context.Context, postID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", postID).
		Put("/api/v1/posts/{id}/like")
	return CheckResponse(resp, err)
}

// DeleteLike removes the session user's like. Removing a missing like is a
// no-op.
func (c *Client) DeleteLike(ctx context.Context, postID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", postID).
		Delete("/api/v1/posts/{id}/like")
	return CheckResponse(resp, err)
}

// IsLiked reports whether the session user likes the post
func (c *Client) IsLiked(ctx context.Context, postID string) (bool, error) {
	var out likedResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", postID).
		SetResult(&out).
		Get("/api/v1/posts/{id}/like")
	if err := CheckResponse(resp, err); err != nil {
		return false, err
	}
	return out.Liked, nil
}

func (c *Client) CountLikes(ctx context.Context, postID string) (int64, error) {
	var out countResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", postID).
		SetResult(&out).
		Get("/api/v1/posts/{id}/likes/count")
	if err := CheckResponse(resp, err); err != nil {
		return 0, err
	}
	return out.Count, nil
}
