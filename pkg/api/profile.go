package api

import (
	"context"

	"github.com/Jaymi-01/framez/pkg/logger"
)

// UpdateProfile patches the session user's display name and photo
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	logger.Debug("Updating profile")

	var out User
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(update).
		SetResult(&out).
		Patch("/api/v1/users/me")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var out User
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", userID).
		SetResult(&out).
		Get("/api/v1/users/{id}")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfilePictures lists the preset avatar URLs
func (c *Client) ProfilePictures(ctx context.Context) ([]string, error) {
	var out picturesResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/v1/profile-pictures")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return out.Pictures, nil
}
