package api

import "time"

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	PhotoURL    string    `json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Post is a frame. CreatedAt is zero when the server has not stamped it.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate leaves nil fields unchanged; an empty PhotoURL clears it
type ProfileUpdate struct {
	DisplayName *string `json:"display_name,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
}

// CreatePostRequest carries the text and an optional image. Image is sent as
// a multipart file named Filename.
type CreatePostRequest struct {
	Text     string
	Image    []byte
	Filename string
}

type postsResponse struct {
	Posts []Post `json:"posts"`
}

type commentsResponse struct {
	Comments []Comment `json:"comments"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

type likedResponse struct {
	Liked bool `json:"liked"`
}

type picturesResponse struct {
	Pictures []string `json:"pictures"`
}

type logoutResponse struct {
	Revoked bool `json:"revoked"`
}
