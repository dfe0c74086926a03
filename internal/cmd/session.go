package cmd

import (
	"errors"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/Jaymi-01/framez/pkg/client"
	"github.com/Jaymi-01/framez/pkg/credentials"
	"github.com/Jaymi-01/framez/pkg/service"
)

var errNotLoggedIn = errors.New("not logged in, run `framez auth login` first")

// session is the stored login plus clients bound to its token
type session struct {
	creds *credentials.Credentials
	api   *api.Client
	svc   *service.Service
}

func (s *session) user() *api.User {
	return &api.User{
		ID:          s.creds.UserID,
		Email:       s.creds.Email,
		DisplayName: s.creds.DisplayName,
	}
}

// requireSession loads valid credentials and authenticates the shared client
func requireSession() (*session, error) {
	creds, err := credentials.Load()
	if err != nil {
		return nil, err
	}
	if creds == nil || !creds.IsValid() {
		return nil, errNotLoggedIn
	}

	client.SetAuthToken(creds.Token)
	c := api.Default()
	return &session{creds: creds, api: c, svc: service.New(c)}, nil
}

// saveSession stores an auth response as the current login
func saveSession(resp *api.AuthResponse) error {
	return credentials.Save(&credentials.Credentials{
		Token:       resp.Token,
		ExpiresAt:   resp.ExpiresAt,
		UserID:      resp.User.ID,
		Email:       resp.User.Email,
		DisplayName: resp.User.DisplayName,
	})
}

// refreshStoredUser keeps the cached profile fields in step with the server
func (s *session) refreshStoredUser(u *api.User) error {
	s.creds.Email = u.Email
	s.creds.DisplayName = u.DisplayName
	return credentials.Save(s.creds)
}

// wrapAuthError points the user at login when the token was rejected
func wrapAuthError(err error) error {
	if api.IsUnauthorized(err) {
		return errors.Join(err, errNotLoggedIn)
	}
	return err
}
