package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jaymi-01/framez/internal/auth"
	"github.com/Jaymi-01/framez/internal/database"
	"github.com/Jaymi-01/framez/internal/handlers"
	"github.com/Jaymi-01/framez/internal/repository"
	"github.com/Jaymi-01/framez/internal/storage"
	"github.com/Jaymi-01/framez/pkg/client"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01")

type cdnUploader struct{}

func (cdnUploader) Name() string { return "test" }

func (cdnUploader) UploadImage(_ context.Context, data []byte, userID, filename string) (*storage.UploadResult, error) {
	return &storage.UploadResult{URL: "https://cdn.test/" + userID + "/" + filename, Size: int64(len(data))}, nil
}

// ClientTestSuite drives the typed client against the real router
type ClientTestSuite struct {
	suite.Suite
	db     *gorm.DB
	server *httptest.Server
	ctx    context.Context
}

func (suite *ClientTestSuite) SetupTest() {
	db, err := database.OpenInMemory()
	suite.Require().NoError(err)
	suite.db = db
	suite.ctx = context.Background()

	authService := auth.NewService(repository.NewUserRepository(db), []byte("api_client_secret"), time.Hour)
	h := handlers.NewHandlers(
		repository.NewPostRepository(db),
		repository.NewLikeRepository(db),
		repository.NewCommentRepository(db),
	)
	h.SetMediaService(storage.NewService(cdnUploader{}, 1<<20))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers.RegisterRoutes(router, h, handlers.NewAuthHandlers(authService, []string{"https://a/1.png", "https://a/2.png"}))
	suite.server = httptest.NewServer(router)
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.server.Close()
	if sqlDB, err := suite.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func (suite *ClientTestSuite) newClient() *Client {
	return New(client.New(suite.server.URL, 5*time.Second))
}

func (suite *ClientTestSuite) signup(email, name string) (*Client, *AuthResponse) {
	c := suite.newClient()
	resp, err := c.Register(suite.ctx, RegisterRequest{Email: email, Password: "password123", DisplayName: name})
	suite.Require().NoError(err)
	c.SetToken(resp.Token)
	return c, resp
}

func (suite *ClientTestSuite) TestRegisterAndLogin() {
	_, reg := suite.signup("alice@example.com", "Alice")
	suite.NotEmpty(reg.Token)
	suite.Equal("alice@example.com", reg.User.Email)
	suite.Equal("Alice", reg.User.DisplayName)
	suite.True(reg.ExpiresAt.After(time.Now()))

	c := suite.newClient()
	login, err := c.Login(suite.ctx, LoginRequest{Email: "ALICE@example.com", Password: "password123"})
	suite.Require().NoError(err)
	suite.Equal(reg.User.ID, login.User.ID)

	_, err = c.Login(suite.ctx, LoginRequest{Email: "alice@example.com", Password: "wrong-pass"})
	suite.True(IsUnauthorized(err))
}

func (suite *ClientTestSuite) TestRegisterErrors() {
	suite.signup("alice@example.com", "Alice")

	c := suite.newClient()
	_, err := c.Register(suite.ctx, RegisterRequest{Email: "alice@example.com", Password: "password123", DisplayName: "Again"})
	suite.True(IsConflict(err))

	_, err = c.Register(suite.ctx, RegisterRequest{Email: "bob@example.com", Password: "123", DisplayName: "Bob"})
	suite.Require().Error(err)
	suite.True(IsValidation(err))

	var apiErr *APIError
	suite.Require().ErrorAs(err, &apiErr)
	suite.Equal("password", apiErr.Field)
}

func (suite *ClientTestSuite) TestUnauthenticated() {
	_, err := suite.newClient().ListPosts(suite.ctx)
	suite.True(IsUnauthorized(err))
	suite.False(IsNotFound(err))
}

func (suite *ClientTestSuite) TestMeAndProfile() {
	c, reg := suite.signup("alice@example.com", "Alice")

	me, err := c.Me(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(reg.User.ID, me.ID)

	photo := "https://a/2.png"
	updated, err := c.UpdateProfile(suite.ctx, ProfileUpdate{PhotoURL: &photo})
	suite.Require().NoError(err)
	suite.Equal(photo, updated.PhotoURL)
	suite.Equal("Alice", updated.DisplayName)

	other, err := c.GetUser(suite.ctx, reg.User.ID)
	suite.Require().NoError(err)
	suite.Equal(photo, other.PhotoURL)

	_, err = c.GetUser(suite.ctx, "missing")
	suite.True(IsNotFound(err))

	pictures, err := c.ProfilePictures(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"https://a/1.png", "https://a/2.png"}, pictures)
}

func (suite *ClientTestSuite) TestPostsLifecycle() {
	c, reg := suite.signup("alice@example.com", "Alice")

	textPost, err := c.CreatePost(suite.ctx, CreatePostRequest{Text: "  hello frames  "})
	suite.Require().NoError(err)
	suite.Equal("hello frames", textPost.Text)
	suite.Equal("Alice", textPost.UserName)
	suite.Empty(textPost.ImageURL)

	imagePost, err := c.CreatePost(suite.ctx, CreatePostRequest{Image: pngBytes, Filename: "sunset.png"})
	suite.Require().NoError(err)
	suite.Equal("https://cdn.test/"+reg.User.ID+"/sunset.png", imagePost.ImageURL)

	_, err = c.CreatePost(suite.ctx, CreatePostRequest{Text: "   "})
	suite.True(IsValidation(err))

	feed, err := c.ListPosts(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(feed, 2)

	mine, err := c.ListUserPosts(suite.ctx, reg.User.ID)
	suite.Require().NoError(err)
	suite.Len(mine, 2)

	got, err := c.GetPost(suite.ctx, textPost.ID)
	suite.Require().NoError(err)
	suite.Equal(textPost.ID, got.ID)

	_, err = c.GetPost(suite.ctx, "missing")
	suite.True(IsNotFound(err))
}

func (suite *ClientTestSuite) TestLikes() {
	alice, _ := suite.signup("alice@example.com", "Alice")
	bob, _ := suite.signup("bob@example.com", "Bob")

	post, err := alice.CreatePost(suite.ctx, CreatePostRequest{Text: "like me"})
	suite.Require().NoError(err)

	suite.Require().NoError(alice.SetLike(suite.ctx, post.ID))
	suite.Require().NoError(alice.SetLike(suite.ctx, post.ID))
	suite.Require().NoError(bob.SetLike(suite.ctx, post.ID))

	count, err := alice.CountLikes(suite.ctx, post.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	liked, err := bob.IsLiked(suite.ctx, post.ID)
	suite.Require().NoError(err)
	suite.True(liked)

	suite.Require().NoError(bob.DeleteLike(suite.ctx, post.ID))
	suite.Require().NoError(bob.DeleteLike(suite.ctx, post.ID))

	liked, err = bob.IsLiked(suite.ctx, post.ID)
	suite.Require().NoError(err)
	suite.False(liked)

	count, err = bob.CountLikes(suite.ctx, post.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *ClientTestSuite) TestComments() {
	alice, _ := suite.signup("alice@example.com", "Alice")
	post, err := alice.CreatePost(suite.ctx, CreatePostRequest{Text: "talk"})
	suite.Require().NoError(err)

	first, err := alice.CreateComment(suite.ctx, post.ID, "first")
	suite.Require().NoError(err)
	suite.Equal("Alice", first.UserName)
	_, err = alice.CreateComment(suite.ctx, post.ID, "second")
	suite.Require().NoError(err)

	_, err = alice.CreateComment(suite.ctx, post.ID, "  ")
	suite.True(IsValidation(err))

	comments, err := alice.ListComments(suite.ctx, post.ID)
	suite.Require().NoError(err)
	suite.Require().Len(comments, 2)
	suite.Equal("first", comments[0].Text)
	suite.Equal("second", comments[1].Text)

	count, err := alice.CountComments(suite.ctx, post.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *ClientTestSuite) TestLogout() {
	c, _ := suite.signup("alice@example.com", "Alice")

	revoked, err := c.Logout(suite.ctx)
	suite.Require().NoError(err)
	suite.False(revoked)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestParseErrorFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	c := New(client.New(srv.URL, time.Second))
	_, err := c.ListPosts(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "UNKNOWN_ERROR", apiErr.Code)
	assert.Equal(t, "upstream down", apiErr.Message)
	assert.True(t, IsServerError(err))
	assert.False(t, IsUnauthorized(err))
}
