package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jaymi-01/framez/internal/auth"
	"github.com/Jaymi-01/framez/internal/database"
	"github.com/Jaymi-01/framez/internal/models"
	"github.com/Jaymi-01/framez/internal/repository"
	"github.com/Jaymi-01/framez/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fakeUploader struct {
	uploads int
	err     error
}

func (f *fakeUploader) Name() string { return "fake" }

func (f *fakeUploader) UploadImage(_ context.Context, data []byte, userID, filename string) (*storage.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.uploads++
	return &storage.UploadResult{URL: "https://cdn.test/" + userID + "/" + filename, Size: int64(len(data))}, nil
}

type session struct {
	token string
	user  *models.User
}

// HandlersTestSuite runs the full /api/v1 surface against in-memory SQLite
type HandlersTestSuite struct {
	suite.Suite
	db          *gorm.DB
	router      *gin.Engine
	handlers    *Handlers
	authService *auth.Service
	uploader    *fakeUploader
	revoker     *memoryRevoker
}

type memoryRevoker struct {
	revoked map[string]bool
}

func (m *memoryRevoker) RevokeToken(_ context.Context, id string, _ time.Duration) error {
	m.revoked[id] = true
	return nil
}

func (m *memoryRevoker) IsTokenRevoked(_ context.Context, id string) (bool, error) {
	return m.revoked[id], nil
}

func (suite *HandlersTestSuite) SetupTest() {
	db, err := database.OpenInMemory()
	require.NoError(suite.T(), err)
	suite.db = db

	suite.authService = auth.NewService(repository.NewUserRepository(db), []byte("test_jwt_secret_key"), time.Hour)
	suite.revoker = &memoryRevoker{revoked: map[string]bool{}}
	suite.authService.SetRevoker(suite.revoker)

	suite.handlers = NewHandlers(
		repository.NewPostRepository(db),
		repository.NewLikeRepository(db),
		repository.NewCommentRepository(db),
	)
	suite.uploader = &fakeUploader{}
	suite.handlers.SetMediaService(storage.NewService(suite.uploader, 1024))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	RegisterRoutes(suite.router, suite.handlers, NewAuthHandlers(suite.authService, []string{"https://a/1.png", "https://a/2.png"}))
}

func (suite *HandlersTestSuite) TearDownTest() {
	if sqlDB, err := suite.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func (suite *HandlersTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *HandlersTestSuite) signup(email, name string) session {
	w := suite.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": email, "password": "secret123", "display_name": name,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp auth.AuthResponse
	suite.decode(w, &resp)
	return session{token: resp.Token, user: resp.User}
}

func (suite *HandlersTestSuite) createPost(s session, text string) models.Post {
	w := suite.do(http.MethodPost, "/api/v1/posts", s.token, map[string]string{"text": text})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var post models.Post
	suite.decode(w, &post)
	return post
}

func (suite *HandlersTestSuite) count(path, token string) int64 {
	w := suite.do(http.MethodGet, path, token, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Count int64 `json:"count"`
	}
	suite.decode(w, &body)
	return body.Count
}

func (suite *HandlersTestSuite) TestAuthFlow() {
	ada := suite.signup("ada@example.com", "Ada")

	w := suite.do(http.MethodGet, "/api/v1/auth/me", ada.token, nil)
	suite.Equal(http.StatusOK, w.Code)
	var me models.User
	suite.decode(w, &me)
	suite.Equal("ada@example.com", me.Email)
	suite.NotContains(w.Body.String(), "password")

	w = suite.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "ADA@example.com", "password": "secret123"})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "ada@example.com", "password": "nope"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{"email": "ada@example.com", "password": "secret123", "display_name": "Ada"})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{"email": "x@example.com", "password": "123", "display_name": "Xavier"})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(w.Body.String(), `"field":"password"`)

	w = suite.do(http.MethodPost, "/api/v1/auth/logout", ada.token, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"revoked":true`)

	w = suite.do(http.MethodGet, "/api/v1/auth/me", ada.token, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestProtectedRoutesRequireAuth() {
	for _, path := range []string{"/api/v1/posts", "/api/v1/users/me", "/api/v1/profile-pictures"} {
		w := suite.do(http.MethodGet, path, "", nil)
		suite.Equal(http.StatusUnauthorized, w.Code, path)
	}
}

func (suite *HandlersTestSuite) TestCreatePostJSON() {
	ada := suite.signup("ada@example.com", "Ada")

	post := suite.createPost(ada, "  hello frames  ")
	suite.Equal("hello frames", post.Text)
	suite.Equal("Ada", post.UserName)
	suite.Equal("ada@example.com", post.UserEmail)
	suite.Equal(ada.user.ID, post.UserID)
	suite.Empty(post.ImageURL)
	suite.False(post.CreatedAt.IsZero())

	w := suite.do(http.MethodGet, "/api/v1/posts/"+post.ID, ada.token, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/posts/missing", ada.token, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestCreatePostRejectsEmpty() {
	ada := suite.signup("ada@example.com", "Ada")

	w := suite.do(http.MethodPost, "/api/v1/posts", ada.token, map[string]string{"text": "   "})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(w.Body.String(), EmptyPostMessage)
}

func (suite *HandlersTestSuite) TestCreatePostWithDataURI() {
	ada := suite.signup("ada@example.com", "Ada")
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader)

	w := suite.do(http.MethodPost, "/api/v1/posts", ada.token, map[string]string{"image_data": uri})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var post models.Post
	suite.decode(w, &post)
	suite.Equal("https://cdn.test/"+ada.user.ID+"/frame.png", post.ImageURL)
	suite.Empty(post.Text)
	suite.Equal(1, suite.uploader.uploads)

	w = suite.do(http.MethodPost, "/api/v1/posts", ada.token, map[string]string{"image_data": "data:text/plain;base64,aGk="})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlersTestSuite) TestCreatePostMultipart() {
	ada := suite.signup("ada@example.com", "Ada")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	suite.Require().NoError(writer.WriteField("text", "sunset"))
	part, err := writer.CreateFormFile("image", "sunset.png")
	suite.Require().NoError(err)
	_, err = part.Write(pngHeader)
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+ada.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var post models.Post
	suite.decode(w, &post)
	suite.Equal("sunset", post.Text)
	suite.Equal("https://cdn.test/"+ada.user.ID+"/sunset.png", post.ImageURL)
}

func (suite *HandlersTestSuite) TestCreatePostUploadFailure() {
	ada := suite.signup("ada@example.com", "Ada")
	suite.uploader.err = errors.New("preset disabled")
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader)

	w := suite.do(http.MethodPost, "/api/v1/posts", ada.token, map[string]string{"text": "hi", "image_data": uri})
	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Contains(w.Body.String(), "failed to upload image: preset disabled")

	// the post is not written when the upload fails
	w = suite.do(http.MethodGet, "/api/v1/users/"+ada.user.ID+"/posts", ada.token, nil)
	suite.JSONEq(`{"posts":[]}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestCreatePostTooLarge() {
	ada := suite.signup("ada@example.com", "Ada")
	big := append(append([]byte{}, pngHeader...), make([]byte, 2048)...)
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(big)

	w := suite.do(http.MethodPost, "/api/v1/posts", ada.token, map[string]string{"image_data": uri})
	suite.Equal(http.StatusRequestEntityTooLarge, w.Code)
}

func (suite *HandlersTestSuite) TestCreatePostOversizedBodyStopsEarly() {
	ada := suite.signup("ada@example.com", "Ada")
	big := append(append([]byte{}, pngHeader...), make([]byte, 32<<10)...)
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(big)

	w := suite.do(http.MethodPost, "/api/v1/posts", ada.token, map[string]string{"image_data": uri})
	suite.Equal(http.StatusRequestEntityTooLarge, w.Code, w.Body.String())
	suite.Zero(suite.uploader.uploads)
}

func (suite *HandlersTestSuite) TestCreatePostWithoutMediaService() {
	ada := suite.signup("ada@example.com", "Ada")

	suite.handlers = NewHandlers(
		repository.NewPostRepository(suite.db),
		repository.NewLikeRepository(suite.db),
		repository.NewCommentRepository(suite.db),
	)
	suite.router = gin.New()
	RegisterRoutes(suite.router, suite.handlers, NewAuthHandlers(suite.authService, nil))

	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader)
	w := suite.do(http.MethodPost, "/api/v1/posts", ada.token, map[string]string{"text": "hi", "image_data": uri})
	suite.Equal(http.StatusServiceUnavailable, w.Code, w.Body.String())

	// text-only posts still work
	post := suite.createPost(ada, "no image")
	suite.Empty(post.ImageURL)

	w = suite.do(http.MethodGet, "/api/v1/users/"+ada.user.ID+"/posts", ada.token, nil)
	var posts struct {
		Posts []models.Post `json:"posts"`
	}
	suite.decode(w, &posts)
	suite.Require().Len(posts.Posts, 1)
	suite.Equal(post.ID, posts.Posts[0].ID)
}

func (suite *HandlersTestSuite) TestFeedAndUserPosts() {
	ada := suite.signup("ada@example.com", "Ada")
	bob := suite.signup("bob@example.com", "Bobby")

	first := suite.createPost(ada, "first")
	time.Sleep(5 * time.Millisecond)
	second := suite.createPost(bob, "second")

	w := suite.do(http.MethodGet, "/api/v1/posts", ada.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var feed struct {
		Posts []models.Post `json:"posts"`
	}
	suite.decode(w, &feed)
	suite.Require().Len(feed.Posts, 2)
	suite.Equal(second.ID, feed.Posts[0].ID)
	suite.Equal(first.ID, feed.Posts[1].ID)

	w = suite.do(http.MethodGet, "/api/v1/users/"+bob.user.ID+"/posts", ada.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &feed)
	suite.Require().Len(feed.Posts, 1)
	suite.Equal(second.ID, feed.Posts[0].ID)

	w = suite.do(http.MethodGet, "/api/v1/users/nobody/posts", ada.token, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"posts":[]}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestLikes() {
	ada := suite.signup("ada@example.com", "Ada")
	bob := suite.signup("bob@example.com", "Bobby")
	post := suite.createPost(ada, "like me")
	likePath := "/api/v1/posts/" + post.ID + "/like"
	countPath := "/api/v1/posts/" + post.ID + "/likes/count"

	suite.Zero(suite.count(countPath, ada.token))

	suite.Equal(http.StatusOK, suite.do(http.MethodPut, likePath, ada.token, nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodPut, likePath, ada.token, nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodPut, likePath, bob.token, nil).Code)
	suite.Equal(int64(2), suite.count(countPath, ada.token))

	w := suite.do(http.MethodGet, likePath, bob.token, nil)
	suite.JSONEq(`{"liked":true}`, w.Body.String())

	suite.Equal(http.StatusOK, suite.do(http.MethodDelete, likePath, bob.token, nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodDelete, likePath, bob.token, nil).Code)
	suite.Equal(int64(1), suite.count(countPath, ada.token))

	w = suite.do(http.MethodGet, likePath, bob.token, nil)
	suite.JSONEq(`{"liked":false}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestComments() {
	ada := suite.signup("ada@example.com", "Ada")
	bob := suite.signup("bob@example.com", "Bobby")
	post := suite.createPost(ada, "discuss")
	path := "/api/v1/posts/" + post.ID + "/comments"

	w := suite.do(http.MethodPost, path, bob.token, map[string]string{"text": "  nice one  "})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var comment models.Comment
	suite.decode(w, &comment)
	suite.Equal("nice one", comment.Text)
	suite.Equal("Bobby", comment.UserName)
	suite.Equal(bob.user.ID, comment.UserID)

	time.Sleep(5 * time.Millisecond)
	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, path, ada.token, map[string]string{"text": "thanks"}).Code)

	w = suite.do(http.MethodPost, path, ada.token, map[string]string{"text": "   "})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.do(http.MethodGet, path, ada.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list struct {
		Comments []models.Comment `json:"comments"`
	}
	suite.decode(w, &list)
	suite.Require().Len(list.Comments, 2)
	suite.Equal("nice one", list.Comments[0].Text)
	suite.Equal("thanks", list.Comments[1].Text)

	suite.Equal(int64(2), suite.count(path+"/count", ada.token))
}

func (suite *HandlersTestSuite) TestProfile() {
	ada := suite.signup("ada@example.com", "Ada")

	w := suite.do(http.MethodPatch, "/api/v1/users/me", ada.token, map[string]string{"photo_url": "https://a/2.png"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var user models.User
	suite.decode(w, &user)
	suite.Equal("https://a/2.png", user.PhotoURL)
	suite.Equal("Ada", user.DisplayName)

	w = suite.do(http.MethodGet, "/api/v1/users/me", ada.token, nil)
	suite.decode(w, &user)
	suite.Equal("https://a/2.png", user.PhotoURL)

	w = suite.do(http.MethodGet, "/api/v1/users/"+ada.user.ID, ada.token, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/users/ghost", ada.token, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPatch, "/api/v1/users/me", ada.token, map[string]string{"display_name": "A"})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/profile-pictures", ada.token, nil)
	suite.JSONEq(`{"pictures":["https://a/1.png","https://a/2.png"]}`, w.Body.String())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
