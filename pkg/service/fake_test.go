package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Jaymi-01/framez/pkg/api"
)

var errBackend = errors.New("backend unavailable")

type like struct{ postID, userID string }

// fakeBackend is an in-memory Backend acting as one session user. Each
// method can be failed by name through failOn.
type fakeBackend struct {
	mu       sync.Mutex
	me       api.User
	posts    []api.Post
	likes    map[like]bool
	comments map[string][]api.Comment
	failOn   map[string]error
	calls    map[string]int
	seq      int

	// onEnter runs before each call, outside the lock
	onEnter func(method string)
}

func newFakeBackend(me api.User) *fakeBackend {
	return &fakeBackend{
		me:       me,
		likes:    map[like]bool{},
		comments: map[string][]api.Comment{},
		failOn:   map[string]error{},
		calls:    map[string]int{},
	}
}

func (f *fakeBackend) enter(method string) error {
	if f.onEnter != nil {
		f.onEnter(method)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
	return f.failOn[method]
}

func (f *fakeBackend) fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOn[method] = err
}

func (f *fakeBackend) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeBackend) addPost(userID, text string, createdAt time.Time) api.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	p := api.Post{ID: fmt.Sprintf("post-%d", f.seq), UserID: userID, Text: text, CreatedAt: createdAt}
	f.posts = append(f.posts, p)
	return p
}

func (f *fakeBackend) addLike(postID, userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.likes[like{postID, userID}] = true
}

func (f *fakeBackend) IsLiked(_ context.Context, postID string) (bool, error) {
	if err := f.enter("IsLiked"); err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[like{postID, f.me.ID}], nil
}

func (f *fakeBackend) SetLike(_ context.Context, postID string) error {
	if err := f.enter("SetLike"); err != nil {
		return err
	}
	f.addLike(postID, f.me.ID)
	return nil
}

func (f *fakeBackend) DeleteLike(_ context.Context, postID string) error {
	if err := f.enter("DeleteLike"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.likes, like{postID, f.me.ID})
	return nil
}

func (f *fakeBackend) CountLikes(_ context.Context, postID string) (int64, error) {
	if err := f.enter("CountLikes"); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for l := range f.likes {
		if l.postID == postID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBackend) ListComments(_ context.Context, postID string) ([]api.Comment, error) {
	if err := f.enter("ListComments"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.Comment(nil), f.comments[postID]...), nil
}

func (f *fakeBackend) CreateComment(_ context.Context, postID, text string) (*api.Comment, error) {
	if err := f.enter("CreateComment"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	name := f.me.DisplayName
	if name == "" {
		name = f.me.Email
	}
	c := api.Comment{ID: fmt.Sprintf("comment-%d", f.seq), PostID: postID, UserID: f.me.ID, UserName: name, Text: text}
	f.comments[postID] = append(f.comments[postID], c)
	return &c, nil
}

func (f *fakeBackend) CountComments(_ context.Context, postID string) (int64, error) {
	if err := f.enter("CountComments"); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.comments[postID])), nil
}

func (f *fakeBackend) ListPosts(_ context.Context) ([]api.Post, error) {
	if err := f.enter("ListPosts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	posts := append([]api.Post(nil), f.posts...)
	SortNewestFirst(posts)
	return posts, nil
}

func (f *fakeBackend) ListUserPosts(_ context.Context, userID string) ([]api.Post, error) {
	if err := f.enter("ListUserPosts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var posts []api.Post
	for _, p := range f.posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (f *fakeBackend) CreatePost(ctx context.Context, req api.CreatePostRequest) (*api.Post, error) {
	if err := f.enter("CreatePost"); err != nil {
		return nil, err
	}
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("create post called without a deadline")
	}
	p := f.addPost(f.me.ID, req.Text, now())
	if len(req.Image) > 0 {
		p.ImageURL = "https://cdn.test/" + req.Filename
	}
	return &p, nil
}

func (f *fakeBackend) Me(_ context.Context) (*api.User, error) {
	if err := f.enter("Me"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.me
	return &u, nil
}

func (f *fakeBackend) UpdateProfile(_ context.Context, update api.ProfileUpdate) (*api.User, error) {
	if err := f.enter("UpdateProfile"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if update.DisplayName != nil {
		f.me.DisplayName = *update.DisplayName
	}
	if update.PhotoURL != nil {
		f.me.PhotoURL = *update.PhotoURL
	}
	u := f.me
	return &u, nil
}
