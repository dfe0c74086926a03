package service

import (
	"context"
	"strings"
	"sync"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/Jaymi-01/framez/pkg/logger"
)

// CommentThread is the full comment list of one post
type CommentThread struct {
	svc     *Service
	user    *api.User
	postID  string
	onCount func(int)

	mu       sync.Mutex
	comments []api.Comment
	loading  bool
}

// NewCommentThread creates a thread for postID. onCount, if set, receives
// the comment total after every successful load.
func (s *Service) NewCommentThread(user *api.User, postID string, onCount func(int)) *CommentThread {
	return &CommentThread{svc: s, user: user, postID: postID, onCount: onCount}
}

func (t *CommentThread) Comments() []api.Comment {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]api.Comment(nil), t.comments...)
}

func (t *CommentThread) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Load fetches every comment, oldest first
func (t *CommentThread) Load(ctx context.Context) error {
	t.mu.Lock()
	t.loading = true
	t.mu.Unlock()

	comments, err := t.svc.backend.ListComments(ctx, t.postID)

	t.mu.Lock()
	t.loading = false
	if err != nil {
		t.mu.Unlock()
		logger.Warn("Failed to load comments", "post_id", t.postID, "error", err)
		return err
	}
	t.comments = comments
	t.mu.Unlock()

	if t.onCount != nil {
		t.onCount(len(comments))
	}
	return nil
}

// Add posts trimmed text as the session user and reloads the thread, also
// when the post failed. A missing user or blank text is a no-op.
func (t *CommentThread) Add(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if t.user == nil || text == "" {
		return nil
	}

	if _, err := t.svc.backend.CreateComment(ctx, t.postID, text); err != nil {
		logger.Warn("Comment submission failed", "post_id", t.postID, "error", err)
		_ = t.Load(ctx)
		return err
	}
	return t.Load(ctx)
}
