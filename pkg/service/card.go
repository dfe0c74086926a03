package service

import (
	"context"
	"sync"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/Jaymi-01/framez/pkg/logger"
)

// PostCard holds the view state of one post for one viewer: liked flag,
// like count and comment count. It is safe for concurrent use.
type PostCard struct {
	svc  *Service
	user *api.User
	post api.Post

	mu      sync.Mutex
	stats   PostStats
	loading bool
}

// NewPostCard starts in the loading state. user may be nil.
func (s *Service) NewPostCard(user *api.User, post api.Post) *PostCard {
	return &PostCard{svc: s, user: user, post: post, loading: true}
}

func (c *PostCard) Post() api.Post {
	return c.post
}

func (c *PostCard) Stats() PostStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Loading is true until the first Refresh with a user finishes, whether it
// succeeded or not
func (c *PostCard) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Refresh reloads the stats. On failure the previous stats are kept.
func (c *PostCard) Refresh(ctx context.Context) error {
	if c.user == nil {
		return nil
	}

	stats, err := c.svc.LoadPostStats(ctx, c.user.ID, c.post.ID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		return err
	}
	c.stats = *stats
	return nil
}

// ToggleLike flips the liked flag optimistically, writes it, then replaces
// the like count with a fresh count. On failure both fields go back to their
// values from before the toggle. Ignored without a user or while loading.
func (c *PostCard) ToggleLike(ctx context.Context) error {
	if c.user == nil {
		return nil
	}

	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil
	}
	prev := c.stats
	c.stats.IsLiked = !prev.IsLiked
	if c.stats.IsLiked {
		c.stats.LikeCount = prev.LikeCount + 1
	} else {
		c.stats.LikeCount = max(0, prev.LikeCount-1)
	}
	c.mu.Unlock()

	count, err := c.writeLike(ctx, prev.IsLiked)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		logger.Warn("Failed to toggle like", "post_id", c.post.ID, "error", err)
		c.stats.IsLiked = prev.IsLiked
		c.stats.LikeCount = prev.LikeCount
		return err
	}
	c.stats.LikeCount = count
	return nil
}

func (c *PostCard) writeLike(ctx context.Context, wasLiked bool) (int64, error) {
	if err := c.svc.toggleLike(ctx, c.post.ID, wasLiked); err != nil {
		return 0, err
	}
	return c.svc.backend.CountLikes(ctx, c.post.ID)
}

// SetCommentCount lets a comment thread report its size back to the card
func (c *PostCard) SetCommentCount(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.CommentCount = int64(n)
}
