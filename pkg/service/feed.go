package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/Jaymi-01/framez/pkg/logger"
)

// Profile is a user's own posts with their combined like count
type Profile struct {
	Posts      []api.Post
	TotalLikes int64
}

// LoadFeed returns every post, newest first
func (s *Service) LoadFeed(ctx context.Context) ([]api.Post, error) {
	posts, err := s.backend.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}
	return posts, nil
}

// TotalLikes sums the like counts of every post by userID, one count query
// per post. The first failed query aborts the sum.
func (s *Service) TotalLikes(ctx context.Context, userID string) (int64, error) {
	posts, err := s.backend.ListUserPosts(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list posts: %w", err)
	}
	return s.sumLikes(ctx, posts)
}

func (s *Service) sumLikes(ctx context.Context, posts []api.Post) (int64, error) {
	var total int64
	for _, post := range posts {
		count, err := s.backend.CountLikes(ctx, post.ID)
		if err != nil {
			return 0, fmt.Errorf("failed to count likes for post %s: %w", post.ID, err)
		}
		total += count
	}
	return total, nil
}

// LoadProfile lists a user's posts newest first and totals their likes
func (s *Service) LoadProfile(ctx context.Context, userID string) (*Profile, error) {
	posts, err := s.backend.ListUserPosts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile posts: %w", err)
	}
	SortNewestFirst(posts)

	total, err := s.sumLikes(ctx, posts)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded profile", "user_id", userID, "posts", len(posts), "likes", total)
	return &Profile{Posts: posts, TotalLikes: total}, nil
}

// SortNewestFirst orders posts by CreatedAt descending. Posts without a
// timestamp count as just created.
func SortNewestFirst(posts []api.Post) {
	ref := now()
	key := func(p api.Post) time.Time {
		if p.CreatedAt.IsZero() {
			return ref
		}
		return p.CreatedAt
	}
	slices.SortStableFunc(posts, func(a, b api.Post) int {
		return key(b).Compare(key(a))
	})
}
