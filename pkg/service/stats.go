package service

import (
	"context"

	"github.com/Jaymi-01/framez/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// PostStats is the per-viewer state of one post
type PostStats struct {
	IsLiked      bool
	LikeCount    int64
	CommentCount int64
}

// LoadPostStats runs the liked check and both counts concurrently. Any
// failure fails the whole load. Returns nil without querying when there is
// no user.
func (s *Service) LoadPostStats(ctx context.Context, userID, postID string) (*PostStats, error) {
	if userID == "" {
		return nil, nil
	}

	var stats PostStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		liked, err := s.backend.IsLiked(gctx, postID)
		stats.IsLiked = liked
		return err
	})
	g.Go(func() error {
		count, err := s.backend.CountLikes(gctx, postID)
		stats.LikeCount = count
		return err
	})
	g.Go(func() error {
		count, err := s.backend.CountComments(gctx, postID)
		stats.CommentCount = count
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Warn("Failed to load post stats", "post_id", postID, "error", err)
		return nil, err
	}
	return &stats, nil
}
