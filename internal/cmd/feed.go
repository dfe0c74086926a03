package cmd

import (
	"context"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/Jaymi-01/framez/pkg/logger"
	"github.com/Jaymi-01/framez/pkg/service"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// statsConcurrency caps how many cards load at once
const statsConcurrency = 4

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show every frame, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireSession()
		if err != nil {
			return err
		}

		posts, err := s.svc.LoadFeed(cmd.Context())
		if err != nil {
			return wrapAuthError(err)
		}
		return renderPosts(loadCards(cmd.Context(), s, posts))
	},
}

// loadCards refreshes a card per post. A card whose stats fail to load is
// still shown, flagged with the error.
func loadCards(ctx context.Context, s *session, posts []api.Post) []postView {
	user := s.user()
	cards := make([]*service.PostCard, len(posts))
	errs := make([]error, len(posts))

	var g errgroup.Group
	g.SetLimit(statsConcurrency)
	for i, post := range posts {
		cards[i] = s.svc.NewPostCard(user, post)
		g.Go(func() error {
			errs[i] = cards[i].Refresh(ctx)
			if errs[i] != nil {
				logger.Warn("Failed to load stats", "post_id", post.ID, "error", errs[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	views := make([]postView, len(posts))
	for i, card := range cards {
		views[i] = newPostView(card, errs[i])
	}
	return views
}
