package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/Jaymi-01/framez/pkg/output"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	postText  string
	postImage string
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post commands",
	Long:  "Create, view and like frames",
}

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Share a new frame",
	Long:  "Share a frame with text, an image, or both",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireSession()
		if err != nil {
			return err
		}

		var image []byte
		var filename string
		if postImage != "" {
			image, err = os.ReadFile(postImage)
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}
			filename = filepath.Base(postImage)
			if output.GetFormat() != output.FormatJSON {
				output.PrintInfo("Uploading %s (%s)...", filename, humanize.Bytes(uint64(len(image))))
			}
		}

		post, err := s.svc.CreatePost(cmd.Context(), s.user(), postText, image, filename)
		if err != nil {
			return wrapAuthError(err)
		}

		if output.GetFormat() == output.FormatJSON {
			return output.JSON(post)
		}
		output.PrintSuccess("Frame shared! id: %s", post.ID)
		return nil
	},
}

var postShowCmd = &cobra.Command{
	Use:   "show <post-id>",
	Short: "Show a frame with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireSession()
		if err != nil {
			return err
		}

		post, err := s.api.GetPost(cmd.Context(), args[0])
		if err != nil {
			return wrapAuthError(err)
		}

		card := s.svc.NewPostCard(s.user(), *post)
		thread := s.svc.NewCommentThread(s.user(), post.ID, card.SetCommentCount)
		statsErr := card.Refresh(cmd.Context())
		if err := thread.Load(cmd.Context()); err != nil {
			return err
		}

		view := newPostView(card, statsErr)
		if output.GetFormat() == output.FormatJSON {
			return output.JSON(struct {
				postView
				Comments []api.Comment `json:"comments"`
			}{view, thread.Comments()})
		}
		renderCard(view)
		return renderComments(thread.Comments())
	},
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a frame",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setLiked(cmd, args[0], true)
	},
}

var postUnlikeCmd = &cobra.Command{
	Use:   "unlike <post-id>",
	Short: "Remove your like from a frame",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setLiked(cmd, args[0], false)
	},
}

// setLiked loads the card and toggles it only when it is not already in the
// wanted state
func setLiked(cmd *cobra.Command, postID string, want bool) error {
	s, err := requireSession()
	if err != nil {
		return err
	}

	card := s.svc.NewPostCard(s.user(), api.Post{ID: postID})
	if err := card.Refresh(cmd.Context()); err != nil {
		return wrapAuthError(err)
	}

	if card.Stats().IsLiked != want {
		if err := card.ToggleLike(cmd.Context()); err != nil {
			return wrapAuthError(err)
		}
	}

	stats := card.Stats()
	if output.GetFormat() == output.FormatJSON {
		return output.JSON(map[string]interface{}{"post_id": postID, "liked": stats.IsLiked, "like_count": stats.LikeCount})
	}
	output.Printf("%s %d\n", heart(stats.IsLiked), stats.LikeCount)
	return nil
}

func init() {
	postCreateCmd.Flags().StringVarP(&postText, "text", "t", "", "Text of the frame")
	postCreateCmd.Flags().StringVarP(&postImage, "image", "i", "", "Path to an image to attach")

	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postLikeCmd)
	postCmd.AddCommand(postUnlikeCmd)
}
