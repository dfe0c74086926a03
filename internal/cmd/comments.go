package cmd

import (
	"strings"

	"github.com/Jaymi-01/framez/pkg/output"
	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Comment commands",
}

var commentAddCmd = &cobra.Command{
	Use:   "add <post-id> <text...>",
	Short: "Comment on a frame",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireSession()
		if err != nil {
			return err
		}

		text := strings.Join(args[1:], " ")
		if strings.TrimSpace(text) == "" {
			output.PrintWarning("empty comment, nothing sent")
			return nil
		}

		thread := s.svc.NewCommentThread(s.user(), args[0], nil)
		if err := thread.Add(cmd.Context(), text); err != nil {
			return wrapAuthError(err)
		}
		return renderComments(thread.Comments())
	},
}

var commentListCmd = &cobra.Command{
	Use:   "list <post-id>",
	Short: "List the comments on a frame, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireSession()
		if err != nil {
			return err
		}

		thread := s.svc.NewCommentThread(s.user(), args[0], nil)
		if err := thread.Load(cmd.Context()); err != nil {
			return wrapAuthError(err)
		}
		return renderComments(thread.Comments())
	},
}

func init() {
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentListCmd)
}
