package cmd

import (
	"fmt"
	"strconv"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/Jaymi-01/framez/pkg/logger"
	"github.com/Jaymi-01/framez/pkg/output"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile commands",
}

var profileShowCmd = &cobra.Command{
	Use:   "show [user-id]",
	Short: "Show a profile with its frames and total likes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireSession()
		if err != nil {
			return err
		}

		var user *api.User
		if len(args) == 1 {
			user, err = s.api.GetUser(cmd.Context(), args[0])
		} else {
			user, err = s.api.Me(cmd.Context())
		}
		if err != nil {
			return wrapAuthError(err)
		}

		profile, err := s.svc.LoadProfile(cmd.Context(), user.ID)
		if err != nil {
			return wrapAuthError(err)
		}
		views := loadCards(cmd.Context(), s, profile.Posts)

		if output.GetFormat() == output.FormatJSON {
			return output.JSON(map[string]interface{}{
				"user":        user,
				"posts":       views,
				"total_likes": profile.TotalLikes,
			})
		}

		renderUser(user)
		output.Record("", []output.Field{
			{Key: "Joined", Value: humanize.Time(user.CreatedAt)},
			{Key: "Frames", Value: humanize.Comma(int64(len(profile.Posts)))},
			{Key: "Likes", Value: humanize.Comma(profile.TotalLikes)},
		})
		output.Println()
		return renderPosts(views)
	},
}

var profileAvatarsCmd = &cobra.Command{
	Use:   "avatars",
	Short: "List the available profile pictures",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireSession()
		if err != nil {
			return err
		}

		pictures, err := s.api.ProfilePictures(cmd.Context())
		if err != nil {
			return wrapAuthError(err)
		}
		if output.GetFormat() == output.FormatJSON {
			return output.JSON(pictures)
		}
		rows := make([][]string, len(pictures))
		for i, url := range pictures {
			rows[i] = []string{strconv.Itoa(i + 1), url}
		}
		output.Table([]string{"#", "URL"}, rows)
		return nil
	},
}

var profileSetPictureCmd = &cobra.Command{
	Use:   "set-picture <number|url>",
	Short: "Choose a profile picture",
	Long:  "Set your profile picture by its number in `framez profile avatars` or by URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireSession()
		if err != nil {
			return err
		}

		url, err := resolvePicture(cmd, s, args[0])
		if err != nil {
			return err
		}

		user, err := s.svc.SelectProfilePicture(cmd.Context(), s.user(), url)
		if err != nil {
			return wrapAuthError(err)
		}
		if err := s.refreshStoredUser(user); err != nil {
			logger.Warn("Failed to update stored credentials", "error", err)
		}

		output.PrintSuccess("Profile picture updated")
		renderUser(user)
		return nil
	},
}

// resolvePicture maps a 1-based index onto the preset list; anything else is
// taken as a URL
func resolvePicture(cmd *cobra.Command, s *session, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}

	pictures, err := s.api.ProfilePictures(cmd.Context())
	if err != nil {
		return "", wrapAuthError(err)
	}
	if n < 1 || n > len(pictures) {
		return "", fmt.Errorf("picture number must be between 1 and %d", len(pictures))
	}
	return pictures[n-1], nil
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileAvatarsCmd)
	profileCmd.AddCommand(profileSetPictureCmd)
}
