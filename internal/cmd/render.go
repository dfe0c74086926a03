package cmd

import (
	"fmt"
	"strings"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/Jaymi-01/framez/pkg/output"
	"github.com/Jaymi-01/framez/pkg/service"
)

// postView is the JSON shape of a post together with the viewer's stats
type postView struct {
	api.Post
	Liked        bool   `json:"liked"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
	StatsError   string `json:"stats_error,omitempty"`
}

func newPostView(card *service.PostCard, statsErr error) postView {
	stats := card.Stats()
	v := postView{
		Post:         card.Post(),
		Liked:        stats.IsLiked,
		LikeCount:    stats.LikeCount,
		CommentCount: stats.CommentCount,
	}
	if statsErr != nil {
		v.StatsError = statsErr.Error()
	}
	return v
}

func heart(liked bool) string {
	if liked {
		return output.Red.Sprint("♥")
	}
	return "♡"
}

// renderCard prints one post in the feed layout
func renderCard(v postView) {
	output.Printf("%s  %s\n", output.Bold.Sprint(service.AuthorLabel(v.Post)), output.Faint.Sprint(service.TimeAgo(v.CreatedAt)))
	if v.ImageURL != "" {
		output.Printf("[image] %s\n", v.ImageURL)
	}
	if v.Text != "" {
		output.Println(v.Text)
	}
	if v.StatsError != "" {
		output.Printf("%s\n", output.Faint.Sprint("stats unavailable"))
	} else {
		output.Printf("%s %d   💬 %d\n", heart(v.Liked), v.LikeCount, v.CommentCount)
	}
	output.Println(output.Faint.Sprint("id: " + v.ID))
	output.Println()
}

// renderPosts prints posts in the configured format
func renderPosts(views []postView) error {
	switch output.GetFormat() {
	case output.FormatJSON:
		return output.JSON(views)
	case output.FormatTable:
		rows := make([][]string, 0, len(views))
		for _, v := range views {
			rows = append(rows, []string{
				v.ID,
				service.AuthorLabel(v.Post),
				truncate(v.Text, 40),
				fmt.Sprint(v.LikeCount),
				fmt.Sprint(v.CommentCount),
				service.TimeAgo(v.CreatedAt),
			})
		}
		output.Table([]string{"ID", "AUTHOR", "TEXT", "LIKES", "COMMENTS", "POSTED"}, rows)
		return nil
	default:
		if len(views) == 0 {
			output.Println("No frames yet.")
			return nil
		}
		for _, v := range views {
			renderCard(v)
		}
		return nil
	}
}

func renderComments(comments []api.Comment) error {
	switch output.GetFormat() {
	case output.FormatJSON:
		return output.JSON(comments)
	case output.FormatTable:
		rows := make([][]string, 0, len(comments))
		for _, c := range comments {
			rows = append(rows, []string{c.UserName, truncate(c.Text, 60), service.TimeAgo(c.CreatedAt)})
		}
		output.Table([]string{"AUTHOR", "COMMENT", "POSTED"}, rows)
		return nil
	default:
		output.Println(output.Bold.Sprintf("Comments (%d)", len(comments)))
		if len(comments) == 0 {
			output.Println("No comments yet.")
			return nil
		}
		for _, c := range comments {
			output.Printf("%s: %s %s\n", output.Bold.Sprint(c.UserName), c.Text, output.Faint.Sprint(service.TimeAgo(c.CreatedAt)))
		}
		return nil
	}
}

func renderUser(u *api.User) {
	name := service.DisplayName(u)
	fields := []output.Field{
		{Key: "Avatar", Value: avatar(u)},
		{Key: "Name", Value: name},
		{Key: "Email", Value: u.Email},
		{Key: "ID", Value: u.ID},
	}
	output.Record("", fields)
}

func avatar(u *api.User) string {
	if u.PhotoURL != "" {
		return u.PhotoURL
	}
	return "(" + service.Initial(service.DisplayName(u)) + ")"
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
