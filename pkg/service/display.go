package service

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/dustin/go-humanize"
)

var now = time.Now

// AuthorLabel is the name shown on a post: the stored user name, else the
// author's email
func AuthorLabel(post api.Post) string {
	if post.UserName != "" {
		return post.UserName
	}
	return post.UserEmail
}

// DisplayName is the display name, else the local part of the email, else
// "User"
func DisplayName(user *api.User) string {
	if user == nil {
		return "User"
	}
	if name := strings.TrimSpace(user.DisplayName); name != "" {
		return name
	}
	if local, _, _ := strings.Cut(user.Email, "@"); local != "" {
		return local
	}
	return "User"
}

// Initial is the uppercased first letter of name, used as an avatar
// placeholder
func Initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// TimeAgo renders t relative to now, e.g. "3 minutes ago". A zero time reads
// as "now".
func TimeAgo(t time.Time) string {
	ref := now()
	if t.IsZero() {
		t = ref
	}
	return humanize.RelTime(t, ref, "ago", "from now")
}
