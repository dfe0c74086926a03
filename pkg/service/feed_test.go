package service

import (
	"context"
	"testing"
	"time"

	"github.com/Jaymi-01/framez/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalLikes(t *testing.T) {
	backend := newFakeBackend(alice)
	p1 := backend.addPost("alice", "one", now())
	p2 := backend.addPost("alice", "two", now())
	other := backend.addPost("bob", "not mine", now())
	backend.addLike(p1.ID, "bob")
	backend.addLike(p1.ID, "carol")
	backend.addLike(p2.ID, "bob")
	backend.addLike(other.ID, "alice")

	total, err := New(backend).TotalLikes(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, 2, backend.callCount("CountLikes"))
}

func TestTotalLikesWithoutPosts(t *testing.T) {
	backend := newFakeBackend(alice)

	total, err := New(backend).TotalLikes(context.Background(), "alice")
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, backend.callCount("CountLikes"))
}

func TestTotalLikesFirstErrorAborts(t *testing.T) {
	backend := newFakeBackend(alice)
	backend.addPost("alice", "one", now())
	backend.addPost("alice", "two", now())
	backend.fail("CountLikes", errBackend)

	_, err := New(backend).TotalLikes(context.Background(), "alice")
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, 1, backend.callCount("CountLikes"))
}

func TestLoadFeed(t *testing.T) {
	backend := newFakeBackend(alice)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	backend.addPost("bob", "older", base)
	backend.addPost("alice", "newer", base.Add(time.Hour))

	posts, err := New(backend).LoadFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Text)

	backend.fail("ListPosts", errBackend)
	_, err = New(backend).LoadFeed(context.Background())
	assert.ErrorIs(t, err, errBackend)
}

func TestLoadProfile(t *testing.T) {
	backend := newFakeBackend(alice)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	first := backend.addPost("alice", "first", base)
	backend.addPost("alice", "third", base.Add(2*time.Hour))
	backend.addPost("alice", "second", base.Add(time.Hour))
	backend.addLike(first.ID, "bob")
	backend.addLike(first.ID, "carol")

	profile, err := New(backend).LoadProfile(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, profile.Posts, 3)
	assert.Equal(t, "third", profile.Posts[0].Text)
	assert.Equal(t, "second", profile.Posts[1].Text)
	assert.Equal(t, "first", profile.Posts[2].Text)
	assert.Equal(t, int64(2), profile.TotalLikes)
}

func TestLoadProfileFailure(t *testing.T) {
	backend := newFakeBackend(alice)
	backend.fail("ListUserPosts", errBackend)

	_, err := New(backend).LoadProfile(context.Background(), "alice")
	assert.ErrorIs(t, err, errBackend)
}

func TestSortNewestFirstZeroTimestampIsNow(t *testing.T) {
	posts := []api.Post{
		{ID: "old", CreatedAt: time.Now().Add(-time.Hour)},
		{ID: "pending"},
	}
	SortNewestFirst(posts)
	assert.Equal(t, "pending", posts[0].ID)
}
