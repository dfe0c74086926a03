package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Jaymi-01/framez/internal/logger"
	"github.com/Jaymi-01/framez/internal/models"
	"github.com/Jaymi-01/framez/internal/repository"
	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded account
const DefaultPassword = "password123"

// Counts controls how much data SeedDev creates
type Counts struct {
	Users    int
	Posts    int
	Comments int
	Likes    int
}

// DevCounts is the default development data volume
var DevCounts = Counts{Users: 20, Posts: 80, Comments: 200, Likes: 400}

// Seeder handles database seeding operations
type Seeder struct {
	db       *gorm.DB
	users    repository.UserRepository
	posts    repository.PostRepository
	likes    repository.LikeRepository
	comments repository.CommentRepository
	pictures []string
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, pictures []string) *Seeder {
	return &Seeder{
		db:       db,
		users:    repository.NewUserRepository(db),
		posts:    repository.NewPostRepository(db),
		likes:    repository.NewLikeRepository(db),
		comments: repository.NewCommentRepository(db),
		pictures: pictures,
	}
}

// SeedDev seeds the database with random but realistic data
func (s *Seeder) SeedDev(ctx context.Context, counts Counts) error {
	logger.Log.Info("Creating users...", zap.Int("count", counts.Users))
	users, err := s.seedUsers(ctx, counts.Users)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	logger.Log.Info("Creating posts...", zap.Int("count", counts.Posts))
	posts, err := s.seedPosts(ctx, users, counts.Posts)
	if err != nil {
		return fmt.Errorf("failed to seed posts: %w", err)
	}

	logger.Log.Info("Creating comments...", zap.Int("count", counts.Comments))
	if err := s.seedComments(ctx, users, posts, counts.Comments); err != nil {
		return fmt.Errorf("failed to seed comments: %w", err)
	}

	logger.Log.Info("Creating likes...", zap.Int("count", counts.Likes))
	if err := s.seedLikes(ctx, users, posts, counts.Likes); err != nil {
		return fmt.Errorf("failed to seed likes: %w", err)
	}

	return nil
}

// SeedTest creates a small fixed data set with known accounts
func (s *Seeder) SeedTest(ctx context.Context) error {
	hash, err := hashPassword()
	if err != nil {
		return err
	}

	fixtures := []struct {
		email       string
		displayName string
	}{
		{"alice@example.com", "Alice Smith"},
		{"bob@example.com", "Bob Johnson"},
		{"charlie@example.com", ""},
	}

	var users []*models.User
	for _, f := range fixtures {
		user := &models.User{Email: f.email, DisplayName: f.displayName, PasswordHash: hash}
		if err := s.users.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("failed to create %s: %w", f.email, err)
		}
		users = append(users, user)
	}

	base := time.Now().UTC().Add(-time.Hour)
	var posts []*models.Post
	for i, user := range users {
		post := &models.Post{
			UserID:    user.ID,
			UserName:  user.AuthorName(),
			UserEmail: user.Email,
			Text:      fmt.Sprintf("Frame #%d from %s", i+1, user.AuthorName()),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.posts.CreatePost(ctx, post); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}

	// alice's frame gets a like from everyone and one comment
	for _, user := range users {
		if err := s.likes.SetLike(ctx, posts[0].ID, user.ID); err != nil {
			return err
		}
	}
	return s.comments.CreateComment(ctx, &models.Comment{
		PostID:   posts[0].ID,
		UserID:   users[1].ID,
		UserName: users[1].AuthorName(),
		Text:     "Great first frame!",
	})
}

// Clean removes all rows
func (s *Seeder) Clean() error {
	for _, table := range []string{"comments", "likes", "posts", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clean %s: %w", table, err)
		}
	}
	return nil
}

func hashPassword() (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *Seeder) seedUsers(ctx context.Context, count int) ([]*models.User, error) {
	// one hash for all seeded users keeps seeding fast
	hash, err := hashPassword()
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, count)
	seen := map[string]bool{}
	for len(users) < count {
		email := models.NormalizeEmail(gofakeit.Email())
		if seen[email] {
			continue
		}
		seen[email] = true

		user := &models.User{Email: email, PasswordHash: hash}
		// some accounts never set a display name, like a bare signup
		if rand.IntN(5) > 0 {
			user.DisplayName = gofakeit.Name()
		}
		if len(s.pictures) > 0 && rand.IntN(2) == 0 {
			user.PhotoURL = s.pictures[rand.IntN(len(s.pictures))]
		}

		if err := s.users.CreateUser(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserExists) {
				continue
			}
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedPosts(ctx context.Context, users []*models.User, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.IntN(len(users))]
		post := &models.Post{
			UserID:    author.ID,
			UserName:  author.AuthorName(),
			UserEmail: author.Email,
			CreatedAt: gofakeit.DateRange(now.AddDate(0, 0, -30), now),
		}

		switch rand.IntN(3) {
		case 0:
			post.Text = gofakeit.HipsterSentence()
		case 1:
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
		default:
			post.Text = gofakeit.HipsterSentence()
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
		}

		if err := s.posts.CreatePost(ctx, post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Seeder) seedComments(ctx context.Context, users []*models.User, posts []*models.Post, count int) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := 0; i < count; i++ {
		author := users[rand.IntN(len(users))]
		post := posts[rand.IntN(len(posts))]
		comment := &models.Comment{
			PostID:    post.ID,
			UserID:    author.ID,
			UserName:  author.AuthorName(),
			Text:      gofakeit.HipsterSentence(),
			CreatedAt: gofakeit.DateRange(post.CreatedAt, now),
		}
		if err := s.comments.CreateComment(ctx, comment); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedLikes(ctx context.Context, users []*models.User, posts []*models.Post, count int) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	// duplicates collapse onto the same (post, user) row
	for i := 0; i < count; i++ {
		user := users[rand.IntN(len(users))]
		post := posts[rand.IntN(len(posts))]
		if err := s.likes.SetLike(ctx, post.ID, user.ID); err != nil {
			return err
		}
	}
	return nil
}
