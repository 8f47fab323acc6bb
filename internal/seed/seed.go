// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"postify/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	FixtureFile string
	Password    string // login password for every seeded account
}

// Fixture is an optional YAML file of deterministic seed data, applied
// before the generated records.
type Fixture struct {
	Profiles []struct {
		Email       string `yaml:"email"`
		DisplayName string `yaml:"display_name"`
		AvatarURL   string `yaml:"avatar_url"`
	} `yaml:"profiles"`
	Posts []struct {
		Title       string `yaml:"title"`
		Text        string `yaml:"text"`
		ImageURL    string `yaml:"image_url"`
		AuthorEmail string `yaml:"author_email"`
		Private     bool   `yaml:"private"`
	} `yaml:"posts"`
}

// Run populates the database with profiles, credentials, and posts.
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := db.Exec("DELETE FROM posts").Error; err != nil {
			return fmt.Errorf("cleaning posts: %w", err)
		}
		if err := db.Exec("DELETE FROM profiles").Error; err != nil {
			return fmt.Errorf("cleaning profiles: %w", err)
		}
		if err := db.Exec("DELETE FROM credentials").Error; err != nil {
			return fmt.Errorf("cleaning credentials: %w", err)
		}
		log.Println("Cleaned existing seed data")
	}

	password := opts.Password
	if password == "" {
		password = "password123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	if opts.FixtureFile != "" {
		if err := applyFixture(db, opts.FixtureFile, string(hash)); err != nil {
			return err
		}
	}

	emails := make([]string, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		email := strings.ToLower(gofakeit.Email())
		profile := models.Profile{
			Email:       email,
			DisplayName: gofakeit.Name(),
			AvatarURL:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", email),
		}
		if err := db.Create(&profile).Error; err != nil {
			// Faker can repeat emails on large runs; skip duplicates.
			continue
		}
		cred := models.Credential{Email: email, PasswordHash: string(hash)}
		if err := db.Create(&cred).Error; err != nil {
			return fmt.Errorf("seeding credential for %s: %w", email, err)
		}
		emails = append(emails, email)
	}
	log.Printf("Seeded %d profiles", len(emails))

	if len(emails) == 0 {
		return nil
	}

	created := 0
	for i := 0; i < opts.NumPosts; i++ {
		post := models.Post{
			ClientID:    gofakeit.UUID(),
			Title:       gofakeit.Sentence(4),
			Text:        gofakeit.Paragraph(1, 3, 12, " "),
			AuthorEmail: emails[gofakeit.Number(0, len(emails)-1)],
			Private:     gofakeit.Number(0, 4) == 0, // roughly one in five private
			CreatedAt:   gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now()),
		}
		if gofakeit.Bool() {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%d/400", i)
		}
		if err := db.Create(&post).Error; err != nil {
			return fmt.Errorf("seeding post: %w", err)
		}
		created++
	}
	log.Printf("Seeded %d posts", created)

	return nil
}

func applyFixture(db *gorm.DB, path, passwordHash string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading fixture file: %w", err)
	}
	var fx Fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return fmt.Errorf("parsing fixture file: %w", err)
	}

	for _, p := range fx.Profiles {
		profile := models.Profile{
			Email:       p.Email,
			DisplayName: p.DisplayName,
			AvatarURL:   p.AvatarURL,
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("fixture profile %s: %w", p.Email, err)
		}
		cred := models.Credential{Email: p.Email, PasswordHash: passwordHash}
		if err := db.Create(&cred).Error; err != nil {
			return fmt.Errorf("fixture credential %s: %w", p.Email, err)
		}
	}
	for _, p := range fx.Posts {
		post := models.Post{
			ClientID:    gofakeit.UUID(),
			Title:       p.Title,
			Text:        p.Text,
			ImageURL:    p.ImageURL,
			AuthorEmail: p.AuthorEmail,
			Private:     p.Private,
		}
		if err := db.Create(&post).Error; err != nil {
			return fmt.Errorf("fixture post %q: %w", p.Title, err)
		}
	}
	log.Printf("Applied fixture %s (%d profiles, %d posts)", path, len(fx.Profiles), len(fx.Posts))
	return nil
}
