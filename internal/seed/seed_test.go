package seed

import (
	"os"
	"path/filepath"
	"testing"

	"postify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Credential{}, &models.Profile{}, &models.Post{}))
	return db
}

func TestRun_GeneratesData(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, Run(db, Options{NumUsers: 5, NumPosts: 20}))

	var profiles, creds, posts int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&profiles).Error)
	require.NoError(t, db.Model(&models.Credential{}).Count(&creds).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)

	assert.Equal(t, profiles, creds, "every profile gets a login credential")
	assert.LessOrEqual(t, profiles, int64(5))
	assert.Positive(t, profiles)
	assert.Equal(t, int64(20), posts)

	// Every post references a seeded author and carries a client ID.
	var sample models.Post
	require.NoError(t, db.First(&sample).Error)
	assert.NotEmpty(t, sample.ClientID)
	assert.NotEmpty(t, sample.AuthorEmail)
	assert.NotEmpty(t, sample.Title)

	var author models.Profile
	require.NoError(t, db.Where("email = ?", sample.AuthorEmail).First(&author).Error)
}

func TestRun_Clean(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, db.Create(&models.Post{ClientID: "stale", Title: "old", AuthorEmail: "old@example.com"}).Error)
	require.NoError(t, db.Create(&models.Profile{Email: "old@example.com"}).Error)

	require.NoError(t, Run(db, Options{NumUsers: 2, NumPosts: 3, ShouldClean: true}))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Where("client_id = ?", "stale").Count(&count).Error)
	assert.Zero(t, count)
}

func TestRun_Fixture(t *testing.T) {
	db := setupSeedTestDB(t)

	fixture := `
profiles:
  - email: fixed@example.com
    display_name: Fixed User
    avatar_url: https://example.com/f.png
posts:
  - title: Pinned post
    text: always present
    author_email: fixed@example.com
  - title: Hidden note
    text: private fixture
    author_email: fixed@example.com
    private: true
`
	path := filepath.Join(t.TempDir(), "fixture.yml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	require.NoError(t, Run(db, Options{FixtureFile: path}))

	var profile models.Profile
	require.NoError(t, db.Where("email = ?", "fixed@example.com").First(&profile).Error)
	assert.Equal(t, "Fixed User", profile.DisplayName)

	var cred models.Credential
	require.NoError(t, db.Where("email = ?", "fixed@example.com").First(&cred).Error)

	var posts []models.Post
	require.NoError(t, db.Where("author_email = ?", "fixed@example.com").Find(&posts).Error)
	require.Len(t, posts, 2)
	assert.Equal(t, "Pinned post", posts[0].Title)
	assert.False(t, posts[0].Private)
	assert.True(t, posts[1].Private)
}

func TestRun_FixtureFileMissing(t *testing.T) {
	db := setupSeedTestDB(t)
	err := Run(db, Options{FixtureFile: "/nonexistent/fixture.yml"})
	assert.Error(t, err)
}
