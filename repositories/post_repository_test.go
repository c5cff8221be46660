package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"social-api/models"
)

func TestPostRepository_ToggleLike_FlipsState(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	alice := createTestUser(t, users, "alice", "a@x.com")
	bob := createTestUser(t, users, "bob", "b@x.com")

	post := &models.Post{Content: "hello", AuthorID: alice.ID}
	require.NoError(t, posts.Create(post))

	liked, err := posts.ToggleLike(bob.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = posts.ToggleLike(bob.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPostRepository_ToggleLike_DuplicateInsertIsRejected(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	alice := createTestUser(t, users, "alice", "a@x.com")
	bob := createTestUser(t, users, "bob", "b@x.com")

	post := &models.Post{Content: "hello", AuthorID: alice.ID}
	require.NoError(t, posts.Create(post))

	_, err := posts.ToggleLike(bob.ID, post.ID)
	require.NoError(t, err)

	err = db.Create(&models.Like{UserID: bob.ID, PostID: post.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPostRepository_Feed_OrderAndAggregates(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	alice := createTestUser(t, users, "alice", "a@x.com")
	bob := createTestUser(t, users, "bob", "b@x.com")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	older := &models.Post{Content: "older", AuthorID: alice.ID, CreatedAt: base}
	require.NoError(t, posts.Create(older))
	newer := &models.Post{Content: "newer", AuthorID: alice.ID, CreatedAt: base.Add(time.Hour)}
	require.NoError(t, posts.Create(newer))

	liked, err := posts.ToggleLike(bob.ID, older.ID)
	require.NoError(t, err)
	require.True(t, liked)

	feed, err := posts.Feed()
	require.NoError(t, err)
	require.Len(t, feed, 2)

	// Newest first.
	assert.Equal(t, "newer", feed[0].Content)
	assert.Equal(t, "older", feed[1].Content)

	// Author and likers arrive preloaded.
	assert.Equal(t, "alice", feed[1].Author.Username)
	require.Len(t, feed[1].Likes, 1)
	assert.Equal(t, "bob", feed[1].Likes[0].User.Username)
	assert.Empty(t, feed[0].Likes)
}

func TestPostRepository_Feed_TiesBrokenByID(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	alice := createTestUser(t, users, "alice", "a@x.com")
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	first := &models.Post{Content: "first", AuthorID: alice.ID, CreatedAt: at}
	require.NoError(t, posts.Create(first))
	second := &models.Post{Content: "second", AuthorID: alice.ID, CreatedAt: at}
	require.NoError(t, posts.Create(second))

	feed, err := posts.Feed()
	require.NoError(t, err)
	require.Len(t, feed, 2)

	// Equal timestamps fall back to insertion order.
	assert.Equal(t, "first", feed[0].Content)
	assert.Equal(t, "second", feed[1].Content)
}

func TestPostRepository_Feed_CommentsAscendingRegardlessOfInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	alice := createTestUser(t, users, "alice", "a@x.com")
	bob := createTestUser(t, users, "bob", "b@x.com")

	post := &models.Post{Content: "hello", AuthorID: alice.ID}
	require.NoError(t, posts.Create(post))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// Inserted newest first on purpose.
	require.NoError(t, posts.CreateComment(&models.Comment{
		Content: "late", AuthorID: bob.ID, PostID: post.ID, CreatedAt: base.Add(time.Minute),
	}))
	require.NoError(t, posts.CreateComment(&models.Comment{
		Content: "early", AuthorID: alice.ID, PostID: post.ID, CreatedAt: base,
	}))

	feed, err := posts.Feed()
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Len(t, feed[0].Comments, 2)

	assert.Equal(t, "early", feed[0].Comments[0].Content)
	assert.Equal(t, "late", feed[0].Comments[1].Content)
	assert.Equal(t, "alice", feed[0].Comments[0].Author.Username)
	assert.Equal(t, "bob", feed[0].Comments[1].Author.Username)
}

func TestPostRepository_FeedByAuthor(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	alice := createTestUser(t, users, "alice", "a@x.com")
	bob := createTestUser(t, users, "bob", "b@x.com")

	require.NoError(t, posts.Create(&models.Post{Content: "mine", AuthorID: alice.ID}))
	require.NoError(t, posts.Create(&models.Post{Content: "theirs", AuthorID: bob.ID}))

	mine, err := posts.FeedByAuthor(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Content)

	// Unknown author is an empty feed, not an error.
	none, err := posts.FeedByAuthor(999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)

	_, err := posts.FindByID(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
