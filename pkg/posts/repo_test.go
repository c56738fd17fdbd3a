package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedPost(id, category, creator string, created, updated time.Time) *Post {
	return &Post{
		ID:          id,
		Title:       "title " + id,
		Category:    category,
		Description: "description",
		Creator:     creator,
		Thumbnail:   id + ".png",
		Comments:    make([]string, 0),
		Upvotes:     NewVoteSet(),
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}

func TestPostsMemoryRepository_AddGet(t *testing.T) {
	repo := NewPostsMemoryRepository()
	now := time.Now()

	require.NoError(t, repo.Add(storedPost("p1", "Art", "u1", now, now)))

	p, err := repo.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = repo.Get("missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostsMemoryRepository_WrongCategory(t *testing.T) {
	repo := NewPostsMemoryRepository()
	now := time.Now()

	err := repo.Add(storedPost("p1", "Gardening", "u1", now, now))
	assert.ErrorIs(t, err, ErrWrongCategory)
}

func TestPostsMemoryRepository_CopiesOnRead(t *testing.T) {
	repo := NewPostsMemoryRepository()
	now := time.Now()
	require.NoError(t, repo.Add(storedPost("p1", "Art", "u1", now, now)))

	p, err := repo.Get("p1")
	require.NoError(t, err)
	p.Comments = append(p.Comments, "c1")
	p.Upvotes.Add("u9")

	// mutation is invisible until an explicit Update
	stored, err := repo.Get("p1")
	require.NoError(t, err)
	assert.Empty(t, stored.Comments)
	assert.Equal(t, 0, stored.Upvotes.Count())

	require.NoError(t, repo.Update(p))
	stored, err = repo.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, stored.Comments)
}

func TestPostsMemoryRepository_Ordering(t *testing.T) {
	repo := NewPostsMemoryRepository()
	base := time.Now()

	// p1 created first but updated last
	require.NoError(t, repo.Add(storedPost("p1", "Art", "u1", base, base.Add(3*time.Hour))))
	require.NoError(t, repo.Add(storedPost("p2", "Art", "u1", base.Add(time.Hour), base.Add(time.Hour))))
	require.NoError(t, repo.Add(storedPost("p3", "History", "u2", base.Add(2*time.Hour), base.Add(2*time.Hour))))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p3", all[1].ID)
	assert.Equal(t, "p2", all[2].ID)

	art, err := repo.GetByCategory("Art")
	require.NoError(t, err)
	require.Len(t, art, 2)
	assert.Equal(t, "p2", art[0].ID)
	assert.Equal(t, "p1", art[1].ID)

	mine, err := repo.GetByCreator("u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "p2", mine[0].ID)
}

func TestPostsMemoryRepository_Delete(t *testing.T) {
	repo := NewPostsMemoryRepository()
	now := time.Now()
	require.NoError(t, repo.Add(storedPost("p1", "Art", "u1", now, now)))

	require.NoError(t, repo.Delete("p1"))
	assert.ErrorIs(t, repo.Delete("p1"), ErrPostNotFound)
}

func TestCommentsMemoryRepository(t *testing.T) {
	repo := NewCommentsMemoryRepository()
	base := time.Now()

	add := func(id, postID, creator string, created time.Time) {
		require.NoError(t, repo.Add(&Comment{
			ID:        id,
			Content:   "c",
			Creator:   creator,
			Post:      postID,
			Upvotes:   NewVoteSet(),
			CreatedAt: created,
			UpdatedAt: created,
		}))
	}
	add("c1", "p1", "u1", base)
	add("c2", "p1", "u2", base.Add(time.Hour))
	add("c3", "p2", "u1", base.Add(2*time.Hour))

	byPost, err := repo.GetByPost("p1")
	require.NoError(t, err)
	assert.Len(t, byPost, 2)

	byUser, err := repo.GetByCreator("u1")
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, "c3", byUser[0].ID)

	_, err = repo.Get("missing")
	assert.ErrorIs(t, err, ErrCommentNotFound)

	require.NoError(t, repo.Delete("c1"))
	assert.ErrorIs(t, repo.Delete("c1"), ErrCommentNotFound)
}
