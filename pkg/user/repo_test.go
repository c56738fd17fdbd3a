package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMemoryRepository(t *testing.T) {
	repo := NewUserMemRep()

	u := &User{Name: "alice", Password: "secret", ID: "u1"}
	require.NoError(t, repo.AddUser(u))
	assert.ErrorIs(t, repo.AddUser(&User{Name: "alice", Password: "other", ID: "u2"}), ErrUserAlready)

	assert.NoError(t, repo.CheckUser("alice", "secret"))
	assert.ErrorIs(t, repo.CheckUser("alice", "wrong"), ErrInvalidPassword)
	assert.ErrorIs(t, repo.CheckUser("bob", "secret"), ErrUserNotExist)

	got, err := repo.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	byID, err := repo.GetUserByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Name)

	_, err = repo.GetUserByID("u9")
	assert.ErrorIs(t, err, ErrUserNotExist)
}

func TestPostCount(t *testing.T) {
	repo := NewUserMemRep()
	require.NoError(t, repo.AddUser(&User{Name: "alice", Password: "secret", ID: "u1"}))

	require.NoError(t, repo.IncPostCount("u1"))
	require.NoError(t, repo.IncPostCount("u1"))

	u, err := repo.GetUserByID("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, u.Posts)

	require.NoError(t, repo.DecPostCount("u1"))
	require.NoError(t, repo.DecPostCount("u1"))
	// the counter never goes negative
	require.NoError(t, repo.DecPostCount("u1"))

	u, err = repo.GetUserByID("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, u.Posts)

	assert.ErrorIs(t, repo.IncPostCount("u9"), ErrUserNotExist)
	assert.ErrorIs(t, repo.DecPostCount("u9"), ErrUserNotExist)
}
