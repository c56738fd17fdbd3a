package post

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockService() (*Service, *MockPostRepo, *MockCommentRepo) {
	posts := new(MockPostRepo)
	comments := new(MockCommentRepo)
	svc := &Service{
		Posts:    posts,
		Comments: comments,
		Logger:   zap.NewNop().Sugar(),
	}
	return svc, posts, comments
}

func TestToggleCommentVote_StorageFailure(t *testing.T) {
	svc, _, comments := newMockService()

	c := &Comment{ID: "c1", Post: "p1", Upvotes: NewVoteSet()}
	comments.On("Get", "c1").Return(c, nil)
	comments.On("Update", mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.ToggleCommentVote("u1", "c1")
	assert.ErrorIs(t, err, ErrDependency)
	comments.AssertExpectations(t)
}

func TestCreateComment_StoreRejectsWrite(t *testing.T) {
	svc, posts, comments := newMockService()

	posts.On("Get", "p1").Return(&Post{ID: "p1"}, nil)
	comments.On("Add", mock.Anything).Return(errors.New("constraint violation"))

	_, err := svc.CreateComment("u1", "p1", "hi")
	assert.ErrorIs(t, err, ErrCreateFailed)
	comments.AssertExpectations(t)
}

func TestCreateComment_PostVanishesBeforeAppend(t *testing.T) {
	svc, posts, comments := newMockService()

	// the post exists for the creation check but is gone when the
	// synchronizer tries to append the reference
	posts.On("Get", "p1").Return(&Post{ID: "p1"}, nil).Once()
	posts.On("Get", "p1").Return(nil, ErrPostNotFound).Once()
	comments.On("Add", mock.Anything).Return(nil)

	c, err := svc.CreateComment("u1", "p1", "hi")
	require.NoError(t, err)
	assert.Equal(t, "p1", c.Post)
	posts.AssertExpectations(t)
	comments.AssertExpectations(t)
}

func TestDeleteComment_StoreRejectsDelete(t *testing.T) {
	svc, _, comments := newMockService()

	c := &Comment{ID: "c1", Creator: "u1", Post: "p1", Upvotes: NewVoteSet()}
	comments.On("Get", "c1").Return(c, nil)
	comments.On("Delete", "c1").Return(errors.New("connection reset"))

	err := svc.DeleteComment("u1", "c1")
	assert.ErrorIs(t, err, ErrDeleteFailed)
	comments.AssertExpectations(t)
}
