package post

import (
	"github.com/stretchr/testify/mock"
)

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Add(p *Post) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPostRepo) Get(postID string) (*Post, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepo) Update(p *Post) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPostRepo) Delete(postID string) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockPostRepo) GetAll() ([]*Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepo) GetByCategory(category string) ([]*Post, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *MockPostRepo) GetByCreator(userID string) ([]*Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Add(c *Comment) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCommentRepo) Get(commentID string) (*Comment, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *MockCommentRepo) Update(c *Comment) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCommentRepo) Delete(commentID string) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func (m *MockCommentRepo) GetByPost(postID string) ([]*Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *MockCommentRepo) GetByCreator(userID string) ([]*Comment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}
