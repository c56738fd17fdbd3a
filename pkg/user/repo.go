package user

import (
	"errors"
	"sync"
)

type UserMemoryRepository struct {
	data map[string]*User
	byID map[string]*User
	mu   sync.RWMutex
}

var ErrUserAlready = errors.New("already exist")
var ErrUserNotExist = errors.New("user not found")
var ErrInvalidPassword = errors.New("invalid password")

func NewUserMemRep() *UserMemoryRepository {
	return &UserMemoryRepository{
		data: make(map[string]*User),
		byID: make(map[string]*User),
	}
}

func (repo *UserMemoryRepository) CheckUser(name, password string) error {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	val, ok := repo.data[name]
	if !ok {
		return ErrUserNotExist
	}
	if val.Password != password {
		return ErrInvalidPassword
	}
	return nil
}

func (repo *UserMemoryRepository) AddUser(user *User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.data[user.Name]; ok {
		return ErrUserAlready
	}
	repo.data[user.Name] = user
	repo.byID[user.ID] = user
	return nil
}

func (repo *UserMemoryRepository) GetUser(name string) (*User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if val, ok := repo.data[name]; ok {
		return val, nil
	}
	return nil, ErrUserNotExist
}

func (repo *UserMemoryRepository) GetUserByID(userID string) (*User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if val, ok := repo.byID[userID]; ok {
		return val, nil
	}
	return nil, ErrUserNotExist
}

func (repo *UserMemoryRepository) IncPostCount(userID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	val, ok := repo.byID[userID]
	if !ok {
		return ErrUserNotExist
	}
	val.Posts++
	return nil
}

func (repo *UserMemoryRepository) DecPostCount(userID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	val, ok := repo.byID[userID]
	if !ok {
		return ErrUserNotExist
	}
	if val.Posts > 0 {
		val.Posts--
	}
	return nil
}
