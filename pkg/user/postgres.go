package user

import (
	"database/sql"
	"errors"
)

type UserPostgresRepository struct {
	DB *sql.DB
}

func NewUserPostgresRepository(db *sql.DB) *UserPostgresRepository {
	return &UserPostgresRepository{DB: db}
}

func (repo *UserPostgresRepository) CheckUser(name, password string) error {
	var stored string
	err := repo.DB.QueryRow(`SELECT password FROM users WHERE name = $1`, name).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotExist
	}
	if err != nil {
		return err
	}
	if stored != password {
		return ErrInvalidPassword
	}
	return nil
}

func (repo *UserPostgresRepository) AddUser(user *User) error {
	res, err := repo.DB.Exec(
		`INSERT INTO users (id, name, password, posts) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO NOTHING`,
		user.ID, user.Name, user.Password, user.Posts)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserAlready
	}
	return nil
}

func (repo *UserPostgresRepository) GetUser(name string) (*User, error) {
	u := &User{}
	err := repo.DB.QueryRow(`SELECT id, name, password, posts FROM users WHERE name = $1`, name).
		Scan(&u.ID, &u.Name, &u.Password, &u.Posts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotExist
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserPostgresRepository) GetUserByID(userID string) (*User, error) {
	u := &User{}
	err := repo.DB.QueryRow(`SELECT id, name, password, posts FROM users WHERE id = $1`, userID).
		Scan(&u.ID, &u.Name, &u.Password, &u.Posts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotExist
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserPostgresRepository) IncPostCount(userID string) error {
	res, err := repo.DB.Exec(`UPDATE users SET posts = posts + 1 WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotExist
	}
	return nil
}

func (repo *UserPostgresRepository) DecPostCount(userID string) error {
	res, err := repo.DB.Exec(`UPDATE users SET posts = GREATEST(posts - 1, 0) WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotExist
	}
	return nil
}
