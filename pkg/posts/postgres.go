package post

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type PostsPostgresRepository struct {
	DB *sql.DB
}

func NewPostsPostgresRepository(db *sql.DB) *PostsPostgresRepository {
	return &PostsPostgresRepository{DB: db}
}

func (repo *PostsPostgresRepository) Add(p *Post) error {
	if !ValidCategory(p.Category) {
		return ErrWrongCategory
	}
	_, err := repo.DB.Exec(
		`INSERT INTO posts (id, title, category, description, creator, thumbnail, comments, upvotes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Title, p.Category, p.Description, p.Creator, p.Thumbnail,
		pq.Array(p.Comments), p.Upvotes, p.CreatedAt, p.UpdatedAt)
	return err
}

func (repo *PostsPostgresRepository) Get(postID string) (*Post, error) {
	p := &Post{}
	err := repo.DB.QueryRow(
		`SELECT id, title, category, description, creator, thumbnail, comments, upvotes, created_at, updated_at
		 FROM posts WHERE id = $1`, postID).
		Scan(&p.ID, &p.Title, &p.Category, &p.Description, &p.Creator, &p.Thumbnail,
			pq.Array(&p.Comments), &p.Upvotes, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostsPostgresRepository) Update(p *Post) error {
	res, err := repo.DB.Exec(
		`UPDATE posts SET title = $2, category = $3, description = $4, thumbnail = $5,
		 comments = $6, upvotes = $7, updated_at = $8 WHERE id = $1`,
		p.ID, p.Title, p.Category, p.Description, p.Thumbnail,
		pq.Array(p.Comments), p.Upvotes, p.UpdatedAt)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (repo *PostsPostgresRepository) Delete(postID string) error {
	res, err := repo.DB.Exec(`DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (repo *PostsPostgresRepository) scanPosts(rows *sql.Rows) ([]*Post, error) {
	defer rows.Close()

	result := make([]*Post, 0)
	for rows.Next() {
		p := &Post{}
		err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Description, &p.Creator, &p.Thumbnail,
			pq.Array(&p.Comments), &p.Upvotes, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (repo *PostsPostgresRepository) GetAll() ([]*Post, error) {
	rows, err := repo.DB.Query(
		`SELECT id, title, category, description, creator, thumbnail, comments, upvotes, created_at, updated_at
		 FROM posts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	return repo.scanPosts(rows)
}

func (repo *PostsPostgresRepository) GetByCategory(category string) ([]*Post, error) {
	rows, err := repo.DB.Query(
		`SELECT id, title, category, description, creator, thumbnail, comments, upvotes, created_at, updated_at
		 FROM posts WHERE category = $1 ORDER BY created_at DESC`, category)
	if err != nil {
		return nil, err
	}
	return repo.scanPosts(rows)
}

func (repo *PostsPostgresRepository) GetByCreator(userID string) ([]*Post, error) {
	rows, err := repo.DB.Query(
		`SELECT id, title, category, description, creator, thumbnail, comments, upvotes, created_at, updated_at
		 FROM posts WHERE creator = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return repo.scanPosts(rows)
}

type CommentsPostgresRepository struct {
	DB *sql.DB
}

func NewCommentsPostgresRepository(db *sql.DB) *CommentsPostgresRepository {
	return &CommentsPostgresRepository{DB: db}
}

func (repo *CommentsPostgresRepository) Add(c *Comment) error {
	_, err := repo.DB.Exec(
		`INSERT INTO comments (id, content, creator, post, upvotes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Content, c.Creator, c.Post, c.Upvotes, c.CreatedAt, c.UpdatedAt)
	return err
}

func (repo *CommentsPostgresRepository) Get(commentID string) (*Comment, error) {
	c := &Comment{}
	err := repo.DB.QueryRow(
		`SELECT id, content, creator, post, upvotes, created_at, updated_at
		 FROM comments WHERE id = $1`, commentID).
		Scan(&c.ID, &c.Content, &c.Creator, &c.Post, &c.Upvotes, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentsPostgresRepository) Update(c *Comment) error {
	res, err := repo.DB.Exec(
		`UPDATE comments SET content = $2, upvotes = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Content, c.Upvotes, c.UpdatedAt)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (repo *CommentsPostgresRepository) Delete(commentID string) error {
	res, err := repo.DB.Exec(`DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (repo *CommentsPostgresRepository) scanComments(rows *sql.Rows) ([]*Comment, error) {
	defer rows.Close()

	result := make([]*Comment, 0)
	for rows.Next() {
		c := &Comment{}
		err := rows.Scan(&c.ID, &c.Content, &c.Creator, &c.Post, &c.Upvotes, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (repo *CommentsPostgresRepository) GetByPost(postID string) ([]*Comment, error) {
	rows, err := repo.DB.Query(
		`SELECT id, content, creator, post, upvotes, created_at, updated_at
		 FROM comments WHERE post = $1`, postID)
	if err != nil {
		return nil, err
	}
	return repo.scanComments(rows)
}

func (repo *CommentsPostgresRepository) GetByCreator(userID string) ([]*Comment, error) {
	rows, err := repo.DB.Query(
		`SELECT id, content, creator, post, upvotes, created_at, updated_at
		 FROM comments WHERE creator = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return repo.scanComments(rows)
}
