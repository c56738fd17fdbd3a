package post

import "time"

type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Creator     string    `json:"creator"`
	Thumbnail   string    `json:"thumbnail"`
	Comments    []string  `json:"comments"`
	Upvotes     VoteSet   `json:"upvotes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Creator   string    `json:"creator"`
	Post      string    `json:"post"`
	Upvotes   VoteSet   `json:"upvote"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var Categories = []string{
	"Business",
	"Education",
	"Entertainment",
	"Art",
	"Uncategorized",
	"Fiction",
	"Non-Fiction",
	"Science Fiction",
	"Mystery",
	"Romance",
	"Thriller",
	"Horror",
	"History",
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MaxThumbnailSize is the upload ceiling in bytes.
const MaxThumbnailSize = 2000000

// MinDescriptionLen accounts for the fixed wrapper markup the rich-text
// editor always sends around the user's content.
const MinDescriptionLen = 12

type PostRepo interface {
	Add(p *Post) error
	Get(postID string) (*Post, error)
	Update(p *Post) error
	Delete(postID string) error
	GetAll() ([]*Post, error)
	GetByCategory(category string) ([]*Post, error)
	GetByCreator(userID string) ([]*Post, error)
}

type CommentRepo interface {
	Add(c *Comment) error
	Get(commentID string) (*Comment, error)
	Update(c *Comment) error
	Delete(commentID string) error
	GetByPost(postID string) ([]*Comment, error)
	GetByCreator(userID string) ([]*Comment, error)
}
