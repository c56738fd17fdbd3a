package post

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asmaa-fatima/BookContinuum/pkg/events"
)

// FileStore keeps thumbnail files. Save returns the stored name.
type FileStore interface {
	Save(name string, data []byte) (string, error)
	Remove(name string) error
}

// UserCounter adjusts the denormalized per-user post count.
type UserCounter interface {
	IncPostCount(userID string) error
	DecPostCount(userID string) error
}

type Publisher interface {
	Publish(evt events.Event)
}

type Upload struct {
	Name string
	Data []byte
}

type Service struct {
	Posts    PostRepo
	Comments CommentRepo
	Users    UserCounter
	Files    FileStore
	Events   Publisher
	Logger   *zap.SugaredLogger
}

// authorize is the ownership guard: only the creator may mutate.
func authorize(actorID, creatorID string) bool {
	return actorID == creatorID
}

func (s *Service) publish(kind, resourceID, postID, actorID string) {
	if s.Events == nil {
		return
	}
	s.Events.Publish(events.Event{
		Kind:     kind,
		Resource: resourceID,
		Post:     postID,
		Actor:    actorID,
		At:       time.Now(),
	})
}

// attachComment appends the comment id to the owning post's reference
// list. A post that vanished in a concurrent delete is not an error;
// the comment collection stays the source of truth.
func (s *Service) attachComment(postID, commentID string) error {
	p, err := s.Posts.Get(postID)
	if errors.Is(err, ErrPostNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, id := range p.Comments {
		if id == commentID {
			return nil
		}
	}
	p.Comments = append(p.Comments, commentID)

	err = s.Posts.Update(p)
	if errors.Is(err, ErrPostNotFound) {
		return nil
	}
	return err
}

// detachComment removes the comment id from the owning post's reference
// list. Removing an absent id, or detaching from a missing post, is a
// no-op.
func (s *Service) detachComment(postID, commentID string) error {
	p, err := s.Posts.Get(postID)
	if errors.Is(err, ErrPostNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(p.Comments))
	for _, id := range p.Comments {
		if id != commentID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(p.Comments) {
		return nil
	}
	p.Comments = kept

	err = s.Posts.Update(p)
	if errors.Is(err, ErrPostNotFound) {
		return nil
	}
	return err
}

func (s *Service) CreateComment(actorID, postID, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrValidation
	}

	p, err := s.Posts.Get(postID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c := &Comment{
		ID:        uuid.New().String(),
		Content:   content,
		Creator:   actorID,
		Post:      p.ID,
		Upvotes:   NewVoteSet(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Comments.Add(c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	if err := s.attachComment(p.ID, c.ID); err != nil {
		s.Logger.Errorw("comment reference append failed",
			"postID", p.ID,
			"commentID", c.ID,
			"error", err)
	}

	s.publish(events.CommentCreated, c.ID, p.ID, actorID)
	return c, nil
}

func (s *Service) EditComment(actorID, commentID, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrValidation
	}

	c, err := s.Comments.Get(commentID)
	if err != nil {
		return nil, err
	}
	if !authorize(actorID, c.Creator) {
		return nil, ErrAccessDenied
	}

	c.Content = content
	c.UpdatedAt = time.Now()
	if err := s.Comments.Update(c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDependency, err)
	}

	// Comment ids are stable, so the post's reference list needs no
	// replacement here; re-adding a dropped reference heals drift.
	if err := s.attachComment(c.Post, c.ID); err != nil {
		s.Logger.Errorw("comment reference heal failed",
			"postID", c.Post,
			"commentID", c.ID,
			"error", err)
	}

	return c, nil
}

func (s *Service) DeleteComment(actorID, commentID string) error {
	c, err := s.Comments.Get(commentID)
	if err != nil {
		return err
	}
	if !authorize(actorID, c.Creator) {
		return ErrAccessDenied
	}

	if err := s.Comments.Delete(c.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}

	if err := s.detachComment(c.Post, c.ID); err != nil {
		s.Logger.Errorw("comment reference removal failed",
			"postID", c.Post,
			"commentID", c.ID,
			"error", err)
	}

	s.publish(events.CommentDeleted, c.ID, c.Post, actorID)
	return nil
}

func (s *Service) ToggleCommentVote(actorID, commentID string) (int, error) {
	c, err := s.Comments.Get(commentID)
	if err != nil {
		return 0, err
	}

	count := c.Upvotes.Toggle(actorID)
	c.UpdatedAt = time.Now()
	if err := s.Comments.Update(c); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDependency, err)
	}

	s.publish(events.CommentVoted, c.ID, c.Post, actorID)
	return count, nil
}

func (s *Service) TogglePostVote(actorID, postID string) (int, error) {
	p, err := s.Posts.Get(postID)
	if err != nil {
		return 0, err
	}

	count := p.Upvotes.Toggle(actorID)
	p.UpdatedAt = time.Now()
	if err := s.Posts.Update(p); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDependency, err)
	}

	s.publish(events.PostVoted, p.ID, p.ID, actorID)
	return count, nil
}

func (s *Service) CreatePost(actorID, title, category, description string, thumb *Upload) (*Post, error) {
	if title == "" || category == "" || description == "" || thumb == nil || len(thumb.Data) == 0 {
		return nil, ErrValidation
	}
	if !ValidCategory(category) {
		return nil, ErrWrongCategory
	}
	if len(thumb.Data) > MaxThumbnailSize {
		return nil, ErrThumbnailTooBig
	}

	stored, err := s.Files.Save(thumb.Name, thumb.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDependency, err)
	}

	now := time.Now()
	p := &Post{
		ID:          uuid.New().String(),
		Title:       title,
		Category:    category,
		Description: description,
		Creator:     actorID,
		Thumbnail:   stored,
		Comments:    make([]string, 0),
		Upvotes:     NewVoteSet(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Posts.Add(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	if err := s.Users.IncPostCount(actorID); err != nil {
		s.Logger.Errorw("post count increment failed",
			"userID", actorID,
			"error", err)
	}

	s.publish(events.PostCreated, p.ID, p.ID, actorID)
	return p, nil
}

func (s *Service) EditPost(actorID, postID, title, category, description string, thumb *Upload) (*Post, error) {
	if title == "" || len(description) < MinDescriptionLen {
		return nil, ErrValidation
	}
	if !ValidCategory(category) {
		return nil, ErrWrongCategory
	}

	p, err := s.Posts.Get(postID)
	if err != nil {
		return nil, err
	}
	if !authorize(actorID, p.Creator) {
		return nil, ErrAccessDenied
	}

	if thumb != nil {
		if len(thumb.Data) > MaxThumbnailSize {
			return nil, ErrThumbnailTooBig
		}
		if err := s.Files.Remove(p.Thumbnail); err != nil {
			s.Logger.Errorw("old thumbnail removal failed",
				"postID", p.ID,
				"thumbnail", p.Thumbnail,
				"error", err)
		}
		stored, err := s.Files.Save(thumb.Name, thumb.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDependency, err)
		}
		p.Thumbnail = stored
	}

	p.Title = title
	p.Category = category
	p.Description = description
	p.UpdatedAt = time.Now()

	if err := s.Posts.Update(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDependency, err)
	}
	return p, nil
}

// DeletePost is fail-closed: the record is only removed once the
// thumbnail file is gone, so a file-system failure aborts the whole
// deletion. The file store treats an already-missing file as removed.
func (s *Service) DeletePost(actorID, postID string) error {
	p, err := s.Posts.Get(postID)
	if err != nil {
		return err
	}
	if !authorize(actorID, p.Creator) {
		return ErrAccessDenied
	}

	if err := s.Files.Remove(p.Thumbnail); err != nil {
		return fmt.Errorf("%w: %v", ErrDependency, err)
	}

	if err := s.Posts.Delete(p.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}

	comments, err := s.Comments.GetByPost(p.ID)
	if err != nil {
		s.Logger.Errorw("comment cleanup lookup failed",
			"postID", p.ID,
			"error", err)
	}
	for _, c := range comments {
		if err := s.Comments.Delete(c.ID); err != nil {
			s.Logger.Errorw("comment cleanup failed",
				"postID", p.ID,
				"commentID", c.ID,
				"error", err)
		}
	}

	if err := s.Users.DecPostCount(actorID); err != nil {
		s.Logger.Errorw("post count decrement failed",
			"userID", actorID,
			"error", err)
	}

	s.publish(events.PostDeleted, p.ID, p.ID, actorID)
	return nil
}

func (s *Service) GetPost(postID string) (*Post, error) {
	return s.Posts.Get(postID)
}

func (s *Service) GetAllPosts() ([]*Post, error) {
	return s.Posts.GetAll()
}

func (s *Service) GetPostsByCategory(category string) ([]*Post, error) {
	return s.Posts.GetByCategory(category)
}

func (s *Service) GetPostsByUser(userID string) ([]*Post, error) {
	return s.Posts.GetByCreator(userID)
}

func (s *Service) GetComment(commentID string) (*Comment, error) {
	return s.Comments.Get(commentID)
}

func (s *Service) GetCommentsByPost(postID string) ([]*Comment, error) {
	return s.Comments.GetByPost(postID)
}

func (s *Service) GetCommentsByUser(userID string) ([]*Comment, error) {
	return s.Comments.GetByCreator(userID)
}
