package post

import (
	"sort"
	"sync"
)

// Memory repositories hold document copies so that, like the real store,
// a loaded record only becomes visible again through an explicit
// Add/Update. Whole-document last-write-wins under concurrent updates.

type PostsMemoryRepository struct {
	data map[string]*Post
	mu   *sync.RWMutex
}

func NewPostsMemoryRepository() *PostsMemoryRepository {
	return &PostsMemoryRepository{
		data: make(map[string]*Post),
		mu:   &sync.RWMutex{},
	}
}

func clonePost(p *Post) *Post {
	cp := *p
	cp.Comments = append([]string(nil), p.Comments...)
	cp.Upvotes = NewVoteSet()
	for id := range p.Upvotes {
		cp.Upvotes.Add(id)
	}
	return &cp
}

func (repo *PostsMemoryRepository) Add(p *Post) error {
	if !ValidCategory(p.Category) {
		return ErrWrongCategory
	}

	repo.mu.Lock()
	repo.data[p.ID] = clonePost(p)
	repo.mu.Unlock()

	return nil
}

func (repo *PostsMemoryRepository) Get(postID string) (*Post, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if p, ok := repo.data[postID]; ok {
		return clonePost(p), nil
	}
	return nil, ErrPostNotFound
}

func (repo *PostsMemoryRepository) Update(p *Post) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.data[p.ID]; !ok {
		return ErrPostNotFound
	}
	repo.data[p.ID] = clonePost(p)
	return nil
}

func (repo *PostsMemoryRepository) Delete(postID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.data[postID]; !ok {
		return ErrPostNotFound
	}
	delete(repo.data, postID)
	return nil
}

func (repo *PostsMemoryRepository) GetAll() ([]*Post, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]*Post, 0, len(repo.data))
	for _, p := range repo.data {
		result = append(result, clonePost(p))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (repo *PostsMemoryRepository) GetByCategory(category string) ([]*Post, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]*Post, 0)
	for _, p := range repo.data {
		if p.Category == category {
			result = append(result, clonePost(p))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (repo *PostsMemoryRepository) GetByCreator(userID string) ([]*Post, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]*Post, 0)
	for _, p := range repo.data {
		if p.Creator == userID {
			result = append(result, clonePost(p))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

type CommentsMemoryRepository struct {
	data map[string]*Comment
	mu   *sync.RWMutex
}

func NewCommentsMemoryRepository() *CommentsMemoryRepository {
	return &CommentsMemoryRepository{
		data: make(map[string]*Comment),
		mu:   &sync.RWMutex{},
	}
}

func cloneComment(c *Comment) *Comment {
	cc := *c
	cc.Upvotes = NewVoteSet()
	for id := range c.Upvotes {
		cc.Upvotes.Add(id)
	}
	return &cc
}

func (repo *CommentsMemoryRepository) Add(c *Comment) error {
	repo.mu.Lock()
	repo.data[c.ID] = cloneComment(c)
	repo.mu.Unlock()
	return nil
}

func (repo *CommentsMemoryRepository) Get(commentID string) (*Comment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if c, ok := repo.data[commentID]; ok {
		return cloneComment(c), nil
	}
	return nil, ErrCommentNotFound
}

func (repo *CommentsMemoryRepository) Update(c *Comment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.data[c.ID]; !ok {
		return ErrCommentNotFound
	}
	repo.data[c.ID] = cloneComment(c)
	return nil
}

func (repo *CommentsMemoryRepository) Delete(commentID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.data[commentID]; !ok {
		return ErrCommentNotFound
	}
	delete(repo.data, commentID)
	return nil
}

func (repo *CommentsMemoryRepository) GetByPost(postID string) ([]*Comment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]*Comment, 0)
	for _, c := range repo.data {
		if c.Post == postID {
			result = append(result, cloneComment(c))
		}
	}
	return result, nil
}

func (repo *CommentsMemoryRepository) GetByCreator(userID string) ([]*Comment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]*Comment, 0)
	for _, c := range repo.data {
		if c.Creator == userID {
			result = append(result, cloneComment(c))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
