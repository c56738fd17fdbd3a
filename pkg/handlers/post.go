package handlers

import (
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/asmaa-fatima/BookContinuum/pkg/actor"
	post "github.com/asmaa-fatima/BookContinuum/pkg/posts"
)

const maxFormMemory = 4 << 20

type PostHandler struct {
	Service  *post.Service
	Logger   *zap.SugaredLogger
	Validate *validator.Validate
}

type PostForm struct {
	Title       string `validate:"required"`
	Category    string `validate:"required"`
	Description string `validate:"required"`
}

type EditPostForm struct {
	Title       string `validate:"required"`
	Category    string `validate:"required"`
	Description string `validate:"required,min=12"`
}

type VoteResponse struct {
	Upvotes int `json:"upvotes"`
}

func (handler *PostHandler) readThumbnail(r *http.Request) (*post.Upload, error) {
	file, header, err := r.FormFile("thumbnail")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, post.MaxThumbnailSize+1))
	if err != nil {
		return nil, err
	}
	return &post.Upload{Name: header.Filename, Data: data}, nil
}

func (handler *PostHandler) AddPost(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("adding post")
	act, err := actor.FromContext(r.Context())
	if err != nil {
		http.Error(w, ErrActorNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		sendError(w, handler.Logger, post.ErrValidation)
		return
	}

	form := PostForm{
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	}
	if err := handler.Validate.Struct(form); err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	thumb, err := handler.readThumbnail(r)
	if err != nil {
		sendError(w, handler.Logger, post.ErrValidation)
		return
	}

	created, err := handler.Service.CreatePost(act.ID, form.Title, form.Category, form.Description, thumb)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	sendJSON(w, handler.Logger, http.StatusCreated, created)
	handler.Logger.Infow("post added",
		"postID", created.ID,
		"userID", act.ID)
}

func (handler *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	currentPost, err := handler.Service.GetPost(postID)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}
	sendJSON(w, handler.Logger, http.StatusOK, currentPost)
}

func (handler *PostHandler) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := handler.Service.GetAllPosts()
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}
	sendJSON(w, handler.Logger, http.StatusOK, posts)
}

func (handler *PostHandler) GetPostsWithCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	posts, err := handler.Service.GetPostsByCategory(category)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}
	sendJSON(w, handler.Logger, http.StatusOK, posts)
}

func (handler *PostHandler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]

	posts, err := handler.Service.GetPostsByUser(userID)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}
	sendJSON(w, handler.Logger, http.StatusOK, posts)
}

func (handler *PostHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("edit post")
	act, err := actor.FromContext(r.Context())
	if err != nil {
		http.Error(w, ErrActorNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	postID := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		sendError(w, handler.Logger, post.ErrValidation)
		return
	}

	form := EditPostForm{
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	}
	if err := handler.Validate.Struct(form); err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	// Thumbnail is optional on edit; text fields update alone without it.
	thumb, err := handler.readThumbnail(r)
	if err != nil && err != http.ErrMissingFile {
		sendError(w, handler.Logger, post.ErrValidation)
		return
	}

	updated, err := handler.Service.EditPost(act.ID, postID, form.Title, form.Category, form.Description, thumb)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	sendJSON(w, handler.Logger, http.StatusOK, updated)
	handler.Logger.Infow("post updated",
		"postID", postID)
}

func (handler *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("delete post")
	act, err := actor.FromContext(r.Context())
	if err != nil {
		http.Error(w, ErrActorNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	postID := mux.Vars(r)["id"]

	if err := handler.Service.DeletePost(act.ID, postID); err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	sendJSON(w, handler.Logger, http.StatusOK, MessageResponse{Message: "Post " + postID + " deleted successfully"})
	handler.Logger.Infow("post deleted",
		"postID", postID)
}

func (handler *PostHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("toggle post vote")
	act, err := actor.FromContext(r.Context())
	if err != nil {
		http.Error(w, ErrActorNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	postID := mux.Vars(r)["id"]

	count, err := handler.Service.TogglePostVote(act.ID, postID)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	sendJSON(w, handler.Logger, http.StatusOK, VoteResponse{Upvotes: count})
	handler.Logger.Infow("post vote toggled",
		"postID", postID,
		"upvotes", count)
}
