package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/asmaa-fatima/BookContinuum/pkg/actor"
	post "github.com/asmaa-fatima/BookContinuum/pkg/posts"
)

type CommentHandler struct {
	Service  *post.Service
	Logger   *zap.SugaredLogger
	Validate *validator.Validate
}

type CommentForm struct {
	Content string `json:"content" validate:"required"`
}

func (handler *CommentHandler) parseForm(r *http.Request) (*CommentForm, error) {
	js, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		return nil, ErrReadReqBody
	}

	form := &CommentForm{}
	if err := json.Unmarshal(js, form); err != nil {
		return nil, ErrJSONUnmarshal
	}
	if err := handler.Validate.Struct(form); err != nil {
		return nil, err
	}
	return form, nil
}

func (handler *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("add comment")
	act, err := actor.FromContext(r.Context())
	if err != nil {
		http.Error(w, ErrActorNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	postID := mux.Vars(r)["postID"]

	form, err := handler.parseForm(r)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	created, err := handler.Service.CreateComment(act.ID, postID, form.Content)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	sendJSON(w, handler.Logger, http.StatusCreated, created)
	handler.Logger.Infow("comment added",
		"commentID", created.ID,
		"postID", postID)
}

func (handler *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]

	comment, err := handler.Service.GetComment(commentID)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}
	sendJSON(w, handler.Logger, http.StatusOK, comment)
}

func (handler *CommentHandler) GetCommentsByPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postID"]

	comments, err := handler.Service.GetCommentsByPost(postID)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}
	sendJSON(w, handler.Logger, http.StatusOK, comments)
}

func (handler *CommentHandler) GetCommentsByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]

	comments, err := handler.Service.GetCommentsByUser(userID)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}
	sendJSON(w, handler.Logger, http.StatusOK, comments)
}

func (handler *CommentHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("edit comment")
	act, err := actor.FromContext(r.Context())
	if err != nil {
		http.Error(w, ErrActorNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	commentID := mux.Vars(r)["id"]

	form, err := handler.parseForm(r)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	updated, err := handler.Service.EditComment(act.ID, commentID, form.Content)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	sendJSON(w, handler.Logger, http.StatusOK, updated)
	handler.Logger.Infow("comment updated",
		"commentID", commentID)
}

func (handler *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("delete comment")
	act, err := actor.FromContext(r.Context())
	if err != nil {
		http.Error(w, ErrActorNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	commentID := mux.Vars(r)["id"]

	if err := handler.Service.DeleteComment(act.ID, commentID); err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	sendJSON(w, handler.Logger, http.StatusOK, MessageResponse{Message: "Comment " + commentID + " deleted successfully"})
	handler.Logger.Infow("comment deleted",
		"commentID", commentID)
}

func (handler *CommentHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("toggle comment vote")
	act, err := actor.FromContext(r.Context())
	if err != nil {
		http.Error(w, ErrActorNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	commentID := mux.Vars(r)["id"]

	count, err := handler.Service.ToggleCommentVote(act.ID, commentID)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}

	sendJSON(w, handler.Logger, http.StatusOK, VoteResponse{Upvotes: count})
	handler.Logger.Infow("comment vote toggled",
		"commentID", commentID,
		"upvotes", count)
}
