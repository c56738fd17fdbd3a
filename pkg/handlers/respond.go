package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	post "github.com/asmaa-fatima/BookContinuum/pkg/posts"
	"github.com/asmaa-fatima/BookContinuum/pkg/user"
)

var ErrJSONMarshal = errors.New("json marshal error")
var ErrActorNotFound = errors.New("actor not found")
var ErrReadReqBody = errors.New("read request body error")
var ErrJSONUnmarshal = errors.New("json unmarshal error")

type MessageResponse struct {
	Message string `json:"message"`
}

func sendJSON(w http.ResponseWriter, logger *zap.SugaredLogger, status int, v interface{}) {
	resp, err := json.Marshal(v)
	if err != nil {
		http.Error(w, ErrJSONMarshal.Error(), http.StatusInternalServerError)
		logger.Error(err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, errWrite := w.Write(resp)
	if errWrite != nil {
		logger.Error(errWrite)
	}
}

func statusForError(err error) int {
	var vErrs validator.ValidationErrors
	switch {
	case errors.Is(err, post.ErrPostNotFound),
		errors.Is(err, post.ErrCommentNotFound),
		errors.Is(err, user.ErrUserNotExist):
		return http.StatusNotFound
	case errors.Is(err, post.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, post.ErrValidation),
		errors.Is(err, post.ErrWrongCategory),
		errors.Is(err, post.ErrThumbnailTooBig),
		errors.Is(err, post.ErrCreateFailed),
		errors.As(err, &vErrs):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func sendError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	logger.Error(err)
	sendJSON(w, logger, statusForError(err), MessageResponse{Message: err.Error()})
}
