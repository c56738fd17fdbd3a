package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/asmaa-fatima/BookContinuum/pkg/actor"
	"github.com/asmaa-fatima/BookContinuum/pkg/user"
)

type UserHandler struct {
	Repo     user.UserRepo
	Logger   *zap.SugaredLogger
	Secret   []byte
	TokenTTL time.Duration
}

type LoginForm struct {
	Name     string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (handler *UserHandler) parseLoginForm(r *http.Request) (*LoginForm, error) {
	js, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()

	lf := &LoginForm{}
	err = json.Unmarshal(js, lf)
	if err != nil {
		return nil, err
	}
	if lf.Name == "" || lf.Password == "" {
		return nil, errors.New("username and password are required")
	}
	return lf, nil
}

func (handler *UserHandler) token(u *user.User) (string, error) {
	ttl := handler.TokenTTL
	if ttl == 0 {
		ttl = 12 * time.Hour
	}
	return actor.NewToken(&actor.Actor{ID: u.ID, Username: u.Name}, handler.Secret, ttl)
}

func (handler *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("/register")

	lf, err := handler.parseLoginForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		handler.Logger.Error(err)
		return
	}

	currentUser := &user.User{Name: lf.Name, Password: lf.Password, ID: uuid.New().String()}

	if err := handler.Repo.AddUser(currentUser); err != nil {
		sendJSON(w, handler.Logger, http.StatusUnprocessableEntity, MessageResponse{Message: err.Error()})
		handler.Logger.Error(err)
		return
	}

	token, err := handler.token(currentUser)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	sendJSON(w, handler.Logger, http.StatusCreated, TokenResponse{Token: token})
	handler.Logger.Infow("user registered",
		"ID", currentUser.ID,
		"Name", currentUser.Name)
}

func (handler *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("/login")

	lf, err := handler.parseLoginForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		handler.Logger.Error(err)
		return
	}

	if err := handler.Repo.CheckUser(lf.Name, lf.Password); err != nil {
		sendJSON(w, handler.Logger, http.StatusUnauthorized, MessageResponse{Message: err.Error()})
		handler.Logger.Error(err)
		return
	}

	currentUser, err := handler.Repo.GetUser(lf.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		handler.Logger.Error(err)
		return
	}

	token, err := handler.token(currentUser)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	sendJSON(w, handler.Logger, http.StatusOK, TokenResponse{Token: token})
	handler.Logger.Infow("user login success",
		"ID", currentUser.ID,
		"Name", currentUser.Name)
}

func (handler *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	currentUser, err := handler.Repo.GetUserByID(userID)
	if err != nil {
		sendError(w, handler.Logger, err)
		return
	}
	sendJSON(w, handler.Logger, http.StatusOK, currentUser)
}
