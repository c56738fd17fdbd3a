package main

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/asmaa-fatima/BookContinuum/middleware"
	"github.com/asmaa-fatima/BookContinuum/pkg/config"
	"github.com/asmaa-fatima/BookContinuum/pkg/events"
	"github.com/asmaa-fatima/BookContinuum/pkg/files"
	"github.com/asmaa-fatima/BookContinuum/pkg/handlers"
	post "github.com/asmaa-fatima/BookContinuum/pkg/posts"
	"github.com/asmaa-fatima/BookContinuum/pkg/user"
)

func AddHandleFuncs(r *mux.Router, u handlers.UserHandler, p handlers.PostHandler, c handlers.CommentHandler) {
	r.HandleFunc("/api/register", u.Register).Methods("POST")
	r.HandleFunc("/api/login", u.Login).Methods("POST")
	r.HandleFunc("/api/users/{id}", u.GetUser).Methods("GET")

	r.HandleFunc("/api/posts", p.AddPost).Methods("POST")
	r.HandleFunc("/api/posts", p.GetAllPosts).Methods("GET")
	r.HandleFunc("/api/posts/categories/{category}", p.GetPostsWithCategory).Methods("GET")
	r.HandleFunc("/api/posts/users/{userID}", p.GetUserPosts).Methods("GET")
	r.HandleFunc("/api/posts/{id}", p.GetPost).Methods("GET")
	r.HandleFunc("/api/posts/{id}", p.EditPost).Methods("PATCH")
	r.HandleFunc("/api/posts/{id}", p.DeletePost).Methods("DELETE")
	r.HandleFunc("/api/posts/{id}/upvote", p.Upvote).Methods("PATCH")

	r.HandleFunc("/api/comments/posts/{postID}", c.AddComment).Methods("POST")
	r.HandleFunc("/api/comments/posts/{postID}", c.GetCommentsByPost).Methods("GET")
	r.HandleFunc("/api/comments/users/{userID}", c.GetCommentsByUser).Methods("GET")
	r.HandleFunc("/api/comments/{id}", c.GetComment).Methods("GET")
	r.HandleFunc("/api/comments/{id}", c.EditComment).Methods("PATCH")
	r.HandleFunc("/api/comments/{id}", c.DeleteComment).Methods("DELETE")
	r.HandleFunc("/api/comments/{id}/upvote", c.Upvote).Methods("PATCH")
}

func openStores(cfg *config.Config) (post.PostRepo, post.CommentRepo, user.UserRepo, error) {
	if cfg.Storage != "postgres" {
		return post.NewPostsMemoryRepository(), post.NewCommentsMemoryRepository(), user.NewUserMemRep(), nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, nil, nil, err
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, nil, nil, err
	}
	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		return nil, nil, nil, err
	}
	return post.NewPostsPostgresRepository(db), post.NewCommentsPostgresRepository(db), user.NewUserPostgresRepository(db), nil
}

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Println("new logger error")
		return
	}
	defer logger.Sync() //nolint:errcheck
	lg := logger.Sugar()

	postRepo, commentRepo, userRepo, err := openStores(cfg)
	if err != nil {
		lg.Fatalw("storage init failed", "error", err)
	}

	fileStore, err := files.NewStore(cfg.UploadsDir)
	if err != nil {
		lg.Fatalw("uploads dir init failed", "error", err)
	}

	broker := events.NewBroker()
	defer broker.Close()
	go func() {
		for evt := range broker.Subscribe() {
			lg.Infow("event",
				"kind", evt.Kind,
				"resource", evt.Resource,
				"actor", evt.Actor)
		}
	}()

	service := &post.Service{
		Posts:    postRepo,
		Comments: commentRepo,
		Users:    userRepo,
		Files:    fileStore,
		Events:   broker,
		Logger:   lg,
	}

	validate := validator.New()
	u := handlers.UserHandler{Repo: userRepo, Logger: lg, Secret: []byte(cfg.TokenSecret)}
	p := handlers.PostHandler{Service: service, Logger: lg, Validate: validate}
	c := handlers.CommentHandler{Service: service, Logger: lg, Validate: validate}

	r := mux.NewRouter()
	AddHandleFuncs(r, u, p, c)
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	}).Handler(middleware.Auth([]byte(cfg.TokenSecret), r))

	lg.Infow("server starting", "addr", cfg.Addr, "storage", cfg.Storage)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		lg.Fatalw("listen and serve failed", "error", err)
	}
}
