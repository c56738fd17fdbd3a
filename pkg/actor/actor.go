package actor

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Actor is the authenticated user performing a request, as verified by
// the auth middleware.
type Actor struct {
	ID       string
	Username string
}

type contextKey int

const actorKey contextKey = 0

var ErrNoActor = errors.New("no actor in context")
var ErrBadToken = errors.New("invalid token")

func NewContext(ctx context.Context, a *Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

func FromContext(ctx context.Context) (*Actor, error) {
	a, ok := ctx.Value(actorKey).(*Actor)
	if !ok || a == nil {
		return nil, ErrNoActor
	}
	return a, nil
}

func NewToken(a *Actor, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]string{"username": a.Username, "id": a.ID},
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

func ParseToken(tokenString string, secret []byte) (*Actor, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrBadToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrBadToken
	}
	userClaim, ok := claims["user"].(map[string]interface{})
	if !ok {
		return nil, ErrBadToken
	}
	id, _ := userClaim["id"].(string)
	username, _ := userClaim["username"].(string)
	if id == "" {
		return nil, ErrBadToken
	}
	return &Actor{ID: id, Username: username}, nil
}
