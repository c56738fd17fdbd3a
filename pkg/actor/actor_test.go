package actor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := NewToken(&Actor{ID: "u1", Username: "alice"}, testSecret, time.Hour)
	require.NoError(t, err)

	a, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", a.ID)
	assert.Equal(t, "alice", a.Username)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := NewToken(&Actor{ID: "u1", Username: "alice"}, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrBadToken)

	_, err = ParseToken("", testSecret)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoActor)

	ctx := NewContext(context.Background(), &Actor{ID: "u1"})
	a, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", a.ID)
}
