package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteSetToggle(t *testing.T) {
	s := NewVoteSet()

	assert.Equal(t, 1, s.Toggle("u1"))
	assert.True(t, s.Contains("u1"))

	// toggling twice restores the original membership
	assert.Equal(t, 0, s.Toggle("u1"))
	assert.False(t, s.Contains("u1"))

	s.Toggle("u1")
	assert.Equal(t, 2, s.Toggle("u2"))
}

func TestVoteSetToggle_NilMap(t *testing.T) {
	var s VoteSet
	assert.Equal(t, 1, s.Toggle("u1"))
	assert.True(t, s.Contains("u1"))
}

func TestVoteSetScanValue(t *testing.T) {
	s := NewVoteSet()
	s.Add("u1")
	s.Add("u2")

	val, err := s.Value()
	require.NoError(t, err)

	var out VoteSet
	require.NoError(t, out.Scan(val.([]byte)))
	assert.Equal(t, 2, out.Count())
	assert.True(t, out.Contains("u1"))

	var empty VoteSet
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, 0, empty.Count())
}
