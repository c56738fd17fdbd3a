package post

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// VoteSet is the per-resource upvote ledger: a user id is either present
// (voted) or absent. Both posts and comments share this representation.
type VoteSet map[string]bool

func NewVoteSet() VoteSet {
	return make(VoteSet)
}

func (s VoteSet) Contains(userID string) bool {
	return s[userID]
}

func (s *VoteSet) Add(userID string) {
	if *s == nil {
		*s = make(VoteSet)
	}
	(*s)[userID] = true
}

func (s VoteSet) Remove(userID string) {
	delete(s, userID)
}

func (s VoteSet) Count() int {
	return len(s)
}

// Toggle flips the user's vote and returns the new ledger size.
func (s *VoteSet) Toggle(userID string) int {
	if s.Contains(userID) {
		s.Remove(userID)
	} else {
		s.Add(userID)
	}
	return s.Count()
}

func (s VoteSet) Value() (driver.Value, error) {
	if s == nil {
		s = VoteSet{}
	}
	return json.Marshal(s)
}

func (s *VoteSet) Scan(src interface{}) error {
	if src == nil {
		*s = VoteSet{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("voteset: cannot scan %T", src)
	}
	return json.Unmarshal(data, s)
}
