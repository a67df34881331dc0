package user

import "time"

// Identity is what the client believes about the signed-in user. It is
// read from the bearer credential and never persisted on its own.
type Identity struct {
	Subject   string
	UserID    int64
	IsAdmin   bool
	ExpiresAt time.Time
}

// Role returns "admin" or "user".
func (i Identity) Role() string {
	if i.IsAdmin {
		return "admin"
	}
	return "user"
}
