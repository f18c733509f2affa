package entity

import "github.com/google/uuid"

// AuthContext is the verified identity of the caller. It is built once per
// request from the access token and handed to every usecase call.
type AuthContext struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// HasRole reports whether the caller is authenticated with the given role.
func (a AuthContext) HasRole(role string) bool {
	return a.UserID != uuid.Nil && a.Role == role
}
