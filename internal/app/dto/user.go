package dto

import (
	"time"

	domainauth "marketchat/internal/domain/auth"
	domainuser "marketchat/internal/domain/user"
)

type UserProfile struct {
	ID        string     `json:"id"`
	Email     string     `json:"email,omitempty"`
	Name      string     `json:"name,omitempty"`
	Roles     []string   `json:"roles"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type AuthResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

type RegisterRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	WantToSell bool   `json:"want_to_sell"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func MapUserProfile(user *domainuser.User) UserProfile {
	if user == nil {
		return UserProfile{}
	}
	created := user.CreatedAt
	return UserProfile{
		ID:        string(user.ID),
		Email:     user.Email,
		Name:      user.Name,
		Roles:     roleNames(user.Roles),
		CreatedAt: &created,
	}
}

// MapIdentity renders a verified caller; external identity providers carry no email.
func MapIdentity(identity domainauth.Identity) UserProfile {
	return UserProfile{
		ID:    string(identity.UserID),
		Name:  identity.Name,
		Roles: roleNames(identity.Roles),
	}
}

func NewAuthResponse(user *domainuser.User, token string) AuthResponse {
	return AuthResponse{
		User:  MapUserProfile(user),
		Token: token,
	}
}

func roleNames(roles []domainuser.Role) []string {
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		out = append(out, string(role))
	}
	return out
}
