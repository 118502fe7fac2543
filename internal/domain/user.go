package domain

import (
	"fmt"
	"time"
)

// DefaultAvatarURL returns the generated avatar assigned to new accounts.
func DefaultAvatarURL(username string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", username)
}

// User is an account record as persisted in the users collection.
// Password holds the bcrypt hash; API responses never include it.
type User struct {
	ID                int       `json:"id"`
	Username          string    `json:"username"` // Unique
	Password          string    `json:"password"`
	Email             string    `json:"email"`
	Nickname          string    `json:"nickname"`
	Avatar            string    `json:"avatar"`
	Bio               string    `json:"bio"`
	Expertise         []string  `json:"expertise"`
	IsExpert          bool      `json:"isExpert"`
	Followers         int       `json:"followers"`
	Following         int       `json:"following"`
	TrainingDays      int       `json:"trainingDays"`
	TotalTrainingDays int       `json:"totalTrainingDays"`
	CreatedAt         time.Time `json:"createdAt"`
}

// DisplayName is the name shown next to the user's posts and comments.
func (u *User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Username
}

// Snapshot captures the user's display fields for embedding in posts and comments.
// The copy is never refreshed when the user later changes their profile.
func (u *User) Snapshot() AuthorSnapshot {
	return AuthorSnapshot{
		ID:       u.ID,
		Name:     u.DisplayName(),
		Avatar:   u.Avatar,
		IsExpert: u.IsExpert,
	}
}

// UserPatch lists the profile fields a user may change. Nil fields keep their value.
type UserPatch struct {
	Nickname  *string
	Bio       *string
	Avatar    *string
	Expertise *[]string
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Nickname != nil {
		u.Nickname = *p.Nickname
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Expertise != nil {
		u.Expertise = *p.Expertise
	}
}
