package domain

import (
	"time"
)

// AuthorSnapshot is a copy of the author's display fields taken when a post or
// comment is created. It goes stale when the author edits their profile.
type AuthorSnapshot struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	IsExpert bool   `json:"isExpert"`
}

// Post is a community feed entry.
type Post struct {
	ID        int            `json:"id"`
	UserID    int            `json:"userId"`
	User      AuthorSnapshot `json:"user"`
	Content   string         `json:"content"`
	Images    []string       `json:"images"`
	Tags      []string       `json:"tags"`
	Likes     int            `json:"likes"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// PostPatch is a partial update of a post. Nil fields keep their value.
type PostPatch struct {
	Content *string
	Images  *[]string
	Tags    *[]string
}

// Apply merges the patch into p.
func (patch PostPatch) Apply(p *Post) {
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
}

// Comment is a reply to a post. ParentID points at another comment of the
// same post for threaded replies; threads are not resolved server side.
type Comment struct {
	ID        int            `json:"id"`
	PostID    int            `json:"postId"`
	UserID    int            `json:"userId"`
	User      AuthorSnapshot `json:"user"`
	Content   string         `json:"content"`
	ParentID  *int           `json:"parentId"`
	Likes     int            `json:"likes"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
